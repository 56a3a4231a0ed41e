package config

import (
	"net"
	"os"
)

// ServerConfig holds the storefront server configuration
type ServerConfig struct {
	// Host is the interface to bind. Empty binds all interfaces.
	Host string
	Port string
}

// LoadServerConfig loads server configuration from environment variables
func LoadServerConfig() ServerConfig {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080" // Default to port 8080
	}

	return ServerConfig{
		Host: os.Getenv("HOST"),
		Port: port,
	}
}

// Addr returns the listen address for net.Listen
func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}
