package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	internalcli "github.com/swagshop/ecommerce/internal/cli"
	"github.com/swagshop/ecommerce/internal/config"
	"github.com/swagshop/ecommerce/internal/database"
	"github.com/swagshop/ecommerce/internal/repository"
	"github.com/swagshop/ecommerce/internal/services"
)

var version = "0.1.0"

// buildOrderRepository picks the order store. With Postgres configured the
// completed checkouts are persisted; without it the store falls back to an
// in-memory archive so the server still runs in development.
func buildOrderRepository() (services.OrderRepository, func(), error) {
	if _, err := config.LoadPostgresConfig(os.Getenv); err != nil {
		log.Printf("Postgres not configured (%v), using in-memory order store", err)
		return repository.NewInMemoryOrderRepository(), func() {}, nil
	}

	if err := database.Connect(); err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Println("Connected to database successfully")

	if err := database.RunMigrations(); err != nil {
		database.Close()
		return nil, nil, fmt.Errorf("failed to run database migrations: %w", err)
	}

	return repository.NewOrderRepository(), func() { database.Close() }, nil
}

// ServeCommand returns the serve command
func ServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the Swag Shop web server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "templates",
				Usage: "Directory containing the page templates",
				Value: "templates",
			},
		},
		Action: func(c *cli.Context) error {
			orderRepo, cleanup, err := buildOrderRepository()
			if err != nil {
				return err
			}
			defer cleanup()

			deps, err := internalcli.BuildDependencies(c.String("templates"), orderRepo)
			if err != nil {
				return err
			}

			return internalcli.RunServe(deps)
		},
	}
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	app := &cli.App{
		Name:    "swagshop",
		Usage:   "Swag Shop sample store management tool",
		Version: version,
		Commands: []*cli.Command{
			ServeCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		log.Fatal(err)
	}
}
