package cli

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/swagshop/ecommerce/internal/config"
	"github.com/swagshop/ecommerce/internal/handlers"
	"github.com/swagshop/ecommerce/internal/services"
	"github.com/swagshop/ecommerce/internal/session"
)

// ServerDependencies holds all dependencies needed for the server
type ServerDependencies struct {
	ServerConfig            config.ServerConfig
	Sessions                *session.Store
	Orders                  services.OrderService
	LoginHandler            http.Handler
	InventoryHandler        http.Handler
	CartHandler             http.Handler
	CartAddHandler          http.Handler
	CartRemoveHandler       http.Handler
	CheckoutStepOneHandler  http.Handler
	CheckoutStepTwoHandler  http.Handler
	CheckoutCompleteHandler http.Handler
}

// BuildDependencies wires the session store, order service and all page
// handlers against the templates in templatesDir. The order repository is
// injected so callers can choose Postgres or the in-memory store.
func BuildDependencies(templatesDir string, orderRepo services.OrderRepository) (ServerDependencies, error) {
	var deps ServerDependencies

	deps.ServerConfig = config.LoadServerConfig()
	deps.Sessions = session.NewStore()
	deps.Orders = services.NewOrderService(orderRepo)

	loginHandler, err := handlers.NewLoginHandler(filepath.Join(templatesDir, "login.html"), deps.Sessions)
	if err != nil {
		return deps, fmt.Errorf("failed to create login handler: %w", err)
	}
	deps.LoginHandler = loginHandler

	inventoryHandler, err := handlers.NewInventoryHandler(filepath.Join(templatesDir, "inventory.html"), deps.Sessions)
	if err != nil {
		return deps, fmt.Errorf("failed to create inventory handler: %w", err)
	}
	deps.InventoryHandler = inventoryHandler

	cartHandler, err := handlers.NewCartHandler(filepath.Join(templatesDir, "cart.html"), deps.Sessions)
	if err != nil {
		return deps, fmt.Errorf("failed to create cart handler: %w", err)
	}
	deps.CartHandler = cartHandler
	deps.CartAddHandler = handlers.NewCartAddHandler(deps.Sessions)
	deps.CartRemoveHandler = handlers.NewCartRemoveHandler(deps.Sessions)

	stepOneHandler, err := handlers.NewCheckoutStepOneHandler(filepath.Join(templatesDir, "checkout_step_one.html"), deps.Sessions)
	if err != nil {
		return deps, fmt.Errorf("failed to create checkout step one handler: %w", err)
	}
	deps.CheckoutStepOneHandler = stepOneHandler

	stepTwoHandler, err := handlers.NewCheckoutStepTwoHandler(filepath.Join(templatesDir, "checkout_step_two.html"), deps.Sessions, deps.Orders)
	if err != nil {
		return deps, fmt.Errorf("failed to create checkout step two handler: %w", err)
	}
	deps.CheckoutStepTwoHandler = stepTwoHandler

	completeHandler, err := handlers.NewCheckoutCompleteHandler(filepath.Join(templatesDir, "checkout_complete.html"), deps.Sessions)
	if err != nil {
		return deps, fmt.Errorf("failed to create checkout complete handler: %w", err)
	}
	deps.CheckoutCompleteHandler = completeHandler

	return deps, nil
}

// RunServe starts the store web server
func RunServe(deps ServerDependencies) error {
	listener, server, err := StartServer(deps)
	if err != nil {
		return err
	}
	defer listener.Close()

	return WaitForShutdown(server, nil)
}

// StartServer creates and starts the HTTP server, returning the listener and server
func StartServer(deps ServerDependencies) (net.Listener, *http.Server, error) {
	// Set up routes
	mux := http.NewServeMux()
	mux.Handle("/", deps.LoginHandler)
	mux.Handle("/inventory", deps.InventoryHandler)
	mux.Handle("/cart", deps.CartHandler)
	mux.Handle("/cart/add", deps.CartAddHandler)
	mux.Handle("/cart/remove", deps.CartRemoveHandler)
	mux.Handle("/checkout-step-one", deps.CheckoutStepOneHandler)
	mux.Handle("/checkout-step-two", deps.CheckoutStepTwoHandler)
	mux.Handle("/checkout-complete", deps.CheckoutCompleteHandler)
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	// Create listener
	listener, err := net.Listen("tcp", deps.ServerConfig.Addr())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create listener: %w", err)
	}

	// Create HTTP server
	server := &http.Server{
		Handler: mux,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server listening on %s", listener.Addr().String())
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	return listener, server, nil
}

// WaitForShutdown waits for a shutdown signal and gracefully shuts down the server
// If shutdown channel is nil, a new channel will be created and registered with signal.Notify
func WaitForShutdown(server *http.Server, shutdown chan os.Signal) error {
	return WaitForShutdownWithTimeout(server, shutdown, 30*time.Second)
}

// WaitForShutdownWithTimeout allows specifying a custom shutdown timeout (primarily for testing)
func WaitForShutdownWithTimeout(server *http.Server, shutdown chan os.Signal, shutdownTimeout time.Duration) error {
	// Channel to listen for interrupt or terminate signals
	if shutdown == nil {
		shutdown = make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	}

	// Wait for shutdown signal
	sig := <-shutdown
	log.Printf("Received signal: %v, shutting down server...", sig)

	// Give outstanding requests time to complete
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Attempt graceful shutdown
	if err := server.Shutdown(ctx); err != nil {
		if err := server.Close(); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	log.Println("Server stopped")
	return nil
}
