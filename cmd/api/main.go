package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shelfwise/retail-api/internal/config"
	"github.com/shelfwise/retail-api/internal/events"
	"github.com/shelfwise/retail-api/internal/http/handler"
	"github.com/shelfwise/retail-api/internal/http/middleware"
	"github.com/shelfwise/retail-api/internal/http/router"
	"github.com/shelfwise/retail-api/internal/logger"
	"github.com/shelfwise/retail-api/internal/realtime"
	"github.com/shelfwise/retail-api/internal/repository"
	"github.com/shelfwise/retail-api/internal/service"
	"github.com/shelfwise/retail-api/internal/suggest"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	log, err := logger.NewLogger(&cfg.Logging, &cfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Environment),
		zap.Int("port", cfg.App.Port),
	)

	// Initialize the in-memory store, optionally with the demo dataset
	store := repository.NewStore()
	if cfg.App.Seed {
		if err := store.Seed(); err != nil {
			return fmt.Errorf("failed to seed store: %w", err)
		}
		log.Info("Store seeded with demo dataset")
	}

	// Event bus for realtime fan-out
	bus := events.NewBus(log)

	// Suggestion client. Without an API key every call uses the
	// deterministic fallbacks.
	suggester := suggest.NewOpenAIClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.OpenAI.TimeoutDuration(), log)
	if cfg.OpenAI.APIKey == "" {
		log.Warn("OPENAI_API_KEY not set, suggestion calls will use fallbacks")
	}

	// Initialize services
	productService := service.NewProductService(store.Products, log)
	locationService := service.NewLocationService(store.Locations, log)
	inventoryService := service.NewInventoryService(store.Inventory, store.Products, store.Locations, log)
	supplierService := service.NewSupplierService(store.Suppliers, log)
	orderService := service.NewOrderService(store.Orders, store.OrderItems, store.Suppliers, store.Locations, store.Products, log)
	forecastService := service.NewForecastService(store.Forecasts, store.Products, store.Locations, store.Activities, suggester, bus, log)
	pricingService := service.NewPricingService(store.PriceOptimizations, store.Products, store.Activities, suggester, bus, log)
	communicationService := service.NewCommunicationService(store.Communications, store.Messages, suggester, bus, log)
	activityService := service.NewActivityService(store.Activities, log)
	dashboardService := service.NewDashboardService(inventoryService, suggester, log)
	userService := service.NewUserService(store.Users, log)

	// Realtime hub bridges the event bus to websocket clients and routes
	// inbound agent messages to the communication service
	hub := realtime.NewHub(bus, communicationService, log)

	hubCtx, hubCancel := context.WithCancel(context.Background())
	defer hubCancel()
	go func() {
		if err := hub.Run(hubCtx); err != nil {
			log.Error("Realtime hub stopped", zap.Error(err))
		}
	}()

	// Initialize middleware
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)

	// Initialize handlers
	productHandler := handler.NewProductHandler(productService, log)
	locationHandler := handler.NewLocationHandler(locationService, inventoryService, log)
	inventoryHandler := handler.NewInventoryHandler(inventoryService, log)
	supplierHandler := handler.NewSupplierHandler(supplierService, log)
	orderHandler := handler.NewOrderHandler(orderService, log)
	forecastHandler := handler.NewForecastHandler(forecastService, log)
	pricingHandler := handler.NewPricingHandler(pricingService, log)
	communicationHandler := handler.NewCommunicationHandler(communicationService, log)
	activityHandler := handler.NewActivityHandler(activityService, log)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, log)
	userHandler := handler.NewUserHandler(userService, log)

	// Setup router
	rt := router.NewRouter(
		cfg,
		log,
		rateLimiter,
		hub,
		productHandler,
		locationHandler,
		inventoryHandler,
		supplierHandler,
		orderHandler,
		forecastHandler,
		pricingHandler,
		communicationHandler,
		activityHandler,
		dashboardHandler,
		userHandler,
	)

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      rt.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	// Start server in goroutine
	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	// Wait for interrupt signal
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		// Graceful shutdown with timeout
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		// Stop the hub and drain the event bus
		hubCancel()
		if err := bus.Close(); err != nil {
			log.Warn("Error closing event bus", zap.Error(err))
		}

		log.Info("Server stopped gracefully")
	}

	return nil
}
