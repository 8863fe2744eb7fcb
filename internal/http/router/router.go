package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shelfwise/retail-api/internal/config"
	"github.com/shelfwise/retail-api/internal/http/handler"
	"github.com/shelfwise/retail-api/internal/http/middleware"
	"github.com/shelfwise/retail-api/internal/realtime"
	"go.uber.org/zap"
)

type Router struct {
	cfg                  *config.Config
	logger               *zap.Logger
	rateLimiter          *middleware.RateLimiter
	hub                  *realtime.Hub
	productHandler       *handler.ProductHandler
	locationHandler      *handler.LocationHandler
	inventoryHandler     *handler.InventoryHandler
	supplierHandler      *handler.SupplierHandler
	orderHandler         *handler.OrderHandler
	forecastHandler      *handler.ForecastHandler
	pricingHandler       *handler.PricingHandler
	communicationHandler *handler.CommunicationHandler
	activityHandler      *handler.ActivityHandler
	dashboardHandler     *handler.DashboardHandler
	userHandler          *handler.UserHandler
}

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	rateLimiter *middleware.RateLimiter,
	hub *realtime.Hub,
	productHandler *handler.ProductHandler,
	locationHandler *handler.LocationHandler,
	inventoryHandler *handler.InventoryHandler,
	supplierHandler *handler.SupplierHandler,
	orderHandler *handler.OrderHandler,
	forecastHandler *handler.ForecastHandler,
	pricingHandler *handler.PricingHandler,
	communicationHandler *handler.CommunicationHandler,
	activityHandler *handler.ActivityHandler,
	dashboardHandler *handler.DashboardHandler,
	userHandler *handler.UserHandler,
) *Router {
	return &Router{
		cfg:                  cfg,
		logger:               logger,
		rateLimiter:          rateLimiter,
		hub:                  hub,
		productHandler:       productHandler,
		locationHandler:      locationHandler,
		inventoryHandler:     inventoryHandler,
		supplierHandler:      supplierHandler,
		orderHandler:         orderHandler,
		forecastHandler:      forecastHandler,
		pricingHandler:       pricingHandler,
		communicationHandler: communicationHandler,
		activityHandler:      activityHandler,
		dashboardHandler:     dashboardHandler,
		userHandler:          userHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logging(rt.logger))
	r.Use(middleware.SecurityHeaders(&rt.cfg.Security))
	r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))
	r.Use(rt.rateLimiter.LimitByIP)

	// Health check (basic liveness probe)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Readiness check (all state is in-process, so this reports healthy
	// once the router is serving)
	r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "healthy",
			"checks": map[string]interface{}{
				"store":    map[string]interface{}{"status": "healthy"},
				"realtime": map[string]interface{}{"status": "healthy"},
			},
		})
	})

	// WebSocket endpoint for realtime updates
	r.Get(rt.cfg.Realtime.Path, rt.hub.ServeWS)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Products
		r.Route("/products", func(r chi.Router) {
			r.Get("/", rt.productHandler.List)
			r.Post("/", rt.productHandler.Create)
			r.Get("/sku/{sku}", rt.productHandler.GetBySKU)
			r.Get("/{id}", rt.productHandler.GetByID)
			r.Put("/{id}", rt.productHandler.Update)
			r.Delete("/{id}", rt.productHandler.Delete)
		})

		// Warehouse locations
		r.Route("/warehouse-locations", func(r chi.Router) {
			r.Get("/", rt.locationHandler.List)
			r.Post("/", rt.locationHandler.Create)
			r.Get("/{id}", rt.locationHandler.GetByID)
			r.Put("/{id}", rt.locationHandler.Update)
			r.Delete("/{id}", rt.locationHandler.Delete)
			r.Get("/{id}/inventory", rt.locationHandler.Inventory)
		})

		// Inventory
		r.Route("/inventory", func(r chi.Router) {
			r.Get("/", rt.inventoryHandler.List)
			r.Post("/", rt.inventoryHandler.Create)
			r.Get("/{id}", rt.inventoryHandler.GetByID)
			r.Put("/{id}", rt.inventoryHandler.Update)
			r.Delete("/{id}", rt.inventoryHandler.Delete)
		})

		// Suppliers
		r.Route("/suppliers", func(r chi.Router) {
			r.Get("/", rt.supplierHandler.List)
			r.Post("/", rt.supplierHandler.Create)
			r.Get("/{id}", rt.supplierHandler.GetByID)
			r.Put("/{id}", rt.supplierHandler.Update)
			r.Delete("/{id}", rt.supplierHandler.Delete)
		})

		// Orders and their line items
		r.Route("/orders", func(r chi.Router) {
			r.Get("/", rt.orderHandler.List)
			r.Post("/", rt.orderHandler.Create)
			r.Get("/{id}", rt.orderHandler.GetByID)
			r.Put("/{id}", rt.orderHandler.Update)
			r.Delete("/{id}", rt.orderHandler.Delete)
			r.Get("/{id}/items", rt.orderHandler.ListItems)
			r.Post("/{id}/items", rt.orderHandler.AddItem)
			r.Put("/items/{itemId}", rt.orderHandler.UpdateItem)
			r.Delete("/items/{itemId}", rt.orderHandler.DeleteItem)
		})

		// Demand forecasts
		r.Route("/demand-forecasts", func(r chi.Router) {
			r.Get("/", rt.forecastHandler.List)
			r.Post("/", rt.forecastHandler.Generate)
			r.Get("/{id}", rt.forecastHandler.GetByID)
			r.Delete("/{id}", rt.forecastHandler.Delete)
		})

		// Price optimizations
		r.Route("/price-optimizations", func(r chi.Router) {
			r.Get("/", rt.pricingHandler.List)
			r.Post("/", rt.pricingHandler.Generate)
			r.Get("/{id}", rt.pricingHandler.GetByID)
			r.Patch("/{id}", rt.pricingHandler.UpdateStatus)
			r.Delete("/{id}", rt.pricingHandler.Delete)
		})

		// Agent communications and message threads
		r.Route("/agent-communications", func(r chi.Router) {
			r.Get("/", rt.communicationHandler.List)
			r.Post("/", rt.communicationHandler.Create)
			r.Get("/{id}", rt.communicationHandler.GetByID)
			r.Put("/{id}", rt.communicationHandler.Update)
			r.Delete("/{id}", rt.communicationHandler.Delete)
			r.Get("/{id}/messages", rt.communicationHandler.ListMessages)
			r.Post("/{id}/messages", rt.communicationHandler.PostMessage)
		})

		// Agent activity feed
		r.Route("/agent-activities", func(r chi.Router) {
			r.Get("/", rt.activityHandler.ListRecent)
			r.Post("/", rt.activityHandler.Create)
		})

		// Dashboard & insights
		r.Get("/dashboard/overview", rt.dashboardHandler.Overview)
		r.Get("/insights/inventory", rt.dashboardHandler.InventoryInsight)

		// Users
		r.Route("/users", func(r chi.Router) {
			r.Post("/", rt.userHandler.Create)
			r.Get("/{id}", rt.userHandler.GetByID)
		})
	})

	return r
}
