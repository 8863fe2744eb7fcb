package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shelfwise/retail-api/internal/domain"
	"github.com/shelfwise/retail-api/internal/events"
	"github.com/shelfwise/retail-api/internal/http/handler"
	"github.com/shelfwise/retail-api/internal/repository"
	"github.com/shelfwise/retail-api/internal/service"
	"github.com/shelfwise/retail-api/internal/suggest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupPricingAPI(t *testing.T) (*chi.Mux, *repository.Store) {
	t.Helper()

	store := repository.NewStore()
	bus := events.NewBus(zap.NewNop())
	t.Cleanup(func() { _ = bus.Close() })

	// No API key: suggestions come from the deterministic fallbacks
	suggester := suggest.NewOpenAIClient("", "", 0, zap.NewNop())
	svc := service.NewPricingService(store.PriceOptimizations, store.Products, store.Activities, suggester, bus, zap.NewNop())
	h := handler.NewPricingHandler(svc, zap.NewNop())

	r := chi.NewRouter()
	r.Route("/api/price-optimizations", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Generate)
		r.Get("/{id}", h.GetByID)
		r.Patch("/{id}", h.UpdateStatus)
		r.Delete("/{id}", h.Delete)
	})
	return r, store
}

func TestPricingHandler_GenerateApplyFlow(t *testing.T) {
	router, store := setupPricingAPI(t)

	product, err := store.Products.Create(domain.Product{Name: "Cotton T-Shirt", SKU: "T1", Price: 100, Category: "apparel"})
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodPost, "/api/price-optimizations", domain.GeneratePriceOptimizationRequest{
		ProductID:         product.ID,
		CurrentPrice:      100,
		StockLevel:        150,
		OptimalStockLevel: 100,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var opt domain.PriceOptimization
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &opt))
	assert.Equal(t, -30.0, opt.PercentageChange)
	assert.Equal(t, 70.00, opt.SuggestedPrice)
	assert.Equal(t, domain.PriceStatusPending, opt.Status)

	rec = doJSON(t, router, http.MethodPatch, "/api/price-optimizations/1", domain.UpdatePriceOptimizationRequest{Status: "applied"})
	require.Equal(t, http.StatusOK, rec.Code)

	updated, ok := store.Products.Get(product.ID)
	require.True(t, ok)
	assert.Equal(t, 70.00, updated.Price)
}

func TestPricingHandler_GenerateUnknownProduct(t *testing.T) {
	router, _ := setupPricingAPI(t)

	rec := doJSON(t, router, http.MethodPost, "/api/price-optimizations", domain.GeneratePriceOptimizationRequest{
		ProductID:         42,
		CurrentPrice:      100,
		StockLevel:        10,
		OptimalStockLevel: 10,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPricingHandler_UpdateStatusValidation(t *testing.T) {
	router, store := setupPricingAPI(t)

	product, err := store.Products.Create(domain.Product{Name: "Jeans", SKU: "J1", Price: 80, Category: "apparel"})
	require.NoError(t, err)
	rec := doJSON(t, router, http.MethodPost, "/api/price-optimizations", domain.GeneratePriceOptimizationRequest{
		ProductID: product.ID, CurrentPrice: 80, StockLevel: 150, OptimalStockLevel: 100,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPatch, "/api/price-optimizations/1", map[string]any{"status": "archived"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPatch, "/api/price-optimizations/42", domain.UpdatePriceOptimizationRequest{Status: "dismissed"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDashboardHandler_Overview(t *testing.T) {
	store := repository.NewStore()
	inventory := service.NewInventoryService(store.Inventory, store.Products, store.Locations, zap.NewNop())
	suggester := suggest.NewOpenAIClient("", "", 0, zap.NewNop())
	svc := service.NewDashboardService(inventory, suggester, zap.NewNop())
	h := handler.NewDashboardHandler(svc, zap.NewNop())

	r := chi.NewRouter()
	r.Get("/api/dashboard/overview", h.Overview)
	r.Get("/api/insights/inventory", h.InventoryInsight)

	store.Inventory.Create(domain.Inventory{ProductID: 1, LocationID: 1, Quantity: 7, MinStockLevel: 5, MaxStockLevel: 10})
	store.Inventory.Create(domain.Inventory{ProductID: 2, LocationID: 1, Quantity: 0, MinStockLevel: 5, MaxStockLevel: 10})

	rec := doJSON(t, r, http.MethodGet, "/api/dashboard/overview", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var overview domain.DashboardOverview
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &overview))
	assert.Equal(t, 50, overview.StockHealth)
	assert.Equal(t, 1, overview.StockoutRisk)
	assert.Equal(t, 93.4, overview.ForecastAccuracy)

	rec = doJSON(t, r, http.MethodGet, "/api/insights/inventory", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var insight domain.InsightResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &insight))
	assert.Equal(t, suggest.FallbackInsight, insight.Insight)
}

func TestCommunicationHandler_PostMessage(t *testing.T) {
	store := repository.NewStore()
	bus := events.NewBus(zap.NewNop())
	t.Cleanup(func() { _ = bus.Close() })

	suggester := suggest.NewOpenAIClient("", "", 0, zap.NewNop())
	svc := service.NewCommunicationService(store.Communications, store.Messages, suggester, bus, zap.NewNop())
	h := handler.NewCommunicationHandler(svc, zap.NewNop())

	r := chi.NewRouter()
	r.Route("/api/agent-communications", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/{id}/messages", h.ListMessages)
		r.Post("/{id}/messages", h.PostMessage)
	})

	rec := doJSON(t, r, http.MethodPost, "/api/agent-communications", domain.CreateCommunicationRequest{Topic: "Restock"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/api/agent-communications/1/messages", domain.PostMessageRequest{
		AgentType: "user", Content: "How is stock?",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var posted []domain.Message
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &posted))
	require.Len(t, posted, 2)
	assert.Equal(t, "user", posted[0].AgentType)
	assert.Equal(t, "inventory", posted[1].AgentType)
	assert.Equal(t, suggest.FallbackReply("inventory"), posted[1].Content)

	rec = doJSON(t, r, http.MethodGet, "/api/agent-communications/1/messages", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/api/agent-communications/42/messages", domain.PostMessageRequest{
		AgentType: "user", Content: "lost",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
