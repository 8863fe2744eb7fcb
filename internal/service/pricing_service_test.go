package service_test

import (
	"context"
	"testing"

	"github.com/shelfwise/retail-api/internal/domain"
	"github.com/shelfwise/retail-api/internal/repository"
	"github.com/shelfwise/retail-api/internal/service"
	"github.com/shelfwise/retail-api/internal/suggest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newPricingFixture(t *testing.T, suggester suggest.Client) (*service.PricingService, *repository.Store) {
	t.Helper()
	store := repository.NewStore()
	bus := newTestBus()
	t.Cleanup(func() { _ = bus.Close() })
	svc := service.NewPricingService(store.PriceOptimizations, store.Products, store.Activities, suggester, bus, zap.NewNop())
	return svc, store
}

func TestPricingService_GenerateWithFallback(t *testing.T) {
	// A zero-valued result simulates an unavailable upstream; the service
	// must substitute the deterministic heuristic.
	svc, store := newPricingFixture(t, &stubSuggester{})
	ctx := context.Background()

	product, err := store.Products.Create(domain.Product{Name: "Cotton T-Shirt", SKU: "T1", Price: 100, Category: "apparel"})
	require.NoError(t, err)

	opt, err := svc.Generate(ctx, &domain.GeneratePriceOptimizationRequest{
		ProductID:         product.ID,
		CurrentPrice:      100,
		StockLevel:        150,
		OptimalStockLevel: 100,
	})
	require.NoError(t, err)

	assert.Equal(t, -30.0, opt.PercentageChange)
	assert.Equal(t, 70.00, opt.SuggestedPrice)
	assert.Equal(t, domain.PriceReasonOverstock, opt.Reason)
	assert.Equal(t, domain.PriceStatusPending, opt.Status)

	activities := store.Activities.List()
	require.NotEmpty(t, activities)
	assert.Equal(t, "Pricing Agent", activities[0].Title)
	assert.Equal(t, "Suggested 30% discount for product ID 1.", activities[0].Description)
}

func TestPricingService_GenerateRecomputesPercentage(t *testing.T) {
	// The stored percentage always follows from the two prices, even when
	// the upstream reports something inconsistent.
	svc, store := newPricingFixture(t, &stubSuggester{price: suggest.PriceResult{
		SuggestedPrice:   120,
		PercentageChange: 99,
		Reason:           "seasonal",
	}})
	ctx := context.Background()

	product, err := store.Products.Create(domain.Product{Name: "Denim Jeans", SKU: "D1", Price: 100, Category: "apparel"})
	require.NoError(t, err)

	opt, err := svc.Generate(ctx, &domain.GeneratePriceOptimizationRequest{
		ProductID:         product.ID,
		CurrentPrice:      100,
		StockLevel:        100,
		OptimalStockLevel: 100,
	})
	require.NoError(t, err)

	assert.Equal(t, 20.0, opt.PercentageChange)
	assert.Equal(t, domain.PriceReasonSeasonal, opt.Reason)
}

func TestPricingService_GenerateUnknownProduct(t *testing.T) {
	svc, _ := newPricingFixture(t, &stubSuggester{})

	_, err := svc.Generate(context.Background(), &domain.GeneratePriceOptimizationRequest{
		ProductID:         42,
		CurrentPrice:      100,
		StockLevel:        10,
		OptimalStockLevel: 10,
	})
	assert.ErrorIs(t, err, service.ErrProductNotFound)
}

func TestPricingService_ApplyWritesPriceBack(t *testing.T) {
	svc, store := newPricingFixture(t, &stubSuggester{})
	ctx := context.Background()

	product, err := store.Products.Create(domain.Product{Name: "Summer Dress", SKU: "SD1", Price: 100, Category: "apparel"})
	require.NoError(t, err)

	opt, err := svc.Generate(ctx, &domain.GeneratePriceOptimizationRequest{
		ProductID:         product.ID,
		CurrentPrice:      100,
		StockLevel:        150,
		OptimalStockLevel: 100,
	})
	require.NoError(t, err)

	applied, err := svc.UpdateStatus(ctx, opt.ID, &domain.UpdatePriceOptimizationRequest{Status: "applied"})
	require.NoError(t, err)
	assert.Equal(t, domain.PriceStatusApplied, applied.Status)

	updated, ok := store.Products.Get(product.ID)
	require.True(t, ok)
	assert.Equal(t, 70.00, updated.Price)

	activities := store.Activities.List()
	descriptions := make([]string, 0, len(activities))
	for _, a := range activities {
		descriptions = append(descriptions, a.Description)
	}
	assert.Contains(t, descriptions, "Applied 30% discount to Summer Dress.")
}

func TestPricingService_DismissLeavesPriceAlone(t *testing.T) {
	svc, store := newPricingFixture(t, &stubSuggester{})
	ctx := context.Background()

	product, err := store.Products.Create(domain.Product{Name: "Wool Jacket", SKU: "W1", Price: 100, Category: "apparel"})
	require.NoError(t, err)

	opt, err := svc.Generate(ctx, &domain.GeneratePriceOptimizationRequest{
		ProductID:         product.ID,
		CurrentPrice:      100,
		StockLevel:        150,
		OptimalStockLevel: 100,
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, opt.ID, &domain.UpdatePriceOptimizationRequest{Status: "dismissed"})
	require.NoError(t, err)

	unchanged, ok := store.Products.Get(product.ID)
	require.True(t, ok)
	assert.Equal(t, 100.00, unchanged.Price)
}

func TestPricingService_ListReturnsPendingWithProduct(t *testing.T) {
	svc, store := newPricingFixture(t, &stubSuggester{})
	ctx := context.Background()

	product, err := store.Products.Create(domain.Product{Name: "Ankle Boots", SKU: "B1", Price: 100, Category: "footwear"})
	require.NoError(t, err)

	first, err := svc.Generate(ctx, &domain.GeneratePriceOptimizationRequest{
		ProductID: product.ID, CurrentPrice: 100, StockLevel: 150, OptimalStockLevel: 100,
	})
	require.NoError(t, err)
	_, err = svc.Generate(ctx, &domain.GeneratePriceOptimizationRequest{
		ProductID: product.ID, CurrentPrice: 100, StockLevel: 150, OptimalStockLevel: 100,
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, first.ID, &domain.UpdatePriceOptimizationRequest{Status: "dismissed"})
	require.NoError(t, err)

	pending, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.NotNil(t, pending[0].Product)
	assert.Equal(t, "Ankle Boots", pending[0].Product.Name)
}
