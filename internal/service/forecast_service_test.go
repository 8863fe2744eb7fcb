package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/shelfwise/retail-api/internal/domain"
	"github.com/shelfwise/retail-api/internal/repository"
	"github.com/shelfwise/retail-api/internal/service"
	"github.com/shelfwise/retail-api/internal/suggest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newForecastFixture(t *testing.T, suggester suggest.Client) (*service.ForecastService, *repository.Store) {
	t.Helper()
	store := repository.NewStore()
	bus := newTestBus()
	t.Cleanup(func() { _ = bus.Close() })
	svc := service.NewForecastService(store.Forecasts, store.Products, store.Locations, store.Activities, suggester, bus, zap.NewNop())
	return svc, store
}

func seedForecastRefs(t *testing.T, store *repository.Store) (domain.Product, domain.Location) {
	t.Helper()
	product, err := store.Products.Create(domain.Product{Name: "Cotton T-Shirt", SKU: "T1", Price: 20, Category: "apparel"})
	require.NoError(t, err)
	location := store.Locations.Create(domain.Location{Name: "Main", Type: domain.LocationTypeWarehouse})
	return product, location
}

func TestForecastService_Generate(t *testing.T) {
	svc, store := newForecastFixture(t, &stubSuggester{forecast: suggest.ForecastResult{
		PredictedDemand: 340,
		Confidence:      0.82,
		Insights:        "Demand trending up ahead of the holidays.",
	}})
	product, location := seedForecastRefs(t, store)
	ctx := context.Background()

	resp, err := svc.Generate(ctx, &domain.GenerateForecastRequest{ProductID: product.ID, LocationID: location.ID})
	require.NoError(t, err)

	assert.Equal(t, 340, resp.Forecast.PredictedDemand)
	assert.Equal(t, 0.82, resp.Forecast.Confidence)
	assert.Equal(t, "Demand trending up ahead of the holidays.", resp.Insights)

	// The window spans seven days from generation
	window := resp.Forecast.EndDate.Sub(resp.Forecast.StartDate)
	assert.Equal(t, 7*24*time.Hour, window)

	activities := store.Activities.List()
	require.NotEmpty(t, activities)
	assert.Equal(t, "Forecast Agent", activities[0].Title)
	assert.Equal(t, "Updated demand prediction for product ID 1.", activities[0].Description)
}

func TestForecastService_GenerateClampsResult(t *testing.T) {
	svc, store := newForecastFixture(t, &stubSuggester{forecast: suggest.ForecastResult{
		PredictedDemand: -50,
		Confidence:      1.7,
	}})
	product, location := seedForecastRefs(t, store)

	resp, err := svc.Generate(context.Background(), &domain.GenerateForecastRequest{ProductID: product.ID, LocationID: location.ID})
	require.NoError(t, err)

	assert.Equal(t, 0, resp.Forecast.PredictedDemand)
	assert.Equal(t, 1.0, resp.Forecast.Confidence)
}

func TestForecastService_GenerateUnknownRefs(t *testing.T) {
	svc, store := newForecastFixture(t, &stubSuggester{})
	product, _ := seedForecastRefs(t, store)

	_, err := svc.Generate(context.Background(), &domain.GenerateForecastRequest{ProductID: 42, LocationID: 1})
	assert.ErrorIs(t, err, service.ErrProductNotFound)

	_, err = svc.Generate(context.Background(), &domain.GenerateForecastRequest{ProductID: product.ID, LocationID: 42})
	assert.ErrorIs(t, err, service.ErrLocationNotFound)
}

func TestForecastService_Delete(t *testing.T) {
	svc, store := newForecastFixture(t, &stubSuggester{})
	product, location := seedForecastRefs(t, store)
	ctx := context.Background()

	resp, err := svc.Generate(ctx, &domain.GenerateForecastRequest{ProductID: product.ID, LocationID: location.ID})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, resp.Forecast.ID))
	assert.ErrorIs(t, svc.Delete(ctx, resp.Forecast.ID), service.ErrForecastNotFound)

	_, ok := store.Forecasts.Get(resp.Forecast.ID)
	assert.False(t, ok)
}
