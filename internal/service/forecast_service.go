package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/shelfwise/retail-api/internal/domain"
	"github.com/shelfwise/retail-api/internal/events"
	"github.com/shelfwise/retail-api/internal/repository"
	"github.com/shelfwise/retail-api/internal/suggest"
)

// forecastWindow is the span covered by a generated prediction.
const forecastWindow = 7 * 24 * time.Hour

// ForecastService handles demand forecast generation and retrieval
type ForecastService struct {
	forecasts  *repository.ForecastRepository
	products   *repository.ProductRepository
	locations  *repository.LocationRepository
	activities *repository.ActivityRepository
	suggester  suggest.Client
	bus        *events.Bus
	logger     *zap.Logger
}

// NewForecastService creates a new forecast service instance
func NewForecastService(
	forecasts *repository.ForecastRepository,
	products *repository.ProductRepository,
	locations *repository.LocationRepository,
	activities *repository.ActivityRepository,
	suggester suggest.Client,
	bus *events.Bus,
	logger *zap.Logger,
) *ForecastService {
	return &ForecastService{
		forecasts:  forecasts,
		products:   products,
		locations:  locations,
		activities: activities,
		suggester:  suggester,
		bus:        bus,
		logger:     logger,
	}
}

// List returns all forecasts, newest first
func (s *ForecastService) List(ctx context.Context) ([]domain.Forecast, error) {
	return s.forecasts.ListLatest(), nil
}

// Get retrieves a forecast by id
func (s *ForecastService) Get(ctx context.Context, id int) (*domain.Forecast, error) {
	f, ok := s.forecasts.Get(id)
	if !ok {
		return nil, ErrForecastNotFound
	}
	return &f, nil
}

// Generate produces a 7-day demand forecast for a product at a location,
// stores it, records the agent activity and pushes a realtime event.
// Suggestion generation itself cannot fail; it degrades to a heuristic.
func (s *ForecastService) Generate(ctx context.Context, req *domain.GenerateForecastRequest) (*domain.ForecastResponse, error) {
	if _, ok := s.products.Get(req.ProductID); !ok {
		return nil, ErrProductNotFound
	}
	if _, ok := s.locations.Get(req.LocationID); !ok {
		return nil, ErrLocationNotFound
	}

	result := s.suggester.ForecastDemand(ctx, req.ProductID, req.LocationID, req.HistoricalData)
	if result.PredictedDemand < 0 {
		result.PredictedDemand = 0
	}
	result.Confidence = math.Min(1, math.Max(0, result.Confidence))

	now := time.Now()
	forecast := s.forecasts.Create(domain.Forecast{
		ProductID:       req.ProductID,
		LocationID:      req.LocationID,
		PredictedDemand: result.PredictedDemand,
		Confidence:      result.Confidence,
		StartDate:       now,
		EndDate:         now.Add(forecastWindow),
	})

	s.activities.Create(domain.AgentActivity{
		AgentType:   "forecast",
		Title:       "Forecast Agent",
		Description: fmt.Sprintf("Updated demand prediction for product ID %d.", req.ProductID),
	})

	if err := s.bus.Publish(events.NewForecast(forecast)); err != nil {
		s.logger.Warn("failed to publish forecast event", zap.Error(err))
	}

	s.logger.Info("forecast generated",
		zap.Int("id", forecast.ID),
		zap.Int("product_id", forecast.ProductID),
		zap.Int("predicted_demand", forecast.PredictedDemand))

	return &domain.ForecastResponse{Forecast: forecast, Insights: result.Insights}, nil
}

// Delete removes a forecast
func (s *ForecastService) Delete(ctx context.Context, id int) error {
	if !s.forecasts.Delete(id) {
		return ErrForecastNotFound
	}
	return nil
}
