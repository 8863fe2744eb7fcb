package service

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/shelfwise/retail-api/internal/domain"
	"github.com/shelfwise/retail-api/internal/events"
	"github.com/shelfwise/retail-api/internal/repository"
	"github.com/shelfwise/retail-api/internal/suggest"
)

// PricingService handles price suggestion generation and review
type PricingService struct {
	optimizations *repository.PriceOptimizationRepository
	products      *repository.ProductRepository
	activities    *repository.ActivityRepository
	suggester     suggest.Client
	bus           *events.Bus
	logger        *zap.Logger
}

// NewPricingService creates a new pricing service instance
func NewPricingService(
	optimizations *repository.PriceOptimizationRepository,
	products *repository.ProductRepository,
	activities *repository.ActivityRepository,
	suggester suggest.Client,
	bus *events.Bus,
	logger *zap.Logger,
) *PricingService {
	return &PricingService{
		optimizations: optimizations,
		products:      products,
		activities:    activities,
		suggester:     suggester,
		bus:           bus,
		logger:        logger,
	}
}

// List returns all pending price suggestions joined with their product
func (s *PricingService) List(ctx context.Context) ([]domain.PriceOptimizationDetail, error) {
	pending := s.optimizations.ListPending()
	details := make([]domain.PriceOptimizationDetail, 0, len(pending))
	for _, opt := range pending {
		detail := domain.PriceOptimizationDetail{PriceOptimization: opt}
		if p, ok := s.products.Get(opt.ProductID); ok {
			detail.Product = &p
		}
		details = append(details, detail)
	}
	return details, nil
}

// Get retrieves a price suggestion by id
func (s *PricingService) Get(ctx context.Context, id int) (*domain.PriceOptimization, error) {
	opt, ok := s.optimizations.Get(id)
	if !ok {
		return nil, ErrOptimizationNotFound
	}
	return &opt, nil
}

// Generate asks the pricing agent for a suggestion, stores it as pending,
// records the agent activity and pushes a realtime event. The stored
// percentage change is kept consistent with the suggested and current price.
func (s *PricingService) Generate(ctx context.Context, req *domain.GeneratePriceOptimizationRequest) (*domain.PriceOptimization, error) {
	if _, ok := s.products.Get(req.ProductID); !ok {
		return nil, ErrProductNotFound
	}

	result := s.suggester.OptimizePrice(ctx, req.ProductID, req.CurrentPrice, req.StockLevel, req.OptimalStockLevel, req.HistoricalSales)
	if result.SuggestedPrice <= 0 {
		result = suggest.FallbackPrice(req.CurrentPrice, req.StockLevel, req.OptimalStockLevel)
	}

	opt := s.optimizations.Create(domain.PriceOptimization{
		ProductID:        req.ProductID,
		CurrentPrice:     req.CurrentPrice,
		SuggestedPrice:   result.SuggestedPrice,
		PercentageChange: percentageChange(req.CurrentPrice, result.SuggestedPrice),
		Reason:           domain.PriceOptimizationReason(result.Reason),
		Status:           domain.PriceStatusPending,
	})

	s.activities.Create(domain.AgentActivity{
		AgentType:   "pricing",
		Title:       "Pricing Agent",
		Description: fmt.Sprintf("Suggested %.0f%% %s for product ID %d.", math.Abs(opt.PercentageChange), changeWord(opt.PercentageChange), opt.ProductID),
	})

	if err := s.bus.Publish(events.NewPriceOptimization(opt)); err != nil {
		s.logger.Warn("failed to publish price optimization event", zap.Error(err))
	}

	s.logger.Info("price optimization generated",
		zap.Int("id", opt.ID),
		zap.Int("product_id", opt.ProductID),
		zap.Float64("suggested_price", opt.SuggestedPrice))
	return &opt, nil
}

// UpdateStatus moves a suggestion between pending, applied and dismissed.
// Applying a suggestion writes the suggested price back to the product and
// records the pricing agent activity.
func (s *PricingService) UpdateStatus(ctx context.Context, id int, req *domain.UpdatePriceOptimizationRequest) (*domain.PriceOptimization, error) {
	status := domain.PriceOptimizationStatus(req.Status)

	opt, ok := s.optimizations.Update(id, func(opt *domain.PriceOptimization) {
		opt.Status = status
	})
	if !ok {
		return nil, ErrOptimizationNotFound
	}

	if status == domain.PriceStatusApplied {
		if product, found := s.products.Update(opt.ProductID, func(p *domain.Product) {
			p.Price = opt.SuggestedPrice
		}); found {
			s.activities.Create(domain.AgentActivity{
				AgentType:   "pricing",
				Title:       "Pricing Agent",
				Description: fmt.Sprintf("Applied %.0f%% %s to %s.", math.Abs(opt.PercentageChange), changeWord(opt.PercentageChange), product.Name),
			})
		}
	}

	if err := s.bus.Publish(events.UpdatedPriceOptimization(opt)); err != nil {
		s.logger.Warn("failed to publish price optimization event", zap.Error(err))
	}

	s.logger.Info("price optimization status updated",
		zap.Int("id", opt.ID), zap.String("status", string(opt.Status)))
	return &opt, nil
}

// Delete removes a price suggestion
func (s *PricingService) Delete(ctx context.Context, id int) error {
	if !s.optimizations.Delete(id) {
		return ErrOptimizationNotFound
	}
	return nil
}

// percentageChange recomputes the relative change so the stored record stays
// internally consistent even when the upstream suggestion rounds its own
// numbers differently.
func percentageChange(current, suggested float64) float64 {
	return math.Round((suggested - current) / current * 100)
}

func changeWord(pc float64) string {
	if pc >= 0 {
		return "increase"
	}
	return "discount"
}
