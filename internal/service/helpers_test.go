package service_test

import (
	"context"

	"github.com/shelfwise/retail-api/internal/domain"
	"github.com/shelfwise/retail-api/internal/events"
	"github.com/shelfwise/retail-api/internal/suggest"
	"go.uber.org/zap"
)

// stubSuggester returns canned results so service behavior can be asserted
// without the upstream generative service.
type stubSuggester struct {
	forecast suggest.ForecastResult
	price    suggest.PriceResult
	reply    string
	insight  string
}

func (s *stubSuggester) ForecastDemand(ctx context.Context, productID, locationID int, historical []map[string]any) suggest.ForecastResult {
	return s.forecast
}

func (s *stubSuggester) OptimizePrice(ctx context.Context, productID int, currentPrice float64, stockLevel, optimalStockLevel int, historicalSales []map[string]any) suggest.PriceResult {
	return s.price
}

func (s *stubSuggester) Converse(ctx context.Context, agentType, prompt string, history []domain.Message) string {
	return s.reply
}

func (s *stubSuggester) InventoryInsight(ctx context.Context, inventory []domain.InventoryDetail) string {
	return s.insight
}

func newTestBus() *events.Bus {
	return events.NewBus(zap.NewNop())
}
