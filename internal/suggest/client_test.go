package suggest_test

import (
	"context"
	"testing"

	"github.com/shelfwise/retail-api/internal/suggest"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestFallbackPrice(t *testing.T) {
	t.Run("overstock discounts up to 30 percent", func(t *testing.T) {
		result := suggest.FallbackPrice(100, 150, 100)
		assert.Equal(t, -30.0, result.PercentageChange)
		assert.Equal(t, 70.00, result.SuggestedPrice)
		assert.Equal(t, "overstock", result.Reason)
	})

	t.Run("discount is capped", func(t *testing.T) {
		result := suggest.FallbackPrice(100, 1000, 100)
		assert.Equal(t, -30.0, result.PercentageChange)
		assert.Equal(t, 70.00, result.SuggestedPrice)
	})

	t.Run("low stock raises the price", func(t *testing.T) {
		result := suggest.FallbackPrice(100, 50, 100)
		assert.Equal(t, 25.0, result.PercentageChange)
		assert.Equal(t, 125.00, result.SuggestedPrice)
		assert.Equal(t, "lowstock", result.Reason)
	})

	t.Run("moderate shortfall raises proportionally", func(t *testing.T) {
		// ratio 0.625 -> (1/0.625 - 1) * 50 = 30, capped at 25
		result := suggest.FallbackPrice(80, 25, 40)
		assert.Equal(t, 25.0, result.PercentageChange)
		assert.Equal(t, 100.00, result.SuggestedPrice)
	})

	t.Run("balanced stock leaves price untouched", func(t *testing.T) {
		result := suggest.FallbackPrice(49.99, 100, 100)
		assert.Equal(t, 0.0, result.PercentageChange)
		assert.Equal(t, 49.99, result.SuggestedPrice)
		assert.Equal(t, "optimal", result.Reason)
	})

	t.Run("boundary ratios count as balanced", func(t *testing.T) {
		assert.Equal(t, "optimal", suggest.FallbackPrice(100, 130, 100).Reason)
		assert.Equal(t, "optimal", suggest.FallbackPrice(100, 70, 100).Reason)
	})
}

func TestFallbackForecast(t *testing.T) {
	for i := 0; i < 50; i++ {
		result := suggest.FallbackForecast()
		assert.GreaterOrEqual(t, result.PredictedDemand, 100)
		assert.Less(t, result.PredictedDemand, 600)
		assert.Equal(t, 0.7, result.Confidence)
		assert.Equal(t, "Generated with fallback method due to AI service unavailability.", result.Insights)
	}
}

func TestFallbackReply(t *testing.T) {
	reply := suggest.FallbackReply("pricing")
	assert.Contains(t, reply, "As the pricing agent")
	assert.Contains(t, reply, "connectivity issues")
}

func TestOpenAIClient_WithoutKeyUsesFallbacks(t *testing.T) {
	client := suggest.NewOpenAIClient("", "", 0, zap.NewNop())
	ctx := context.Background()

	forecast := client.ForecastDemand(ctx, 1, 1, nil)
	assert.GreaterOrEqual(t, forecast.PredictedDemand, 100)
	assert.Equal(t, 0.7, forecast.Confidence)

	price := client.OptimizePrice(ctx, 1, 100, 150, 100, nil)
	assert.Equal(t, -30.0, price.PercentageChange)
	assert.Equal(t, "overstock", price.Reason)

	reply := client.Converse(ctx, "inventory", "How is stock?", nil)
	assert.Equal(t, suggest.FallbackReply("inventory"), reply)

	insight := client.InventoryInsight(ctx, nil)
	assert.Equal(t, suggest.FallbackInsight, insight)
}
