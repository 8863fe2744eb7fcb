package suggest

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/shelfwise/retail-api/internal/domain"
)

var agentDescriptions = map[string]string{
	"forecast":  "a demand forecasting expert that analyzes historical sales data and market trends",
	"inventory": "an inventory management specialist that monitors stock levels and prevents stockouts",
	"supplier":  "a supply chain expert that manages relationships with suppliers and optimizes orders",
	"pricing":   "a pricing strategy expert that analyzes demand elasticity and optimizes product pricing",
}

// OpenAIClient generates suggestions through the OpenAI chat completions API.
// With an empty API key it skips the network entirely and serves fallbacks,
// which keeps local development and tests offline.
type OpenAIClient struct {
	api     *openai.Client
	model   string
	timeout time.Duration
	logger  *zap.Logger
}

// NewOpenAIClient builds a client for the given key. An empty key yields a
// client that always answers with fallbacks.
func NewOpenAIClient(apiKey, model string, timeout time.Duration, logger *zap.Logger) *OpenAIClient {
	c := &OpenAIClient{
		model:   model,
		timeout: timeout,
		logger:  logger,
	}
	if model == "" {
		c.model = openai.GPT4o
	}
	if timeout <= 0 {
		c.timeout = 30 * time.Second
	}
	if apiKey != "" {
		c.api = openai.NewClient(apiKey)
	}
	return c
}

// ForecastDemand asks for a 7-day demand prediction in JSON mode.
func (c *OpenAIClient) ForecastDemand(ctx context.Context, productID, locationID int, historical []map[string]any) ForecastResult {
	if c.api == nil {
		return FallbackForecast()
	}

	data, _ := json.Marshal(historical)
	prompt := fmt.Sprintf(`You are a retail demand forecasting expert AI.
Analyze the following historical sales data for product ID %d at location ID %d:
%s

Create a 7-day demand forecast. Consider seasonality, trends, and any patterns in the data.
Respond with JSON in this format:
{
  "predictedDemand": number,
  "confidence": number (between 0 and 1),
  "insights": string (brief analysis of key factors)
}`, productID, locationID, data)

	var result struct {
		PredictedDemand float64 `json:"predictedDemand"`
		Confidence      float64 `json:"confidence"`
		Insights        string  `json:"insights"`
	}
	if err := c.completeJSON(ctx, prompt, &result); err != nil {
		c.logger.Warn("demand forecast generation failed, using fallback", zap.Error(err))
		return FallbackForecast()
	}

	return ForecastResult{
		PredictedDemand: int(math.Round(result.PredictedDemand)),
		Confidence:      result.Confidence,
		Insights:        result.Insights,
	}
}

// OptimizePrice asks for a price adjustment suggestion in JSON mode.
func (c *OpenAIClient) OptimizePrice(ctx context.Context, productID int, currentPrice float64, stockLevel, optimalStockLevel int, historicalSales []map[string]any) PriceResult {
	if c.api == nil {
		return FallbackPrice(currentPrice, stockLevel, optimalStockLevel)
	}

	data, _ := json.Marshal(historicalSales)
	prompt := fmt.Sprintf(`You are a retail pricing optimization AI expert.
Analyze the following data for product ID %d:
- Current price: $%.2f
- Current stock level: %d units
- Optimal stock level: %d units
- Historical sales data: %s

Determine if a price adjustment is needed based on stock level and sales patterns.
If stock level is significantly above optimal, suggest a discount.
If stock level is significantly below optimal and demand is high, suggest a price increase.

Respond with JSON in this format:
{
  "suggestedPrice": number (new price, rounded to nearest $0.01),
  "percentageChange": number (percentage difference from current price, rounded to nearest whole number),
  "reason": string (brief explanation for the suggestion)
}`, productID, currentPrice, stockLevel, optimalStockLevel, data)

	var result struct {
		SuggestedPrice   float64 `json:"suggestedPrice"`
		PercentageChange float64 `json:"percentageChange"`
		Reason           string  `json:"reason"`
	}
	if err := c.completeJSON(ctx, prompt, &result); err != nil {
		c.logger.Warn("price optimization generation failed, using fallback", zap.Error(err))
		return FallbackPrice(currentPrice, stockLevel, optimalStockLevel)
	}

	return PriceResult{
		SuggestedPrice:   roundCents(result.SuggestedPrice),
		PercentageChange: math.Round(result.PercentageChange),
		Reason:           result.Reason,
	}
}

// Converse generates a reply in the voice of the given agent, given the
// thread so far.
func (c *OpenAIClient) Converse(ctx context.Context, agentType, prompt string, history []domain.Message) string {
	if c.api == nil {
		return FallbackReply(agentType)
	}

	desc, ok := agentDescriptions[agentType]
	if !ok {
		desc = "a retail operations assistant"
	}

	var transcript strings.Builder
	for _, m := range history {
		fmt.Fprintf(&transcript, "[%s] %s\n", m.AgentType, m.Content)
	}

	systemPrompt := fmt.Sprintf(`You are %s.
Your role in the retail inventory management system is to collaborate with other AI agents to optimize operations.
Keep your responses concise, professional, and action-oriented.

Previous conversation context:
%s`, desc, transcript.String())

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil || len(resp.Choices) == 0 {
		c.logger.Warn("agent reply generation failed, using fallback",
			zap.String("agent_type", agentType), zap.Error(err))
		return FallbackReply(agentType)
	}
	return resp.Choices[0].Message.Content
}

// InventoryInsight summarizes the inventory picture in one short observation.
func (c *OpenAIClient) InventoryInsight(ctx context.Context, inventory []domain.InventoryDetail) string {
	if c.api == nil {
		return FallbackInsight
	}

	data, _ := json.Marshal(inventory)
	prompt := fmt.Sprintf(`You are a retail inventory optimization AI.
Analyze the following inventory data across all products and locations:
%s

Provide a brief, actionable insight regarding inventory optimization.
Focus on one key observation that could improve operations.
Keep your response under 100 words.`, data)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: []openai.ChatCompletionMessage{{Role: openai.ChatMessageRoleUser, Content: prompt}},
	})
	if err != nil || len(resp.Choices) == 0 {
		c.logger.Warn("inventory insight generation failed, using fallback", zap.Error(err))
		return FallbackInsight
	}
	return resp.Choices[0].Message.Content
}

// completeJSON runs a single-message JSON-mode completion and unmarshals the
// reply into out.
func (c *OpenAIClient) completeJSON(ctx context.Context, prompt string, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: []openai.ChatCompletionMessage{{Role: openai.ChatMessageRoleUser, Content: prompt}},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return err
	}
	if len(resp.Choices) == 0 {
		return fmt.Errorf("empty completion response")
	}
	return json.Unmarshal([]byte(resp.Choices[0].Message.Content), out)
}
