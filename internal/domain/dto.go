package domain

import "time"

// CreateProductRequest is the payload for creating a product
type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	SKU         string  `json:"sku" validate:"required,max=64"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Category    string  `json:"category" validate:"required,max=100"`
}

// UpdateProductRequest is the payload for a partial product update.
// Nil fields are left unchanged.
type UpdateProductRequest struct {
	Name        *string  `json:"name" validate:"omitempty,max=200"`
	SKU         *string  `json:"sku" validate:"omitempty,max=64"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"omitempty,gt=0"`
	Category    *string  `json:"category" validate:"omitempty,max=100"`
}

// CreateLocationRequest is the payload for creating a location
type CreateLocationRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Type    string `json:"type" validate:"required,oneof=warehouse store"`
	Address string `json:"address"`
}

// UpdateLocationRequest is the payload for a partial location update
type UpdateLocationRequest struct {
	Name    *string `json:"name" validate:"omitempty,max=200"`
	Type    *string `json:"type" validate:"omitempty,oneof=warehouse store"`
	Address *string `json:"address"`
}

// CreateInventoryRequest is the payload for creating an inventory row
type CreateInventoryRequest struct {
	ProductID     int `json:"productId" validate:"required,gt=0"`
	LocationID    int `json:"locationId" validate:"required,gt=0"`
	Quantity      int `json:"quantity" validate:"gte=0"`
	MinStockLevel int `json:"minStockLevel" validate:"gte=0"`
	MaxStockLevel int `json:"maxStockLevel" validate:"required,gt=0"`
}

// UpdateInventoryRequest is the payload for a partial inventory update
type UpdateInventoryRequest struct {
	Quantity      *int `json:"quantity" validate:"omitempty,gte=0"`
	MinStockLevel *int `json:"minStockLevel" validate:"omitempty,gte=0"`
	MaxStockLevel *int `json:"maxStockLevel" validate:"omitempty,gt=0"`
}

// CreateSupplierRequest is the payload for creating a supplier
type CreateSupplierRequest struct {
	Name          string `json:"name" validate:"required,max=200"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email" validate:"omitempty,email"`
	Phone         string `json:"phone"`
}

// UpdateSupplierRequest is the payload for a partial supplier update
type UpdateSupplierRequest struct {
	Name          *string `json:"name" validate:"omitempty,max=200"`
	ContactPerson *string `json:"contactPerson"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Phone         *string `json:"phone"`
}

// CreateOrderRequest is the payload for creating a purchase order
type CreateOrderRequest struct {
	SupplierID   int        `json:"supplierId" validate:"required,gt=0"`
	LocationID   int        `json:"locationId" validate:"required,gt=0"`
	Status       string     `json:"status" validate:"omitempty,oneof=pending confirmed shipped delivered cancelled"`
	DeliveryDate *time.Time `json:"deliveryDate"`
}

// UpdateOrderRequest is the payload for a partial order update.
// The order date is immutable and cannot be patched.
type UpdateOrderRequest struct {
	SupplierID   *int       `json:"supplierId" validate:"omitempty,gt=0"`
	LocationID   *int       `json:"locationId" validate:"omitempty,gt=0"`
	Status       *string    `json:"status" validate:"omitempty,oneof=pending confirmed shipped delivered cancelled"`
	DeliveryDate *time.Time `json:"deliveryDate"`
}

// CreateOrderItemRequest is the payload for adding a line to an order
type CreateOrderItemRequest struct {
	ProductID int     `json:"productId" validate:"required,gt=0"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
	UnitPrice float64 `json:"unitPrice" validate:"required,gt=0"`
}

// UpdateOrderItemRequest is the payload for a partial order item update
type UpdateOrderItemRequest struct {
	Quantity  *int     `json:"quantity" validate:"omitempty,gt=0"`
	UnitPrice *float64 `json:"unitPrice" validate:"omitempty,gt=0"`
}

// GenerateForecastRequest asks the forecast agent for a new 7-day prediction
type GenerateForecastRequest struct {
	ProductID      int              `json:"productId" validate:"required,gt=0"`
	LocationID     int              `json:"locationId" validate:"required,gt=0"`
	HistoricalData []map[string]any `json:"historicalData"`
}

// ForecastResponse pairs a stored forecast with the generated insights text
type ForecastResponse struct {
	Forecast Forecast `json:"forecast"`
	Insights string   `json:"insights"`
}

// GeneratePriceOptimizationRequest asks the pricing agent for a suggestion
type GeneratePriceOptimizationRequest struct {
	ProductID         int              `json:"productId" validate:"required,gt=0"`
	CurrentPrice      float64          `json:"currentPrice" validate:"required,gt=0"`
	StockLevel        int              `json:"stockLevel" validate:"gte=0"`
	OptimalStockLevel int              `json:"optimalStockLevel" validate:"required,gt=0"`
	HistoricalSales   []map[string]any `json:"historicalSales"`
}

// UpdatePriceOptimizationRequest changes the review state of a suggestion
type UpdatePriceOptimizationRequest struct {
	Status string `json:"status" validate:"required,oneof=pending applied dismissed"`
}

// PriceOptimizationDetail is a price suggestion joined with its product.
// Product is nil when the referenced product no longer exists.
type PriceOptimizationDetail struct {
	PriceOptimization
	Product *Product `json:"product"`
}

// CreateCommunicationRequest opens a new agent chat thread
type CreateCommunicationRequest struct {
	Topic string `json:"topic" validate:"required,max=200"`
}

// UpdateCommunicationRequest is the payload for a partial thread update
type UpdateCommunicationRequest struct {
	Topic *string `json:"topic" validate:"omitempty,max=200"`
}

// PostMessageRequest appends a message to a communication thread
type PostMessageRequest struct {
	AgentType string `json:"agentType" validate:"required,max=50"`
	Content   string `json:"content" validate:"required"`
}

// CreateActivityRequest records an agent activity ledger entry
type CreateActivityRequest struct {
	AgentType   string `json:"agentType" validate:"required,max=50"`
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"required"`
}

// CreateUserRequest registers a dashboard user
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=4"`
}

// UserResponse is the outward shape of a user, without the password
type UserResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

// DashboardOverview summarizes stock health across all inventory rows
type DashboardOverview struct {
	StockHealth      int     `json:"stockHealth"`
	StockoutRisk     int     `json:"stockoutRisk"`
	OverstockItems   int     `json:"overstockItems"`
	ForecastAccuracy float64 `json:"forecastAccuracy"`
}

// InsightResponse carries a generated inventory insight
type InsightResponse struct {
	Insight string `json:"insight"`
}
