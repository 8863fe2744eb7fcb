package domain

import "time"

// Product is a sellable item tracked across locations.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	SKU         string  `json:"sku"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
}

// LocationType distinguishes warehouses from retail stores.
type LocationType string

const (
	LocationTypeWarehouse LocationType = "warehouse"
	LocationTypeStore     LocationType = "store"
)

// Location is a warehouse or store holding inventory.
type Location struct {
	ID      int          `json:"id"`
	Name    string       `json:"name"`
	Type    LocationType `json:"type"`
	Address string       `json:"address,omitempty"`
}

// Inventory tracks the stock of one product at one location.
// One row per (productId, locationId) pair is expected.
type Inventory struct {
	ID            int       `json:"id"`
	ProductID     int       `json:"productId"`
	LocationID    int       `json:"locationId"`
	Quantity      int       `json:"quantity"`
	MinStockLevel int       `json:"minStockLevel"`
	MaxStockLevel int       `json:"maxStockLevel"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// InventoryDetail is an inventory row joined with its product and location
// plus the derived stock status. Product or Location is nil when the
// referenced row no longer exists; the join never fails outright.
type InventoryDetail struct {
	Inventory
	Product  *Product    `json:"product"`
	Location *Location   `json:"location"`
	Status   StockStatus `json:"status"`
}

// Supplier is an upstream vendor purchase orders are placed with.
type Supplier struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	ContactPerson string `json:"contactPerson,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
}

// OrderStatus is the lifecycle state of a purchase order. Transitions are
// free-form; only membership in the set is validated.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// ValidOrderStatus reports whether s is a known order status.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Order is a purchase order placed with a supplier for a location.
// OrderDate is stamped at creation and never changes.
type Order struct {
	ID           int         `json:"id"`
	SupplierID   int         `json:"supplierId"`
	LocationID   int         `json:"locationId"`
	Status       OrderStatus `json:"status"`
	OrderDate    time.Time   `json:"orderDate"`
	DeliveryDate *time.Time  `json:"deliveryDate,omitempty"`
}

// OrderItem is a single product line on an order.
type OrderItem struct {
	ID        int     `json:"id"`
	OrderID   int     `json:"orderId"`
	ProductID int     `json:"productId"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// Forecast is a demand prediction for a product at a location over a window.
type Forecast struct {
	ID              int       `json:"id"`
	ProductID       int       `json:"productId"`
	LocationID      int       `json:"locationId"`
	PredictedDemand int       `json:"predictedDemand"`
	Confidence      float64   `json:"confidence"`
	StartDate       time.Time `json:"startDate"`
	EndDate         time.Time `json:"endDate"`
	CreatedAt       time.Time `json:"createdAt"`
}

// PriceOptimizationReason explains why a price change was suggested.
type PriceOptimizationReason string

const (
	PriceReasonOverstock   PriceOptimizationReason = "overstock"
	PriceReasonLowStock    PriceOptimizationReason = "lowstock"
	PriceReasonSeasonal    PriceOptimizationReason = "seasonal"
	PriceReasonCompetitive PriceOptimizationReason = "competitive"
)

// PriceOptimizationStatus is the review state of a price suggestion.
type PriceOptimizationStatus string

const (
	PriceStatusPending   PriceOptimizationStatus = "pending"
	PriceStatusApplied   PriceOptimizationStatus = "applied"
	PriceStatusDismissed PriceOptimizationStatus = "dismissed"
)

// PriceOptimization is a suggested price change for a product.
// PercentageChange is consistent with (suggested-current)/current*100 at
// creation time.
type PriceOptimization struct {
	ID               int                     `json:"id"`
	ProductID        int                     `json:"productId"`
	CurrentPrice     float64                 `json:"currentPrice"`
	SuggestedPrice   float64                 `json:"suggestedPrice"`
	PercentageChange float64                 `json:"percentageChange"`
	Reason           PriceOptimizationReason `json:"reason"`
	Status           PriceOptimizationStatus `json:"status"`
	CreatedAt        time.Time               `json:"createdAt"`
}

// AgentCommunication is a chat thread between agents.
// LastActivityAt reflects the latest appended message, not direct edits only.
type AgentCommunication struct {
	ID             int       `json:"id"`
	Topic          string    `json:"topic"`
	LastActivityAt time.Time `json:"lastActivityAt"`
}

// Message is one entry in a communication thread. Timestamp is stamped at
// creation and never changes; transcript order is timestamp ascending with
// id as tiebreak.
type Message struct {
	ID              int       `json:"id"`
	CommunicationID int       `json:"communicationId"`
	AgentType       string    `json:"agentType"`
	Content         string    `json:"content"`
	Timestamp       time.Time `json:"timestamp"`
}

// AgentActivity is an append-only ledger entry describing what an agent did.
type AgentActivity struct {
	ID          int       `json:"id"`
	AgentType   string    `json:"agentType"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

// User is a dashboard account. Password is opaque and never serialized.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}
