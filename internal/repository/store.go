// Package repository implements the in-memory entity store. Each entity kind
// gets its own repository with a coarse per-kind lock and a monotonically
// increasing id counter that starts at 1 and is never reused, even after
// deletes. The store is volatile: a restart resets it to the seed dataset.
package repository

import "errors"

// ErrSKUTaken is returned when creating a product with an existing SKU
var ErrSKUTaken = errors.New("sku already in use")

// ErrUsernameTaken is returned when creating a user with an existing username
var ErrUsernameTaken = errors.New("username already in use")

// Store aggregates one repository per entity kind. It is passed explicitly to
// services rather than held as package state so tests can build isolated
// stores per case.
type Store struct {
	Products           *ProductRepository
	Locations          *LocationRepository
	Inventory          *InventoryRepository
	Suppliers          *SupplierRepository
	Orders             *OrderRepository
	OrderItems         *OrderItemRepository
	Forecasts          *ForecastRepository
	PriceOptimizations *PriceOptimizationRepository
	Communications     *CommunicationRepository
	Messages           *MessageRepository
	Activities         *ActivityRepository
	Users              *UserRepository
}

// NewStore creates an empty store with all counters at 1
func NewStore() *Store {
	return &Store{
		Products:           NewProductRepository(),
		Locations:          NewLocationRepository(),
		Inventory:          NewInventoryRepository(),
		Suppliers:          NewSupplierRepository(),
		Orders:             NewOrderRepository(),
		OrderItems:         NewOrderItemRepository(),
		Forecasts:          NewForecastRepository(),
		PriceOptimizations: NewPriceOptimizationRepository(),
		Communications:     NewCommunicationRepository(),
		Messages:           NewMessageRepository(),
		Activities:         NewActivityRepository(),
		Users:              NewUserRepository(),
	}
}
