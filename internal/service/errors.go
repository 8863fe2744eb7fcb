package service

import "errors"

// Common service errors
var (
	// ErrNotFound is returned when a resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict is returned when there's a conflict (e.g., duplicate)
	ErrConflict = errors.New("resource conflict")

	// ErrProductNotFound is returned when a product is not found
	ErrProductNotFound = errors.New("product not found")

	// ErrDuplicateSKU is returned when creating a product with an existing SKU
	ErrDuplicateSKU = errors.New("product with this SKU already exists")

	// ErrLocationNotFound is returned when a location is not found
	ErrLocationNotFound = errors.New("location not found")

	// ErrInventoryNotFound is returned when an inventory row is not found
	ErrInventoryNotFound = errors.New("inventory item not found")

	// ErrSupplierNotFound is returned when a supplier is not found
	ErrSupplierNotFound = errors.New("supplier not found")

	// ErrOrderNotFound is returned when an order is not found
	ErrOrderNotFound = errors.New("order not found")

	// ErrOrderItemNotFound is returned when an order item is not found
	ErrOrderItemNotFound = errors.New("order item not found")

	// ErrInvalidOrderStatus is returned when an unknown order status is provided
	ErrInvalidOrderStatus = errors.New("invalid order status")

	// ErrForecastNotFound is returned when a forecast is not found
	ErrForecastNotFound = errors.New("forecast not found")

	// ErrOptimizationNotFound is returned when a price optimization is not found
	ErrOptimizationNotFound = errors.New("price optimization not found")

	// ErrCommunicationNotFound is returned when a communication thread is not found
	ErrCommunicationNotFound = errors.New("communication not found")

	// ErrActivityNotFound is returned when an activity entry is not found
	ErrActivityNotFound = errors.New("activity not found")

	// ErrUserNotFound is returned when a user is not found
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateUsername is returned when creating a user with an existing username
	ErrDuplicateUsername = errors.New("user with this username already exists")
)
