package service_test

import (
	"context"
	"testing"

	"github.com/shelfwise/retail-api/internal/domain"
	"github.com/shelfwise/retail-api/internal/repository"
	"github.com/shelfwise/retail-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestProductService_CreateDuplicateSKU(t *testing.T) {
	store := repository.NewStore()
	svc := service.NewProductService(store.Products, zap.NewNop())
	ctx := context.Background()

	_, err := svc.Create(ctx, &domain.CreateProductRequest{Name: "Original", SKU: "X1", Price: 10, Category: "test"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, &domain.CreateProductRequest{Name: "Copycat", SKU: "X1", Price: 20, Category: "test"})
	assert.ErrorIs(t, err, service.ErrDuplicateSKU)

	products, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestProductService_UpdateSKUConflict(t *testing.T) {
	store := repository.NewStore()
	svc := service.NewProductService(store.Products, zap.NewNop())
	ctx := context.Background()

	first, err := svc.Create(ctx, &domain.CreateProductRequest{Name: "First", SKU: "A1", Price: 10, Category: "test"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, &domain.CreateProductRequest{Name: "Second", SKU: "A2", Price: 10, Category: "test"})
	require.NoError(t, err)

	taken := first.SKU
	_, err = svc.Update(ctx, second.ID, &domain.UpdateProductRequest{SKU: &taken})
	assert.ErrorIs(t, err, service.ErrDuplicateSKU)

	// Re-submitting a product's own SKU is not a conflict
	own := second.SKU
	updated, err := svc.Update(ctx, second.ID, &domain.UpdateProductRequest{SKU: &own})
	require.NoError(t, err)
	assert.Equal(t, "A2", updated.SKU)
}

func TestProductService_GetBySKU(t *testing.T) {
	store := repository.NewStore()
	svc := service.NewProductService(store.Products, zap.NewNop())
	ctx := context.Background()

	_, err := svc.Create(ctx, &domain.CreateProductRequest{Name: "Shirt", SKU: "S1", Price: 10, Category: "test"})
	require.NoError(t, err)

	found, err := svc.GetBySKU(ctx, "S1")
	require.NoError(t, err)
	assert.Equal(t, "Shirt", found.Name)

	_, err = svc.GetBySKU(ctx, "missing")
	assert.ErrorIs(t, err, service.ErrProductNotFound)
}

func TestOrderService_CreateAndStatus(t *testing.T) {
	store := repository.NewStore()
	svc := service.NewOrderService(store.Orders, store.OrderItems, store.Suppliers, store.Locations, store.Products, zap.NewNop())
	ctx := context.Background()

	supplier := store.Suppliers.Create(domain.Supplier{Name: "GlobalSupply"})
	location := store.Locations.Create(domain.Location{Name: "Main", Type: domain.LocationTypeWarehouse})

	order, err := svc.Create(ctx, &domain.CreateOrderRequest{SupplierID: supplier.ID, LocationID: location.ID})
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.False(t, order.OrderDate.IsZero())

	_, err = svc.Create(ctx, &domain.CreateOrderRequest{SupplierID: 42, LocationID: location.ID})
	assert.ErrorIs(t, err, service.ErrSupplierNotFound)

	bogus := "archived"
	_, err = svc.Update(ctx, order.ID, &domain.UpdateOrderRequest{Status: &bogus})
	assert.ErrorIs(t, err, service.ErrInvalidOrderStatus)

	shipped := "shipped"
	updated, err := svc.Update(ctx, order.ID, &domain.UpdateOrderRequest{Status: &shipped})
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusShipped, updated.Status)
	assert.True(t, updated.OrderDate.Equal(order.OrderDate))
}

func TestOrderService_Items(t *testing.T) {
	store := repository.NewStore()
	svc := service.NewOrderService(store.Orders, store.OrderItems, store.Suppliers, store.Locations, store.Products, zap.NewNop())
	ctx := context.Background()

	supplier := store.Suppliers.Create(domain.Supplier{Name: "FashionFabrics"})
	location := store.Locations.Create(domain.Location{Name: "Main", Type: domain.LocationTypeWarehouse})
	product, err := store.Products.Create(domain.Product{Name: "Jeans", SKU: "J1", Price: 50, Category: "apparel"})
	require.NoError(t, err)

	order, err := svc.Create(ctx, &domain.CreateOrderRequest{SupplierID: supplier.ID, LocationID: location.ID})
	require.NoError(t, err)

	item, err := svc.AddItem(ctx, order.ID, &domain.CreateOrderItemRequest{ProductID: product.ID, Quantity: 10, UnitPrice: 45})
	require.NoError(t, err)
	assert.Equal(t, order.ID, item.OrderID)

	_, err = svc.AddItem(ctx, order.ID, &domain.CreateOrderItemRequest{ProductID: 42, Quantity: 1, UnitPrice: 1})
	assert.ErrorIs(t, err, service.ErrProductNotFound)

	_, err = svc.AddItem(ctx, 42, &domain.CreateOrderItemRequest{ProductID: product.ID, Quantity: 1, UnitPrice: 1})
	assert.ErrorIs(t, err, service.ErrOrderNotFound)

	items, err := svc.ListItems(ctx, order.ID)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	qty := 12
	updatedItem, err := svc.UpdateItem(ctx, item.ID, &domain.UpdateOrderItemRequest{Quantity: &qty})
	require.NoError(t, err)
	assert.Equal(t, 12, updatedItem.Quantity)

	require.NoError(t, svc.DeleteItem(ctx, item.ID))
	assert.ErrorIs(t, svc.DeleteItem(ctx, item.ID), service.ErrOrderItemNotFound)
}

func TestUserService_CreateAndConflict(t *testing.T) {
	store := repository.NewStore()
	svc := service.NewUserService(store.Users, zap.NewNop())
	ctx := context.Background()

	created, err := svc.Create(ctx, &domain.CreateUserRequest{Username: "admin", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "admin", created.Username)

	_, err = svc.Create(ctx, &domain.CreateUserRequest{Username: "admin", Password: "other"})
	assert.ErrorIs(t, err, service.ErrDuplicateUsername)

	found, err := svc.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}
