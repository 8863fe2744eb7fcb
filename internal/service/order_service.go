package service

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/shelfwise/retail-api/internal/domain"
	"github.com/shelfwise/retail-api/internal/repository"
)

// OrderService handles business logic for purchase orders and their lines
type OrderService struct {
	orders     *repository.OrderRepository
	orderItems *repository.OrderItemRepository
	suppliers  *repository.SupplierRepository
	locations  *repository.LocationRepository
	products   *repository.ProductRepository
	logger     *zap.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(
	orders *repository.OrderRepository,
	orderItems *repository.OrderItemRepository,
	suppliers *repository.SupplierRepository,
	locations *repository.LocationRepository,
	products *repository.ProductRepository,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		orders:     orders,
		orderItems: orderItems,
		suppliers:  suppliers,
		locations:  locations,
		products:   products,
		logger:     logger,
	}
}

// List returns all orders ordered by id
func (s *OrderService) List(ctx context.Context) ([]domain.Order, error) {
	orders := s.orders.List()
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders, nil
}

// Get retrieves an order by id
func (s *OrderService) Get(ctx context.Context, id int) (*domain.Order, error) {
	o, ok := s.orders.Get(id)
	if !ok {
		return nil, ErrOrderNotFound
	}
	return &o, nil
}

// Create creates a new order. The supplier and location must exist, the
// status defaults to pending and the order date is stamped by the store.
func (s *OrderService) Create(ctx context.Context, req *domain.CreateOrderRequest) (*domain.Order, error) {
	if _, ok := s.suppliers.Get(req.SupplierID); !ok {
		return nil, ErrSupplierNotFound
	}
	if _, ok := s.locations.Get(req.LocationID); !ok {
		return nil, ErrLocationNotFound
	}

	status := domain.OrderStatus(req.Status)
	if status == "" {
		status = domain.OrderStatusPending
	}
	if !domain.ValidOrderStatus(status) {
		return nil, ErrInvalidOrderStatus
	}

	o := s.orders.Create(domain.Order{
		SupplierID:   req.SupplierID,
		LocationID:   req.LocationID,
		Status:       status,
		DeliveryDate: req.DeliveryDate,
	})

	s.logger.Info("order created",
		zap.Int("id", o.ID),
		zap.Int("supplier_id", o.SupplierID),
		zap.String("status", string(o.Status)))
	return &o, nil
}

// Update applies a partial update to an order. Status moves are free-form
// within the known set; the order date never changes.
func (s *OrderService) Update(ctx context.Context, id int, req *domain.UpdateOrderRequest) (*domain.Order, error) {
	if req.Status != nil && !domain.ValidOrderStatus(domain.OrderStatus(*req.Status)) {
		return nil, ErrInvalidOrderStatus
	}
	if req.SupplierID != nil {
		if _, ok := s.suppliers.Get(*req.SupplierID); !ok {
			return nil, ErrSupplierNotFound
		}
	}
	if req.LocationID != nil {
		if _, ok := s.locations.Get(*req.LocationID); !ok {
			return nil, ErrLocationNotFound
		}
	}

	o, ok := s.orders.Update(id, func(o *domain.Order) {
		if req.SupplierID != nil {
			o.SupplierID = *req.SupplierID
		}
		if req.LocationID != nil {
			o.LocationID = *req.LocationID
		}
		if req.Status != nil {
			o.Status = domain.OrderStatus(*req.Status)
		}
		if req.DeliveryDate != nil {
			o.DeliveryDate = req.DeliveryDate
		}
	})
	if !ok {
		return nil, ErrOrderNotFound
	}
	return &o, nil
}

// Delete removes an order. Its items stay in the store but are no longer
// reachable through the order.
func (s *OrderService) Delete(ctx context.Context, id int) error {
	if !s.orders.Delete(id) {
		return ErrOrderNotFound
	}
	s.logger.Info("order deleted", zap.Int("id", id))
	return nil
}

// ListItems returns all line items of an order, ordered by id
func (s *OrderService) ListItems(ctx context.Context, orderID int) ([]domain.OrderItem, error) {
	if _, ok := s.orders.Get(orderID); !ok {
		return nil, ErrOrderNotFound
	}
	items := s.orderItems.ListByOrder(orderID)
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

// AddItem appends a product line to an order
func (s *OrderService) AddItem(ctx context.Context, orderID int, req *domain.CreateOrderItemRequest) (*domain.OrderItem, error) {
	if _, ok := s.orders.Get(orderID); !ok {
		return nil, ErrOrderNotFound
	}
	if _, ok := s.products.Get(req.ProductID); !ok {
		return nil, ErrProductNotFound
	}

	item := s.orderItems.Create(domain.OrderItem{
		OrderID:   orderID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		UnitPrice: req.UnitPrice,
	})
	return &item, nil
}

// UpdateItem applies a partial update to an order line
func (s *OrderService) UpdateItem(ctx context.Context, id int, req *domain.UpdateOrderItemRequest) (*domain.OrderItem, error) {
	item, ok := s.orderItems.Update(id, func(item *domain.OrderItem) {
		if req.Quantity != nil {
			item.Quantity = *req.Quantity
		}
		if req.UnitPrice != nil {
			item.UnitPrice = *req.UnitPrice
		}
	})
	if !ok {
		return nil, ErrOrderItemNotFound
	}
	return &item, nil
}

// DeleteItem removes an order line
func (s *OrderService) DeleteItem(ctx context.Context, id int) error {
	if !s.orderItems.Delete(id) {
		return ErrOrderItemNotFound
	}
	return nil
}
