package service

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/shelfwise/retail-api/internal/domain"
	"github.com/shelfwise/retail-api/internal/repository"
)

// InventoryService handles business logic for stock levels and their
// product/location joins
type InventoryService struct {
	inventory *repository.InventoryRepository
	products  *repository.ProductRepository
	locations *repository.LocationRepository
	logger    *zap.Logger
}

// NewInventoryService creates a new inventory service instance
func NewInventoryService(
	inventory *repository.InventoryRepository,
	products *repository.ProductRepository,
	locations *repository.LocationRepository,
	logger *zap.Logger,
) *InventoryService {
	return &InventoryService{
		inventory: inventory,
		products:  products,
		locations: locations,
		logger:    logger,
	}
}

// List returns all inventory rows joined with product, location and the
// derived stock status, ordered by id. Rows whose product or location has
// been deleted are included with a nil reference.
func (s *InventoryService) List(ctx context.Context) ([]domain.InventoryDetail, error) {
	return s.join(s.inventory.List()), nil
}

// ListByLocation returns the joined inventory rows for one location
func (s *InventoryService) ListByLocation(ctx context.Context, locationID int) ([]domain.InventoryDetail, error) {
	if _, ok := s.locations.Get(locationID); !ok {
		return nil, ErrLocationNotFound
	}
	return s.join(s.inventory.ListByLocation(locationID)), nil
}

// Get retrieves a joined inventory row by id
func (s *InventoryService) Get(ctx context.Context, id int) (*domain.InventoryDetail, error) {
	item, ok := s.inventory.Get(id)
	if !ok {
		return nil, ErrInventoryNotFound
	}
	detail := s.detail(item)
	return &detail, nil
}

// Create creates a new inventory row. The product and location must exist.
func (s *InventoryService) Create(ctx context.Context, req *domain.CreateInventoryRequest) (*domain.InventoryDetail, error) {
	if _, ok := s.products.Get(req.ProductID); !ok {
		return nil, ErrProductNotFound
	}
	if _, ok := s.locations.Get(req.LocationID); !ok {
		return nil, ErrLocationNotFound
	}

	item := s.inventory.Create(domain.Inventory{
		ProductID:     req.ProductID,
		LocationID:    req.LocationID,
		Quantity:      req.Quantity,
		MinStockLevel: req.MinStockLevel,
		MaxStockLevel: req.MaxStockLevel,
	})

	s.logger.Info("inventory row created",
		zap.Int("id", item.ID),
		zap.Int("product_id", item.ProductID),
		zap.Int("location_id", item.LocationID))

	detail := s.detail(item)
	return &detail, nil
}

// Update applies a partial update to an inventory row and refreshes its
// updatedAt stamp
func (s *InventoryService) Update(ctx context.Context, id int, req *domain.UpdateInventoryRequest) (*domain.InventoryDetail, error) {
	item, ok := s.inventory.Update(id, func(item *domain.Inventory) {
		if req.Quantity != nil {
			item.Quantity = *req.Quantity
		}
		if req.MinStockLevel != nil {
			item.MinStockLevel = *req.MinStockLevel
		}
		if req.MaxStockLevel != nil {
			item.MaxStockLevel = *req.MaxStockLevel
		}
	})
	if !ok {
		return nil, ErrInventoryNotFound
	}
	detail := s.detail(item)
	return &detail, nil
}

// Delete removes an inventory row
func (s *InventoryService) Delete(ctx context.Context, id int) error {
	if !s.inventory.Delete(id) {
		return ErrInventoryNotFound
	}
	s.logger.Info("inventory row deleted", zap.Int("id", id))
	return nil
}

func (s *InventoryService) join(items []domain.Inventory) []domain.InventoryDetail {
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	details := make([]domain.InventoryDetail, 0, len(items))
	for _, item := range items {
		details = append(details, s.detail(item))
	}
	return details
}

func (s *InventoryService) detail(item domain.Inventory) domain.InventoryDetail {
	detail := domain.InventoryDetail{
		Inventory: item,
		Status:    domain.StockStatusFor(item.Quantity, item.MinStockLevel, item.MaxStockLevel),
	}
	if p, ok := s.products.Get(item.ProductID); ok {
		detail.Product = &p
	}
	if l, ok := s.locations.Get(item.LocationID); ok {
		detail.Location = &l
	}
	return detail
}
