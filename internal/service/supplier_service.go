package service

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/shelfwise/retail-api/internal/domain"
	"github.com/shelfwise/retail-api/internal/repository"
)

// SupplierService handles business logic for suppliers
type SupplierService struct {
	suppliers *repository.SupplierRepository
	logger    *zap.Logger
}

// NewSupplierService creates a new supplier service instance
func NewSupplierService(suppliers *repository.SupplierRepository, logger *zap.Logger) *SupplierService {
	return &SupplierService{suppliers: suppliers, logger: logger}
}

// List returns all suppliers ordered by id
func (s *SupplierService) List(ctx context.Context) ([]domain.Supplier, error) {
	suppliers := s.suppliers.List()
	sort.Slice(suppliers, func(i, j int) bool { return suppliers[i].ID < suppliers[j].ID })
	return suppliers, nil
}

// Get retrieves a supplier by id
func (s *SupplierService) Get(ctx context.Context, id int) (*domain.Supplier, error) {
	sup, ok := s.suppliers.Get(id)
	if !ok {
		return nil, ErrSupplierNotFound
	}
	return &sup, nil
}

// Create creates a new supplier
func (s *SupplierService) Create(ctx context.Context, req *domain.CreateSupplierRequest) (*domain.Supplier, error) {
	sup := s.suppliers.Create(domain.Supplier{
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
	})
	s.logger.Info("supplier created", zap.Int("id", sup.ID), zap.String("name", sup.Name))
	return &sup, nil
}

// Update applies a partial update to a supplier
func (s *SupplierService) Update(ctx context.Context, id int, req *domain.UpdateSupplierRequest) (*domain.Supplier, error) {
	sup, ok := s.suppliers.Update(id, func(sup *domain.Supplier) {
		if req.Name != nil {
			sup.Name = *req.Name
		}
		if req.ContactPerson != nil {
			sup.ContactPerson = *req.ContactPerson
		}
		if req.Email != nil {
			sup.Email = *req.Email
		}
		if req.Phone != nil {
			sup.Phone = *req.Phone
		}
	})
	if !ok {
		return nil, ErrSupplierNotFound
	}
	return &sup, nil
}

// Delete removes a supplier. Orders referencing it keep their supplierId.
func (s *SupplierService) Delete(ctx context.Context, id int) error {
	if !s.suppliers.Delete(id) {
		return ErrSupplierNotFound
	}
	s.logger.Info("supplier deleted", zap.Int("id", id))
	return nil
}
