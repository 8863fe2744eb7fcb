package service

import (
	"context"
	"errors"
	"sort"

	"go.uber.org/zap"

	"github.com/shelfwise/retail-api/internal/domain"
	"github.com/shelfwise/retail-api/internal/repository"
)

// ProductService handles business logic for products
type ProductService struct {
	products *repository.ProductRepository
	logger   *zap.Logger
}

// NewProductService creates a new product service instance
func NewProductService(products *repository.ProductRepository, logger *zap.Logger) *ProductService {
	return &ProductService{products: products, logger: logger}
}

// List returns all products ordered by id
func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	products := s.products.List()
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

// Get retrieves a product by id
func (s *ProductService) Get(ctx context.Context, id int) (*domain.Product, error) {
	p, ok := s.products.Get(id)
	if !ok {
		return nil, ErrProductNotFound
	}
	return &p, nil
}

// GetBySKU retrieves a product by its SKU
func (s *ProductService) GetBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	p, ok := s.products.GetBySKU(sku)
	if !ok {
		return nil, ErrProductNotFound
	}
	return &p, nil
}

// Create creates a new product. The SKU must be unique.
func (s *ProductService) Create(ctx context.Context, req *domain.CreateProductRequest) (*domain.Product, error) {
	p, err := s.products.Create(domain.Product{
		Name:        req.Name,
		SKU:         req.SKU,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
	})
	if err != nil {
		if errors.Is(err, repository.ErrSKUTaken) {
			return nil, ErrDuplicateSKU
		}
		return nil, err
	}

	s.logger.Info("product created", zap.Int("id", p.ID), zap.String("sku", p.SKU))
	return &p, nil
}

// Update applies a partial update to a product. Changing the SKU to one
// already held by another product is rejected.
func (s *ProductService) Update(ctx context.Context, id int, req *domain.UpdateProductRequest) (*domain.Product, error) {
	if req.SKU != nil {
		if existing, ok := s.products.GetBySKU(*req.SKU); ok && existing.ID != id {
			return nil, ErrDuplicateSKU
		}
	}

	p, ok := s.products.Update(id, func(p *domain.Product) {
		if req.Name != nil {
			p.Name = *req.Name
		}
		if req.SKU != nil {
			p.SKU = *req.SKU
		}
		if req.Description != nil {
			p.Description = *req.Description
		}
		if req.Price != nil {
			p.Price = *req.Price
		}
		if req.Category != nil {
			p.Category = *req.Category
		}
	})
	if !ok {
		return nil, ErrProductNotFound
	}
	return &p, nil
}

// Delete removes a product. Inventory rows, order items and suggestions
// referencing it are left in place and resolve to a nil product in joins.
func (s *ProductService) Delete(ctx context.Context, id int) error {
	if !s.products.Delete(id) {
		return ErrProductNotFound
	}
	s.logger.Info("product deleted", zap.Int("id", id))
	return nil
}
