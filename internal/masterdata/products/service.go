package products

import (
	"context"
	"fmt"

	"github.com/AMUDHAVALLI/Billing/internal/masterdata/shared"
)

// DefaultUnit is assumed when a product does not declare one.
const DefaultUnit = "NOS"

// DefaultGSTRate applies when a product omits its rate.
const DefaultGSTRate = 18.0

// Service handles product business logic.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, id int64) (*Product, error) {
	if id <= 0 {
		return nil, shared.ErrInvalidID
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, filters shared.ListFilters) ([]Product, shared.Pagination, error) {
	filters = filters.Normalize()
	list, total, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, shared.Pagination{}, err
	}
	return list, shared.NewPagination(total, filters), nil
}

func (s *Service) Create(ctx context.Context, req CreateProductRequest) (*Product, error) {
	product := Product{
		Name:        req.Name,
		Description: req.Description,
		HSNCode:     req.HSNCode,
		Unit:        DefaultUnit,
		BasePrice:   req.BasePrice,
		GSTRate:     DefaultGSTRate,
	}
	if req.Unit != nil && *req.Unit != "" {
		product.Unit = *req.Unit
	}
	if req.GSTRate != nil {
		product.GSTRate = *req.GSTRate
	}

	id, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateProductRequest) (*Product, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	product := *existing
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = req.Description
	}
	if req.HSNCode != nil {
		product.HSNCode = req.HSNCode
	}
	if req.Unit != nil && *req.Unit != "" {
		product.Unit = *req.Unit
	}
	if req.BasePrice != nil {
		product.BasePrice = *req.BasePrice
	}
	if req.GSTRate != nil {
		product.GSTRate = *req.GSTRate
	}

	if err := s.repo.Update(ctx, id, product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return shared.ErrInvalidID
	}
	return s.repo.Delete(ctx, id)
}
