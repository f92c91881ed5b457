package customers

import (
	"context"
	"fmt"

	"github.com/AMUDHAVALLI/Billing/internal/masterdata/shared"
)

// Service handles customer business logic.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, id int64) (*Customer, error) {
	if id <= 0 {
		return nil, shared.ErrInvalidID
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, filters shared.ListFilters) ([]Customer, shared.Pagination, error) {
	filters = filters.Normalize()
	list, total, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, shared.Pagination{}, err
	}
	return list, shared.NewPagination(total, filters), nil
}

func (s *Service) Create(ctx context.Context, req CreateCustomerRequest) (*Customer, error) {
	customer := Customer{
		Name:      req.Name,
		Address:   req.Address,
		City:      req.City,
		State:     req.State,
		StateCode: req.StateCode,
		GSTIN:     req.GSTIN,
		Contact:   req.Contact,
		Email:     req.Email,
		Phone:     req.Phone,
	}

	id, err := s.repo.Create(ctx, customer)
	if err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateCustomerRequest) (*Customer, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	customer := *existing
	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Address != nil {
		customer.Address = req.Address
	}
	if req.City != nil {
		customer.City = req.City
	}
	if req.State != nil {
		customer.State = *req.State
	}
	if req.StateCode != nil {
		customer.StateCode = req.StateCode
	}
	if req.GSTIN != nil {
		customer.GSTIN = req.GSTIN
	}
	if req.Contact != nil {
		customer.Contact = req.Contact
	}
	if req.Email != nil {
		customer.Email = req.Email
	}
	if req.Phone != nil {
		customer.Phone = req.Phone
	}

	if err := s.repo.Update(ctx, id, customer); err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return shared.ErrInvalidID
	}
	return s.repo.Delete(ctx, id)
}
