package companies

import (
	"context"
	"fmt"

	"github.com/AMUDHAVALLI/Billing/internal/masterdata/shared"
)

// Service handles company business logic.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, id int64) (*Company, error) {
	if id <= 0 {
		return nil, shared.ErrInvalidID
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Company, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, req CreateCompanyRequest) (*Company, error) {
	company := Company{
		Name:          req.Name,
		Address:       req.Address,
		City:          req.City,
		State:         req.State,
		StateCode:     req.StateCode,
		Pincode:       req.Pincode,
		GSTIN:         req.GSTIN,
		PAN:           req.PAN,
		Contact:       req.Contact,
		Email:         req.Email,
		Phone:         req.Phone,
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
		IFSCCode:      req.IFSCCode,
		BankBranch:    req.BankBranch,
	}

	id, err := s.repo.Create(ctx, company)
	if err != nil {
		return nil, fmt.Errorf("create company: %w", err)
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateCompanyRequest) (*Company, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	company := *existing
	if req.Name != nil {
		company.Name = *req.Name
	}
	if req.Address != nil {
		company.Address = req.Address
	}
	if req.City != nil {
		company.City = req.City
	}
	if req.State != nil {
		company.State = *req.State
	}
	if req.StateCode != nil {
		company.StateCode = req.StateCode
	}
	if req.Pincode != nil {
		company.Pincode = req.Pincode
	}
	if req.GSTIN != nil {
		company.GSTIN = req.GSTIN
	}
	if req.PAN != nil {
		company.PAN = req.PAN
	}
	if req.Contact != nil {
		company.Contact = req.Contact
	}
	if req.Email != nil {
		company.Email = req.Email
	}
	if req.Phone != nil {
		company.Phone = req.Phone
	}
	if req.BankName != nil {
		company.BankName = req.BankName
	}
	if req.AccountNumber != nil {
		company.AccountNumber = req.AccountNumber
	}
	if req.IFSCCode != nil {
		company.IFSCCode = req.IFSCCode
	}
	if req.BankBranch != nil {
		company.BankBranch = req.BankBranch
	}

	if err := s.repo.Update(ctx, id, company); err != nil {
		return nil, fmt.Errorf("update company: %w", err)
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return shared.ErrInvalidID
	}
	return s.repo.Delete(ctx, id)
}
