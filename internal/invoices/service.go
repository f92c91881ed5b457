package invoices

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bsm/redislock"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/AMUDHAVALLI/Billing/internal/gst"
	"github.com/AMUDHAVALLI/Billing/internal/masterdata/companies"
	"github.com/AMUDHAVALLI/Billing/internal/masterdata/customers"
	"github.com/AMUDHAVALLI/Billing/internal/masterdata/products"
	"github.com/AMUDHAVALLI/Billing/internal/masterdata/shared"
	"github.com/AMUDHAVALLI/Billing/internal/observability"
)

// CompanySource resolves the seller side of an invoice.
type CompanySource interface {
	Get(ctx context.Context, id int64) (*companies.Company, error)
}

// CustomerSource resolves the buyer side of an invoice.
type CustomerSource interface {
	Get(ctx context.Context, id int64) (*customers.Customer, error)
}

// ProductSource resolves product defaults for invoice lines.
type ProductSource interface {
	Get(ctx context.Context, id int64) (*products.Product, error)
}

const (
	lockTTL   = 5 * time.Second
	lockRetry = 50 * time.Millisecond
)

// Service issues and manages invoices. Number allocation for a billing
// period is serialized through a Redis lock so concurrent issuers never
// draw the same sequence value.
type Service struct {
	logger    *slog.Logger
	repo      Repository
	companies CompanySource
	customers CustomerSource
	products  ProductSource
	locker    *redislock.Client
	metrics   *observability.Metrics
	now       func() time.Time
}

func NewService(
	logger *slog.Logger,
	repo Repository,
	companySrc CompanySource,
	customerSrc CustomerSource,
	productSrc ProductSource,
	locker *redislock.Client,
	metrics *observability.Metrics,
) *Service {
	return &Service{
		logger:    logger,
		repo:      repo,
		companies: companySrc,
		customers: customerSrc,
		products:  productSrc,
		locker:    locker,
		metrics:   metrics,
		now:       time.Now,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func companyParty(c *companies.Company) gst.Party {
	return gst.Party{StateName: c.State, StateCode: deref(c.StateCode), GSTIN: deref(c.GSTIN)}
}

func customerParty(c *customers.Customer) gst.Party {
	return gst.Party{StateName: c.State, StateCode: deref(c.StateCode), GSTIN: deref(c.GSTIN)}
}

// buildLines turns line requests into calculator inputs, filling
// description, HSN code, unit, rate, and GST rate from the referenced
// product where the request leaves them blank.
func (s *Service) buildLines(ctx context.Context, reqs []LineRequest) ([]gst.LineItem, error) {
	items := make([]gst.LineItem, 0, len(reqs))
	for i, lr := range reqs {
		item := gst.LineItem{
			ProductID:   lr.ProductID,
			Description: lr.Description,
			HSNCode:     deref(lr.HSNCode),
			Quantity:    lr.Quantity,
			Unit:        deref(lr.Unit),
			Rate:        lr.Rate,
		}
		if lr.GSTRate != nil {
			item.GSTRate = *lr.GSTRate
		}

		if lr.ProductID != nil {
			p, err := s.products.Get(ctx, *lr.ProductID)
			if err != nil {
				if errors.Is(err, shared.ErrNotFound) || errors.Is(err, shared.ErrInvalidID) {
					return nil, fmt.Errorf("%w: line %d references unknown product %d",
						gst.ErrValidation, i+1, *lr.ProductID)
				}
				return nil, err
			}
			if item.Description == "" {
				item.Description = p.Name
			}
			if item.HSNCode == "" {
				item.HSNCode = deref(p.HSNCode)
			}
			if item.Unit == "" {
				item.Unit = p.Unit
			}
			if item.Rate == 0 {
				item.Rate = p.BasePrice
			}
			if lr.GSTRate == nil {
				item.GSTRate = p.GSTRate
			}
		} else {
			if item.Unit == "" {
				item.Unit = products.DefaultUnit
			}
			if lr.GSTRate == nil {
				item.GSTRate = products.DefaultGSTRate
			}
		}
		items = append(items, item)
	}
	return items, nil
}

// fetchParties loads the seller and buyer concurrently.
func (s *Service) fetchParties(ctx context.Context, companyID, customerID int64) (*companies.Company, *customers.Customer, error) {
	var (
		company  *companies.Company
		customer *customers.Customer
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		company, err = s.companies.Get(gctx, companyID)
		return err
	})
	g.Go(func() error {
		var err error
		customer, err = s.customers.Get(gctx, customerID)
		return err
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, shared.ErrNotFound) || errors.Is(err, shared.ErrInvalidID) {
			return nil, nil, ErrPartyMissing
		}
		return nil, nil, err
	}
	return company, customer, nil
}

// Create computes the tax breakdown, allocates the next invoice number
// for the billing period, and persists the invoice as a draft.
func (s *Service) Create(ctx context.Context, req CreateInvoiceRequest) (*InvoiceResponse, error) {
	date := s.now()
	if req.InvoiceDate != nil {
		date = *req.InvoiceDate
	}

	company, customer, err := s.fetchParties(ctx, req.CompanyID, req.CustomerID)
	if err != nil {
		return nil, err
	}

	items, err := s.buildLines(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	breakdown, err := gst.ComputeBreakdown(items, companyParty(company), customerParty(customer))
	if err != nil {
		return nil, err
	}

	period := gst.PeriodOf(date)
	lock, err := s.locker.Obtain(ctx, "invoice:period:"+period+":lock", lockTTL, &redislock.Options{
		RetryStrategy: redislock.LinearBackoff(lockRetry),
	})
	if err != nil {
		return nil, fmt.Errorf("obtain period lock: %w", err)
	}
	defer func() {
		if err := lock.Release(context.WithoutCancel(ctx)); err != nil {
			s.logger.Warn("release period lock", slog.Any("error", err), slog.String("period", period))
		}
	}()

	last, err := s.repo.LastNumberForPeriod(ctx, period)
	if err != nil {
		return nil, err
	}
	number, err := gst.NextInvoiceNumber(period, last)
	if err != nil {
		return nil, err
	}

	inv := Invoice{
		Ref:           uuid.New(),
		InvoiceNumber: number,
		InvoiceDate:   date,
		CompanyID:     req.CompanyID,
		CustomerID:    req.CustomerID,
		Status:        StatusDraft,
		Subtotal:      breakdown.Subtotal,
		CGST:          breakdown.CGST,
		SGST:          breakdown.SGST,
		IGST:          breakdown.IGST,
		RoundOff:      breakdown.RoundOff,
		Total:         breakdown.Total,
		IsIntraState:  breakdown.IsIntraState,
		Notes:         req.Notes,
		Items:         breakdown.Items,
	}
	id, err := s.repo.Create(ctx, &inv)
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.InvoiceIssued()
	}
	s.logger.Info("invoice issued",
		slog.String("number", number),
		slog.Int64("company_id", req.CompanyID),
		slog.Int64("customer_id", req.CustomerID),
		slog.Float64("total", breakdown.Total))

	return s.respond(ctx, id)
}

// Update replaces the editable fields of a draft invoice and recomputes
// its totals. The invoice number never changes after issue.
func (s *Service) Update(ctx context.Context, id int64, req UpdateInvoiceRequest) (*InvoiceResponse, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.Status != StatusDraft {
		return nil, ErrNotDraft
	}

	customerID := existing.CustomerID
	if req.CustomerID != nil {
		customerID = *req.CustomerID
	}

	company, customer, err := s.fetchParties(ctx, existing.CompanyID, customerID)
	if err != nil {
		return nil, err
	}

	items, err := s.buildLines(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	breakdown, err := gst.ComputeBreakdown(items, companyParty(company), customerParty(customer))
	if err != nil {
		return nil, err
	}

	updated := *existing
	updated.CustomerID = customerID
	if req.InvoiceDate != nil {
		updated.InvoiceDate = *req.InvoiceDate
	}
	if req.Notes != nil {
		updated.Notes = req.Notes
	}
	updated.Subtotal = breakdown.Subtotal
	updated.CGST = breakdown.CGST
	updated.SGST = breakdown.SGST
	updated.IGST = breakdown.IGST
	updated.RoundOff = breakdown.RoundOff
	updated.Total = breakdown.Total
	updated.IsIntraState = breakdown.IsIntraState
	updated.Items = breakdown.Items

	if err := s.repo.Update(ctx, id, &updated); err != nil {
		return nil, err
	}
	return s.respond(ctx, id)
}

// UpdateStatus advances an invoice along its lifecycle.
func (s *Service) UpdateStatus(ctx context.Context, id int64, to Status) (*InvoiceResponse, error) {
	if !ValidStatus(to) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrBadTransition, to)
	}
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanTransition(existing.Status, to) {
		return nil, fmt.Errorf("%w: %s to %s", ErrBadTransition, existing.Status, to)
	}
	if err := s.repo.UpdateStatus(ctx, id, to); err != nil {
		return nil, err
	}
	s.logger.Info("invoice status changed",
		slog.String("number", existing.InvoiceNumber),
		slog.String("from", string(existing.Status)),
		slog.String("to", string(to)))
	return s.respond(ctx, id)
}

// Delete removes a draft invoice. Issued numbers of deleted drafts may
// be reused by the next allocation in the same period.
func (s *Service) Delete(ctx context.Context, id int64) error {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if existing.Status != StatusDraft {
		return ErrNotDraft
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) Get(ctx context.Context, id int64) (*InvoiceResponse, error) {
	return s.respond(ctx, id)
}

func (s *Service) List(ctx context.Context, filters ListFilters) ([]Invoice, shared.Pagination, error) {
	filters.ListFilters = filters.Normalize()
	if filters.Status != "" && !ValidStatus(filters.Status) {
		return nil, shared.Pagination{}, fmt.Errorf("%w: unknown status %q", gst.ErrValidation, filters.Status)
	}
	list, total, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, shared.Pagination{}, err
	}
	return list, shared.NewPagination(total, filters.ListFilters), nil
}

func (s *Service) respond(ctx context.Context, id int64) (*InvoiceResponse, error) {
	inv, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	company, customer, err := s.fetchParties(ctx, inv.CompanyID, inv.CustomerID)
	if err != nil {
		return nil, err
	}
	words, err := gst.AmountInWords(inv.Total)
	if err != nil {
		return nil, err
	}
	return &InvoiceResponse{
		Invoice:       *inv,
		Company:       company,
		Customer:      customer,
		AmountInWords: words,
	}, nil
}
