package invoices

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AMUDHAVALLI/Billing/internal/gst"
	"github.com/AMUDHAVALLI/Billing/internal/masterdata/companies"
	"github.com/AMUDHAVALLI/Billing/internal/masterdata/customers"
	"github.com/AMUDHAVALLI/Billing/internal/masterdata/products"
	"github.com/AMUDHAVALLI/Billing/internal/masterdata/shared"
)

type memRepo struct {
	byID   map[int64]*Invoice
	nextID int64
}

func newMemRepo() *memRepo {
	return &memRepo{byID: map[int64]*Invoice{}, nextID: 1}
}

func (m *memRepo) Get(_ context.Context, id int64) (*Invoice, error) {
	inv, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *inv
	return &cp, nil
}

func (m *memRepo) List(_ context.Context, filters ListFilters) ([]Invoice, int, error) {
	var list []Invoice
	for _, inv := range m.byID {
		if filters.Status != "" && inv.Status != filters.Status {
			continue
		}
		list = append(list, *inv)
	}
	return list, len(list), nil
}

func (m *memRepo) Create(_ context.Context, inv *Invoice) (int64, error) {
	id := m.nextID
	m.nextID++
	cp := *inv
	cp.ID = id
	m.byID[id] = &cp
	return id, nil
}

func (m *memRepo) Update(_ context.Context, id int64, inv *Invoice) error {
	if _, ok := m.byID[id]; !ok {
		return ErrNotFound
	}
	cp := *inv
	cp.ID = id
	m.byID[id] = &cp
	return nil
}

func (m *memRepo) UpdateStatus(_ context.Context, id int64, status Status) error {
	inv, ok := m.byID[id]
	if !ok {
		return ErrNotFound
	}
	inv.Status = status
	return nil
}

func (m *memRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.byID[id]; !ok {
		return ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

func (m *memRepo) LastNumberForPeriod(_ context.Context, period string) (string, error) {
	last := ""
	for _, inv := range m.byID {
		n := inv.InvoiceNumber
		if len(n) > len(period) && n[:len(period)] == period {
			if len(n) > len(last) || (len(n) == len(last) && n > last) {
				last = n
			}
		}
	}
	return last, nil
}

type companySrc struct{ c *companies.Company }

func (s companySrc) Get(_ context.Context, id int64) (*companies.Company, error) {
	if s.c == nil || s.c.ID != id {
		return nil, shared.ErrNotFound
	}
	return s.c, nil
}

type customerSrc struct{ c *customers.Customer }

func (s customerSrc) Get(_ context.Context, id int64) (*customers.Customer, error) {
	if s.c == nil || s.c.ID != id {
		return nil, shared.ErrNotFound
	}
	return s.c, nil
}

type productSrc struct{ byID map[int64]*products.Product }

func (s productSrc) Get(_ context.Context, id int64) (*products.Product, error) {
	p, ok := s.byID[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return p, nil
}

func str(s string) *string { return &s }

func testService(t *testing.T, repo *memRepo) *Service {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	company := &companies.Company{
		ID: 1, Name: "Amudhavalli Traders", State: "Puducherry",
		StateCode: str("34"), GSTIN: str("34ABCDE1234F1Z5"),
	}
	customer := &customers.Customer{
		ID: 7, Name: "Chennai Hardware", State: "Tamil Nadu",
		StateCode: str("33"),
	}
	prods := productSrc{byID: map[int64]*products.Product{
		5: {ID: 5, Name: "PVC Pipe", HSNCode: str("3917"), Unit: "NOS", BasePrice: 250, GSTRate: 18},
	}}

	svc := NewService(
		slog.New(slog.DiscardHandler),
		repo,
		companySrc{c: company},
		customerSrc{c: customer},
		prods,
		redislock.New(rdb),
		nil,
	)
	svc.now = func() time.Time { return time.Date(2025, time.January, 15, 10, 0, 0, 0, time.UTC) }
	return svc
}

func TestCreateIssuesSequentialNumbers(t *testing.T) {
	repo := newMemRepo()
	svc := testService(t, repo)

	req := CreateInvoiceRequest{
		CompanyID:  1,
		CustomerID: 7,
		Items: []LineRequest{
			{Description: "Transport charges", Quantity: 1, Rate: 1000},
		},
	}

	first, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "202501-001", first.InvoiceNumber)
	assert.Equal(t, StatusDraft, first.Status)
	assert.NotEqual(t, "", first.Ref.String())

	second, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "202501-002", second.InvoiceNumber)
}

func TestCreateComputesInterStateTax(t *testing.T) {
	svc := testService(t, newMemRepo())

	inv, err := svc.Create(context.Background(), CreateInvoiceRequest{
		CompanyID:  1,
		CustomerID: 7,
		Items: []LineRequest{
			{Description: "Consulting", Quantity: 1, Rate: 1000},
		},
	})
	require.NoError(t, err)

	// Seller 34, buyer 33: the whole 18% lands in IGST.
	assert.False(t, inv.IsIntraState)
	assert.InDelta(t, 1000.0, inv.Subtotal, 1e-9)
	assert.InDelta(t, 180.0, inv.IGST, 1e-9)
	assert.InDelta(t, 0.0, inv.CGST, 1e-9)
	assert.InDelta(t, 1180.0, inv.Total, 1e-9)
	assert.Equal(t, "INR One Thousand One Hundred Eighty Only", inv.AmountInWords)
	require.NotNil(t, inv.Company)
	require.NotNil(t, inv.Customer)
	assert.Equal(t, "Amudhavalli Traders", inv.Company.Name)
	assert.Equal(t, "Chennai Hardware", inv.Customer.Name)
}

func TestCreateFillsLineDefaultsFromProduct(t *testing.T) {
	svc := testService(t, newMemRepo())

	pid := int64(5)
	inv, err := svc.Create(context.Background(), CreateInvoiceRequest{
		CompanyID:  1,
		CustomerID: 7,
		Items:      []LineRequest{{ProductID: &pid, Quantity: 4}},
	})
	require.NoError(t, err)

	require.Len(t, inv.Items, 1)
	item := inv.Items[0]
	assert.Equal(t, "PVC Pipe", item.Description)
	assert.Equal(t, "3917", item.HSNCode)
	assert.Equal(t, "NOS", item.Unit)
	assert.InDelta(t, 250.0, item.Rate, 1e-9)
	assert.InDelta(t, 18.0, item.GSTRate, 1e-9)
	assert.InDelta(t, 1000.0, item.Amount, 1e-9)
}

func TestCreateRejectsUnknownParticipants(t *testing.T) {
	svc := testService(t, newMemRepo())

	_, err := svc.Create(context.Background(), CreateInvoiceRequest{
		CompanyID:  99,
		CustomerID: 7,
		Items:      []LineRequest{{Description: "x", Quantity: 1, Rate: 10}},
	})
	assert.ErrorIs(t, err, ErrPartyMissing)

	pid := int64(404)
	_, err = svc.Create(context.Background(), CreateInvoiceRequest{
		CompanyID:  1,
		CustomerID: 7,
		Items:      []LineRequest{{ProductID: &pid, Quantity: 1, Rate: 10}},
	})
	assert.ErrorIs(t, err, gst.ErrValidation)
}

func TestUpdateRecomputesTotals(t *testing.T) {
	repo := newMemRepo()
	svc := testService(t, repo)

	created, err := svc.Create(context.Background(), CreateInvoiceRequest{
		CompanyID:  1,
		CustomerID: 7,
		Items:      []LineRequest{{Description: "Item", Quantity: 1, Rate: 100}},
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, UpdateInvoiceRequest{
		Items: []LineRequest{{Description: "Item", Quantity: 2, Rate: 100}},
	})
	require.NoError(t, err)
	assert.Equal(t, created.InvoiceNumber, updated.InvoiceNumber)
	assert.InDelta(t, 200.0, updated.Subtotal, 1e-9)
	assert.InDelta(t, 236.0, updated.Total, 1e-9)
}

func TestUpdateRejectsNonDraft(t *testing.T) {
	repo := newMemRepo()
	svc := testService(t, repo)

	created, err := svc.Create(context.Background(), CreateInvoiceRequest{
		CompanyID:  1,
		CustomerID: 7,
		Items:      []LineRequest{{Description: "Item", Quantity: 1, Rate: 100}},
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), created.ID, StatusSent)
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), created.ID, UpdateInvoiceRequest{
		Items: []LineRequest{{Description: "Item", Quantity: 1, Rate: 100}},
	})
	assert.ErrorIs(t, err, ErrNotDraft)

	err = svc.Delete(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrNotDraft)
}

func TestStatusLifecycle(t *testing.T) {
	repo := newMemRepo()
	svc := testService(t, repo)

	created, err := svc.Create(context.Background(), CreateInvoiceRequest{
		CompanyID:  1,
		CustomerID: 7,
		Items:      []LineRequest{{Description: "Item", Quantity: 1, Rate: 100}},
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), created.ID, StatusPaid)
	assert.ErrorIs(t, err, ErrBadTransition)

	sent, err := svc.UpdateStatus(context.Background(), created.ID, StatusSent)
	require.NoError(t, err)
	assert.Equal(t, StatusSent, sent.Status)

	paid, err := svc.UpdateStatus(context.Background(), created.ID, StatusPaid)
	require.NoError(t, err)
	assert.Equal(t, StatusPaid, paid.Status)

	cancelled, err := svc.UpdateStatus(context.Background(), created.ID, StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, cancelled.Status)

	_, err = svc.UpdateStatus(context.Background(), created.ID, StatusSent)
	assert.ErrorIs(t, err, ErrBadTransition)
}

func TestDeleteDraft(t *testing.T) {
	repo := newMemRepo()
	svc := testService(t, repo)

	created, err := svc.Create(context.Background(), CreateInvoiceRequest{
		CompanyID:  1,
		CustomerID: 7,
		Items:      []LineRequest{{Description: "Item", Quantity: 1, Rate: 100}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	_, err = svc.Get(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
