package companies

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AMUDHAVALLI/Billing/internal/masterdata/shared"
)

type fakeRepo struct {
	byID   map[int64]Company
	nextID int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byID: map[int64]Company{}, nextID: 1}
}

func (f *fakeRepo) Get(_ context.Context, id int64) (*Company, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return &c, nil
}

func (f *fakeRepo) List(_ context.Context) ([]Company, error) {
	var list []Company
	for _, c := range f.byID {
		list = append(list, c)
	}
	return list, nil
}

func (f *fakeRepo) Create(_ context.Context, c Company) (int64, error) {
	for _, existing := range f.byID {
		if c.GSTIN != nil && existing.GSTIN != nil && *c.GSTIN == *existing.GSTIN {
			return 0, shared.ErrDuplicate
		}
	}
	id := f.nextID
	f.nextID++
	c.ID = id
	f.byID[id] = c
	return id, nil
}

func (f *fakeRepo) Update(_ context.Context, id int64, c Company) error {
	if _, ok := f.byID[id]; !ok {
		return shared.ErrNotFound
	}
	c.ID = id
	f.byID[id] = c
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return shared.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func str(s string) *string { return &s }

func TestCreateAndGetCompany(t *testing.T) {
	svc := NewService(newFakeRepo())

	created, err := svc.Create(context.Background(), CreateCompanyRequest{
		Name:      "Amudhavalli Traders",
		State:     "Puducherry",
		StateCode: str("34"),
		GSTIN:     str("34ABCDE1234F1Z5"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Amudhavalli Traders", created.Name)
	require.NotNil(t, created.StateCode)
	assert.Equal(t, "34", *created.StateCode)

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestCreateRejectsDuplicateGSTIN(t *testing.T) {
	svc := NewService(newFakeRepo())

	req := CreateCompanyRequest{
		Name:  "First",
		State: "Puducherry",
		GSTIN: str("34ABCDE1234F1Z5"),
	}
	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	req.Name = "Second"
	_, err = svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, shared.ErrDuplicate)
}

func TestUpdateMergesCompanyFields(t *testing.T) {
	svc := NewService(newFakeRepo())

	created, err := svc.Create(context.Background(), CreateCompanyRequest{
		Name:     "Amudhavalli Traders",
		State:    "Puducherry",
		BankName: str("Indian Bank"),
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, UpdateCompanyRequest{
		City:  str("Villianur"),
		Phone: str("0413-2200000"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Amudhavalli Traders", updated.Name)
	assert.Equal(t, "Puducherry", updated.State)
	require.NotNil(t, updated.City)
	assert.Equal(t, "Villianur", *updated.City)
	require.NotNil(t, updated.BankName)
	assert.Equal(t, "Indian Bank", *updated.BankName)
}

func TestGetRejectsBadCompanyID(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.Get(context.Background(), 0)
	assert.ErrorIs(t, err, shared.ErrInvalidID)

	err = svc.Delete(context.Background(), 7)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
