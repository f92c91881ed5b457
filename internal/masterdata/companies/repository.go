package companies

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AMUDHAVALLI/Billing/internal/masterdata/shared"
)

// Repository defines data access for companies.
type Repository interface {
	Get(ctx context.Context, id int64) (*Company, error)
	List(ctx context.Context) ([]Company, error)
	Create(ctx context.Context, c Company) (int64, error)
	Update(ctx context.Context, id int64, c Company) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

const companyColumns = `id, name, address, city, state, state_code, pincode, gstin, pan,
contact, email, phone, bank_name, account_number, ifsc_code, bank_branch, created_at, updated_at`

func scanCompany(row pgx.Row) (*Company, error) {
	var c Company
	err := row.Scan(
		&c.ID, &c.Name, &c.Address, &c.City, &c.State, &c.StateCode, &c.Pincode,
		&c.GSTIN, &c.PAN, &c.Contact, &c.Email, &c.Phone,
		&c.BankName, &c.AccountNumber, &c.IFSCCode, &c.BankBranch,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *repository) Get(ctx context.Context, id int64) (*Company, error) {
	return scanCompany(r.pool.QueryRow(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE id = $1`, id))
}

func (r *repository) List(ctx context.Context) ([]Company, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+companyColumns+` FROM companies ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *c)
	}
	return list, rows.Err()
}

func (r *repository) Create(ctx context.Context, c Company) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `INSERT INTO companies
(name, address, city, state, state_code, pincode, gstin, pan, contact, email, phone,
 bank_name, account_number, ifsc_code, bank_branch)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15) RETURNING id`,
		c.Name, c.Address, c.City, c.State, c.StateCode, c.Pincode, c.GSTIN, c.PAN,
		c.Contact, c.Email, c.Phone, c.BankName, c.AccountNumber, c.IFSCCode, c.BankBranch,
	).Scan(&id)
	if err != nil {
		return 0, mapPgError(err)
	}
	return id, nil
}

func (r *repository) Update(ctx context.Context, id int64, c Company) error {
	tag, err := r.pool.Exec(ctx, `UPDATE companies SET
name=$1, address=$2, city=$3, state=$4, state_code=$5, pincode=$6, gstin=$7, pan=$8,
contact=$9, email=$10, phone=$11, bank_name=$12, account_number=$13, ifsc_code=$14,
bank_branch=$15, updated_at=NOW() WHERE id=$16`,
		c.Name, c.Address, c.City, c.State, c.StateCode, c.Pincode, c.GSTIN, c.PAN,
		c.Contact, c.Email, c.Phone, c.BankName, c.AccountNumber, c.IFSCCode, c.BankBranch, id)
	if err != nil {
		return mapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return mapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// mapPgError converts PostgreSQL constraint violations to domain errors.
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return shared.ErrDuplicate
		case "23503":
			return shared.ErrInUse
		}
	}
	return err
}
