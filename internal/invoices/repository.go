package invoices

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AMUDHAVALLI/Billing/internal/gst"
	"github.com/AMUDHAVALLI/Billing/internal/platform/db"
)

// Repository defines data access for invoices and their line items.
type Repository interface {
	Get(ctx context.Context, id int64) (*Invoice, error)
	List(ctx context.Context, filters ListFilters) ([]Invoice, int, error)
	Create(ctx context.Context, inv *Invoice) (int64, error)
	Update(ctx context.Context, id int64, inv *Invoice) error
	UpdateStatus(ctx context.Context, id int64, status Status) error
	Delete(ctx context.Context, id int64) error
	LastNumberForPeriod(ctx context.Context, period string) (string, error)
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

const invoiceColumns = `id, ref, invoice_number, invoice_date, company_id, customer_id, status,
subtotal, cgst, sgst, igst, round_off, total, is_intra_state, notes, created_at, updated_at`

func scanInvoice(row pgx.Row) (*Invoice, error) {
	var inv Invoice
	err := row.Scan(
		&inv.ID, &inv.Ref, &inv.InvoiceNumber, &inv.InvoiceDate,
		&inv.CompanyID, &inv.CustomerID, &inv.Status,
		&inv.Subtotal, &inv.CGST, &inv.SGST, &inv.IGST,
		&inv.RoundOff, &inv.Total, &inv.IsIntraState, &inv.Notes,
		&inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &inv, nil
}

func (r *repository) Get(ctx context.Context, id int64) (*Invoice, error) {
	inv, err := scanInvoice(r.pool.QueryRow(ctx,
		`SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}
	items, err := r.itemsFor(ctx, id)
	if err != nil {
		return nil, err
	}
	inv.Items = items
	return inv, nil
}

func (r *repository) itemsFor(ctx context.Context, invoiceID int64) ([]gst.LineItem, error) {
	rows, err := r.pool.Query(ctx, `SELECT product_id, description, hsn_code, quantity, unit,
rate, gst_rate, amount, gst_amount FROM invoice_items WHERE invoice_id = $1 ORDER BY id`, invoiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []gst.LineItem
	for rows.Next() {
		var it gst.LineItem
		if err := rows.Scan(&it.ProductID, &it.Description, &it.HSNCode, &it.Quantity,
			&it.Unit, &it.Rate, &it.GSTRate, &it.Amount, &it.GSTAmount); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *repository) List(ctx context.Context, filters ListFilters) ([]Invoice, int, error) {
	where := ""
	args := []any{}
	if filters.Search != "" {
		args = append(args, "%"+filters.Search+"%")
		where = fmt.Sprintf(`WHERE invoice_number ILIKE $%d`, len(args))
	}
	if filters.Status != "" {
		args = append(args, string(filters.Status))
		if where == "" {
			where = fmt.Sprintf(`WHERE status = $%d`, len(args))
		} else {
			where += fmt.Sprintf(` AND status = $%d`, len(args))
		}
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM invoices `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limitPos := len(args) + 1
	query := fmt.Sprintf(`SELECT `+invoiceColumns+` FROM invoices %s
ORDER BY invoice_date DESC, id DESC LIMIT $%d OFFSET $%d`, where, limitPos, limitPos+1)
	args = append(args, filters.Limit, filters.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var list []Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, *inv)
	}
	return list, total, rows.Err()
}

func (r *repository) Create(ctx context.Context, inv *Invoice) (int64, error) {
	var id int64
	err := db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `INSERT INTO invoices
(ref, invoice_number, invoice_date, company_id, customer_id, status,
subtotal, cgst, sgst, igst, round_off, total, is_intra_state, notes)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14) RETURNING id`,
			inv.Ref, inv.InvoiceNumber, inv.InvoiceDate, inv.CompanyID, inv.CustomerID,
			inv.Status, inv.Subtotal, inv.CGST, inv.SGST, inv.IGST,
			inv.RoundOff, inv.Total, inv.IsIntraState, inv.Notes,
		).Scan(&id)
		if err != nil {
			return mapPgError(err)
		}
		return insertItems(ctx, tx, id, inv.Items)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *repository) Update(ctx context.Context, id int64, inv *Invoice) error {
	return db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `UPDATE invoices SET
invoice_date=$1, customer_id=$2, subtotal=$3, cgst=$4, sgst=$5, igst=$6,
round_off=$7, total=$8, is_intra_state=$9, notes=$10, updated_at=NOW()
WHERE id=$11`,
			inv.InvoiceDate, inv.CustomerID, inv.Subtotal, inv.CGST, inv.SGST,
			inv.IGST, inv.RoundOff, inv.Total, inv.IsIntraState, inv.Notes, id)
		if err != nil {
			return mapPgError(err)
		}
		if tag.RowsAffected() == 0 {
			return ErrNotFound
		}
		if _, err := tx.Exec(ctx, `DELETE FROM invoice_items WHERE invoice_id = $1`, id); err != nil {
			return err
		}
		return insertItems(ctx, tx, id, inv.Items)
	})
}

func insertItems(ctx context.Context, tx pgx.Tx, invoiceID int64, items []gst.LineItem) error {
	for _, it := range items {
		_, err := tx.Exec(ctx, `INSERT INTO invoice_items
(invoice_id, product_id, description, hsn_code, quantity, unit, rate, gst_rate, amount, gst_amount)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
			invoiceID, it.ProductID, it.Description, it.HSNCode, it.Quantity,
			it.Unit, it.Rate, it.GSTRate, it.Amount, it.GSTAmount)
		if err != nil {
			return mapPgError(err)
		}
	}
	return nil
}

func (r *repository) UpdateStatus(ctx context.Context, id int64, status Status) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE invoices SET status=$1, updated_at=NOW() WHERE id=$2`, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	return db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM invoice_items WHERE invoice_id = $1`, id); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// LastNumberForPeriod returns the highest invoice number issued in the
// given YYYYMM period, or empty when the period has none. Zero padded
// numbers of equal width sort correctly as text; wider numbers are
// longer and handled by ordering on length first.
func (r *repository) LastNumberForPeriod(ctx context.Context, period string) (string, error) {
	var number string
	err := r.pool.QueryRow(ctx, `SELECT invoice_number FROM invoices
WHERE invoice_number LIKE $1 ORDER BY LENGTH(invoice_number) DESC, invoice_number DESC LIMIT 1`,
		period+"-%").Scan(&number)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return number, nil
}

func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return fmt.Errorf("invoices: duplicate invoice number: %w", err)
		case "23503":
			return ErrPartyMissing
		}
	}
	return err
}
