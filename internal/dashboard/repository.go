package dashboard

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"
)

const recentInvoiceLimit = 5

// Repository aggregates dashboard figures from the primary store.
type Repository interface {
	Collect(ctx context.Context) (*Stats, error)
}

type repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

// Collect runs the count, revenue, and recent-invoice queries
// concurrently and assembles the summary.
func (r *repository) Collect(ctx context.Context) (*Stats, error) {
	var stats Stats
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return r.pool.QueryRow(gctx, `SELECT COUNT(*) FROM customers`).Scan(&stats.TotalCustomers)
	})
	g.Go(func() error {
		return r.pool.QueryRow(gctx, `SELECT COUNT(*) FROM products`).Scan(&stats.TotalProducts)
	})
	g.Go(func() error {
		return r.pool.QueryRow(gctx, `SELECT COUNT(*) FROM invoices`).Scan(&stats.TotalInvoices)
	})
	statusCounts := map[string]int{}
	g.Go(func() error {
		rows, err := r.pool.Query(gctx, `SELECT status, COUNT(*) FROM invoices GROUP BY status`)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var status string
			var count int
			if err := rows.Scan(&status, &count); err != nil {
				return err
			}
			statusCounts[status] = count
		}
		return rows.Err()
	})
	g.Go(func() error {
		return r.pool.QueryRow(gctx,
			`SELECT COALESCE(SUM(total), 0) FROM invoices WHERE status = 'paid'`,
		).Scan(&stats.TotalRevenue)
	})
	g.Go(func() error {
		rows, err := r.pool.Query(gctx, `SELECT i.id, i.invoice_number, i.invoice_date,
c.name, i.status, i.total
FROM invoices i JOIN customers c ON c.id = i.customer_id
ORDER BY i.invoice_date DESC, i.id DESC LIMIT $1`, recentInvoiceLimit)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var ri RecentInvoice
			if err := rows.Scan(&ri.ID, &ri.InvoiceNumber, &ri.InvoiceDate,
				&ri.CustomerName, &ri.Status, &ri.Total); err != nil {
				return err
			}
			stats.RecentInvoices = append(stats.RecentInvoices, ri)
		}
		return rows.Err()
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	stats.StatusCounts = statusCounts
	if stats.RecentInvoices == nil {
		stats.RecentInvoices = []RecentInvoice{}
	}
	return &stats, nil
}
