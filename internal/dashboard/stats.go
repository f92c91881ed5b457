package dashboard

import "time"

// RecentInvoice is the trimmed invoice row shown on the dashboard.
type RecentInvoice struct {
	ID            int64     `json:"id"`
	InvoiceNumber string    `json:"invoice_number"`
	InvoiceDate   time.Time `json:"invoice_date"`
	CustomerName  string    `json:"customer_name"`
	Status        string    `json:"status"`
	Total         float64   `json:"total"`
}

// Stats is the dashboard summary payload. Revenue counts only invoices
// that have been paid.
type Stats struct {
	TotalCustomers int             `json:"total_customers"`
	TotalProducts  int             `json:"total_products"`
	TotalInvoices  int             `json:"total_invoices"`
	StatusCounts   map[string]int  `json:"status_counts"`
	TotalRevenue   float64         `json:"total_revenue"`
	RecentInvoices []RecentInvoice `json:"recent_invoices"`
	GeneratedAt    time.Time       `json:"generated_at"`
}
