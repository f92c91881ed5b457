package invoices

import (
	"time"

	"github.com/AMUDHAVALLI/Billing/internal/masterdata/companies"
	"github.com/AMUDHAVALLI/Billing/internal/masterdata/customers"
	"github.com/AMUDHAVALLI/Billing/internal/masterdata/shared"
)

// LineRequest is one invoice line as submitted by the client. When
// ProductID is set, missing description, HSN code, unit, and GST rate
// are filled in from the product record.
type LineRequest struct {
	ProductID   *int64   `json:"product_id,omitempty"`
	Description string   `json:"description" validate:"required_without=ProductID,max=500"`
	HSNCode     *string  `json:"hsn_code,omitempty" validate:"omitempty,max=10"`
	Quantity    float64  `json:"quantity" validate:"gt=0"`
	Unit        *string  `json:"unit,omitempty" validate:"omitempty,max=20"`
	Rate        float64  `json:"rate" validate:"gte=0"`
	GSTRate     *float64 `json:"gst_rate,omitempty" validate:"omitempty,gte=0,lte=100"`
}

type CreateInvoiceRequest struct {
	CompanyID   int64         `json:"company_id" validate:"required,gt=0"`
	CustomerID  int64         `json:"customer_id" validate:"required,gt=0"`
	InvoiceDate *time.Time    `json:"invoice_date,omitempty"`
	Notes       *string       `json:"notes,omitempty" validate:"omitempty,max=1000"`
	Items       []LineRequest `json:"items" validate:"required,min=1,dive"`
}

// UpdateInvoiceRequest replaces the editable fields of a draft invoice.
// Items are replaced wholesale and totals recomputed.
type UpdateInvoiceRequest struct {
	CustomerID  *int64        `json:"customer_id,omitempty" validate:"omitempty,gt=0"`
	InvoiceDate *time.Time    `json:"invoice_date,omitempty"`
	Notes       *string       `json:"notes,omitempty" validate:"omitempty,max=1000"`
	Items       []LineRequest `json:"items" validate:"required,min=1,dive"`
}

type UpdateStatusRequest struct {
	Status Status `json:"status" validate:"required"`
}

// InvoiceResponse is an invoice plus the resolved parties and its total
// rendered in words for printing.
type InvoiceResponse struct {
	Invoice
	Company       *companies.Company  `json:"company,omitempty"`
	Customer      *customers.Customer `json:"customer,omitempty"`
	AmountInWords string              `json:"amount_in_words"`
}

// ListFilters extends the shared list filters with a status filter.
type ListFilters struct {
	shared.ListFilters
	Status Status
}

type ListInvoicesResponse struct {
	Invoices   []Invoice         `json:"invoices"`
	Pagination shared.Pagination `json:"pagination"`
}
