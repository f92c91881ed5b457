package invoices

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/AMUDHAVALLI/Billing/internal/gst"
)

// Status is the lifecycle state of an invoice.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusSent      Status = "sent"
	StatusPaid      Status = "paid"
	StatusCancelled Status = "cancelled"
)

var (
	// ErrNotFound indicates the invoice does not exist.
	ErrNotFound = errors.New("invoices: not found")
	// ErrNotDraft indicates a mutation that only draft invoices allow.
	ErrNotDraft = errors.New("invoices: invoice is no longer a draft")
	// ErrBadTransition indicates a disallowed status change.
	ErrBadTransition = errors.New("invoices: invalid status transition")
	// ErrPartyMissing indicates the company or customer does not exist.
	ErrPartyMissing = errors.New("invoices: company or customer not found")
)

// ValidStatus reports whether s is a known lifecycle state.
func ValidStatus(s Status) bool {
	switch s {
	case StatusDraft, StatusSent, StatusPaid, StatusCancelled:
		return true
	}
	return false
}

// CanTransition reports whether an invoice may move from one status to
// another. The forward path is draft, sent, paid; cancellation is
// allowed from any non-cancelled state and is terminal.
func CanTransition(from, to Status) bool {
	if from == to {
		return false
	}
	if to == StatusCancelled {
		return from != StatusCancelled
	}
	switch from {
	case StatusDraft:
		return to == StatusSent
	case StatusSent:
		return to == StatusPaid
	}
	return false
}

// Invoice is an issued (or drafted) tax invoice. Monetary fields are
// the frozen output of the tax computation at issue or last edit time;
// they are never recomputed on read.
type Invoice struct {
	ID            int64          `json:"id"`
	Ref           uuid.UUID      `json:"ref"`
	InvoiceNumber string         `json:"invoice_number"`
	InvoiceDate   time.Time      `json:"invoice_date"`
	CompanyID     int64          `json:"company_id"`
	CustomerID    int64          `json:"customer_id"`
	Status        Status         `json:"status"`
	Subtotal      float64        `json:"subtotal"`
	CGST          float64        `json:"cgst"`
	SGST          float64        `json:"sgst"`
	IGST          float64        `json:"igst"`
	RoundOff      float64        `json:"round_off"`
	Total         float64        `json:"total"`
	IsIntraState  bool           `json:"is_intra_state"`
	Notes         *string        `json:"notes,omitempty"`
	Items         []gst.LineItem `json:"items"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}
