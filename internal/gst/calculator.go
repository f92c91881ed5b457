// Package gst implements the tax computation core of the billing
// application: jurisdiction resolution, CGST/SGST vs IGST breakdowns,
// period-scoped invoice numbering, and amount-in-words rendering.
//
// Every operation is a pure function over its inputs; the package keeps
// no mutable state and is safe for concurrent use.
package gst

import (
	"fmt"
	"math"
)

// LineItem is one invoice line. Rate is tax-exclusive price per unit and
// GSTRate a percentage. Amount and GSTAmount are derived by
// ComputeBreakdown; values supplied by the caller are ignored.
type LineItem struct {
	ProductID   *int64  `json:"product_id,omitempty"`
	Description string  `json:"description"`
	HSNCode     string  `json:"hsn_code"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	Rate        float64 `json:"rate"`
	GSTRate     float64 `json:"gst_rate"`
	Amount      float64 `json:"amount"`
	GSTAmount   float64 `json:"gst_amount"`
}

// Breakdown is the computed tax summary for a set of line items.
// Exactly one of the CGST/SGST pair or IGST carries the tax, never both.
type Breakdown struct {
	Items        []LineItem `json:"items"`
	Subtotal     float64    `json:"subtotal"`
	CGST         float64    `json:"cgst"`
	SGST         float64    `json:"sgst"`
	IGST         float64    `json:"igst"`
	RoundOff     float64    `json:"round_off"`
	Total        float64    `json:"total"`
	IsIntraState bool       `json:"is_intra_state"`
}

// round2 rounds to two decimals, half away from zero. Applied per line so
// stored sums match the amounts printed on the invoice.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ComputeBreakdown derives per-item amounts, resolves the seller/buyer
// jurisdiction, and aggregates the GST split. Inputs are never mutated.
//
// Per-line amounts are rounded to two decimals at the point of
// computation. The intra-state split halves the aggregated tax rather
// than summing per-item halves, avoiding cumulative half-paise drift.
// The grand total is rounded half-up to the whole rupee and the signed
// delta is reported as RoundOff.
func ComputeBreakdown(items []LineItem, seller, buyer Party) (Breakdown, error) {
	if len(items) == 0 {
		return Breakdown{}, fmt.Errorf("%w: at least one line item is required", ErrValidation)
	}
	if !seller.resolved() {
		return Breakdown{}, fmt.Errorf("%w: seller jurisdiction is missing", ErrValidation)
	}
	if !buyer.resolved() {
		return Breakdown{}, fmt.Errorf("%w: buyer jurisdiction is missing", ErrValidation)
	}

	processed := make([]LineItem, len(items))
	var subtotal, gstTotal float64
	for i, item := range items {
		if item.Quantity < 0 {
			return Breakdown{}, fmt.Errorf("%w: item %d has negative quantity", ErrValidation, i+1)
		}
		if item.Rate < 0 {
			return Breakdown{}, fmt.Errorf("%w: item %d has negative rate", ErrValidation, i+1)
		}
		if item.GSTRate < 0 || item.GSTRate > 100 {
			return Breakdown{}, fmt.Errorf("%w: item %d has GST rate outside 0-100", ErrValidation, i+1)
		}
		item.Amount = round2(item.Rate * item.Quantity)
		item.GSTAmount = round2(item.Amount * item.GSTRate / 100)
		subtotal += item.Amount
		gstTotal += item.GSTAmount
		processed[i] = item
	}
	subtotal = round2(subtotal)
	gstTotal = round2(gstTotal)

	intra := SameJurisdiction(seller, buyer)

	var cgst, sgst, igst float64
	if intra {
		cgst = round2(gstTotal / 2)
		sgst = cgst
	} else {
		igst = gstTotal
	}

	unrounded := subtotal + cgst + sgst + igst
	total := math.Round(unrounded)
	roundOff := round2(total - unrounded)

	return Breakdown{
		Items:        processed,
		Subtotal:     subtotal,
		CGST:         cgst,
		SGST:         sgst,
		IGST:         igst,
		RoundOff:     roundOff,
		Total:        total,
		IsIntraState: intra,
	}, nil
}
