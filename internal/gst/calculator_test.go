package gst

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeBreakdownIntraState(t *testing.T) {
	items := []LineItem{{Description: "Widget", Quantity: 1, Rate: 100, GSTRate: 18}}
	seller := Party{StateName: "Puducherry", StateCode: "34"}
	buyer := Party{StateName: "Puducherry", StateCode: "34"}

	b, err := ComputeBreakdown(items, seller, buyer)
	require.NoError(t, err)

	assert.True(t, b.IsIntraState)
	assert.InDelta(t, 100.00, b.Subtotal, 1e-9)
	assert.InDelta(t, 9.00, b.CGST, 1e-9)
	assert.InDelta(t, 9.00, b.SGST, 1e-9)
	assert.Zero(t, b.IGST)
	assert.InDelta(t, 118, b.Total, 1e-9)
	assert.InDelta(t, 0, b.RoundOff, 1e-9)
	require.Len(t, b.Items, 1)
	assert.InDelta(t, 100.00, b.Items[0].Amount, 1e-9)
	assert.InDelta(t, 18.00, b.Items[0].GSTAmount, 1e-9)
}

func TestComputeBreakdownInterState(t *testing.T) {
	items := []LineItem{{Description: "Widget", Quantity: 1, Rate: 100, GSTRate: 18}}
	seller := Party{StateCode: "34"}
	buyer := Party{StateCode: "33"}

	b, err := ComputeBreakdown(items, seller, buyer)
	require.NoError(t, err)

	assert.False(t, b.IsIntraState)
	assert.Zero(t, b.CGST)
	assert.Zero(t, b.SGST)
	assert.InDelta(t, 18.00, b.IGST, 1e-9)
	assert.InDelta(t, 118, b.Total, 1e-9)
}

func TestComputeBreakdownSubtotalMatchesItems(t *testing.T) {
	items := []LineItem{
		{Description: "A", Quantity: 3, Rate: 33.33, GSTRate: 18},
		{Description: "B", Quantity: 1.5, Rate: 99.99, GSTRate: 12},
		{Description: "C", Quantity: 10, Rate: 7.77, GSTRate: 5},
	}
	b, err := ComputeBreakdown(items, Party{StateCode: "29"}, Party{StateCode: "29"})
	require.NoError(t, err)

	var sum float64
	for _, item := range b.Items {
		sum += item.Amount
	}
	assert.InDelta(t, b.Subtotal, sum, 1e-9)
	assert.InDelta(t, b.CGST, b.SGST, 1e-9)
	assert.Zero(t, b.IGST)
}

func TestComputeBreakdownSplitsAggregateNotPerItem(t *testing.T) {
	// A single 5 paise tax total halves to 2.5 paise, which rounds up to
	// 0.03 on both sides of the split.
	items := []LineItem{{Description: "Pin", Quantity: 1, Rate: 1.00, GSTRate: 5}}
	b, err := ComputeBreakdown(items, Party{StateCode: "27"}, Party{StateCode: "27"})
	require.NoError(t, err)

	assert.InDelta(t, 0.03, b.CGST, 1e-9)
	assert.InDelta(t, 0.03, b.SGST, 1e-9)
	assert.InDelta(t, 1, b.Total, 1e-9)
	assert.InDelta(t, -0.06, b.RoundOff, 1e-9)
}

func TestComputeBreakdownRoundOffNegative(t *testing.T) {
	items := []LineItem{{Description: "Widget", Quantity: 1, Rate: 100.34, GSTRate: 18}}
	b, err := ComputeBreakdown(items, Party{StateCode: "34"}, Party{StateCode: "33"})
	require.NoError(t, err)

	assert.InDelta(t, 18.06, b.IGST, 1e-9)
	assert.InDelta(t, 118, b.Total, 1e-9)
	assert.InDelta(t, -0.40, b.RoundOff, 1e-9)
}

func TestComputeBreakdownTotalProperty(t *testing.T) {
	cases := [][]LineItem{
		{{Quantity: 1, Rate: 100, GSTRate: 18}},
		{{Quantity: 2.5, Rate: 49.99, GSTRate: 12}, {Quantity: 1, Rate: 0.01, GSTRate: 28}},
		{{Quantity: 7, Rate: 123.45, GSTRate: 5}, {Quantity: 3, Rate: 9.99, GSTRate: 0}},
	}
	for _, items := range cases {
		for _, buyerCode := range []string{"34", "33"} {
			b, err := ComputeBreakdown(items, Party{StateCode: "34"}, Party{StateCode: buyerCode})
			require.NoError(t, err)
			assert.InDelta(t, b.Total, round2(b.Subtotal+b.CGST+b.SGST+b.IGST+b.RoundOff), 1e-9)
		}
	}
}

func TestComputeBreakdownValidation(t *testing.T) {
	seller := Party{StateCode: "34"}
	buyer := Party{StateCode: "33"}
	valid := LineItem{Quantity: 1, Rate: 10, GSTRate: 18}

	cases := map[string]struct {
		items  []LineItem
		seller Party
		buyer  Party
	}{
		"empty items":       {items: nil, seller: seller, buyer: buyer},
		"negative quantity": {items: []LineItem{{Quantity: -1, Rate: 10, GSTRate: 18}}, seller: seller, buyer: buyer},
		"negative rate":     {items: []LineItem{{Quantity: 1, Rate: -10, GSTRate: 18}}, seller: seller, buyer: buyer},
		"gst rate over 100": {items: []LineItem{{Quantity: 1, Rate: 10, GSTRate: 101}}, seller: seller, buyer: buyer},
		"gst rate negative": {items: []LineItem{{Quantity: 1, Rate: 10, GSTRate: -1}}, seller: seller, buyer: buyer},
		"blank seller":      {items: []LineItem{valid}, seller: Party{}, buyer: buyer},
		"blank buyer":       {items: []LineItem{valid}, seller: seller, buyer: Party{}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ComputeBreakdown(tc.items, tc.seller, tc.buyer)
			require.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestComputeBreakdownPermissiveRates(t *testing.T) {
	// Non-slab rates inside 0-100 are accepted deliberately.
	for _, rate := range []float64{0, 0.25, 3, 5, 12, 18, 28, 40, 100} {
		_, err := ComputeBreakdown(
			[]LineItem{{Quantity: 1, Rate: 10, GSTRate: rate}},
			Party{StateCode: "34"}, Party{StateCode: "33"},
		)
		assert.NoError(t, err, "rate %v", rate)
	}
}

func TestComputeBreakdownDoesNotMutateInput(t *testing.T) {
	items := []LineItem{{Description: "Widget", Quantity: 2, Rate: 50, GSTRate: 18}}
	_, err := ComputeBreakdown(items, Party{StateCode: "34"}, Party{StateCode: "34"})
	require.NoError(t, err)

	assert.Zero(t, items[0].Amount)
	assert.Zero(t, items[0].GSTAmount)
}

func TestComputeBreakdownDeterministic(t *testing.T) {
	items := []LineItem{
		{Description: "A", Quantity: 3, Rate: 33.33, GSTRate: 18},
		{Description: "B", Quantity: 1, Rate: 0.07, GSTRate: 28},
	}
	seller := Party{StateName: "Tamil Nadu"}
	buyer := Party{GSTIN: "33ABCDE1234F1Z5"}

	first, err := ComputeBreakdown(items, seller, buyer)
	require.NoError(t, err)
	second, err := ComputeBreakdown(items, seller, buyer)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
