package gst

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountInWords(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "INR Zero Only"},
		{1, "INR One Only"},
		{19, "INR Nineteen Only"},
		{42, "INR Forty Two Only"},
		{100, "INR One Hundred Only"},
		{118, "INR One Hundred Eighteen Only"},
		{1000, "INR One Thousand Only"},
		{10275.02, "INR Ten Thousand Two Hundred Seventy Five and Two Paise Only"},
		{100000, "INR One Lakh Only"},
		{2550000, "INR Twenty Five Lakh Fifty Thousand Only"},
		{10000000, "INR One Crore Only"},
		{12345678, "INR One Crore Twenty Three Lakh Forty Five Thousand Six Hundred Seventy Eight Only"},
		{0.50, "INR Zero and Fifty Paise Only"},
		{118.75, "INR One Hundred Eighteen and Seventy Five Paise Only"},
	}
	for _, tc := range cases {
		got, err := AmountInWords(tc.amount)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "amount %v", tc.amount)
	}
}

func TestAmountInWordsRejectsInvalid(t *testing.T) {
	for _, amount := range []float64{-1, -0.01, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := AmountInWords(amount)
		require.ErrorIs(t, err, ErrValidation)
	}
}
