package gst

import (
	"fmt"
	"math"
	"strings"
)

var (
	onesWords = []string{"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine"}
	teenWords = []string{"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen"}
	tensWords = []string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety"}
)

// numberToWords renders a non-negative integer in English words using the
// Indian grouping: crore (10^7), lakh (10^5), thousand, hundred.
func numberToWords(n int64) string {
	if n == 0 {
		return "Zero"
	}

	var b strings.Builder
	if n >= 1e7 {
		b.WriteString(numberToWords(n / 1e7))
		b.WriteString(" Crore ")
		n %= 1e7
	}
	if n >= 1e5 {
		b.WriteString(numberToWords(n / 1e5))
		b.WriteString(" Lakh ")
		n %= 1e5
	}
	if n >= 1000 {
		b.WriteString(numberToWords(n / 1000))
		b.WriteString(" Thousand ")
		n %= 1000
	}
	if n >= 100 {
		b.WriteString(onesWords[n/100])
		b.WriteString(" Hundred ")
		n %= 100
	}
	switch {
	case n >= 20:
		b.WriteString(tensWords[n/10])
		b.WriteString(" ")
		n %= 10
	case n >= 10:
		b.WriteString(teenWords[n-10])
		b.WriteString(" ")
		n = 0
	}
	if n > 0 {
		b.WriteString(onesWords[n])
		b.WriteString(" ")
	}
	return strings.TrimSpace(b.String())
}

// AmountInWords renders a monetary amount for printing on an invoice,
// e.g. "INR One Hundred and Two Paise Only". The rupee part uses the
// Indian numbering convention; a paise clause appears only when the
// fractional part is non-zero.
func AmountInWords(amount float64) (string, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "", fmt.Errorf("%w: amount is not finite", ErrValidation)
	}
	if amount < 0 {
		return "", fmt.Errorf("%w: amount is negative", ErrValidation)
	}

	rupees := int64(math.Floor(amount))
	paise := int64(math.Round((amount - float64(rupees)) * 100))

	words := "INR " + numberToWords(rupees)
	if paise > 0 {
		words += " and " + numberToWords(paise) + " Paise"
	}
	return words + " Only", nil
}
