package gst

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// PeriodOf returns the YYYYMM invoice period for a point in time.
func PeriodOf(t time.Time) string {
	return t.Format("200601")
}

// NextInvoiceNumber returns the next sequential invoice number for a
// period. lastIssued is the greatest number already issued in the period,
// or empty when none exists yet. The sequence suffix is zero-padded to a
// minimum of three digits and simply grows wider past 999.
//
// The caller must serialize the lookup-then-allocate sequence per period;
// this function only produces the successor of accurate input.
func NextInvoiceNumber(period, lastIssued string) (string, error) {
	if lastIssued == "" {
		return period + "-001", nil
	}
	prefix := period + "-"
	if !strings.HasPrefix(lastIssued, prefix) {
		return "", fmt.Errorf("%w: %q does not belong to period %s", ErrFormat, lastIssued, period)
	}
	suffix := strings.TrimPrefix(lastIssued, prefix)
	if suffix == "" || strings.IndexFunc(suffix, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return "", fmt.Errorf("%w: %q has a non-numeric sequence", ErrFormat, lastIssued)
	}
	seq, err := strconv.ParseInt(suffix, 10, 64)
	if err != nil {
		return "", fmt.Errorf("%w: %q has a non-numeric sequence", ErrFormat, lastIssued)
	}
	return fmt.Sprintf("%s-%03d", period, seq+1), nil
}
