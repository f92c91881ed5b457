package gst

import "errors"

var (
	// ErrValidation indicates malformed or out-of-range caller input.
	ErrValidation = errors.New("gst: validation failed")
	// ErrFormat indicates an invoice number that does not match the
	// period-prefixed pattern.
	ErrFormat = errors.New("gst: malformed invoice number")
)
