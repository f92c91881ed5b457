package httpx

import (
	"errors"
	"net/http"

	"github.com/AMUDHAVALLI/Billing/internal/gst"
)

// Sentinel errors shared by the repository and service layers.
var (
	ErrNotFound  = errors.New("resource not found")
	ErrDuplicate = errors.New("duplicate entry")
	ErrConflict  = errors.New("conflicting state")
)

// RespondError maps domain errors to HTTP responses. Validation and
// format failures from the tax core always stem from caller-supplied
// data, so their messages are surfaced verbatim.
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, gst.ErrValidation):
		Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
	case errors.Is(err, gst.ErrFormat):
		Problem(w, http.StatusUnprocessableEntity, "Malformed Invoice Number", err.Error())
	case errors.Is(err, ErrNotFound):
		Problem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, ErrDuplicate):
		Problem(w, http.StatusConflict, "Duplicate", err.Error())
	case errors.Is(err, ErrConflict):
		Problem(w, http.StatusConflict, "Conflict", err.Error())
	default:
		Problem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}
