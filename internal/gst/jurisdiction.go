package gst

import "strings"

// Party holds the jurisdiction signals of one side of a transaction.
// Every field may be empty; empty fields are treated as "no signal".
type Party struct {
	StateName string
	StateCode string
	GSTIN     string
}

// resolved reports whether the party carries at least one jurisdiction
// signal. Parties with none are rejected by ComputeBreakdown.
func (p Party) resolved() bool {
	return strings.TrimSpace(p.StateName) != "" ||
		strings.TrimSpace(p.StateCode) != "" ||
		strings.TrimSpace(p.GSTIN) != ""
}

// SameJurisdiction reports whether two parties sit in the same GST
// jurisdiction. Rules apply in order, first match decides:
//
//  1. Both explicit state codes present and equal after trimming.
//  2. Both state names non-empty and equal case-insensitively.
//  3. Codes derived per side (explicit code, else GSTIN prefix, else the
//     state-name table) both present and equal.
//
// A side that cannot be resolved makes the verdict inter-state.
func SameJurisdiction(a, b Party) bool {
	codeA := strings.TrimSpace(a.StateCode)
	codeB := strings.TrimSpace(b.StateCode)
	if codeA != "" && codeB != "" && codeA == codeB {
		return true
	}

	nameA := strings.ToLower(strings.TrimSpace(a.StateName))
	nameB := strings.ToLower(strings.TrimSpace(b.StateName))
	if nameA != "" && nameB != "" && nameA == nameB {
		return true
	}

	if codeA == "" {
		codeA = StateCode(a.StateName, a.GSTIN)
	}
	if codeB == "" {
		codeB = StateCode(b.StateName, b.GSTIN)
	}
	return codeA != "" && codeB != "" && codeA == codeB
}
