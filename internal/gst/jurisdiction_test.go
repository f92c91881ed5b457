package gst

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSameJurisdictionExplicitCodesWin(t *testing.T) {
	a := Party{StateName: "Karnataka", StateCode: "34"}
	b := Party{StateName: "Kerala", StateCode: " 34 "}
	assert.True(t, SameJurisdiction(a, b), "matching codes decide before names")

	// Unequal codes do not settle the question; matching names still
	// resolve the pair as intra-state.
	assert.True(t, SameJurisdiction(
		Party{StateName: "Goa", StateCode: "30"},
		Party{StateName: "Goa", StateCode: "24"},
	), "equal names decide when codes disagree")
}

func TestSameJurisdictionNameFallback(t *testing.T) {
	assert.True(t, SameJurisdiction(
		Party{StateName: "  tamil nadu "},
		Party{StateName: "Tamil Nadu"},
	))
}

func TestSameJurisdictionAlternateSpellings(t *testing.T) {
	assert.True(t, SameJurisdiction(
		Party{StateName: "Pondicherry"},
		Party{StateName: "Puducherry"},
	))
}

func TestSameJurisdictionGSTINPrefix(t *testing.T) {
	assert.True(t, SameJurisdiction(
		Party{GSTIN: "33AAAAA0000A1Z5"},
		Party{StateName: "Tamil Nadu"},
	))
	assert.False(t, SameJurisdiction(
		Party{GSTIN: "33AAAAA0000A1Z5"},
		Party{GSTIN: "29BBBBB0000B1Z5"},
	))
}

func TestSameJurisdictionNonNumericGSTINIgnored(t *testing.T) {
	// A GSTIN whose first two characters are not digits carries no signal.
	assert.False(t, SameJurisdiction(
		Party{GSTIN: "XYAAAAA0000A1Z5"},
		Party{StateCode: "33"},
	))
}

func TestSameJurisdictionFailsClosed(t *testing.T) {
	assert.False(t, SameJurisdiction(Party{}, Party{}))
	assert.False(t, SameJurisdiction(
		Party{StateName: "Atlantis"},
		Party{StateName: "Lemuria"},
	), "unknown names with no other signal resolve inter-state")
	assert.False(t, SameJurisdiction(
		Party{StateName: "Atlantis"},
		Party{StateCode: "33"},
	))
}

func TestSameJurisdictionSymmetric(t *testing.T) {
	pairs := [][2]Party{
		{{StateCode: "34"}, {StateCode: "34"}},
		{{StateCode: "34"}, {StateCode: "33"}},
		{{StateName: "Puducherry"}, {GSTIN: "34AAAAA0000A1Z5"}},
		{{StateName: "Odisha"}, {}},
		{{}, {}},
	}
	for _, pair := range pairs {
		assert.Equal(t,
			SameJurisdiction(pair[0], pair[1]),
			SameJurisdiction(pair[1], pair[0]),
		)
	}
}
