package gst

import "strings"

// stateCodes maps normalized Indian state and union territory names to
// their two-digit GST state codes. Alternate spellings map to the same
// code so that free-text addresses resolve consistently.
var stateCodes = map[string]string{
	// Union territories
	"puducherry":    "34",
	"pondicherry":   "34",
	"andaman and nicobar islands": "35",
	"chandigarh":    "04",
	"dadra and nagar haveli and daman and diu": "26",
	"delhi":             "07",
	"jammu and kashmir": "01",
	"ladakh":            "38",
	"lakshadweep":       "31",

	// States
	"andhra pradesh":    "37",
	"arunachal pradesh": "12",
	"assam":             "18",
	"bihar":             "10",
	"chhattisgarh":      "22",
	"goa":               "30",
	"gujarat":           "24",
	"haryana":           "06",
	"himachal pradesh":  "02",
	"jharkhand":         "20",
	"karnataka":         "29",
	"kerala":            "32",
	"madhya pradesh":    "23",
	"maharashtra":       "27",
	"manipur":           "14",
	"meghalaya":         "17",
	"mizoram":           "15",
	"nagaland":          "13",
	"odisha":            "21",
	"punjab":            "03",
	"rajasthan":         "08",
	"sikkim":            "11",
	"tamil nadu":        "33",
	"telangana":         "36",
	"tripura":           "16",
	"uttar pradesh":     "09",
	"uttarakhand":       "05",
	"west bengal":       "19",
}

func isTwoDigits(s string) bool {
	if len(s) != 2 {
		return false
	}
	return s[0] >= '0' && s[0] <= '9' && s[1] >= '0' && s[1] <= '9'
}

// StateCode resolves a two-digit GST state code for a party. The GSTIN
// prefix wins when present, then the state-name table. Returns "" when
// nothing resolves.
func StateCode(stateName, gstin string) string {
	if g := strings.TrimSpace(gstin); len(g) >= 2 && isTwoDigits(g[:2]) {
		return g[:2]
	}
	name := strings.ToLower(strings.TrimSpace(stateName))
	if name == "" {
		return ""
	}
	return stateCodes[name]
}
