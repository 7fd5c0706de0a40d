package validation

import (
	"regexp"
	"strings"
	"time"
)

var (
	einPattern   = regexp.MustCompile(`^\d{2}-\d{7}$`)
	ptinPattern  = regexp.MustCompile(`^(?i)P\d{8}$`)
	phonePattern = regexp.MustCompile(`^[\d\s\-\(\)\.]+$`)
	zipPattern   = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	dcnPattern   = regexp.MustCompile(`^\d{1,3}[a-zA-Z]?$`)
	digitPattern = regexp.MustCompile(`\D`)
)

// validStates are the recognized US state and territory codes.
var validStates = map[string]struct{}{
	"AL": {}, "AK": {}, "AZ": {}, "AR": {}, "CA": {}, "CO": {}, "CT": {}, "DE": {}, "FL": {}, "GA": {},
	"HI": {}, "ID": {}, "IL": {}, "IN": {}, "IA": {}, "KS": {}, "KY": {}, "LA": {}, "ME": {}, "MD": {},
	"MA": {}, "MI": {}, "MN": {}, "MS": {}, "MO": {}, "MT": {}, "NE": {}, "NV": {}, "NH": {}, "NJ": {},
	"NM": {}, "NY": {}, "NC": {}, "ND": {}, "OH": {}, "OK": {}, "OR": {}, "PA": {}, "RI": {}, "SC": {},
	"SD": {}, "TN": {}, "TX": {}, "UT": {}, "VT": {}, "VA": {}, "WA": {}, "WV": {}, "WI": {}, "WY": {},
	"DC": {}, "PR": {}, "VI": {}, "GU": {}, "AS": {}, "MP": {},
}

// ValidEin reports whether the EIN matches the NN-NNNNNNN format.
func ValidEin(ein string) bool {
	return einPattern.MatchString(ein)
}

// ValidPtin reports whether the PTIN is a P followed by eight digits.
func ValidPtin(ptin string) bool {
	return ptinPattern.MatchString(ptin)
}

// ValidPhone accepts common phone punctuation and requires at least ten
// digits.
func ValidPhone(phone string) bool {
	if phone == "" {
		return false
	}

	digits := digitPattern.ReplaceAllString(phone, "")
	return phonePattern.MatchString(phone) && len(digits) >= 10
}

// ValidZipCode reports whether the ZIP matches NNNNN or NNNNN-NNNN.
func ValidZipCode(zip string) bool {
	return zipPattern.MatchString(zip)
}

// ValidStateCode reports whether the value is a recognized US state or
// territory code.
func ValidStateCode(state string) bool {
	_, ok := validStates[strings.ToUpper(state)]
	return ok
}

// ValidTaxYear accepts years from 1990 through next year.
func ValidTaxYear(year int) bool {
	return year >= 1990 && year <= time.Now().Year()+1
}

// ValidDcn checks the loose change number shape: one to three digits with
// an optional letter suffix. The format is deliberately lenient since the
// full set of valid numbers is defined externally.
func ValidDcn(dcn string) bool {
	return dcnPattern.MatchString(dcn)
}
