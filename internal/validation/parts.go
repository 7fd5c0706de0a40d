package validation

import (
	"fmt"

	"github.com/form3115-prep/backend/internal/adjustment"
	"github.com/form3115-prep/backend/internal/dcn"
	"github.com/form3115-prep/backend/internal/forms"
	"github.com/shopspring/decimal"
)

// PartI validates the filer information block.
func PartI(data forms.PartI) Result {
	r := newResult()

	if data.FilerName == "" {
		r.error("filerName", "Filer name is required")
	}

	if data.FilerEin == "" {
		r.error("filerEin", "EIN is required")
	} else if !ValidEin(data.FilerEin) {
		r.error("filerEin", "EIN must be in format XX-XXXXXXX")
	}

	if data.FilerAddress == "" {
		r.error("filerAddress", "Street address is required")
	}

	if data.FilerCity == "" {
		r.error("filerCity", "City is required")
	}

	if data.FilerState == "" {
		r.error("filerState", "State is required")
	} else if !ValidStateCode(data.FilerState) {
		r.error("filerState", "Invalid state code")
	}

	if data.FilerZip == "" {
		r.error("filerZip", "ZIP code is required")
	} else if !ValidZipCode(data.FilerZip) {
		r.error("filerZip", "ZIP code must be in format XXXXX or XXXXX-XXXX")
	}

	// Optional, but recommended
	if data.ContactPhone == "" {
		r.warn("contactPhone", "Contact phone is recommended")
	} else if !ValidPhone(data.ContactPhone) {
		r.warn("contactPhone", "Phone number format may be invalid")
	}

	if data.PrincipalBusinessCode == "" {
		r.warn("principalBusinessCode", "NAICS code is recommended")
	}

	// The preparer block is optional, but a PTIN that is given has to be
	// well-formed
	if data.PreparerPtin != "" {
		if !ValidPtin(data.PreparerPtin) {
			r.error("preparerPtin", "PTIN must be in format PXXXXXXXX")
		}

		if data.PreparerName == "" {
			r.warn("preparerName", "Preparer name is recommended when a PTIN is entered")
		}
	}

	return r
}

// PartII validates the change description block.
func PartII(data forms.PartII) Result {
	r := newResult()

	if data.Dcn == "" {
		r.error("dcn", "Designated Change Number (DCN) is required")
	} else if !ValidDcn(data.Dcn) {
		r.warn("dcn", fmt.Sprintf("DCN format may be invalid - verify against %s", dcn.Revision))
	}

	if data.ChangeDescription == "" {
		r.error("changeDescription", "Description of the change is required")
	} else if len(data.ChangeDescription) < 50 {
		r.warn("changeDescription", "Description should be more detailed (at least 50 characters)")
	}

	if data.PresentMethod == "" {
		r.error("presentMethod", "Present method of accounting is required")
	}

	if data.ProposedMethod == "" {
		r.error("proposedMethod", "Proposed method of accounting is required")
	}

	if data.YearOfChangeReason == "" {
		r.warn("yearOfChangeReason", "Explanation for year of change is recommended")
	}

	return r
}

// PartIII validates the eligibility questions. Every conditional stands
// alone: an unanswered trigger question skips its dependent checks.
func PartIII(data forms.PartIII) Result {
	r := newResult()

	if data.PriorMethodChange == "yes" && data.PriorMethodChangeYear == "" {
		r.error("priorMethodChangeYear", "Year of prior change is required when prior change is indicated")
	}

	if data.ConsolidatedGroup == "yes" {
		if data.ParentName == "" {
			r.error("parentName", "Parent company name is required for consolidated group members")
		}

		if data.ParentEin == "" {
			r.error("parentEin", "Parent company EIN is required for consolidated group members")
		} else if !ValidEin(data.ParentEin) {
			r.error("parentEin", "Parent EIN must be in format XX-XXXXXXX")
		}
	}

	if data.UnderExamination == "yes" && data.ExaminingOffice == "" {
		r.error("examiningOffice", "Examining office is required when under examination")
	}

	if data.BooksAndRecords == "no" && data.BooksAndRecordsExplanation == "" {
		r.error("booksAndRecordsExplanation", "Explanation is required when books and records do not match proposed method")
	}

	return r
}

// PartIV validates the Section 481(a) block. requires481a comes from the
// change number resolver, or from the preparer's override on the filing.
//
// Zero is a valid income figure; an amount that was never entered is not.
func PartIV(data forms.PartIV, requires481a bool) Result {
	r := newResult()

	if !requires481a {
		return r
	}

	if data.PresentMethodIncome == nil {
		r.error("presentMethodIncome", "Present method income is required for 481(a) calculation")
	}

	if data.ProposedMethodIncome == nil {
		r.error("proposedMethodIncome", "Proposed method income is required for 481(a) calculation")
	}

	if data.SpreadPeriod == "" {
		r.warn("spreadPeriod", "Spread period should be selected")
	}

	// Unusually large adjustments get flagged for re-verification. For
	// display purposes untouched amounts count as zero here.
	present := decimal.Zero
	if data.PresentMethodIncome != nil {
		present = *data.PresentMethodIncome
	}

	proposed := decimal.Zero
	if data.ProposedMethodIncome != nil {
		proposed = *data.ProposedMethodIncome
	}

	if proposed.Sub(present).Abs().GreaterThan(adjustment.LargeAdjustmentThreshold) {
		r.warn("adjustmentAmount", "Large adjustment amount - please verify calculations")
	}

	return r
}
