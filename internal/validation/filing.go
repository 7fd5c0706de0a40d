package validation

import (
	"github.com/form3115-prep/backend/internal/forms"
	"github.com/form3115-prep/backend/internal/models"
)

// ForPart runs the validator matching a single form part against its
// stored payload. requires481a only affects "part-iv".
func ForPart(part models.FormPart, blob string, requires481a bool) (Result, error) {
	switch part {
	case models.FormPartI:
		data, err := forms.DecodePartI(blob)
		if err != nil {
			return Result{}, err
		}
		return PartI(data), nil

	case models.FormPartII:
		data, err := forms.DecodePartII(blob)
		if err != nil {
			return Result{}, err
		}
		return PartII(data), nil

	case models.FormPartIII:
		data, err := forms.DecodePartIII(blob)
		if err != nil {
			return Result{}, err
		}
		return PartIII(data), nil

	case models.FormPartIV:
		data, err := forms.DecodePartIV(blob)
		if err != nil {
			return Result{}, err
		}
		return PartIV(data, requires481a), nil

	case models.FormScheduleA:
		data, err := forms.DecodeScheduleA(blob)
		if err != nil {
			return Result{}, err
		}
		return ScheduleA(data), nil

	case models.FormScheduleB:
		data, err := forms.DecodeScheduleB(blob)
		if err != nil {
			return Result{}, err
		}
		return ScheduleB(data), nil

	case models.FormScheduleC:
		data, err := forms.DecodeScheduleC(blob)
		if err != nil {
			return Result{}, err
		}
		return ScheduleC(data), nil

	case models.FormScheduleD:
		data, err := forms.DecodeScheduleD(blob)
		if err != nil {
			return Result{}, err
		}
		return ScheduleD(data), nil

	case models.FormScheduleE:
		data, err := forms.DecodeScheduleE(blob)
		if err != nil {
			return Result{}, err
		}
		return ScheduleE(data), nil

	default:
		return Result{}, models.ErrFilingInvalidPart
	}
}

// Filing checks a filing for overall completeness. Parts I and II must
// be saved and pass their own validators, Part III is merely
// recommended, and Part IV is mandatory when the change requires a
// Section 481(a) adjustment. Malformed stored payloads count as not
// complete.
func Filing(f models.Filing, requires481a bool) Result {
	r := newResult()

	partI, err := forms.DecodePartI(f.PartI)
	switch {
	case err != nil:
		r.error("partI", "Part I (Filer Information) is not complete")
	case !PartI(partI).Valid():
		r.error("partI", "Part I has validation errors")
	}

	partII, err := forms.DecodePartII(f.PartII)
	switch {
	case err != nil:
		r.error("partII", "Part II (Change Information) is not complete")
	case !PartII(partII).Valid():
		r.error("partII", "Part II has validation errors")
	}

	if _, err := forms.DecodePartIII(f.PartIII); err != nil {
		r.warn("partIII", "Part III (Change Details) is not complete")
	}

	if requires481a {
		if _, err := forms.DecodePartIV(f.PartIV); err != nil {
			r.error("partIV", "Part IV (Section 481(a) Adjustment) is required for this DCN")
		}
	}

	return r
}
