package dcn

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/form3115-prep/backend/internal/models"
	"gorm.io/gorm"
)

// defaultSpreadPeriod applies when a change requires a 481(a) adjustment
// but the reference row does not suggest a period. Four years is the
// general rule for positive adjustments under Rev. Proc. 2015-13.
const defaultSpreadPeriod = 4

// Requirements describes what a selected change number demands of a filing.
type Requirements struct {
	DcnNumber    string `json:"dcnNumber" example:"122"`
	IsAutomatic  bool   `json:"isAutomatic" example:"true"`
	Requires481a bool   `json:"requires481a" example:"true"`

	// SpreadPeriod is the suggested recognition period in tax years.
	// Zero when no 481(a) adjustment is required.
	SpreadPeriod int `json:"spreadPeriod" example:"4"`

	// RequiredSections lists the form parts that must be completed for
	// this change, ordered as they appear on the form.
	RequiredSections []models.FormPart `json:"requiredSections"`
}

// Resolve returns the requirements for a change number.
//
// A number with no reference row is not an error: preparers may enter
// changes this tool does not know about. In that case found is false and
// the zero Requirements (nothing beyond Parts I-III) is returned.
func Resolve(db *gorm.DB, number string) (Requirements, bool, error) {
	var ref models.DcnReference
	err := db.Where(&models.DcnReference{DcnNumber: strings.TrimSpace(number)}).First(&ref).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, models.ErrResourceNotFound) {
			return Requirements{DcnNumber: number, RequiredSections: baseSections()}, false, nil
		}

		return Requirements{}, false, err
	}

	return requirementsFor(ref), true, nil
}

func requirementsFor(ref models.DcnReference) Requirements {
	r := Requirements{
		DcnNumber:        ref.DcnNumber,
		IsAutomatic:      ref.IsAutomatic,
		Requires481a:     ref.Requires481a,
		RequiredSections: baseSections(),
	}

	if ref.Requires481a {
		r.SpreadPeriod = defaultSpreadPeriod
		if ref.SpreadPeriod != nil {
			r.SpreadPeriod = *ref.SpreadPeriod
		}

		r.RequiredSections = append(r.RequiredSections, models.FormPartIV)
	}

	for _, s := range []struct {
		required bool
		part     models.FormPart
	}{
		{ref.RequiresScheduleA, models.FormScheduleA},
		{ref.RequiresScheduleB, models.FormScheduleB},
		{ref.RequiresScheduleC, models.FormScheduleC},
		{ref.RequiresScheduleD, models.FormScheduleD},
		{ref.RequiresScheduleE, models.FormScheduleE},
	} {
		if s.required {
			r.RequiredSections = append(r.RequiredSections, s.part)
		}
	}

	return r
}

// baseSections returns the parts every filing needs regardless of the
// selected change.
func baseSections() []models.FormPart {
	return []models.FormPart{models.FormPartI, models.FormPartII, models.FormPartIII}
}

// Search returns reference rows matching a case-insensitive substring of
// the change number or description, optionally restricted to an exact
// category. Results are ordered by change number.
func Search(db *gorm.DB, query, category string) ([]models.DcnReference, error) {
	q := db.Model(&models.DcnReference{})

	if query != "" {
		like := "%" + strings.ToLower(query) + "%"
		q = q.Where("LOWER(dcn_number) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	if category != "" {
		q = q.Where("category = ?", category)
	}

	var refs []models.DcnReference
	err := q.Find(&refs).Error
	if err != nil {
		return nil, err
	}

	SortByNumber(refs)
	return refs, nil
}

// SortByNumber orders reference rows by change number.
//
// Change numbers are numeric with an optional letter suffix, so "9" sorts
// before "10" and "64" before "64a". Lexical ordering would interleave
// them wrongly, which is why the sort happens here and not in SQL.
func SortByNumber(refs []models.DcnReference) {
	sort.SliceStable(refs, func(i, j int) bool {
		return numberLess(refs[i].DcnNumber, refs[j].DcnNumber)
	})
}

func numberLess(a, b string) bool {
	an, as := splitNumber(a)
	bn, bs := splitNumber(b)

	if an != bn {
		return an < bn
	}

	return as < bs
}

// splitNumber splits a change number into its numeric part and suffix.
// Numbers without leading digits sort after all numeric ones.
func splitNumber(number string) (int, string) {
	number = strings.TrimSpace(number)

	i := 0
	for i < len(number) && number[i] >= '0' && number[i] <= '9' {
		i++
	}

	if i == 0 {
		return int(^uint(0) >> 1), strings.ToLower(number)
	}

	n, err := strconv.Atoi(number[:i])
	if err != nil {
		return int(^uint(0) >> 1), strings.ToLower(number)
	}

	return n, strings.ToLower(number[i:])
}
