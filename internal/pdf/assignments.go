package pdf

import (
	"errors"
	"strconv"
	"strings"

	"github.com/form3115-prep/backend/internal/forms"
	"github.com/form3115-prep/backend/internal/models"
	"github.com/rs/zerolog/log"
)

// Assignment is one value destined for a named form field.
type Assignment struct {
	Field   string
	Text    string
	Check   bool
	Checked bool
}

func setText(list []Assignment, part models.FormPart, field, value string) []Assignment {
	if value == "" {
		return list
	}
	path := target(part, field)
	if path == "" {
		return list
	}
	return append(list, Assignment{Field: path, Text: value})
}

func setCheck(list []Assignment, part models.FormPart, field string, checked bool) []Assignment {
	path := target(part, field)
	if path == "" {
		return list
	}
	return append(list, Assignment{Field: path, Check: true, Checked: checked})
}

// fallback returns the first non-empty value. Filing-level data always
// wins over the owning client's defaults.
func fallback(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Assignments derives the field writes for a filing. Stored payloads
// that fail to parse are logged and treated as empty; a part with no
// data simply contributes nothing.
func Assignments(filing models.Filing) []Assignment {
	var list []Assignment

	client := filing.Client

	partI, err := forms.DecodePartI(filing.PartI)
	if err != nil && !errors.Is(err, forms.ErrEmptyPayload) {
		log.Warn().Err(err).Str("filing", filing.ID.String()).Msg("skipping malformed Part I payload")
	}

	list = setText(list, models.FormPartI, "filerName", fallback(partI.FilerName, client.Name))
	list = setText(list, models.FormPartI, "filerEin", fallback(partI.FilerEin, client.Ein))
	list = setText(list, models.FormPartI, "filerAddress", fallback(partI.FilerAddress, client.Address))

	city := fallback(partI.FilerCity, client.City)
	state := fallback(partI.FilerState, client.State)
	zip := fallback(partI.FilerZip, client.ZipCode)
	list = setText(list, models.FormPartI, "filerCityStateZip", joinNonEmpty(", ", city, state, zip))

	list = setText(list, models.FormPartI, "contactName", fallback(partI.ContactName, client.ContactName))
	list = setText(list, models.FormPartI, "contactPhone", fallback(partI.ContactPhone, client.ContactPhone))
	list = setText(list, models.FormPartI, "taxYearBegin", partI.TaxYearBegin)
	list = setText(list, models.FormPartI, "taxYearEnd", fallback(partI.TaxYearEnd, client.TaxYearEnd))
	list = setText(list, models.FormPartI, "principalBusinessCode", partI.PrincipalBusinessCode)

	partII, err := forms.DecodePartII(filing.PartII)
	if err != nil && !errors.Is(err, forms.ErrEmptyPayload) {
		log.Warn().Err(err).Str("filing", filing.ID.String()).Msg("skipping malformed Part II payload")
	}

	list = setText(list, models.FormPartII, "dcn", fallback(partII.Dcn, filing.Dcn))
	list = setText(list, models.FormPartII, "changeDescription", partII.ChangeDescription)

	partIII, err := forms.DecodePartIII(filing.PartIII)
	if err != nil && !errors.Is(err, forms.ErrEmptyPayload) {
		log.Warn().Err(err).Str("filing", filing.ID.String()).Msg("skipping malformed Part III payload")
	}

	list = yesNoCheck(list, models.FormPartIII, "priorMethodChange", partIII.PriorMethodChange)
	list = yesNoCheck(list, models.FormPartIII, "consolidatedGroup", partIII.ConsolidatedGroup)
	list = yesNoCheck(list, models.FormPartIII, "transactionAdjustment", partIII.TransactionAdjustment)

	partIV, err := forms.DecodePartIV(filing.PartIV)
	if err != nil && !errors.Is(err, forms.ErrEmptyPayload) {
		log.Warn().Err(err).Str("filing", filing.ID.String()).Msg("skipping malformed Part IV payload")
	}

	yearOfChange := partIV.YearOfChange
	if yearOfChange == "" && filing.TaxYearOfChange != 0 {
		yearOfChange = strconv.Itoa(filing.TaxYearOfChange)
	}
	list = setText(list, models.FormPartIV, "yearOfChange", yearOfChange)

	if partIV.AdjustmentAmount != nil {
		list = setText(list, models.FormPartIV, "totalAdjustment", partIV.AdjustmentAmount.String())
	}

	switch partIV.SpreadPeriod {
	case "1":
		list = setCheck(list, models.FormPartIV, "spreadPeriod1Year", true)
	case "4":
		list = setCheck(list, models.FormPartIV, "spreadPeriod4Year", true)
	}

	scheduleA, err := forms.DecodeScheduleA(filing.ScheduleA)
	if err != nil && !errors.Is(err, forms.ErrEmptyPayload) {
		log.Warn().Err(err).Str("filing", filing.ID.String()).Msg("skipping malformed Schedule A payload")
	}

	list = setText(list, models.FormScheduleA, "incomeAccrued", scheduleA.IncomeAccrued)
	list = setText(list, models.FormScheduleA, "grossReceiptsAmount", scheduleA.AverageGrossReceipts)

	switch scheduleA.CurrentOverallMethod {
	case "cash":
		list = setCheck(list, models.FormScheduleA, "presentMethodCash", true)
	case "accrual":
		list = setCheck(list, models.FormScheduleA, "presentMethodAccrual", true)
	}

	switch scheduleA.ProposedOverallMethod {
	case "cash":
		list = setCheck(list, models.FormScheduleA, "proposedMethodCash", true)
	case "accrual":
		list = setCheck(list, models.FormScheduleA, "proposedMethodAccrual", true)
	}

	return list
}

// yesNoCheck ticks the yes or no box of a question's checkbox pair.
// An unanswered question leaves both boxes alone.
func yesNoCheck(list []Assignment, part models.FormPart, field, answer string) []Assignment {
	switch answer {
	case "yes":
		return setCheck(list, part, field+"Yes", true)
	case "no":
		return setCheck(list, part, field+"No", true)
	}
	return list
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
