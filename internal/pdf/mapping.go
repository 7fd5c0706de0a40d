// Package pdf fills the official form template from a filing's stored
// part payloads.
package pdf

import "github.com/form3115-prep/backend/internal/models"

// TemplateRevision is the form revision the field mapping below was
// built against. A template from another revision will not match these
// AcroForm paths.
const TemplateRevision = "Form 3115 (Rev. December 2022)"

// fieldMapping binds internal payload field names to AcroForm field
// paths in the template, per part. The table is known-incomplete: the
// official form expects free-text attachments for most of Part III's
// narrative answers and for Schedules B through E, so those have no
// form-field targets.
var fieldMapping = map[models.FormPart]map[string]string{
	models.FormPartI: {
		"filerName":             "topmostSubform[0].Page1[0].f1_1[0]",
		"filerAddress":          "topmostSubform[0].Page1[0].f1_2[0]",
		"filerCityStateZip":     "topmostSubform[0].Page1[0].f1_3[0]",
		"filerEin":              "topmostSubform[0].Page1[0].f1_4[0]",
		"principalBusinessCode": "topmostSubform[0].Page1[0].f1_5[0]",
		"taxYearBegin":          "topmostSubform[0].Page1[0].f1_6[0]",
		"taxYearEnd":            "topmostSubform[0].Page1[0].f1_7[0]",
		"contactName":           "topmostSubform[0].Page1[0].f1_8[0]",
		"nameOfApplicant":       "topmostSubform[0].Page1[0].f1_9[0]",
		"contactPhone":          "topmostSubform[0].Page1[0].f1_10[0]",
	},
	models.FormPartII: {
		"dcn":               "topmostSubform[0].Page1[0].f1_15[0]",
		"changeDescription": "topmostSubform[0].Page1[0].f1_16[0]",
	},
	models.FormPartIII: {
		"priorMethodChangeYes":     "topmostSubform[0].Page2[0].c2_11[0]",
		"priorMethodChangeNo":      "topmostSubform[0].Page2[0].c2_11[1]",
		"consolidatedGroupYes":     "topmostSubform[0].Page2[0].c2_9[0]",
		"consolidatedGroupNo":      "topmostSubform[0].Page2[0].c2_9[1]",
		"transactionAdjustmentYes": "topmostSubform[0].Page2[0].c2_14[0]",
		"transactionAdjustmentNo":  "topmostSubform[0].Page2[0].c2_14[1]",
	},
	models.FormPartIV: {
		"yearOfChange":      "topmostSubform[0].Page4[0].f4_1[0]",
		"totalAdjustment":   "topmostSubform[0].Page4[0].f4_2[0]",
		"spreadPeriod1Year": "topmostSubform[0].Page4[0].c4_1[0]",
		"spreadPeriod4Year": "topmostSubform[0].Page4[0].c4_1[1]",
	},
	models.FormScheduleA: {
		"presentMethodCash":     "topmostSubform[0].Page4[0].c4_5[0]",
		"presentMethodAccrual":  "topmostSubform[0].Page4[0].c4_5[1]",
		"proposedMethodCash":    "topmostSubform[0].Page4[0].c4_6[0]",
		"proposedMethodAccrual": "topmostSubform[0].Page4[0].c4_6[1]",
		"incomeAccrued":         "topmostSubform[0].Page4[0].f4_3[0]",
		"grossReceiptsAmount":   "topmostSubform[0].Page4[0].f4_4[0]",
	},
}

// target returns the AcroForm path for a part's internal field name,
// or "" when the mapping defines none.
func target(part models.FormPart, field string) string {
	return fieldMapping[part][field]
}

// mappedTargets lists every AcroForm path the mapping table refers to.
func mappedTargets() []string {
	var targets []string
	for _, fields := range fieldMapping {
		for _, path := range fields {
			targets = append(targets, path)
		}
	}
	return targets
}
