package v1

import (
	"fmt"

	"github.com/form3115-prep/backend/internal/dcn"
	"github.com/form3115-prep/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type DcnLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/dcns/184"`                      // The reference record itself
	Requirements string `json:"requirements" example:"https://example.com/api/v1/dcns/184/requirements"` // Resolved filing requirements
}

// Dcn is one reference record from the automatic change list.
type Dcn struct {
	DcnNumber         string   `json:"dcnNumber" example:"184"`                          // The designated change number
	Description       string   `json:"description" example:"Small business taxpayer exception from requirement to capitalize costs under section 263A"` // What the change covers
	Category          string   `json:"category" example:"unicap"`                        // Category tag
	IsAutomatic       bool     `json:"isAutomatic" example:"true"`                       // Eligible for automatic consent
	Requires481a      bool     `json:"requires481a" example:"true"`                      // Whether a 481(a) adjustment is required
	SpreadPeriod      *int     `json:"spreadPeriod" example:"4"`                         // Suggested recognition period in years
	RequiredSchedules []string `json:"requiredSchedules" example:"schedule-a"`           // Schedules the change requires
	RevProcReference  string   `json:"revProcReference" example:"Rev. Proc. 2025-23"`    // Regulatory citation
	Links             DcnLinks `json:"links"`
}

func newDcn(c *gin.Context, model models.DcnReference) Dcn {
	url := baseURL(c)

	schedules := make([]string, 0)
	for _, s := range []struct {
		part     models.FormPart
		required bool
	}{
		{models.FormScheduleA, model.RequiresScheduleA},
		{models.FormScheduleB, model.RequiresScheduleB},
		{models.FormScheduleC, model.RequiresScheduleC},
		{models.FormScheduleD, model.RequiresScheduleD},
		{models.FormScheduleE, model.RequiresScheduleE},
	} {
		if s.required {
			schedules = append(schedules, string(s.part))
		}
	}

	return Dcn{
		DcnNumber:         model.DcnNumber,
		Description:       model.Description,
		Category:          model.Category,
		IsAutomatic:       model.IsAutomatic,
		Requires481a:      model.Requires481a,
		SpreadPeriod:      model.SpreadPeriod,
		RequiredSchedules: schedules,
		RevProcReference:  model.RevProcReference,
		Links: DcnLinks{
			Self:         fmt.Sprintf("%s/v1/dcns/%s", url, model.DcnNumber),
			Requirements: fmt.Sprintf("%s/v1/dcns/%s/requirements", url, model.DcnNumber),
		},
	}
}

type DcnListResponse struct {
	Data  []Dcn   `json:"data"`                                                       // List of reference records
	Error *string `json:"error" example:"there is no change number reference matching your query"` // The error, if any occurred
}

type DcnResponse struct {
	Data  *Dcn    `json:"data"`                                                       // The reference record
	Error *string `json:"error" example:"there is no change number reference matching your query"` // The error, if any occurred
}

// DcnRequirements is the resolver output for one change number. Found
// is false for numbers without a reference record; the defaults then
// let manual entry proceed.
type DcnRequirements struct {
	DcnNumber        string            `json:"dcnNumber" example:"7"`         // The number the requirements were resolved for
	Found            bool              `json:"found" example:"true"`          // Whether a reference record matched
	IsAutomatic      bool              `json:"isAutomatic" example:"true"`    // Eligible for automatic consent
	Requires481a     bool              `json:"requires481a" example:"true"`   // Whether a 481(a) adjustment is required
	SpreadPeriod     int               `json:"spreadPeriod" example:"4"`      // Recognition period in years
	RequiredSections []models.FormPart `json:"requiredSections"`              // Parts and schedules the filing needs
}

type DcnRequirementsResponse struct {
	Data  *DcnRequirements `json:"data"`                              // The resolved requirements
	Error *string          `json:"error" example:"an error occurred"` // The error, if any occurred
}

func newDcnRequirements(number string, req dcn.Requirements, found bool) DcnRequirements {
	return DcnRequirements{
		DcnNumber:        number,
		Found:            found,
		IsAutomatic:      req.IsAutomatic,
		Requires481a:     req.Requires481a,
		SpreadPeriod:     req.SpreadPeriod,
		RequiredSections: req.RequiredSections,
	}
}

type DcnQueryFilter struct {
	Search   string `form:"search"`   // By substring in number or description
	Category string `form:"category"` // By exact category
}
