package v1

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/form3115-prep/backend/internal/adjustment"
	"github.com/form3115-prep/backend/internal/dcn"
	"github.com/form3115-prep/backend/internal/forms"
	"github.com/form3115-prep/backend/internal/models"
	f3_uuid "github.com/form3115-prep/backend/internal/uuid"
	"github.com/form3115-prep/backend/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FilingEditable represents all user configurable parameters
type FilingEditable struct {
	ClientID        uuid.UUID `json:"clientId" example:"d0d2a20d-91cd-4f3c-8e4f-6b3b2c9e8a11"` // ID of the client the filing belongs to
	TaxYearOfChange int       `json:"taxYearOfChange" example:"2025"`                          // Tax year the change takes effect in
	Dcn             string    `json:"dcn" example:"7" default:""`                              // Selected Designated Change Number
	ChangeType      string    `json:"changeType" example:"automatic" default:""`               // "automatic" or "advance_consent"

	// Workflow status. Part saves move draft filings to in_progress on
	// their own, the ready and completed transitions are explicit.
	Status models.FilingStatus `json:"status" example:"in_progress" default:"draft"`
}

func (editable FilingEditable) model() models.Filing {
	return models.Filing{
		ClientID:        editable.ClientID,
		TaxYearOfChange: editable.TaxYearOfChange,
		Dcn:             editable.Dcn,
		ChangeType:      editable.ChangeType,
		Status:          editable.Status,
	}
}

type FilingLinks struct {
	Self       string `json:"self" example:"https://example.com/api/v1/filings/2f1f209d-7f57-4b27-9b6b-6f3a1457c4a2"`            // The filing itself
	Client     string `json:"client" example:"https://example.com/api/v1/clients/d0d2a20d-91cd-4f3c-8e4f-6b3b2c9e8a11"`          // The owning client
	Parts      string `json:"parts" example:"https://example.com/api/v1/filings/2f1f209d-7f57-4b27-9b6b-6f3a1457c4a2/parts"`      // Per-part save endpoint
	Validation string `json:"validation" example:"https://example.com/api/v1/filings/2f1f209d-7f57-4b27-9b6b-6f3a1457c4a2/validation"` // Whole-filing validation
	Pdf        string `json:"pdf" example:"https://example.com/api/v1/filings/2f1f209d-7f57-4b27-9b6b-6f3a1457c4a2/pdf"`          // Filled form download
}

type Filing struct {
	models.DefaultModel
	FilingEditable
	LastSavedStep        string                              `json:"lastSavedStep" example:"part-ii"` // Tag of the part saved last
	CompletionPercentage int                                 `json:"completionPercentage" example:"50"` // Derived progress indicator
	Parts                map[models.FormPart]json.RawMessage `json:"parts"`                         // Saved part payloads
	Links                FilingLinks                         `json:"links"`
}

func newFiling(c *gin.Context, model models.Filing) Filing {
	url := baseURL(c)

	parts := make(map[models.FormPart]json.RawMessage)
	for _, part := range models.FormParts {
		if blob := model.Payload(part); blob != "" {
			parts[part] = json.RawMessage(blob)
		}
	}

	return Filing{
		DefaultModel: model.DefaultModel,
		FilingEditable: FilingEditable{
			ClientID:        model.ClientID,
			TaxYearOfChange: model.TaxYearOfChange,
			Dcn:             model.Dcn,
			ChangeType:      model.ChangeType,
			Status:          model.Status,
		},
		LastSavedStep:        model.LastSavedStep,
		CompletionPercentage: model.CompletionPercentage,
		Parts:                parts,
		Links: FilingLinks{
			Self:       fmt.Sprintf("%s/v1/filings/%s", url, model.ID),
			Client:     fmt.Sprintf("%s/v1/clients/%s", url, model.ClientID),
			Parts:      fmt.Sprintf("%s/v1/filings/%s/parts", url, model.ID),
			Validation: fmt.Sprintf("%s/v1/filings/%s/validation", url, model.ID),
			Pdf:        fmt.Sprintf("%s/v1/filings/%s/pdf", url, model.ID),
		},
	}
}

type FilingListResponse struct {
	Data       []Filing    `json:"data"`                                                          // List of Filings
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type FilingCreateResponse struct {
	Data  []FilingResponse `json:"data"`                                                          // List of the created Filings or their respective error
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *FilingCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, FilingResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type FilingResponse struct {
	Data  *Filing `json:"data"`                                                          // Data for the Filing
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// FilingPartResponse is returned by the per-part save endpoint. The
// validation result is always included so that warnings reach the
// caller even for successful saves.
type FilingPartResponse struct {
	Data       *Filing            `json:"data"`                                                     // The filing after the save
	Validation *validation.Result `json:"validation"`                                               // Errors and warnings for the saved part
	Error      *string            `json:"error" example:"the data did not pass validation and has not been saved"` // The error, if any occurred
}

// FilingValidation is the whole-filing validation report.
type FilingValidation struct {
	Requires481a bool                                  `json:"requires481a"` // Whether the selected change requires a 481(a) adjustment
	Parts        map[models.FormPart]validation.Result `json:"parts"`        // Per-part results for all saved parts
	Overall      validation.Result                     `json:"overall"`      // Completeness of the filing as a whole
}

type FilingValidationResponse struct {
	Data  *FilingValidation `json:"data"`                                                          // The validation report
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type FilingQueryFilter struct {
	ClientID        f3_uuid.UUID `form:"client"`                          // By ID of the client
	Status          string       `form:"status"`                          // By workflow status
	TaxYearOfChange int          `form:"taxYearOfChange"`                 // By tax year of change
	Dcn             string       `form:"dcn"`                             // By selected change number
	Offset          uint         `form:"offset" filterField:"false"`      // The offset of the first Filing returned. Defaults to 0.
	Limit           int          `form:"limit" filterField:"false"`       // Maximum number of Filings to return. Defaults to 50.
}

func (f FilingQueryFilter) model() (models.Filing, error) {
	return models.Filing{
		ClientID:        f.ClientID.UUID,
		Status:          models.FilingStatus(f.Status),
		TaxYearOfChange: f.TaxYearOfChange,
		Dcn:             f.Dcn,
	}, nil
}

// requires481a resolves whether the filing's change number requires a
// Section 481(a) adjustment. When the number matches no reference row
// the preparer's own answer on Part IV decides.
func requires481a(f models.Filing) (bool, error) {
	number := f.Dcn
	if number == "" {
		if partII, err := forms.DecodePartII(f.PartII); err == nil {
			number = partII.Dcn
		}
	}

	if number != "" {
		req, found, err := dcn.Resolve(models.DB, number)
		if err != nil {
			return false, err
		}
		if found {
			return req.Requires481a, nil
		}
	}

	partIV, err := forms.DecodePartIV(f.PartIV)
	return err == nil && partIV.Requires481a == "yes", nil
}

// savePart validates a part payload and, when it passes, stores it on
// the filing. Part II lifts the change number and change type onto the
// filing row; Part IV gets the computed adjustment embedded before
// storage.
func savePart(f *models.Filing, part models.FormPart, blob string, needs481a bool) (validation.Result, error) {
	result, err := validation.ForPart(part, blob, needs481a)
	if err != nil {
		return result, err
	}

	if !result.Valid() {
		return result, nil
	}

	switch part {
	case models.FormPartII:
		data, _ := forms.DecodePartII(blob)
		f.Dcn = data.Dcn
		f.ChangeType = data.ChangeType

	case models.FormPartIV:
		data, _ := forms.DecodePartIV(blob)
		blob, err = embedAdjustment(data, f.Dcn)
		if err != nil {
			return result, err
		}
	}

	return result, f.SetPayload(part, blob)
}

// embedAdjustment computes the 481(a) distribution from the entered
// income figures and writes it into the payload. Payloads without both
// figures are stored untouched.
func embedAdjustment(data forms.PartIV, number string) (string, error) {
	if data.PresentMethodIncome == nil || data.ProposedMethodIncome == nil {
		return forms.Encode(data)
	}

	spread := 0
	if data.SpreadPeriod != "" {
		spread, _ = strconv.Atoi(data.SpreadPeriod)
	}
	if spread == 0 && number != "" {
		if req, found, err := dcn.Resolve(models.DB, number); err == nil && found {
			spread = req.SpreadPeriod
		}
	}

	a := adjustment.Calculate(*data.PresentMethodIncome, *data.ProposedMethodIncome, spread)

	data.AdjustmentAmount = &a.Amount
	data.AdjustmentDirection = string(a.Direction)
	data.SpreadPeriod = strconv.Itoa(a.SpreadPeriod)
	data.YearOneAmount = &a.YearAmounts[0]
	data.YearTwoAmount = &a.YearAmounts[1]
	data.YearThreeAmount = &a.YearAmounts[2]
	data.YearFourAmount = &a.YearAmounts[3]

	return forms.Encode(data)
}
