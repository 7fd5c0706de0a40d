package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/form3115-prep/backend/internal/controllers/v1"
	"github.com/form3115-prep/backend/internal/models"
	"github.com/form3115-prep/backend/test"
	"github.com/google/uuid"
)

const testPartI = `{
	"filerName": "Acme Manufacturing Corp",
	"filerEin": "12-3456789",
	"filerAddress": "100 Industrial Way",
	"filerCity": "Columbus",
	"filerState": "OH",
	"filerZip": "43004",
	"contactPhone": "614-555-0100",
	"principalBusinessCode": "339999"
}`

const testPartII = `{
	"dcn": "7",
	"changeType": "automatic",
	"changeDescription": "Change from an impermissible to a permissible method of depreciation for certain assets.",
	"presentMethod": "Straight-line over 39 years",
	"proposedMethod": "MACRS 15-year recovery period",
	"yearOfChangeReason": "First year the error was identified"
}`

func (suite *TestSuiteStandard) TestCreateFiling() {
	client := suite.createTestClient(v1.ClientEditable{})
	filing := suite.createTestFiling(v1.FilingEditable{ClientID: client.ID, TaxYearOfChange: 2025})

	suite.Assert().Equal(models.FilingStatusDraft, filing.Status)
	suite.Assert().Equal(0, filing.CompletionPercentage)
	suite.Assert().Empty(filing.Parts)
}

func (suite *TestSuiteStandard) TestCreateFilingInvalidTaxYear() {
	client := suite.createTestClient(v1.ClientEditable{})

	r := suite.request(http.MethodPost, "http://example.com/v1/filings", []v1.FilingEditable{
		{ClientID: client.ID, TaxYearOfChange: 1887},
	})

	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestUpdateFilingInvalidTaxYear() {
	client := suite.createTestClient(v1.ClientEditable{})
	filing := suite.createTestFiling(v1.FilingEditable{ClientID: client.ID, TaxYearOfChange: 2025})

	r := suite.request(http.MethodPatch, filing.Links.Self, map[string]any{
		"taxYearOfChange": 1800,
	})

	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreateFilingForForeignClient() {
	// A client of another user must not accept filings
	otherUser := uuid.New()
	foreignClient := suite.createTestClient(v1.ClientEditable{})

	r := suite.requestAs(otherUser, http.MethodPost, "http://example.com/v1/filings", []v1.FilingEditable{
		{ClientID: foreignClient.ID, TaxYearOfChange: 2025},
	})

	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestGetFilings() {
	client := suite.createTestClient(v1.ClientEditable{})
	suite.createTestFiling(v1.FilingEditable{ClientID: client.ID})
	suite.createTestFiling(v1.FilingEditable{ClientID: client.ID})

	r := suite.request(http.MethodGet, "http://example.com/v1/filings", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.FilingListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Len(response.Data, 2)
}

func (suite *TestSuiteStandard) TestGetFilingsFilterByClient() {
	client := suite.createTestClient(v1.ClientEditable{})
	other := suite.createTestClient(v1.ClientEditable{})
	filing := suite.createTestFiling(v1.FilingEditable{ClientID: client.ID})
	suite.createTestFiling(v1.FilingEditable{ClientID: other.ID})

	r := suite.request(http.MethodGet, fmt.Sprintf("http://example.com/v1/filings?client=%s", client.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.FilingListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal(filing.ID, response.Data[0].ID)
}

func (suite *TestSuiteStandard) TestUpdateFiling() {
	client := suite.createTestClient(v1.ClientEditable{})
	filing := suite.createTestFiling(v1.FilingEditable{ClientID: client.ID, TaxYearOfChange: 2024})

	r := suite.request(http.MethodPatch, filing.Links.Self, map[string]any{
		"taxYearOfChange": 2025,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = suite.request(http.MethodGet, filing.Links.Self, "")
	var response v1.FilingResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(2025, response.Data.TaxYearOfChange)
}

func (suite *TestSuiteStandard) TestUpdateFilingStatus() {
	client := suite.createTestClient(v1.ClientEditable{})
	filing := suite.createTestFiling(v1.FilingEditable{ClientID: client.ID})

	r := suite.request(http.MethodPatch, filing.Links.Self, map[string]any{
		"status": "ready",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = suite.request(http.MethodGet, filing.Links.Self, "")
	var response v1.FilingResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(models.FilingStatusReady, response.Data.Status)

	r = suite.request(http.MethodPatch, filing.Links.Self, map[string]any{
		"status": "completed",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestUpdateFilingInvalidStatus() {
	client := suite.createTestClient(v1.ClientEditable{})
	filing := suite.createTestFiling(v1.FilingEditable{ClientID: client.ID})

	r := suite.request(http.MethodPatch, filing.Links.Self, map[string]any{
		"status": "shipped",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestUpdateFilingToForeignClient() {
	client := suite.createTestClient(v1.ClientEditable{})
	filing := suite.createTestFiling(v1.FilingEditable{ClientID: client.ID})

	// A client created by another user
	var foreign models.Client
	foreign.UserID = uuid.New()
	foreign.Name = "Foreign Client"
	suite.Require().NoError(models.DB.Create(&foreign).Error)

	r := suite.request(http.MethodPatch, filing.Links.Self, map[string]any{
		"clientId": foreign.ID,
	})

	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDeleteFiling() {
	client := suite.createTestClient(v1.ClientEditable{})
	filing := suite.createTestFiling(v1.FilingEditable{ClientID: client.ID})

	r := suite.request(http.MethodDelete, filing.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(http.MethodGet, filing.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestSaveFilingPartMovesWorkflow() {
	client := suite.createTestClient(v1.ClientEditable{})
	filing := suite.createTestFiling(v1.FilingEditable{ClientID: client.ID})

	r := suite.request(http.MethodPatch, filing.Links.Parts+"/part-i", testPartI)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.FilingPartResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(models.FilingStatusInProgress, response.Data.Status)
	suite.Assert().Equal(25, response.Data.CompletionPercentage)
	suite.Assert().Equal("part-i", response.Data.LastSavedStep)
	suite.Assert().Contains(response.Data.Parts, models.FormPartI)
}

func (suite *TestSuiteStandard) TestSaveFilingPartRejectsInvalidData() {
	client := suite.createTestClient(v1.ClientEditable{})
	filing := suite.createTestFiling(v1.FilingEditable{ClientID: client.ID})

	r := suite.request(http.MethodPatch, filing.Links.Parts+"/part-i", `{"filerEin": "12-34567"}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnprocessableEntity)

	var response v1.FilingPartResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Validation)
	suite.Assert().Equal("EIN must be in format XX-XXXXXXX", response.Validation.Errors["filerEin"])

	// Nothing was saved
	r = suite.request(http.MethodGet, filing.Links.Self, "")
	var after v1.FilingResponse
	test.DecodeResponse(suite.T(), &r, &after)
	suite.Assert().NotContains(after.Data.Parts, models.FormPartI)
	suite.Assert().Equal(models.FilingStatusDraft, after.Data.Status)
}

func (suite *TestSuiteStandard) TestSaveFilingPartIILiftsChangeNumber() {
	client := suite.createTestClient(v1.ClientEditable{})
	filing := suite.createTestFiling(v1.FilingEditable{ClientID: client.ID})

	r := suite.request(http.MethodPatch, filing.Links.Parts+"/part-ii", testPartII)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.FilingPartResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("7", response.Data.Dcn)
	suite.Assert().Equal("automatic", response.Data.ChangeType)
	suite.Assert().Equal(50, response.Data.CompletionPercentage)
}

func (suite *TestSuiteStandard) TestSaveFilingPartIVEmbedsAdjustment() {
	client := suite.createTestClient(v1.ClientEditable{})
	filing := suite.createTestFiling(v1.FilingEditable{ClientID: client.ID, Dcn: "184"})

	r := suite.request(http.MethodPatch, filing.Links.Parts+"/part-iv", `{
		"presentMethodIncome": "100000",
		"proposedMethodIncome": "150000"
	}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.FilingPartResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Contains(response.Data.Parts, models.FormPartIV)

	stored := string(response.Data.Parts[models.FormPartIV])
	suite.Assert().Contains(stored, `"adjustmentAmount":"50000"`)
	suite.Assert().Contains(stored, `"adjustmentDirection":"positive"`)

	// DCN 184 suggests the general four year spread
	suite.Assert().Contains(stored, `"spreadPeriod":"4"`)
	suite.Assert().Contains(stored, `"yearOneAmount":"12500"`)
}

func (suite *TestSuiteStandard) TestSaveFilingPartIVRequiredByDcn() {
	client := suite.createTestClient(v1.ClientEditable{})
	filing := suite.createTestFiling(v1.FilingEditable{ClientID: client.ID, Dcn: "184"})

	// DCN 184 requires a 481(a) adjustment, so empty income figures
	// reject the save
	r := suite.request(http.MethodPatch, filing.Links.Parts+"/part-iv", `{"requires481a": "yes"}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnprocessableEntity)

	var response v1.FilingPartResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Validation)
	suite.Assert().Contains(response.Validation.Errors, "presentMethodIncome")
}

func (suite *TestSuiteStandard) TestSaveFilingPartUnknownPart() {
	client := suite.createTestClient(v1.ClientEditable{})
	filing := suite.createTestFiling(v1.FilingEditable{ClientID: client.ID})

	r := suite.request(http.MethodPatch, filing.Links.Parts+"/part-x", `{}`)

	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestSaveFilingPartEmptyBody() {
	client := suite.createTestClient(v1.ClientEditable{})
	filing := suite.createTestFiling(v1.FilingEditable{ClientID: client.ID})

	r := suite.request(http.MethodPatch, filing.Links.Parts+"/part-i", "")

	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestSaveFilingPartScheduleWarningsDoNotBlock() {
	client := suite.createTestClient(v1.ClientEditable{})
	filing := suite.createTestFiling(v1.FilingEditable{ClientID: client.ID, Dcn: "122"})

	r := suite.request(http.MethodPatch, filing.Links.Parts+"/schedule-a", `{
		"currentOverallMethod": "accrual",
		"proposedOverallMethod": "cash",
		"grossReceiptsTest": "no",
		"averageGrossReceipts": "35000000"
	}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.FilingPartResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Validation)
	suite.Assert().Contains(response.Validation.Warnings, "averageGrossReceipts")
	suite.Assert().Contains(response.Data.Parts, models.FormScheduleA)
}

func (suite *TestSuiteStandard) TestGetFilingValidation() {
	client := suite.createTestClient(v1.ClientEditable{})
	filing := suite.createTestFiling(v1.FilingEditable{ClientID: client.ID})

	r := suite.request(http.MethodPatch, filing.Links.Parts+"/part-i", testPartI)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	r = suite.request(http.MethodPatch, filing.Links.Parts+"/part-ii", testPartII)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = suite.request(http.MethodGet, filing.Links.Validation, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.FilingValidationResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)

	// DCN 7 requires a 481(a) adjustment
	suite.Assert().True(response.Data.Requires481a)
	suite.Assert().Contains(response.Data.Parts, models.FormPartI)
	suite.Assert().Contains(response.Data.Parts, models.FormPartII)

	// Part IV has not been saved yet
	suite.Assert().Contains(response.Data.Overall.Errors, "partIV")
	suite.Assert().Contains(response.Data.Overall.Warnings, "partIII")
}

func (suite *TestSuiteStandard) TestGetFilingPdfWithoutTemplate() {
	client := suite.createTestClient(v1.ClientEditable{})
	filing := suite.createTestFiling(v1.FilingEditable{ClientID: client.ID})

	// The test configuration points at a template that does not exist
	r := suite.request(http.MethodGet, filing.Links.Pdf, "")

	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}

func (suite *TestSuiteStandard) TestFilingOfOtherUserNotFound() {
	client := suite.createTestClient(v1.ClientEditable{})
	filing := suite.createTestFiling(v1.FilingEditable{ClientID: client.ID})

	for _, url := range []string{
		filing.Links.Self,
		filing.Links.Validation,
		filing.Links.Pdf,
	} {
		r := suite.requestAs(uuid.New(), http.MethodGet, url, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	}
}
