package models_test

import (
	"github.com/form3115-prep/backend/internal/models"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) TestFilingDefaultsToDraft() {
	client := suite.createTestClient(models.Client{})
	filing := suite.createTestFiling(models.Filing{ClientID: client.ID})

	suite.Assert().Equal(models.FilingStatusDraft, filing.Status)
	suite.Assert().Equal(0, filing.CompletionPercentage)
}

func (suite *TestSuiteStandard) TestFilingRequiresClient() {
	err := models.DB.Create(&models.Filing{ClientID: uuid.New(), TaxYearOfChange: 2025}).Error

	suite.Assert().Error(err)
}

func (suite *TestSuiteStandard) TestSetPayloadMovesWorkflow() {
	var f models.Filing
	f.Status = models.FilingStatusDraft

	suite.Require().NoError(f.SetPayload(models.FormPartI, `{"filerName":"Acme"}`))

	suite.Assert().Equal(models.FilingStatusInProgress, f.Status)
	suite.Assert().Equal("part-i", f.LastSavedStep)
	suite.Assert().Equal(25, f.CompletionPercentage)
	suite.Assert().Equal(`{"filerName":"Acme"}`, f.Payload(models.FormPartI))
}

func (suite *TestSuiteStandard) TestSetPayloadCompletionOnlyMovesForward() {
	var f models.Filing

	suite.Require().NoError(f.SetPayload(models.FormPartIV, `{}`))
	suite.Assert().Equal(100, f.CompletionPercentage)

	// Going back to an earlier part must not lower the percentage
	suite.Require().NoError(f.SetPayload(models.FormPartI, `{}`))
	suite.Assert().Equal(100, f.CompletionPercentage)
	suite.Assert().Equal("part-i", f.LastSavedStep)
}

func (suite *TestSuiteStandard) TestSetPayloadSchedulesKeepPercentage() {
	var f models.Filing

	suite.Require().NoError(f.SetPayload(models.FormScheduleA, `{}`))

	suite.Assert().Equal(0, f.CompletionPercentage)
	suite.Assert().Equal("schedule-a", f.LastSavedStep)
}

func (suite *TestSuiteStandard) TestSetPayloadUnknownPart() {
	var f models.Filing

	err := f.SetPayload("part-x", `{}`)

	suite.Assert().ErrorIs(err, models.ErrFilingInvalidPart)
}

func (suite *TestSuiteStandard) TestGetFilingScopedToUser() {
	client := suite.createTestClient(models.Client{})
	filing := suite.createTestFiling(models.Filing{ClientID: client.ID})

	found, err := models.GetFiling(models.DB, client.UserID, filing.ID)
	suite.Require().NoError(err)
	suite.Assert().Equal(client.ID, found.Client.ID, "client must be preloaded")

	_, err = models.GetFiling(models.DB, uuid.New(), filing.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestUserFilings() {
	client := suite.createTestClient(models.Client{})
	other := suite.createTestClient(models.Client{})

	suite.createTestFiling(models.Filing{ClientID: client.ID})
	suite.createTestFiling(models.Filing{ClientID: client.ID})
	suite.createTestFiling(models.Filing{ClientID: other.ID})

	var count int64
	err := models.UserFilings(models.DB, client.UserID).Count(&count).Error

	suite.Require().NoError(err)
	suite.Assert().Equal(int64(2), count)
}
