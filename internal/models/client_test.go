package models_test

import (
	"github.com/form3115-prep/backend/internal/models"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) TestClientTrimsAndNormalizes() {
	client := suite.createTestClient(models.Client{
		Name:  "  Acme Corp  ",
		State: " oh ",
		Ein:   " 12-3456789 ",
	})

	suite.Assert().Equal("Acme Corp", client.Name)
	suite.Assert().Equal("OH", client.State)
	suite.Assert().Equal("12-3456789", client.Ein)
}

func (suite *TestSuiteStandard) TestClientNameRequired() {
	err := models.DB.Create(&models.Client{UserID: uuid.New(), Name: "   "}).Error

	suite.Assert().ErrorIs(err, models.ErrClientNameRequired)
}

func (suite *TestSuiteStandard) TestGetClientScopedToUser() {
	client := suite.createTestClient(models.Client{Name: "Acme Corp"})

	_, err := models.GetClient(models.DB, client.UserID, client.ID)
	suite.Assert().NoError(err)

	_, err = models.GetClient(models.DB, uuid.New(), client.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestClientFilings() {
	client := suite.createTestClient(models.Client{})
	suite.createTestFiling(models.Filing{ClientID: client.ID})
	suite.createTestFiling(models.Filing{ClientID: client.ID})

	filings, err := client.Filings(models.DB)

	suite.Require().NoError(err)
	suite.Assert().Len(filings, 2)
}

func (suite *TestSuiteStandard) TestDeleteClientCascades() {
	client := suite.createTestClient(models.Client{})
	filing := suite.createTestFiling(models.Filing{ClientID: client.ID})

	suite.Require().NoError(models.DB.Unscoped().Delete(&client).Error)

	err := models.DB.Unscoped().First(&models.Filing{}, filing.ID).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestDeleteClientHidesFilings() {
	client := suite.createTestClient(models.Client{})
	filing := suite.createTestFiling(models.Filing{ClientID: client.ID})

	suite.Require().NoError(models.DB.Delete(&client).Error)

	_, err := models.GetFiling(models.DB, client.UserID, filing.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	var count int64
	err = models.UserFilings(models.DB, client.UserID).Count(&count).Error
	suite.Require().NoError(err)
	suite.Assert().Equal(int64(0), count)
}
