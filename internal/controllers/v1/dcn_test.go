package v1_test

import (
	"net/http"

	v1 "github.com/form3115-prep/backend/internal/controllers/v1"
	"github.com/form3115-prep/backend/internal/models"
	"github.com/form3115-prep/backend/test"
)

func (suite *TestSuiteStandard) TestGetDcns() {
	r := suite.request(http.MethodGet, "http://example.com/v1/dcns", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DcnListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotEmpty(response.Data)

	// Ordered numerically, not lexically
	suite.Assert().Equal("7", response.Data[0].DcnNumber)
}

func (suite *TestSuiteStandard) TestGetDcnsSearch() {
	r := suite.request(http.MethodGet, "http://example.com/v1/dcns?search=depreciation", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DcnListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotEmpty(response.Data)
	for _, dcn := range response.Data {
		suite.Assert().Equal("depreciation", dcn.Category)
	}
}

func (suite *TestSuiteStandard) TestGetDcnsCategory() {
	r := suite.request(http.MethodGet, "http://example.com/v1/dcns?category=overall_method", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DcnListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotEmpty(response.Data)
	for _, dcn := range response.Data {
		suite.Assert().Equal("overall_method", dcn.Category)
	}
}

func (suite *TestSuiteStandard) TestGetDcn() {
	r := suite.request(http.MethodGet, "http://example.com/v1/dcns/184", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DcnResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("184", response.Data.DcnNumber)
	suite.Assert().True(response.Data.IsAutomatic)
	suite.Assert().Equal("http://example.com/v1/dcns/184/requirements", response.Data.Links.Requirements)
}

func (suite *TestSuiteStandard) TestGetDcnNotFound() {
	r := suite.request(http.MethodGet, "http://example.com/v1/dcns/999", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestGetDcnRequirements() {
	r := suite.request(http.MethodGet, "http://example.com/v1/dcns/122/requirements", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DcnRequirementsResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().True(response.Data.Found)
	suite.Assert().True(response.Data.Requires481a)
	suite.Assert().Equal(4, response.Data.SpreadPeriod)
	suite.Assert().Contains(response.Data.RequiredSections, models.FormScheduleA)
	suite.Assert().Contains(response.Data.RequiredSections, models.FormPartIV)
}

func (suite *TestSuiteStandard) TestGetDcnRequirementsUnknownNumber() {
	// Unknown numbers are not an error, the preparer may be entering a
	// change this tool does not know about
	r := suite.request(http.MethodGet, "http://example.com/v1/dcns/999/requirements", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DcnRequirementsResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().False(response.Data.Found)
	suite.Assert().Equal([]models.FormPart{
		models.FormPartI, models.FormPartII, models.FormPartIII,
	}, response.Data.RequiredSections)
}
