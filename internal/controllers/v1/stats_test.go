package v1_test

import (
	"net/http"

	v1 "github.com/form3115-prep/backend/internal/controllers/v1"
	"github.com/form3115-prep/backend/test"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) TestGetStatsEmpty() {
	r := suite.request(http.MethodGet, "http://example.com/v1/stats", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.StatsResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(int64(0), response.Data.TotalClients)
	suite.Assert().Empty(response.Data.RecentFilings)
}

func (suite *TestSuiteStandard) TestGetStats() {
	client := suite.createTestClient(v1.ClientEditable{Name: "Acme Corp"})
	filing := suite.createTestFiling(v1.FilingEditable{ClientID: client.ID})
	suite.createTestFiling(v1.FilingEditable{ClientID: client.ID})

	// Saving a part moves one filing to in_progress
	r := suite.request(http.MethodPatch, filing.Links.Parts+"/part-i", testPartI)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = suite.request(http.MethodGet, "http://example.com/v1/stats", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.StatsResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(int64(1), response.Data.TotalClients)
	suite.Assert().Equal(int64(2), response.Data.TotalFilings)
	suite.Assert().Equal(int64(1), response.Data.InProgress)
	suite.Assert().Equal(int64(0), response.Data.Completed)

	suite.Require().Len(response.Data.RecentFilings, 2)
	suite.Assert().Equal("Acme Corp", response.Data.RecentFilings[0].ClientName)

	// The filing with the saved part was updated last
	suite.Assert().Equal(filing.ID, response.Data.RecentFilings[0].ID)
}

func (suite *TestSuiteStandard) TestGetStatsScopedToUser() {
	client := suite.createTestClient(v1.ClientEditable{})
	suite.createTestFiling(v1.FilingEditable{ClientID: client.ID})

	r := suite.requestAs(uuid.New(), http.MethodGet, "http://example.com/v1/stats", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.StatsResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(int64(0), response.Data.TotalClients)
	suite.Assert().Equal(int64(0), response.Data.TotalFilings)
}
