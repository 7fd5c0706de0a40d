package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/form3115-prep/backend/internal/controllers/v1"
	"github.com/form3115-prep/backend/test"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) TestOptionsClient() {
	r := suite.request(http.MethodOptions, "http://example.com/v1/clients", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("GET, POST", r.Header().Get("allow"))

	client := suite.createTestClient(v1.ClientEditable{})
	r = suite.request(http.MethodOptions, client.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("GET, PATCH, DELETE", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestCreateClient() {
	client := suite.createTestClient(v1.ClientEditable{
		Name:  "Acme Manufacturing Inc",
		Ein:   "12-3456789",
		State: "il",
	})

	suite.Assert().Equal("Acme Manufacturing Inc", client.Name)
	suite.Assert().Equal("IL", client.State, "state codes are normalized to upper case")
	suite.Assert().NotEmpty(client.Links.Self)
}

func (suite *TestSuiteStandard) TestCreateClientWithoutName() {
	r := suite.request(http.MethodPost, "http://example.com/v1/clients", []v1.ClientEditable{{Ein: "12-3456789"}})

	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreateClientsPartialFailure() {
	r := suite.request(http.MethodPost, "http://example.com/v1/clients", []v1.ClientEditable{
		{Name: "Good Client"},
		{Name: ""},
	})

	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.ClientCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 2)
	suite.Assert().Nil(response.Data[0].Error)
	suite.Assert().NotNil(response.Data[1].Error)
}

func (suite *TestSuiteStandard) TestGetClients() {
	suite.createTestClient(v1.ClientEditable{Name: "Beta LLC"})
	suite.createTestClient(v1.ClientEditable{Name: "Alpha Corp"})

	r := suite.request(http.MethodGet, "http://example.com/v1/clients", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ClientListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 2)

	// Sorted by name
	suite.Assert().Equal("Alpha Corp", response.Data[0].Name)
	suite.Assert().Equal("Beta LLC", response.Data[1].Name)

	suite.Require().NotNil(response.Pagination)
	suite.Assert().Equal(int64(2), response.Pagination.Total)
}

func (suite *TestSuiteStandard) TestGetClientsScopedToUser() {
	suite.createTestClient(v1.ClientEditable{Name: "Mine"})

	r := suite.requestAs(uuid.New(), http.MethodGet, "http://example.com/v1/clients", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ClientListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Empty(response.Data, "clients of other users must not be visible")
}

func (suite *TestSuiteStandard) TestGetClientsFilter() {
	suite.createTestClient(v1.ClientEditable{Name: "Acme Corp", State: "OH"})
	suite.createTestClient(v1.ClientEditable{Name: "Acme West", State: "CA"})

	r := suite.request(http.MethodGet, "http://example.com/v1/clients?state=OH", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ClientListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal("Acme Corp", response.Data[0].Name)
}

func (suite *TestSuiteStandard) TestGetClientsSearch() {
	suite.createTestClient(v1.ClientEditable{Name: "Acme Corp", ContactName: "Jane Doe"})
	suite.createTestClient(v1.ClientEditable{Name: "Other Inc", ContactName: "John Roe"})

	r := suite.request(http.MethodGet, "http://example.com/v1/clients?search=jane", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ClientListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal("Acme Corp", response.Data[0].Name)
}

func (suite *TestSuiteStandard) TestGetClient() {
	client := suite.createTestClient(v1.ClientEditable{Name: "Acme Corp"})

	r := suite.request(http.MethodGet, client.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ClientResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(client.ID, response.Data.ID)
}

func (suite *TestSuiteStandard) TestGetClientOfOtherUser() {
	client := suite.createTestClient(v1.ClientEditable{Name: "Acme Corp"})

	r := suite.requestAs(uuid.New(), http.MethodGet, client.Links.Self, "")

	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestGetClientInvalidID() {
	r := suite.request(http.MethodGet, "http://example.com/v1/clients/not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestUpdateClient() {
	client := suite.createTestClient(v1.ClientEditable{Name: "Acme Corp"})

	r := suite.request(http.MethodPatch, client.Links.Self, map[string]any{
		"contactName": "Pat Smith",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ClientResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Pat Smith", response.Data.ContactName)
	suite.Assert().Equal("Acme Corp", response.Data.Name, "fields not in the body stay untouched")
}

func (suite *TestSuiteStandard) TestUpdateClientBrokenJSON() {
	client := suite.createTestClient(v1.ClientEditable{Name: "Acme Corp"})

	r := suite.request(http.MethodPatch, client.Links.Self, `{ "name": 2" }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestDeleteClient() {
	client := suite.createTestClient(v1.ClientEditable{Name: "Acme Corp"})

	r := suite.request(http.MethodDelete, client.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(http.MethodGet, client.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDeleteClientHidesFilings() {
	client := suite.createTestClient(v1.ClientEditable{Name: "Acme Corp"})
	filing := suite.createTestFiling(v1.FilingEditable{ClientID: client.ID})

	r := suite.request(http.MethodDelete, client.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(http.MethodGet, filing.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = suite.request(http.MethodGet, "http://example.com/v1/filings", "")
	var response v1.FilingListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Len(response.Data, 0)
}

func (suite *TestSuiteStandard) TestDeleteClientOfOtherUser() {
	client := suite.createTestClient(v1.ClientEditable{Name: "Acme Corp"})

	r := suite.requestAs(uuid.New(), http.MethodDelete, client.Links.Self, "")

	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestClientRequiresUserHeader() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/clients", "")

	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestClientFilingsLink() {
	client := suite.createTestClient(v1.ClientEditable{Name: "Acme Corp"})

	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/filings?client=%s", client.ID), client.Links.Filings)
}
