package v1

import (
	"fmt"

	"github.com/form3115-prep/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ClientEditable represents all user configurable parameters
type ClientEditable struct {
	Name         string `json:"name" example:"Acme Manufacturing Inc" default:""`     // Name of the taxpayer entity
	Ein          string `json:"ein" example:"12-3456789" default:""`                  // Employer Identification Number
	EntityType   string `json:"entityType" example:"corporation" default:""`          // Legal form of the entity
	Address      string `json:"address" example:"100 Main Street" default:""`         // Street address
	City         string `json:"city" example:"Springfield" default:""`                // City
	State        string `json:"state" example:"IL" default:""`                        // Two-letter state code
	ZipCode      string `json:"zipCode" example:"62701" default:""`                   // ZIP code
	ContactName  string `json:"contactName" example:"Jane Doe" default:""`            // Primary contact
	ContactPhone string `json:"contactPhone" example:"(555) 123-4567" default:""`     // Contact phone number
	ContactEmail string `json:"contactEmail" example:"jane@example.com" default:""`   // Contact email address
	TaxYearEnd   string `json:"taxYearEnd" example:"12/31" default:""`                // Tax year end, month/day
}

func (editable ClientEditable) model(userID uuid.UUID) models.Client {
	return models.Client{
		UserID:       userID,
		Name:         editable.Name,
		Ein:          editable.Ein,
		EntityType:   editable.EntityType,
		Address:      editable.Address,
		City:         editable.City,
		State:        editable.State,
		ZipCode:      editable.ZipCode,
		ContactName:  editable.ContactName,
		ContactPhone: editable.ContactPhone,
		ContactEmail: editable.ContactEmail,
		TaxYearEnd:   editable.TaxYearEnd,
	}
}

type ClientLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/clients/d0d2a20d-91cd-4f3c-8e4f-6b3b2c9e8a11"`       // The client itself
	Filings string `json:"filings" example:"https://example.com/api/v1/filings?client=d0d2a20d-91cd-4f3c-8e4f-6b3b2c9e8a11"` // Filings for this client
}

type Client struct {
	models.DefaultModel
	ClientEditable
	Links ClientLinks `json:"links"`
}

func newClient(c *gin.Context, model models.Client) Client {
	url := baseURL(c)

	return Client{
		DefaultModel: model.DefaultModel,
		ClientEditable: ClientEditable{
			Name:         model.Name,
			Ein:          model.Ein,
			EntityType:   model.EntityType,
			Address:      model.Address,
			City:         model.City,
			State:        model.State,
			ZipCode:      model.ZipCode,
			ContactName:  model.ContactName,
			ContactPhone: model.ContactPhone,
			ContactEmail: model.ContactEmail,
			TaxYearEnd:   model.TaxYearEnd,
		},
		Links: ClientLinks{
			Self:    fmt.Sprintf("%s/v1/clients/%s", url, model.ID),
			Filings: fmt.Sprintf("%s/v1/filings?client=%s", url, model.ID),
		},
	}
}

type ClientListResponse struct {
	Data       []Client    `json:"data"`                                                          // List of Clients
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ClientCreateResponse struct {
	Data  []ClientResponse `json:"data"`                                                          // List of the created Clients or their respective error
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *ClientCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, ClientResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ClientResponse struct {
	Data  *Client `json:"data"`                                                          // Data for the Client
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ClientQueryFilter struct {
	Name       string `form:"name" filterField:"false"`   // By name
	Ein        string `form:"ein"`                        // By exact EIN
	EntityType string `form:"entityType"`                 // By entity type
	State      string `form:"state"`                      // By state code
	Search     string `form:"search" filterField:"false"` // By string in name or contact name
	Offset     uint   `form:"offset" filterField:"false"` // The offset of the first Client returned. Defaults to 0.
	Limit      int    `form:"limit" filterField:"false"`  // Maximum number of Clients to return. Defaults to 50.
}

func (f ClientQueryFilter) model() (models.Client, error) {
	return models.Client{
		Ein:        f.Ein,
		EntityType: f.EntityType,
		State:      f.State,
	}, nil
}
