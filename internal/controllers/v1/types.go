package v1

import (
	"github.com/form3115-prep/backend/internal/models"
	f3_uuid "github.com/form3115-prep/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type URIID struct {
	ID f3_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type URIPart struct {
	URIID
	Part string `uri:"part" binding:"required" example:"part-ii"` // Form part tag
}

type URINumber struct {
	Number string `uri:"number" binding:"required" example:"184"` // Change number
}

type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}

// currentUser returns the authenticated preparer's ID. The router's
// identity middleware guarantees it is set for every v1 route.
func currentUser(c *gin.Context) uuid.UUID {
	return c.MustGet(string(models.ContextKeyUserID)).(uuid.UUID)
}

// baseURL returns the URL the API is served under, used for links.
func baseURL(c *gin.Context) string {
	return c.GetString(string(models.ContextKeyURL))
}
