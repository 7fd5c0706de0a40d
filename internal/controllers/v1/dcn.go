package v1

import (
	"errors"
	"net/http"

	"github.com/form3115-prep/backend/internal/dcn"
	"github.com/form3115-prep/backend/internal/httputil"
	"github.com/form3115-prep/backend/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterDcnRoutes registers the routes for change number references
// with the RouterGroup that is passed. All routes are read-only: the
// reference table is maintained by the seeding process.
func RegisterDcnRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsDcnList)
		r.GET("", GetDcns)
	}

	// Reference record by number
	{
		r.OPTIONS("/:number", OptionsDcnDetail)
		r.GET("/:number", GetDcn)
		r.OPTIONS("/:number/requirements", OptionsDcnRequirements)
		r.GET("/:number/requirements", GetDcnRequirements)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			DCNs
// @Success		204
// @Router			/v1/dcns [options]
func OptionsDcnList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			DCNs
// @Success		204
// @Param			number	path	string	true	"Change number"
// @Router			/v1/dcns/{number} [options]
func OptionsDcnDetail(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			DCNs
// @Success		204
// @Param			number	path	string	true	"Change number"
// @Router			/v1/dcns/{number}/requirements [options]
func OptionsDcnRequirements(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get change numbers
// @Description	Returns the reference list, ordered by change number ascending
// @Tags			DCNs
// @Produce		json
// @Success		200	{object}	DcnListResponse
// @Failure		500	{object}	DcnListResponse
// @Router			/v1/dcns [get]
// @Param			search		query	string	false	"Search for this text in number and description"
// @Param			category	query	string	false	"Filter by category"
func GetDcns(c *gin.Context) {
	var filter DcnQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	refs, err := dcn.Search(models.DB, filter.Search, filter.Category)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DcnListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Dcn, 0)
	for _, ref := range refs {
		data = append(data, newDcn(c, ref))
	}

	c.JSON(http.StatusOK, DcnListResponse{Data: data})
}

// @Summary		Get change number
// @Description	Returns a specific reference record by its exact number
// @Tags			DCNs
// @Produce		json
// @Success		200		{object}	DcnResponse
// @Failure		404		{object}	DcnResponse
// @Failure		500		{object}	DcnResponse
// @Param			number	path		string	true	"Change number"
// @Router			/v1/dcns/{number} [get]
func GetDcn(c *gin.Context) {
	var uri URINumber
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DcnResponse{
			Error: &s,
		})
		return
	}

	var ref models.DcnReference
	err = models.DB.First(&ref, "dcn_number = ?", uri.Number).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, models.ErrResourceNotFound) {
			s := errDcnNotFound.Error()
			c.JSON(http.StatusNotFound, DcnResponse{
				Error: &s,
			})
			return
		}

		s := err.Error()
		c.JSON(status(err), DcnResponse{
			Error: &s,
		})
		return
	}

	data := newDcn(c, ref)
	c.JSON(http.StatusOK, DcnResponse{Data: &data})
}

// @Summary		Get filing requirements
// @Description	Resolves which parts and schedules a filing with this change number needs. Numbers without a reference record resolve to defaults, not an error.
// @Tags			DCNs
// @Produce		json
// @Success		200		{object}	DcnRequirementsResponse
// @Failure		500		{object}	DcnRequirementsResponse
// @Param			number	path		string	true	"Change number"
// @Router			/v1/dcns/{number}/requirements [get]
func GetDcnRequirements(c *gin.Context) {
	var uri URINumber
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DcnRequirementsResponse{
			Error: &s,
		})
		return
	}

	req, found, err := dcn.Resolve(models.DB, uri.Number)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DcnRequirementsResponse{
			Error: &s,
		})
		return
	}

	data := newDcnRequirements(uri.Number, req, found)
	c.JSON(http.StatusOK, DcnRequirementsResponse{Data: &data})
}
