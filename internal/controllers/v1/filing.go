package v1

import (
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"

	"github.com/form3115-prep/backend/internal/httputil"
	"github.com/form3115-prep/backend/internal/models"
	"github.com/form3115-prep/backend/internal/pdf"
	"github.com/form3115-prep/backend/internal/validation"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// PDF is the document generator used by the download endpoint. It is
// set during startup.
var PDF *pdf.Generator

// RegisterFilingRoutes registers the routes for filings with
// the RouterGroup that is passed.
func RegisterFilingRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsFilingList)
		r.GET("", GetFilings)
		r.POST("", CreateFilings)
	}

	// Filing with ID
	{
		r.OPTIONS("/:id", OptionsFilingDetail)
		r.GET("/:id", GetFiling)
		r.PATCH("/:id", UpdateFiling)
		r.DELETE("/:id", DeleteFiling)
	}

	// Parts, validation and document generation
	{
		r.OPTIONS("/:id/parts/:part", OptionsFilingPart)
		r.PATCH("/:id/parts/:part", SaveFilingPart)
		r.OPTIONS("/:id/validation", OptionsFilingValidation)
		r.GET("/:id/validation", GetFilingValidation)
		r.OPTIONS("/:id/pdf", OptionsFilingPdf)
		r.GET("/:id/pdf", GetFilingPdf)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Filings
// @Success		204
// @Router			/v1/filings [options]
func OptionsFilingList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Filings
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/filings/{id} [options]
func OptionsFilingDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = models.GetFiling(models.DB, currentUser(c), uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create filings
// @Description	Creates new filings in draft status
// @Tags			Filings
// @Produce		json
// @Success		201		{object}	FilingCreateResponse
// @Failure		400		{object}	FilingCreateResponse
// @Failure		404		{object}	FilingCreateResponse
// @Failure		500		{object}	FilingCreateResponse
// @Param			filings	body		[]FilingEditable	true	"Filings"
// @Router			/v1/filings [post]
func CreateFilings(c *gin.Context) {
	var editables []FilingEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FilingCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := FilingCreateResponse{}

	for _, editable := range editables {
		filing := editable.model()

		if editable.TaxYearOfChange != 0 && !validation.ValidTaxYear(editable.TaxYearOfChange) {
			status = r.appendError(errInvalidTaxYear, status)
			continue
		}

		// The client has to belong to the user
		_, err := models.GetClient(models.DB, currentUser(c), editable.ClientID)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		err = models.DB.Create(&filing).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newFiling(c, filing)
		r.Data = append(r.Data, FilingResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get filings
// @Description	Returns a list of filings
// @Tags			Filings
// @Produce		json
// @Success		200	{object}	FilingListResponse
// @Failure		400	{object}	FilingListResponse
// @Failure		500	{object}	FilingListResponse
// @Router			/v1/filings [get]
// @Param			client			query	string	false	"Filter by client ID"
// @Param			status			query	string	false	"Filter by workflow status"
// @Param			taxYearOfChange	query	int		false	"Filter by tax year of change"
// @Param			dcn				query	string	false	"Filter by change number"
// @Param			offset			query	uint	false	"The offset of the first Filing returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of Filings to return. Defaults to 50."
func GetFilings(c *gin.Context) {
	var filter FilingQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FilingListResponse{
			Error: &s,
		})
		return
	}

	q := models.UserFilings(models.DB, currentUser(c)).
		Order("filings.updated_at DESC").
		Where(&filterModel, queryFields...)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 Filings and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var filings []models.Filing
	err = q.Preload("Client").Find(&filings).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FilingListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FilingListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Filing, 0)
	for _, filing := range filings {
		data = append(data, newFiling(c, filing))
	}

	c.JSON(http.StatusOK, FilingListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get filing
// @Description	Returns a specific filing with all saved part payloads
// @Tags			Filings
// @Produce		json
// @Success		200	{object}	FilingResponse
// @Failure		400	{object}	FilingResponse
// @Failure		404	{object}	FilingResponse
// @Failure		500	{object}	FilingResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/filings/{id} [get]
func GetFiling(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FilingResponse{
			Error: &s,
		})
		return
	}

	filing, err := models.GetFiling(models.DB, currentUser(c), uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FilingResponse{
			Error: &s,
		})
		return
	}

	data := newFiling(c, filing)
	c.JSON(http.StatusOK, FilingResponse{Data: &data})
}

// @Summary		Update filing
// @Description	Update a filing's metadata. Only values to be updated need to be specified. Part payloads are saved through the parts endpoint.
// @Tags			Filings
// @Accept			json
// @Produce		json
// @Success		200		{object}	FilingResponse
// @Failure		400		{object}	FilingResponse
// @Failure		404		{object}	FilingResponse
// @Failure		500		{object}	FilingResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			filing	body		FilingEditable	true	"Filing"
// @Router			/v1/filings/{id} [patch]
func UpdateFiling(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FilingResponse{
			Error: &s,
		})
		return
	}

	filing, err := models.GetFiling(models.DB, currentUser(c), uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FilingResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, FilingEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FilingResponse{
			Error: &s,
		})
		return
	}

	var data FilingEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FilingResponse{
			Error: &s,
		})
		return
	}

	if slices.Contains(updateFields, any("TaxYearOfChange")) && !validation.ValidTaxYear(data.TaxYearOfChange) {
		s := errInvalidTaxYear.Error()
		c.JSON(http.StatusBadRequest, FilingResponse{
			Error: &s,
		})
		return
	}

	// Moving a filing to another user's client is not allowed
	if slices.Contains(updateFields, any("ClientID")) {
		_, err := models.GetClient(models.DB, currentUser(c), data.ClientID)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), FilingResponse{
				Error: &s,
			})
			return
		}
	}

	err = models.DB.Model(&filing).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FilingResponse{
			Error: &s,
		})
		return
	}

	r := newFiling(c, filing)
	c.JSON(http.StatusOK, FilingResponse{Data: &r})
}

// @Summary		Delete filing
// @Description	Deletes a filing
// @Tags			Filings
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/filings/{id} [delete]
func DeleteFiling(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	filing, err := models.GetFiling(models.DB, currentUser(c), uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&filing).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Filings
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id		path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			part	path	string	true	"Form part tag, e.g. part-ii"
// @Router			/v1/filings/{id}/parts/{part} [options]
func OptionsFilingPart(c *gin.Context) {
	var uri URIPart
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	if !slices.Contains(models.FormParts, models.FormPart(uri.Part)) {
		c.JSON(http.StatusBadRequest, httpError{
			Error: models.ErrFilingInvalidPart.Error(),
		})
		return
	}

	_, err = models.GetFiling(models.DB, currentUser(c), uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsPatch(c)
}

// @Summary		Save form part
// @Description	Validates and saves one part or schedule payload. Validation errors reject the save with the full result; warnings are returned but do not block.
// @Tags			Filings
// @Accept			json
// @Produce		json
// @Success		200		{object}	FilingPartResponse
// @Failure		400		{object}	FilingPartResponse
// @Failure		404		{object}	FilingPartResponse
// @Failure		422		{object}	FilingPartResponse
// @Failure		500		{object}	FilingPartResponse
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			part	path		string	true	"Form part tag, e.g. part-ii"
// @Param			payload	body		object	true	"Part payload"
// @Router			/v1/filings/{id}/parts/{part} [patch]
func SaveFilingPart(c *gin.Context) {
	var uri URIPart
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FilingPartResponse{
			Error: &s,
		})
		return
	}

	part := models.FormPart(uri.Part)
	if !slices.Contains(models.FormParts, part) {
		s := models.ErrFilingInvalidPart.Error()
		c.JSON(http.StatusBadRequest, FilingPartResponse{
			Error: &s,
		})
		return
	}

	filing, err := models.GetFiling(models.DB, currentUser(c), uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FilingPartResponse{
			Error: &s,
		})
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil || len(strings.TrimSpace(string(body))) == 0 {
		s := httputil.ErrRequestBodyEmpty.Error()
		c.JSON(http.StatusBadRequest, FilingPartResponse{
			Error: &s,
		})
		return
	}

	needs481a, err := requires481a(filing)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FilingPartResponse{
			Error: &s,
		})
		return
	}

	// Part II carries the change number, so the payload being saved
	// decides instead of the stored one
	if part == models.FormPartII {
		withBody := filing
		withBody.PartII = string(body)
		needs481a, err = requires481a(withBody)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), FilingPartResponse{
				Error: &s,
			})
			return
		}
	}

	result, err := savePart(&filing, part, string(body), needs481a)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FilingPartResponse{
			Error: &s,
		})
		return
	}

	if !result.Valid() {
		s := errValidationRejected.Error()
		c.JSON(http.StatusUnprocessableEntity, FilingPartResponse{
			Validation: &result,
			Error:      &s,
		})
		return
	}

	err = models.DB.Save(&filing).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FilingPartResponse{
			Error: &s,
		})
		return
	}

	data := newFiling(c, filing)
	c.JSON(http.StatusOK, FilingPartResponse{
		Data:       &data,
		Validation: &result,
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Filings
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/filings/{id}/validation [options]
func OptionsFilingValidation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = models.GetFiling(models.DB, currentUser(c), uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Validate filing
// @Description	Runs all validators over the saved parts and reports whole-filing completeness
// @Tags			Filings
// @Produce		json
// @Success		200	{object}	FilingValidationResponse
// @Failure		400	{object}	FilingValidationResponse
// @Failure		404	{object}	FilingValidationResponse
// @Failure		500	{object}	FilingValidationResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/filings/{id}/validation [get]
func GetFilingValidation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FilingValidationResponse{
			Error: &s,
		})
		return
	}

	filing, err := models.GetFiling(models.DB, currentUser(c), uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FilingValidationResponse{
			Error: &s,
		})
		return
	}

	needs481a, err := requires481a(filing)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FilingValidationResponse{
			Error: &s,
		})
		return
	}

	parts := make(map[models.FormPart]validation.Result)
	for _, part := range models.FormParts {
		blob := filing.Payload(part)
		if strings.TrimSpace(blob) == "" {
			continue
		}

		result, err := validation.ForPart(part, blob, needs481a)
		if err != nil {
			// Malformed stored payloads surface through the overall
			// completeness check
			continue
		}
		parts[part] = result
	}

	data := FilingValidation{
		Requires481a: needs481a,
		Parts:        parts,
		Overall:      validation.Filing(filing, needs481a),
	}

	c.JSON(http.StatusOK, FilingValidationResponse{Data: &data})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Filings
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/filings/{id}/pdf [options]
func OptionsFilingPdf(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = models.GetFiling(models.DB, currentUser(c), uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Download filled form
// @Description	Generates the filled form for the filing and returns it as a download
// @Tags			Filings
// @Produce		application/pdf
// @Success		200	{file}		file
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/filings/{id}/pdf [get]
func GetFilingPdf(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	filing, err := models.GetFiling(models.DB, currentUser(c), uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	if PDF == nil {
		c.JSON(http.StatusInternalServerError, httpError{
			Error: errPdfGeneration.Error(),
		})
		return
	}

	document, err := PDF.Generate(filing)
	if err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("document generation failed")
		c.JSON(http.StatusInternalServerError, httpError{
			Error: errPdfGeneration.Error(),
		})
		return
	}

	filename := pdf.Filename(filing.Client.Name, filing.TaxYearOfChange)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", document)
}
