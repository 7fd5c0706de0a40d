package v1

import (
	"errors"
	"net/http"

	"github.com/form3115-prep/backend/internal/httputil"
	"github.com/form3115-prep/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"there is no client matching your query"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, httputil.ErrInvalidBody) || errors.Is(err, httputil.ErrRequestBodyEmpty) {
		return http.StatusBadRequest
	}

	return http.StatusBadRequest
}

var (
	errDcnNotFound        = errors.New("there is no change number reference matching your query")
	errInvalidTaxYear     = errors.New("taxYearOfChange must be a year between 1990 and next year")
	errPdfGeneration      = errors.New("the document could not be generated, please contact your server administrator")
	errValidationRejected = errors.New("the data did not pass validation and has not been saved")
)
