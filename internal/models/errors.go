package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrClientNameRequired  = errors.New("the client name must be set")
	ErrDcnNumberNotUnique  = errors.New("the change number must be unique")
	ErrFilingInvalidPart   = errors.New("the specified form part does not exist")
	ErrFilingInvalidStatus = errors.New("status must be one of draft, in_progress, ready, completed")
)
