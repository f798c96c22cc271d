package v1

import (
	"errors"
	"net/http"

	"github.com/envelope-zero/tracker/internal/models"
)

// status returns the appropriate status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errMonthNotSetInQuery  = errors.New("the month query parameter must be set")
	errSourceNotSetInQuery = errors.New("the source query parameter must be set")
	errModeInvalid         = errors.New("the mode must be one of 'ytd' or 'ttm'")
	errYearInvalid         = errors.New("the year must be between 1 and 9999")
)
