package httputil

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"

	"github.com/envelope-zero/tracker/internal/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/go-sqlite"
	"github.com/rs/zerolog/log"
)

// ErrorHandler writes the error response for errors that are not handled by a controller itself.
func ErrorHandler(c *gin.Context, err error) {
	// Errors already made user friendly by the models
	if errors.Is(err, models.ErrResourceNotFound) {
		NewError(c, http.StatusNotFound, err)

		// Database error
	} else if errors.Is(err, models.ErrGeneral) || reflect.TypeOf(err) == reflect.TypeOf(&sqlite.Error{}) {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		NewError(c, http.StatusInternalServerError, fmt.Errorf("a database error occurred during your request, please contact your server administrator. The request id is '%v', send this to your server administrator to help them finding the problem", requestid.Get(c)))

		// All other errors
	} else {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		NewError(c, http.StatusInternalServerError, fmt.Errorf("an error occurred on the server during your request, please contact your server administrator. The request id is '%v', send this to your server administrator to help them finding the problem", requestid.Get(c)))
	}
}

// NewError writes an HTTPError with the status.
func NewError(c *gin.Context, status int, err error) {
	c.AbortWithStatusJSON(status, HTTPError{
		Error: err.Error(),
	})
}

// HTTPError is used for error responses that contain a body.
type HTTPError struct {
	Error string `json:"error" example:"this HTTP method is not allowed for the endpoint you called"`
}
