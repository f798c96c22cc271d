package httputil

import "errors"

var (
	ErrInvalidQueryString = errors.New("the query string contains unparseable data. Please check the values")
	ErrMethodNotAllowed   = errors.New("this HTTP method is not allowed for the endpoint you called")
)
