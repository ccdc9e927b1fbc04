package exchange

import (
	"fmt"
	"net/http"
)

//
// HTTPError represents a non-2xx response from an API endpoint. When dealing with cryptocurrency
// exchange APIs, such a response almost always means that something critically wrong has occurred
// – most often a rejected signature or a request for an endpoint that does not exist.
//
type HTTPError struct {
	statusCode int
	endpoint   string
}

func NewHTTPError(statusCode int, endpoint string) *HTTPError {
	return &HTTPError{
		statusCode: statusCode,
		endpoint:   endpoint,
	}
}

//
// StatusCode returns the HTTP status code that the endpoint responded with.
//
func (o *HTTPError) StatusCode() int {
	return o.statusCode
}

//
// Endpoint returns the path of the endpoint that the failed request was issued against.
//
func (o *HTTPError) Endpoint() string {
	return o.endpoint
}

//
// NotFound returns whether or not the failure was the endpoint itself not existing.
//
func (o *HTTPError) NotFound() bool {
	return o.statusCode == http.StatusNotFound
}

func (o *HTTPError) Error() string {
	return fmt.Sprintf("server responded to a request to %s with a %d status code", o.endpoint, o.statusCode)
}
