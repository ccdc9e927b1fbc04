package globitex

import (
	"encoding/json"
	"fmt"
)

//
// APIError is the single error kind produced by the Globitex client. Every failure mode – a
// transport-level failure, a non-2xx status, a first-class error payload from the API, or a
// response that is missing an expected field – is surfaced to the caller as an *APIError. The
// originating failure, when there is one, is preserved as a wrapped cause and can be recovered
// with errors.Unwrap or matched with errors.As.
//
type APIError struct {
	endpoint string
	code     int
	message  string
	cause    error
}

//
// newEndpointNotFoundError builds the error for a request whose underlying failure was the
// endpoint itself not existing. The message names the attempted endpoint so that a misspelled
// method name is immediately obvious from logs.
//
func newEndpointNotFoundError(endpoint string, cause error) *APIError {
	return &APIError{
		endpoint: endpoint,
		message:  fmt.Sprintf("the endpoint %s does not exist", endpoint),
		cause:    cause,
	}
}

//
// newTransportError builds the error for a request that failed below the API layer – a dial
// failure, a timeout, or a non-2xx status that was not a 404.
//
func newTransportError(endpoint string, cause error) *APIError {
	return &APIError{
		endpoint: endpoint,
		message:  cause.Error(),
		cause:    cause,
	}
}

//
// newMissingFieldError builds the error for a structurally valid JSON response that lacks the
// field the operation needed to extract its result from.
//
func newMissingFieldError(endpoint string, field string) *APIError {
	return &APIError{
		endpoint: endpoint,
		message:  fmt.Sprintf("the response from %s is missing the expected %q field", endpoint, field),
	}
}

//
// Endpoint returns the path of the endpoint whose invocation produced the error.
//
func (o *APIError) Endpoint() string {
	return o.endpoint
}

//
// ErrorCode returns the actual error code provided by the API (if there was one).
//
func (o *APIError) ErrorCode() int {
	return o.code
}

//
// ErrorMessage returns the actual error message provided by the API (if there was one).
//
func (o *APIError) ErrorMessage() string {
	return o.message
}

func (o *APIError) Error() string {
	if o.code != 0 {
		return fmt.Sprintf("the Globitex endpoint %s returned an API error (code: %d, message: %s)",
			o.endpoint, o.code, o.message)
	}

	return o.message
}

func (o *APIError) Unwrap() error {
	return o.cause
}

//
// apiErrorEnvelope models the error payload that the Globitex API places in response bodies when
// a request is rejected at the API level (e.g. a bad signature or a reused nonce).
//
type apiErrorEnvelope struct {
	Errors []struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Data    string `json:"data"`
	} `json:"errors"`
}

//
// sniffAPIError inspects a response body for a first-class API error payload. It returns the
// corresponding *APIError if one is present, or nil if the body does not look like an error.
//
func sniffAPIError(endpoint string, body []byte) *APIError {
	var envelope apiErrorEnvelope

	// A body that is not an error envelope at all simply fails to populate the structure. That is
	// not itself a failure.
	_ = json.Unmarshal(body, &envelope)

	if len(envelope.Errors) == 0 || envelope.Errors[0].Code == 0 {
		return nil
	}

	return &APIError{
		endpoint: endpoint,
		code:     envelope.Errors[0].Code,
		message:  envelope.Errors[0].Message,
	}
}
