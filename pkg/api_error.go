package pkg

import (
	"errors"
	"fmt"
)

const (
	// StatusTransport is reported when no HTTP response was received.
	StatusTransport = 0
	// CodeUnknown is reported when the error body carried no numeric code.
	CodeUnknown = -1
	// CodeValidation marks errors raised before the request left the client.
	CodeValidation = 0
)

// ErrInvalidArgument is the cause of every APIError produced by local validation.
var ErrInvalidArgument = errors.New("invalid argument")

// APIError is the single error kind returned by the Tapsilat client.
//
// The status code tells the failure classes apart:
//   - 0: no usable HTTP answer (DNS, refused, timeout, a payload that does
//     not encode, a success body that does not decode).
//   - >= 400: the API answered with an error; Code/Message come from the
//     {"code","error"} envelope when it decodes, otherwise Message carries
//     the reason phrase or the raw body.
//
// Local validation failures reuse the shape with StatusCode 400 and Code 0.
// Use IsValidation (or errors.Is with ErrInvalidArgument) to tell them apart
// from a server-side 400.
type APIError struct {
	StatusCode int
	Code       int
	Message    string

	cause error
}

func NewAPIError(statusCode, code int, message string) *APIError {
	return &APIError{StatusCode: statusCode, Code: code, Message: message}
}

func NewValidationError(message string) *APIError {
	return &APIError{StatusCode: 400, Code: CodeValidation, Message: message, cause: ErrInvalidArgument}
}

func NewTransportError(err error) *APIError {
	msg := "transport error"
	if err != nil {
		msg = err.Error()
	}
	return &APIError{StatusCode: StatusTransport, Code: CodeUnknown, Message: msg, cause: err}
}

func (e *APIError) Error() string {
	return fmt.Sprintf("tapsilat api error: status_code=%d code=%d error=%s", e.StatusCode, e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.cause
}

// IsTransport reports whether the call failed before any HTTP response arrived.
func (e *APIError) IsTransport() bool {
	return e.StatusCode == StatusTransport
}

// IsValidation reports whether the error was raised by the client's own input checks.
func (e *APIError) IsValidation() bool {
	return errors.Is(e.cause, ErrInvalidArgument)
}

// AsAPIError extracts an *APIError from err's chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
