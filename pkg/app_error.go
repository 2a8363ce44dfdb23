package pkg

import "fmt"

// AppError is the categorized error surfaced by HTTP handlers.
type AppError struct {
	Code       string
	Message    string
	Cause      error
	HTTPStatus int
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// HTTPError is the JSON error body returned to clients.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Localizer resolves a message key to a translated message; implementations
// fall back to the raw key on a miss.
type Localizer interface {
	Resolve(key string) string
}

// ToHTTPError shapes the error for the response body.
func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message}
}

// ToLocalizedHTTPError shapes the error with the message resolved through
// the localizer; the untranslated AppError message is the final fallback.
func (e *AppError) ToLocalizedHTTPError(loc Localizer) HTTPError {
	if loc == nil {
		return e.ToHTTPError()
	}
	msg := loc.Resolve(e.Code)
	if msg == e.Code {
		msg = e.Message
	}
	return HTTPError{Code: e.Code, Message: msg}
}

func NewDomainError(code, message string, cause error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Cause: cause, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}
