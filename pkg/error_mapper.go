package pkg

import (
	"net/http"
	"strings"
)

// ErrorCategory buckets upstream failures for response shaping.

type ErrorCategory string

const (
	CategoryUnauthorized ErrorCategory = "unauthorized"
	CategoryForbidden    ErrorCategory = "forbidden"
	CategoryNotFound     ErrorCategory = "not_found"
	CategoryInternal     ErrorCategory = "internal"
	CategoryValidation   ErrorCategory = "validation"
	CategoryUnhandled    ErrorCategory = "unhandled"
)

// RPCError is the nested error shape some upstream services return.
type RPCError struct {
	Status  *int
	Message *string
}

// RemoteResponseData covers vendor-specific response bodies (e.g.
// Keycloak-style error payloads).
type RemoteResponseData struct {
	ErrorMessage     *string
	ErrorDescription *string
}

// RemoteResponse is the HTTP-shaped part of an upstream error.
type RemoteResponse struct {
	Status     *int
	StatusCode *int
	Message    *string
	Error      *string
	Data       *RemoteResponseData
}

// RemoteError is an error returned by an upstream dependency. Fields are
// pointers so that set-but-empty values (0, "") are distinguishable from
// absent ones and still win extraction.
type RemoteError struct {
	StatusOverride *int
	RPC            *RPCError
	Response       *RemoteResponse
	Status         *int
	Message        *string
}

func (e *RemoteError) Error() string {
	return MessageOf(e)
}

// StatusOf extracts the HTTP status of an upstream error, checking in
// priority order: handler override, rpc error, response status/statusCode,
// top-level status. Defaults to 500.
func StatusOf(e *RemoteError) int {
	if e == nil {
		return http.StatusInternalServerError
	}
	if e.StatusOverride != nil {
		return *e.StatusOverride
	}
	if e.RPC != nil && e.RPC.Status != nil {
		return *e.RPC.Status
	}
	if e.Response != nil {
		if e.Response.Status != nil {
			return *e.Response.Status
		}
		if e.Response.StatusCode != nil {
			return *e.Response.StatusCode
		}
	}
	if e.Status != nil {
		return *e.Status
	}
	return http.StatusInternalServerError
}

// MessageOf extracts the human message of an upstream error: the first set
// field wins, even when it holds an empty string.
func MessageOf(e *RemoteError) string {
	if e == nil {
		return ""
	}
	if e.RPC != nil && e.RPC.Message != nil {
		return *e.RPC.Message
	}
	if e.Response != nil {
		if e.Response.Data != nil {
			if e.Response.Data.ErrorMessage != nil {
				return *e.Response.Data.ErrorMessage
			}
			if e.Response.Data.ErrorDescription != nil {
				return *e.Response.Data.ErrorDescription
			}
		}
		if e.Response.Message != nil {
			return *e.Response.Message
		}
		if e.Response.Error != nil {
			return *e.Response.Error
		}
	}
	if e.Message != nil {
		return *e.Message
	}
	return ""
}

// Categorize maps a status/message pair to a category. Unknown statuses fall
// back to unhandled, except messages mentioning JSON, which indicate a
// body-parsing failure.
func Categorize(status int, message string) ErrorCategory {
	switch status {
	case http.StatusUnauthorized:
		return CategoryUnauthorized
	case http.StatusForbidden:
		return CategoryForbidden
	case http.StatusNotFound:
		return CategoryNotFound
	case http.StatusInternalServerError:
		return CategoryInternal
	}
	if strings.Contains(message, "JSON") {
		return CategoryValidation
	}
	return CategoryUnhandled
}

// MapRemoteError turns an upstream error into an AppError, with the message
// resolved through the localizer (app then general namespace, then the raw
// text).
func MapRemoteError(e *RemoteError, loc Localizer) *AppError {
	status := StatusOf(e)
	message := MessageOf(e)
	category := Categorize(status, message)
	if loc != nil {
		if resolved := loc.Resolve(message); resolved != "" {
			message = resolved
		}
	}
	return NewDomainErrorSimple(strings.ToUpper(string(category)), message, status)
}
