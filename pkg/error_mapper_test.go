package pkg

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, StatusOf(nil))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(&RemoteError{}))

	// Override beats everything.
	assert.Equal(t, 418, StatusOf(&RemoteError{
		StatusOverride: intPtr(418),
		RPC:            &RPCError{Status: intPtr(401)},
		Status:         intPtr(404),
	}))

	// RPC beats response and top-level.
	assert.Equal(t, 401, StatusOf(&RemoteError{
		RPC:      &RPCError{Status: intPtr(401)},
		Response: &RemoteResponse{Status: intPtr(403)},
		Status:   intPtr(404),
	}))

	// response.status beats response.statusCode.
	assert.Equal(t, 403, StatusOf(&RemoteError{
		Response: &RemoteResponse{Status: intPtr(403), StatusCode: intPtr(404)},
	}))
	assert.Equal(t, 404, StatusOf(&RemoteError{
		Response: &RemoteResponse{StatusCode: intPtr(404)},
	}))

	assert.Equal(t, 404, StatusOf(&RemoteError{Status: intPtr(404)}))
}

func TestMessageOf(t *testing.T) {
	assert.Equal(t, "", MessageOf(nil))

	assert.Equal(t, "rpc broke", MessageOf(&RemoteError{
		RPC:     &RPCError{Message: strPtr("rpc broke")},
		Message: strPtr("top-level"),
	}))

	assert.Equal(t, "vendor says no", MessageOf(&RemoteError{
		Response: &RemoteResponse{
			Data:    &RemoteResponseData{ErrorMessage: strPtr("vendor says no")},
			Message: strPtr("response message"),
		},
	}))

	assert.Equal(t, "described", MessageOf(&RemoteError{
		Response: &RemoteResponse{Data: &RemoteResponseData{ErrorDescription: strPtr("described")}},
	}))

	assert.Equal(t, "response message", MessageOf(&RemoteError{
		Response: &RemoteResponse{Message: strPtr("response message"), Error: strPtr("response error")},
	}))

	assert.Equal(t, "response error", MessageOf(&RemoteError{
		Response: &RemoteResponse{Error: strPtr("response error")},
	}))

	// A set-but-empty message still wins over later fields.
	assert.Equal(t, "", MessageOf(&RemoteError{
		RPC:     &RPCError{Message: strPtr("")},
		Message: strPtr("top-level"),
	}))

	assert.Equal(t, "top-level", MessageOf(&RemoteError{Message: strPtr("top-level")}))
}

func TestCategorize(t *testing.T) {
	assert.Equal(t, CategoryUnauthorized, Categorize(401, ""))
	assert.Equal(t, CategoryForbidden, Categorize(403, ""))
	assert.Equal(t, CategoryNotFound, Categorize(404, ""))
	assert.Equal(t, CategoryInternal, Categorize(500, ""))
	assert.Equal(t, CategoryValidation, Categorize(422, "invalid JSON body"))
	assert.Equal(t, CategoryUnhandled, Categorize(422, "something else"))
	assert.Equal(t, CategoryUnhandled, Categorize(409, ""))
}

type fakeLocalizer map[string]string

func (f fakeLocalizer) Resolve(key string) string {
	if v, ok := f[key]; ok {
		return v
	}
	return key
}

func TestMapRemoteError(t *testing.T) {
	appErr := MapRemoteError(&RemoteError{
		Status:  intPtr(404),
		Message: strPtr("thing missing"),
	}, fakeLocalizer{"thing missing": "Coisa não encontrada"})

	assert.Equal(t, 404, appErr.HTTPStatus)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
	assert.Equal(t, "Coisa não encontrada", appErr.Message)

	// Untranslated messages pass through as-is.
	appErr = MapRemoteError(&RemoteError{Message: strPtr("boom")}, fakeLocalizer{})
	assert.Equal(t, 500, appErr.HTTPStatus)
	assert.Equal(t, "boom", appErr.Message)
}

func TestAppErrorLocalization(t *testing.T) {
	e := NewDomainErrorSimple("FORMULA_NOT_FOUND", "Formula not found", 404)

	assert.Equal(t, HTTPError{Code: "FORMULA_NOT_FOUND", Message: "Formula not found"}, e.ToHTTPError())
	assert.Equal(t, "Fórmula não encontrada",
		e.ToLocalizedHTTPError(fakeLocalizer{"FORMULA_NOT_FOUND": "Fórmula não encontrada"}).Message)
	// Miss falls back to the AppError message.
	assert.Equal(t, "Formula not found", e.ToLocalizedHTTPError(fakeLocalizer{}).Message)
	assert.Equal(t, "Formula not found", e.ToLocalizedHTTPError(nil).Message)
}
