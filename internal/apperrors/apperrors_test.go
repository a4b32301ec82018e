package apperrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func render(err error) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	HTTPErrorHandler(err, e.NewContext(req, rec))
	return rec
}

func TestHTTPErrorHandler_KindToStatus(t *testing.T) {
	tests := []struct {
		err    *Error
		status int
		kind   string
	}{
		{Validation("bad input"), http.StatusBadRequest, "validation_error"},
		{Unauthorized("who are you"), http.StatusUnauthorized, "authentication_error"},
		{Forbidden("not yours"), http.StatusForbidden, "authorization_error"},
		{NotFound("gone"), http.StatusNotFound, "not_found"},
		{Conflict("already there"), http.StatusConflict, "conflict"},
		{Internal("boom", errors.New("cause")), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		rec := render(tt.err)
		assert.Equal(t, tt.status, rec.Code)
		assert.Contains(t, rec.Body.String(), tt.kind)
		assert.Contains(t, rec.Body.String(), tt.err.Message)
	}
}

func TestHTTPErrorHandler_EchoHTTPError(t *testing.T) {
	rec := render(echo.NewHTTPError(http.StatusNotFound, "Not Found"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "not_found")
}

func TestHTTPErrorHandler_UnknownErrorIsInternal(t *testing.T) {
	rec := render(errors.New("driver exploded"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal_error")
	// The raw cause never leaks to the client.
	assert.NotContains(t, rec.Body.String(), "driver exploded")
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("cause")
	err := Internal("wrapper", cause)
	assert.ErrorIs(t, err, cause)
}
