package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/nestera/savings-api/internal/core/domain"
)

func render(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)
	return rec.Code, rec.Body.String()
}

func TestErrorHandler_DomainMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
		msg  string
	}{
		{domain.ErrUserExists, http.StatusConflict, "user already exists"},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{domain.ErrInvalidToken, http.StatusUnauthorized, "invalid token"},
		{domain.ErrMissingSignature, http.StatusUnauthorized, "missing signature"},
		{domain.ErrInvalidSignature, http.StatusUnauthorized, "invalid signature"},
		{domain.ErrForbidden, http.StatusForbidden, "forbidden"},
		{domain.ErrPlanNotFound, http.StatusNotFound, "plan not found"},
	}
	for _, tc := range cases {
		code, body := render(t, tc.err)
		if code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, code)
		}
		if !strings.Contains(body, tc.msg) {
			t.Fatalf("%v: expected %q in body, got %s", tc.err, tc.msg, body)
		}
	}
}

func TestErrorHandler_UnexpectedErrorIsOpaque(t *testing.T) {
	code, body := render(t, errors.New("mongo: connection pool exhausted"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if strings.Contains(body, "mongo") {
		t.Fatalf("internal detail leaked to client: %s", body)
	}
	if !strings.Contains(body, "internal server error") {
		t.Fatalf("expected generic message, got %s", body)
	}
}

func TestErrorHandler_EchoErrorsPassThrough(t *testing.T) {
	code, _ := render(t, echo.NewHTTPError(http.StatusTeapot, "kettle"))
	if code != http.StatusTeapot {
		t.Fatalf("expected 418, got %d", code)
	}
}
