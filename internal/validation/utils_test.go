package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"itemsapi/internal/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var validate = validator.New()

type testPayload struct {
	Name  string `json:"name" validate:"required,min=1,max=10"`
	Count int    `json:"count" validate:"gte=0,lte=5"`
}

func (p *testPayload) Validate() error {
	return validate.Struct(p)
}

func newBindContext(t *testing.T, body string) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestBindAndValidateSuccess(t *testing.T) {
	c := newBindContext(t, `{"name":"ok","count":3}`)

	payload := &testPayload{}
	if err := BindAndValidate(c, payload); err != nil {
		t.Fatalf("got error %v, want nil", err)
	}
	if payload.Name != "ok" || payload.Count != 3 {
		t.Fatalf("payload not populated: %+v", payload)
	}
}

func TestBindAndValidateMalformedBody(t *testing.T) {
	c := newBindContext(t, `{"name": not json`)

	err := BindAndValidate(c, &testPayload{})

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("got %T, want *errs.HTTPError", err)
	}
	if httpErr.Status != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", httpErr.Status)
	}
	if httpErr.Message != "Malformed request payload" {
		t.Fatalf("got message %q", httpErr.Message)
	}
}

func TestBindAndValidateFieldErrors(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
		wantMsg   string
	}{
		{"missing required", `{"count":1}`, "name", "is required"},
		{"string too long", `{"name":"01234567890"}`, "name", "must not exceed 10 characters"},
		{"number too large", `{"name":"x","count":6}`, "count", "must not exceed 5"},
		{"number negative", `{"name":"x","count":-1}`, "count", "must be at least 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newBindContext(t, tt.body)

			err := BindAndValidate(c, &testPayload{})

			var httpErr *errs.HTTPError
			if !errors.As(err, &httpErr) {
				t.Fatalf("got %T, want *errs.HTTPError", err)
			}
			if httpErr.Status != http.StatusBadRequest {
				t.Fatalf("got status %d, want 400", httpErr.Status)
			}
			if len(httpErr.Errors) != 1 {
				t.Fatalf("got %d field errors, want 1: %v", len(httpErr.Errors), httpErr.Errors)
			}
			fe := httpErr.Errors[0]
			if fe.Field != tt.wantField || fe.Error != tt.wantMsg {
				t.Fatalf("got {%q %q}, want {%q %q}", fe.Field, fe.Error, tt.wantField, tt.wantMsg)
			}
		})
	}
}

func TestExtractCustomValidationErrors(t *testing.T) {
	custom := CustomValidationErrors{
		{Field: "slug", Message: "must be unique"},
	}

	msg, fieldErrors := extractValidationError(custom)
	if msg != "Validation failed" {
		t.Fatalf("got message %q", msg)
	}
	if len(fieldErrors) != 1 || fieldErrors[0].Field != "slug" || fieldErrors[0].Error != "must be unique" {
		t.Fatalf("got %v", fieldErrors)
	}
}
