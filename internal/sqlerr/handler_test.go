package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"itemsapi/internal/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	// HTTPError.Is matches on type, so any concrete instance works as
	// the errors.Is target.
	if !errors.Is(err, &errs.HTTPError{}) {
		t.Fatalf("got %T (%v), want an *errs.HTTPError in the chain", err, err)
	}
	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("got %T (%v), want *errs.HTTPError", err, err)
	}
	return httpErr
}

func TestHandleErrorPassesThroughHTTPErrors(t *testing.T) {
	original := errs.NewNotFoundError("Item not found", nil)

	if got := HandleError(original); got != error(original) {
		t.Fatalf("got %v, want the original error unchanged", got)
	}
}

func TestHandleErrorNoRows(t *testing.T) {
	for _, err := range []error{pgx.ErrNoRows, sql.ErrNoRows, fmt.Errorf("scanning: %w", pgx.ErrNoRows)} {
		httpErr := asHTTPError(t, HandleError(err))
		if httpErr.Status != http.StatusNotFound {
			t.Fatalf("%v: got status %d, want 404", err, httpErr.Status)
		}
		if httpErr.Message != "Resource not found" {
			t.Fatalf("%v: got message %q", err, httpErr.Message)
		}
	}
}

func TestHandleErrorUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23505",
		Message:        "duplicate key value violates unique constraint",
		TableName:      "items",
		ConstraintName: "items_pkey",
	}

	httpErr := asHTTPError(t, HandleError(pgErr))
	if httpErr.Status != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", httpErr.Status)
	}
	if httpErr.Code != "ITEM_ALREADY_EXISTS" {
		t.Fatalf("got code %q, want ITEM_ALREADY_EXISTS", httpErr.Code)
	}
}

func TestHandleErrorNotNullViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:       "23502",
		Message:    "null value in column \"name\" violates not-null constraint",
		TableName:  "items",
		ColumnName: "name",
	}

	httpErr := asHTTPError(t, HandleError(pgErr))
	if httpErr.Status != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", httpErr.Status)
	}
	if httpErr.Code != "ITEM_REQUIRED" {
		t.Fatalf("got code %q, want ITEM_REQUIRED", httpErr.Code)
	}
	if len(httpErr.Errors) != 1 || httpErr.Errors[0].Field != "name" {
		t.Fatalf("got field errors %v, want one for name", httpErr.Errors)
	}
}

func TestHandleErrorCheckViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23514",
		Message:        "new row violates check constraint",
		TableName:      "items",
		ConstraintName: "items_name_length",
	}

	httpErr := asHTTPError(t, HandleError(pgErr))
	if httpErr.Status != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", httpErr.Status)
	}
	if httpErr.Code != "ITEM_INVALID" {
		t.Fatalf("got code %q, want ITEM_INVALID", httpErr.Code)
	}
}

func TestHandleErrorUnknownErrorsBecome500(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(errors.New("connection reset by peer")))
	if httpErr.Status != http.StatusInternalServerError {
		t.Fatalf("got status %d, want 500", httpErr.Status)
	}
	// The client must never see driver internals.
	if httpErr.Message != http.StatusText(http.StatusInternalServerError) {
		t.Fatalf("got message %q, want the generic status text", httpErr.Message)
	}
}

func TestMapCode(t *testing.T) {
	tests := []struct {
		sqlstate string
		want     Code
	}{
		{"23502", NotNullViolation},
		{"23503", ForeignKeyViolation},
		{"23505", UniqueViolation},
		{"23514", CheckViolation},
		{"42P01", Other},
		{"", Other},
	}

	for _, tt := range tests {
		if got := MapCode(tt.sqlstate); got != tt.want {
			t.Errorf("MapCode(%q) = %v, want %v", tt.sqlstate, got, tt.want)
		}
	}
}

func TestErrCode(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", TableName: "items"}
	wrapped := fmt.Errorf("inserting item: %w", ConvertPgError(pgErr))

	if got := ErrCode(wrapped); got != UniqueViolation {
		t.Fatalf("ErrCode = %v, want UniqueViolation", got)
	}
	if got := ErrCode(errors.New("not a database error")); got != Other {
		t.Fatalf("ErrCode = %v, want Other", got)
	}
}

func TestGenerateErrorCode(t *testing.T) {
	if got := generateErrorCode("items", UniqueViolation); got != "ITEM_ALREADY_EXISTS" {
		t.Fatalf("got %q", got)
	}
	if got := generateErrorCode("", NotNullViolation); got != "RECORD_REQUIRED" {
		t.Fatalf("got %q", got)
	}
}
