package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"itemsapi/internal/database"
	"itemsapi/internal/handler"
	"itemsapi/internal/server"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// newHealthServer builds the health route over a pool pointing at the
// given DSN. pgxpool connects lazily, so an unreachable address only
// fails once the probe runs.
func newHealthServer(t *testing.T, dsn string) *echo.Echo {
	t.Helper()

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("building pool: %v", err)
	}
	t.Cleanup(pool.Close)

	log := zerolog.Nop()
	s := &server.Server{
		Logger: &log,
		DB:     &database.Database{Pool: pool},
	}

	e := echo.New()
	e.GET("/health", handler.NewHealthHandler(s).CheckHealth)
	return e
}

func checkHealth(t *testing.T, e *echo.Echo) (int, bool) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var payload struct {
		OK bool `json:"ok"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decoding response %q: %v", rec.Body.String(), err)
	}
	return rec.Code, payload.OK
}

func TestCheckHealthDatabaseUnreachable(t *testing.T) {
	e := newHealthServer(t, "postgres://nobody@127.0.0.1:1/none")

	status, ok := checkHealth(t, e)
	if status != http.StatusServiceUnavailable {
		t.Fatalf("got status %d, want 503", status)
	}
	if ok {
		t.Fatal(`got {"ok":true}, want {"ok":false}`)
	}
}

func TestCheckHealthDatabaseReachable(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	e := newHealthServer(t, dsn)

	status, ok := checkHealth(t, e)
	if status != http.StatusOK {
		t.Fatalf("got status %d, want 200", status)
	}
	if !ok {
		t.Fatal(`got {"ok":false}, want {"ok":true}`)
	}
}
