package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

type stubHandler struct{}

func (stubHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/bad", func(c echo.Context) error {
		return BadRequestResponse(c, []ValidationError{{Code: "ERR_ONEOF", Field: "TF"}})
	})
	e.GET("/app", func(c echo.Context) error {
		return AppErrorResponse(c, RateLimitError("slow down"))
	})
}

func TestServerRoutes(t *testing.T) {
	s := NewServer(stubHandler{}, WithMetrics(false), WithCORS(false))

	tests := []struct {
		path   string
		status int
	}{
		{"/healthz", http.StatusOK},
		{"/bad", http.StatusBadRequest},
		{"/app", http.StatusTooManyRequests},
		{"/metrics", http.StatusNotFound},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		s.Echo().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
		if rec.Code != tt.status {
			t.Fatalf("%s: got %d, want %d", tt.path, rec.Code, tt.status)
		}
		if tt.status == http.StatusNotFound {
			continue
		}
		var body APIResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s: decode: %v", tt.path, err)
		}
		if body.Status != tt.status {
			t.Fatalf("%s: envelope status %d, want %d", tt.path, body.Status, tt.status)
		}
	}
}

func TestAppErrorResponseUnknownError(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	if err := AppErrorResponse(c, errTest("x")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

type errTest string

func (e errTest) Error() string { return string(e) }
