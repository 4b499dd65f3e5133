package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"FinSignal/internal/domain/models"
	domrepo "FinSignal/internal/domain/repository"
	"FinSignal/internal/service/ratelimit"
	"FinSignal/internal/services/catalog"

	"github.com/labstack/echo/v4"
)

type fakeEvaluator struct {
	mu      sync.Mutex
	symbols []string
	tf      domrepo.Timeframe
	calls   int
	out     []models.SignalRecord
}

func (f *fakeEvaluator) Evaluate(_ context.Context, symbols []string, tf domrepo.Timeframe) []models.SignalRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.symbols, f.tf = symbols, tf
	f.calls++
	return f.out
}

type envelope struct {
	Status int             `json:"status"`
	Data   json.RawMessage `json:"data"`
}

func setup(t *testing.T, limiter *ratelimit.Limiter) (*echo.Echo, *fakeEvaluator) {
	t.Helper()
	eval := &fakeEvaluator{out: []models.SignalRecord{{Symbol: "BTCUSDT", Signal: models.StrongLong, Color: "green"}}}
	h := NewDashboardEchoHandler(nil, eval, catalog.New(), limiter, http.NotFoundHandler(), DashboardConfig{
		DefaultSymbols:   []string{"BTCUSDT", "ETHUSDT", "SOLUSDT"},
		DefaultTimeframe: domrepo.TF15m,
		RefreshInterval:  time.Minute,
		Push:             true,
	})
	e := echo.New()
	h.RegisterRoutes(e)
	return e, eval
}

func get(e *echo.Echo, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %s: %v", rec.Body.String(), err)
	}
	return env
}

func TestSignalsDefaults(t *testing.T) {
	e, eval := setup(t, nil)

	rec := get(e, "/api/signals")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if strings.Join(eval.symbols, ",") != "BTCUSDT,ETHUSDT,SOLUSDT" {
		t.Fatalf("expected default symbols, got %v", eval.symbols)
	}
	if eval.tf != domrepo.TF15m {
		t.Fatalf("expected default timeframe, got %s", eval.tf)
	}

	env := decode(t, rec)
	var records []models.SignalRecord
	if err := json.Unmarshal(env.Data, &records); err != nil {
		t.Fatalf("decode records: %v", err)
	}
	if len(records) != 1 || records[0].Signal != models.StrongLong || records[0].Color != "green" {
		t.Fatalf("unexpected records %+v", records)
	}
}

func TestSignalsEmptySelection(t *testing.T) {
	e, eval := setup(t, nil)

	rec := get(e, "/api/signals?symbols=&tf=15m")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if eval.calls != 0 {
		t.Fatalf("evaluator must not run for an empty selection, got symbols %v", eval.symbols)
	}
	env := decode(t, rec)
	if string(env.Data) != "[]" {
		t.Fatalf("expected empty data, got %s", env.Data)
	}
}

func TestSignalsExplicitSelection(t *testing.T) {
	e, eval := setup(t, nil)

	rec := get(e, "/api/signals?symbols=ethusdt,%20XRPUSDT,ETHUSDT&tf=4h")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if strings.Join(eval.symbols, ",") != "ETHUSDT,XRPUSDT" {
		t.Fatalf("unexpected symbols %v", eval.symbols)
	}
	if eval.tf != domrepo.TF4h {
		t.Fatalf("unexpected timeframe %s", eval.tf)
	}
}

func TestSignalsRejectsBadTimeframe(t *testing.T) {
	e, eval := setup(t, nil)

	rec := get(e, "/api/signals?tf=2h")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if env := decode(t, rec); env.Status != http.StatusBadRequest || !strings.Contains(string(env.Data), "ERR_ONEOF") {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
	if eval.symbols != nil {
		t.Fatalf("evaluator must not run on invalid input")
	}
}

func TestSignalsRejectsUnknownSymbol(t *testing.T) {
	e, _ := setup(t, nil)

	rec := get(e, "/api/signals?symbols=BTCUSDT,NOPEUSDT")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "NOPEUSDT") {
		t.Fatalf("expected offending symbol in body, got %s", rec.Body.String())
	}
}

func TestSignalsRateLimited(t *testing.T) {
	e, _ := setup(t, ratelimit.New(1, 0))

	if rec := get(e, "/api/signals"); rec.Code != http.StatusOK {
		t.Fatalf("first call: expected 200, got %d", rec.Code)
	}
	rec := get(e, "/api/signals")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second call: expected 429, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "ERR_RATE_LIMIT") {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestSymbolsAndTimeframes(t *testing.T) {
	e, _ := setup(t, nil)

	rec := get(e, "/api/symbols")
	var list struct {
		Data struct {
			Rows  []models.SymbolOption `json:"rows"`
			Total int64                 `json:"total"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if list.Data.Total != int64(len(catalog.New().Options())) || len(list.Data.Rows) == 0 {
		t.Fatalf("unexpected symbol list %+v", list.Data)
	}

	rec = get(e, "/api/timeframes")
	if !strings.Contains(rec.Body.String(), `"label":"15 Minutes","value":"15m"`) {
		t.Fatalf("unexpected timeframes %s", rec.Body.String())
	}
}

func TestPage(t *testing.T) {
	e, _ := setup(t, nil)

	rec := get(e, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		pageTitle,
		`value="BTCUSDT" selected`,
		`value="15m" selected`,
		`"refreshMs":60000`,
		`"eventType":"signal_change"`,
		`"push":true`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("page missing %q", want)
		}
	}
	if strings.Contains(body, `value="ADAUSDT" selected`) {
		t.Fatalf("non-default symbol must not be preselected")
	}
}
