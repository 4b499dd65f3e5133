package usecase

import (
	"context"
	"testing"
	"time"

	"FinSignal/internal/domain/models"
	domrepo "FinSignal/internal/domain/repository"
	"FinSignal/internal/services/signal"
	xlogger "FinSignal/pkg/logger"

	"github.com/shopspring/decimal"
)

func newTestDashboard(a *fakeAnalysis, p fakePrices, c *ChangeNotifier, m *fakeMetrics) *Dashboard {
	var metrics domrepo.Metrics
	if m != nil {
		metrics = m
	}
	return NewDashboard(a, p, signal.NewEngine(), signal.NewFixedRisk(0.03), c, "BITGET", metrics, xlogger.Nop())
}

func TestEvaluateSkipsUnavailableSymbols(t *testing.T) {
	a := &fakeAnalysis{snaps: map[string]models.AnalysisSnapshot{
		"BTCUSDT": snapFor(models.Long),
		"SOLUSDT": snapFor(models.Short),
	}}
	prices := fakePrices{"BTCUSDT": "100", "SOLUSDT": "100"}
	m := &fakeMetrics{}

	got := newTestDashboard(a, prices, nil, m).Evaluate(context.Background(), []string{"BTCUSDT", "ETHUSDT", "SOLUSDT"}, domrepo.TF15m)

	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].Symbol != "BTCUSDT" || got[1].Symbol != "SOLUSDT" {
		t.Fatalf("unexpected order %s, %s", got[0].Symbol, got[1].Symbol)
	}
	if len(a.calls) != 3 || a.calls[1] != "ETHUSDT" {
		t.Fatalf("expected every symbol attempted in order, got %v", a.calls)
	}
	if m.cycleCount() != 1 {
		t.Fatalf("expected one cycle metric, got %d", m.cycleCount())
	}
}

func TestEvaluateRecordFields(t *testing.T) {
	a := &fakeAnalysis{snaps: map[string]models.AnalysisSnapshot{"BTCUSDT": snapFor(models.Long)}}
	got := newTestDashboard(a, fakePrices{"BTCUSDT": "100"}, nil, nil).Evaluate(context.Background(), []string{"BTCUSDT"}, domrepo.TF1h)

	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}
	r := got[0]
	if r.Signal != models.Long || r.Color != "blue" {
		t.Fatalf("unexpected signal/color %s/%s", r.Signal, r.Color)
	}
	if r.BuyVotes != 12 || r.SellVotes != 4 || r.NeutralVotes != 10 || r.Trend != models.Uptrend {
		t.Fatalf("unexpected votes %+v", r)
	}
	if r.Price == nil || !r.Price.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("unexpected price %v", r.Price)
	}
	if r.StopLoss == nil || !r.StopLoss.Equal(decimal.NewFromInt(97)) {
		t.Fatalf("unexpected stop loss %v", r.StopLoss)
	}
	if r.TakeProfit == nil || !r.TakeProfit.Equal(decimal.NewFromInt(103)) {
		t.Fatalf("unexpected take profit %v", r.TakeProfit)
	}
	if r.ChartURL != "https://www.tradingview.com/chart/?symbol=BITGET:BTCUSDT" {
		t.Fatalf("unexpected chart url %q", r.ChartURL)
	}
}

func TestEvaluatePriceFailureDropsEnvelopeOnly(t *testing.T) {
	a := &fakeAnalysis{snaps: map[string]models.AnalysisSnapshot{"ETHUSDT": snapFor(models.StrongShort)}}
	got := newTestDashboard(a, fakePrices{}, nil, nil).Evaluate(context.Background(), []string{"ETHUSDT"}, domrepo.TF15m)

	if len(got) != 1 {
		t.Fatalf("expected card to survive price failure, got %d", len(got))
	}
	if got[0].Signal != models.StrongShort {
		t.Fatalf("unexpected signal %s", got[0].Signal)
	}
	if got[0].Price != nil || got[0].StopLoss != nil || got[0].TakeProfit != nil {
		t.Fatalf("expected absent price and envelope, got %+v", got[0])
	}
}

func TestEvaluateHoldHasNoEnvelope(t *testing.T) {
	a := &fakeAnalysis{snaps: map[string]models.AnalysisSnapshot{"XRPUSDT": snapFor(models.Hold)}}
	got := newTestDashboard(a, fakePrices{"XRPUSDT": "0.5"}, nil, nil).Evaluate(context.Background(), []string{"XRPUSDT"}, domrepo.TF15m)

	if len(got) != 1 || got[0].Signal != models.Hold || got[0].Color != "black" {
		t.Fatalf("unexpected records %+v", got)
	}
	if got[0].Price == nil || got[0].StopLoss != nil || got[0].TakeProfit != nil {
		t.Fatalf("expected price without envelope, got %+v", got[0])
	}
}

func TestEvaluateNotifiesOnChangeAcrossCycles(t *testing.T) {
	a := &fakeAnalysis{snaps: map[string]models.AnalysisSnapshot{"BTCUSDT": snapFor(models.Long)}}
	n := newFakeNotifier()
	c := NewChangeNotifier(nil, n, nil, nil)
	d := newTestDashboard(a, fakePrices{"BTCUSDT": "100"}, c, nil)
	ctx := context.Background()

	d.Evaluate(ctx, []string{"BTCUSDT"}, domrepo.TF15m)
	a.set("BTCUSDT", snapFor(models.StrongShort))
	d.Evaluate(ctx, []string{"BTCUSDT"}, domrepo.TF15m)
	d.Evaluate(ctx, []string{"BTCUSDT"}, domrepo.TF15m)
	c.Wait()

	if len(n.sent) != 1 {
		t.Fatalf("expected exactly one notification, got %d", len(n.sent))
	}
	if got := <-n.sent; got.Message != "New Signal: STRONG SHORT" {
		t.Fatalf("unexpected message %q", got.Message)
	}
}

func TestSortRecords(t *testing.T) {
	in := []models.TradeSignal{models.Hold, models.Short, models.StrongLong, models.Long, models.StrongShort}
	records := make([]models.SignalRecord, len(in))
	for i, s := range in {
		records[i] = models.SignalRecord{Signal: s}
	}

	SortRecords(records)

	want := []models.TradeSignal{models.StrongLong, models.StrongShort, models.Long, models.Short, models.Hold}
	for i, w := range want {
		if records[i].Signal != w {
			t.Fatalf("position %d: got %s, want %s", i, records[i].Signal, w)
		}
	}
}

func TestSortRecordsStable(t *testing.T) {
	records := []models.SignalRecord{
		{Symbol: "A", Signal: models.Hold},
		{Symbol: "B", Signal: models.Long},
		{Symbol: "C", Signal: models.Hold},
		{Symbol: "D", Signal: models.Long},
	}
	SortRecords(records)
	order := ""
	for _, r := range records {
		order += r.Symbol
	}
	if order != "BDAC" {
		t.Fatalf("expected stable order BDAC, got %s", order)
	}
}

func TestWatcherRunsImmediatelyAndStops(t *testing.T) {
	a := &fakeAnalysis{snaps: map[string]models.AnalysisSnapshot{"BTCUSDT": snapFor(models.Long)}}
	m := &fakeMetrics{}
	w := NewWatcher(newTestDashboard(a, fakePrices{}, nil, m), []string{"BTCUSDT"}, domrepo.TF15m, time.Hour, nil)

	w.Start(context.Background())
	deadline := time.Now().Add(2 * time.Second)
	for m.cycleCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatalf("watcher did not run its first cycle")
		}
		time.Sleep(5 * time.Millisecond)
	}
	w.Stop()
	w.Stop()
}

func TestWatcherStopWithoutStart(t *testing.T) {
	w := NewWatcher(nil, nil, domrepo.TF15m, 0, nil)
	w.Stop()
}
