package usecase

import (
	"context"
	"fmt"
	"sync"

	"FinSignal/internal/domain/models"
	domrepo "FinSignal/internal/domain/repository"

	"github.com/shopspring/decimal"
)

type fakeAnalysis struct {
	mu    sync.Mutex
	snaps map[string]models.AnalysisSnapshot
	calls []string
}

func (f *fakeAnalysis) Analysis(_ context.Context, symbol string, _ domrepo.Timeframe) models.Result[models.AnalysisSnapshot] {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, symbol)
	s, ok := f.snaps[symbol]
	if !ok {
		return models.Fail[models.AnalysisSnapshot](fmt.Errorf("%s: %w", symbol, models.ErrUnavailable))
	}
	return models.Ok(s)
}

func (f *fakeAnalysis) set(symbol string, s models.AnalysisSnapshot) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.snaps[symbol] = s
}

type fakePrices map[string]string

func (f fakePrices) LastPrice(_ context.Context, symbol string) models.Result[decimal.Decimal] {
	p, ok := f[symbol]
	if !ok {
		return models.Fail[decimal.Decimal](fmt.Errorf("%s: %w", symbol, models.ErrUnavailable))
	}
	return models.Ok(decimal.RequireFromString(p))
}

type fakeNotifier struct {
	sent chan models.Notification
	err  error
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{sent: make(chan models.Notification, 16)}
}

func (f *fakeNotifier) Send(_ context.Context, n models.Notification) error {
	f.sent <- n
	return f.err
}

type fakeMetrics struct {
	mu      sync.Mutex
	changes []string
	cycles  int
}

func (m *fakeMetrics) RecordFetchError(string)           {}
func (m *fakeMetrics) RecordFetchLatency(string, float64) {}
func (m *fakeMetrics) RecordLastPrice(string, float64)    {}

func (m *fakeMetrics) RecordSignalChange(signal string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.changes = append(m.changes, signal)
}

func (m *fakeMetrics) RecordCycle(float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cycles++
}

func (m *fakeMetrics) cycleCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cycles
}

func snapFor(sig models.TradeSignal) models.AnalysisSnapshot {
	switch sig {
	case models.StrongLong:
		return models.AnalysisSnapshot{BuyVotes: 16, SellVotes: 0, NeutralVotes: 10, MovingAverage: models.StrongBuy, Oscillators: models.StrongBuy, Trend: models.Uptrend}
	case models.Long:
		return models.AnalysisSnapshot{BuyVotes: 12, SellVotes: 4, NeutralVotes: 10, MovingAverage: models.Buy, Oscillators: models.Neutral, Trend: models.Uptrend}
	case models.StrongShort:
		return models.AnalysisSnapshot{BuyVotes: 0, SellVotes: 16, NeutralVotes: 10, MovingAverage: models.StrongSell, Oscillators: models.StrongSell, Trend: models.Downtrend}
	case models.Short:
		return models.AnalysisSnapshot{BuyVotes: 3, SellVotes: 11, NeutralVotes: 12, MovingAverage: models.Sell, Oscillators: models.Neutral, Trend: models.Downtrend}
	default:
		return models.AnalysisSnapshot{BuyVotes: 5, SellVotes: 5, NeutralVotes: 16, MovingAverage: models.Neutral, Oscillators: models.Neutral, Trend: models.Downtrend}
	}
}
