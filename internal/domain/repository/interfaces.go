package repository

import (
	"context"

	"FinSignal/internal/domain/models"

	"github.com/shopspring/decimal"
)

// AnalysisProvider fetches technical analysis for one symbol and timeframe.
// Implementations never return a partially filled snapshot: either the
// result is OK or it carries the failure reason.
type AnalysisProvider interface {
	Analysis(ctx context.Context, symbol string, tf Timeframe) models.Result[models.AnalysisSnapshot]
}

// PriceProvider fetches the latest traded price for a compact symbol.
type PriceProvider interface {
	LastPrice(ctx context.Context, symbol string) models.Result[decimal.Decimal]
}

// Notifier delivers a transient alert to one channel.
type Notifier interface {
	Send(ctx context.Context, n models.Notification) error
}

type Metrics interface {
	RecordFetchError(provider string)
	RecordFetchLatency(provider string, seconds float64)
	RecordSignalChange(signal string)
	RecordLastPrice(symbol string, price float64)
	RecordCycle(seconds float64)
}
