package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"FinSignal/internal/domain/models"
	domrepo "FinSignal/internal/domain/repository"
	domsvc "FinSignal/internal/domain/service"
	xlogger "FinSignal/pkg/logger"

	"github.com/shopspring/decimal"
)

const chartURLFormat = "https://www.tradingview.com/chart/?symbol=%s:%s"

// Dashboard runs one evaluation cycle over a list of symbols.
type Dashboard struct {
	analysis domrepo.AnalysisProvider
	prices   domrepo.PriceProvider
	engine   domsvc.SignalEngine
	risk     domsvc.RiskCalculator
	changes  *ChangeNotifier
	exchange string
	metrics  domrepo.Metrics
	logger   *xlogger.Logger
}

func NewDashboard(
	analysis domrepo.AnalysisProvider,
	prices domrepo.PriceProvider,
	engine domsvc.SignalEngine,
	risk domsvc.RiskCalculator,
	changes *ChangeNotifier,
	exchange string,
	metrics domrepo.Metrics,
	logger *xlogger.Logger,
) *Dashboard {
	return &Dashboard{
		analysis: analysis,
		prices:   prices,
		engine:   engine,
		risk:     risk,
		changes:  changes,
		exchange: exchange,
		metrics:  metrics,
		logger:   logger,
	}
}

// Evaluate processes symbols strictly in order and returns the records sorted
// for display. Symbols whose analysis is unavailable are left out; a missing
// price only drops the risk envelope.
func (d *Dashboard) Evaluate(ctx context.Context, symbols []string, tf domrepo.Timeframe) []models.SignalRecord {
	start := time.Now()
	records := make([]models.SignalRecord, 0, len(symbols))

	for _, symbol := range symbols {
		snap := d.analysis.Analysis(ctx, symbol, tf)
		if !snap.OK() {
			if d.logger != nil {
				d.logger.Debug("symbol skipped", xlogger.String("symbol", symbol), xlogger.Error(snap.Err))
			}
			continue
		}

		sig := d.engine.Generate(snap.Value)

		var entry *decimal.Decimal
		if price := d.prices.LastPrice(ctx, symbol); price.OK() {
			p := price.Value
			entry = &p
		}
		env := d.risk.Envelope(entry, sig)

		if d.changes != nil {
			d.changes.Observe(ctx, symbol, sig)
		}

		records = append(records, models.SignalRecord{
			Symbol:        symbol,
			Signal:        sig,
			Color:         sig.Color(),
			BuyVotes:      snap.Value.BuyVotes,
			SellVotes:     snap.Value.SellVotes,
			NeutralVotes:  snap.Value.NeutralVotes,
			MovingAverage: snap.Value.MovingAverage,
			Oscillators:   snap.Value.Oscillators,
			Trend:         snap.Value.Trend,
			Price:         entry,
			StopLoss:      env.StopLoss,
			TakeProfit:    env.TakeProfit,
			ChartURL:      ChartURL(d.exchange, symbol),
		})
	}

	SortRecords(records)
	if d.metrics != nil {
		d.metrics.RecordCycle(time.Since(start).Seconds())
	}
	if d.logger != nil {
		d.logger.Info("signal cycle done",
			xlogger.String("timeframe", string(tf)),
			xlogger.Int("requested", len(symbols)),
			xlogger.Int("rendered", len(records)),
			xlogger.Duration("elapsed_ms", time.Since(start)),
		)
	}
	return records
}

// Wait blocks until notifications dispatched by this dashboard have returned.
func (d *Dashboard) Wait() {
	if d.changes != nil {
		d.changes.Wait()
	}
}

// SortRecords orders records by signal priority, keeping input order within
// equal priority.
func SortRecords(records []models.SignalRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Signal.Priority() < records[j].Signal.Priority()
	})
}

// ChartURL links a symbol to its TradingView chart.
func ChartURL(exchange, symbol string) string {
	return fmt.Sprintf(chartURLFormat, exchange, symbol)
}
