package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"FinSignal/internal/domain/models"
	domrepo "FinSignal/internal/domain/repository"
	xlogger "FinSignal/pkg/logger"
)

const (
	// NotificationTimeout is how long the desktop popup stays visible.
	NotificationTimeout = 5 * time.Second

	deliveryTimeout = 30 * time.Second
)

// LastSignalTable remembers the most recent signal per symbol for the life
// of the process.
type LastSignalTable struct {
	mu   sync.Mutex
	last map[string]models.TradeSignal
}

func NewLastSignalTable() *LastSignalTable {
	return &LastSignalTable{last: make(map[string]models.TradeSignal)}
}

// Get returns the recorded signal for symbol.
func (t *LastSignalTable) Get(symbol string) (models.TradeSignal, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.last[symbol]
	return s, ok
}

// Swap records sig and returns the previous entry.
func (t *LastSignalTable) Swap(symbol string, sig models.TradeSignal) (models.TradeSignal, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	prev, ok := t.last[symbol]
	t.last[symbol] = sig
	return prev, ok
}

// Len returns the number of tracked symbols.
func (t *LastSignalTable) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.last)
}

// ChangeNotifier alerts when a symbol's signal differs from the last one seen.
type ChangeNotifier struct {
	table    *LastSignalTable
	notifier domrepo.Notifier
	metrics  domrepo.Metrics
	logger   *xlogger.Logger
	now      func() time.Time
	inflight sync.WaitGroup
}

func NewChangeNotifier(table *LastSignalTable, notifier domrepo.Notifier, metrics domrepo.Metrics, logger *xlogger.Logger) *ChangeNotifier {
	if table == nil {
		table = NewLastSignalTable()
	}
	return &ChangeNotifier{
		table:    table,
		notifier: notifier,
		metrics:  metrics,
		logger:   logger,
		now:      time.Now,
	}
}

// Table exposes the underlying last-signal table.
func (c *ChangeNotifier) Table() *LastSignalTable { return c.table }

// Observe records sig for symbol and, when it replaced a different signal,
// dispatches a notification in the background. It reports whether a
// notification was dispatched. The first observation of a symbol never
// notifies.
func (c *ChangeNotifier) Observe(ctx context.Context, symbol string, sig models.TradeSignal) bool {
	prev, seen := c.table.Swap(symbol, sig)
	if !seen || prev == sig {
		return false
	}

	if c.metrics != nil {
		c.metrics.RecordSignalChange(string(sig))
	}
	if c.notifier == nil {
		return true
	}

	msg := models.Notification{
		Symbol:  symbol,
		Signal:  sig,
		Title:   fmt.Sprintf("Trade Signal Update: %s", symbol),
		Message: fmt.Sprintf("New Signal: %s", sig),
		Timeout: NotificationTimeout,
		SentAt:  c.now(),
	}

	// Delivery must not hold up the cycle or be cancelled with the request.
	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), deliveryTimeout)
	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()
		defer cancel()
		if err := c.notifier.Send(sendCtx, msg); err != nil && c.logger != nil {
			c.logger.Warn("notification delivery failed",
				xlogger.String("symbol", symbol),
				xlogger.String("signal", string(sig)),
				xlogger.Error(err),
			)
		}
	}()
	return true
}

// Wait blocks until every dispatched notification has returned.
func (c *ChangeNotifier) Wait() {
	c.inflight.Wait()
}
