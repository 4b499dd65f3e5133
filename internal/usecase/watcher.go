package usecase

import (
	"context"
	"sync"
	"time"

	domrepo "FinSignal/internal/domain/repository"
	xlogger "FinSignal/pkg/logger"
)

// Watcher re-evaluates a fixed symbol list on a ticker so change
// notifications fire without any dashboard open.
type Watcher struct {
	dashboard *Dashboard
	symbols   []string
	tf        domrepo.Timeframe
	interval  time.Duration
	logger    *xlogger.Logger

	started sync.Once
	stopped sync.Once
	running bool
	stop    chan struct{}
	done    chan struct{}
}

func NewWatcher(dashboard *Dashboard, symbols []string, tf domrepo.Timeframe, interval time.Duration, logger *xlogger.Logger) *Watcher {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Watcher{
		dashboard: dashboard,
		symbols:   append([]string(nil), symbols...),
		tf:        tf,
		interval:  interval,
		logger:    logger,
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// Start runs the first cycle immediately and then one per interval until
// ctx is done or Stop is called.
func (w *Watcher) Start(ctx context.Context) {
	w.started.Do(func() {
		w.running = true
		go w.loop(ctx)
	})
	if w.logger != nil {
		w.logger.Info("watcher started",
			xlogger.Strings("symbols", w.symbols),
			xlogger.String("timeframe", string(w.tf)),
			xlogger.Duration("interval_ms", w.interval),
		)
	}
}

func (w *Watcher) loop(ctx context.Context) {
	defer close(w.done)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.dashboard.Evaluate(ctx, w.symbols, w.tf)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stop:
			return
		case <-ticker.C:
			w.dashboard.Evaluate(ctx, w.symbols, w.tf)
		}
	}
}

// Stop ends the loop and waits for the running cycle and its notifications
// to finish.
func (w *Watcher) Stop() {
	w.stopped.Do(func() { close(w.stop) })
	w.started.Do(func() {})
	if w.running {
		<-w.done
		w.dashboard.Wait()
	}
}
