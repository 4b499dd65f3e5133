package di

import (
	"fmt"
	"time"

	"FinSignal/internal/domain/repository"
	domsvc "FinSignal/internal/domain/service"
	"FinSignal/internal/handler/api"
	"FinSignal/internal/service/bitget"
	"FinSignal/internal/service/notify"
	"FinSignal/internal/service/ratelimit"
	"FinSignal/internal/service/tradingview"
	"FinSignal/internal/services/catalog"
	"FinSignal/internal/services/signal"
	"FinSignal/internal/usecase"
	"FinSignal/pkg/config"
	xhttp "FinSignal/pkg/http"
	pkgkafka "FinSignal/pkg/kafka"
	applogger "FinSignal/pkg/logger"
	"FinSignal/pkg/metrics"
	"FinSignal/pkg/pubsub"
	"FinSignal/pkg/server"
	"FinSignal/pkg/ws"
)

// WatcherDashboard is the evaluation pipeline owned by the background
// watcher. It keeps its own last-signal table.
type WatcherDashboard struct {
	*usecase.Dashboard
}

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideAnalysisProvider creates the TradingView scanner client.
func ProvideAnalysisProvider(cfg *config.Config, l *applogger.Logger, m repository.Metrics) *tradingview.Client {
	return tradingview.New(l, m,
		tradingview.WithScannerURL(cfg.TradingView.ScannerURL),
		tradingview.WithExchange(cfg.TradingView.Exchange),
		tradingview.WithScreener(cfg.TradingView.Screener),
		tradingview.WithTimeout(cfg.TradingView.Timeout),
	)
}

// ProvidePriceProvider creates the Bitget ticker client.
func ProvidePriceProvider(cfg *config.Config, l *applogger.Logger, m repository.Metrics) repository.PriceProvider {
	return bitget.New(l, m,
		bitget.WithBaseURL(cfg.Bitget.BaseURL),
		bitget.WithTimeout(cfg.Bitget.Timeout),
	)
}

// ProvideSignalEngine returns the threshold rule engine.
func ProvideSignalEngine() domsvc.SignalEngine {
	return signal.NewEngine()
}

// ProvideRiskCalculator returns the fixed-fraction envelope calculator.
func ProvideRiskCalculator(cfg *config.Config) domsvc.RiskCalculator {
	return signal.NewFixedRisk(cfg.Risk.Fraction)
}

// ProvideHub creates the browser push hub.
func ProvideHub(l *applogger.Logger) *ws.Hub {
	return ws.NewHub(l)
}

// ProvideRedisPublisher connects to Redis when the redis sink is enabled.
func ProvideRedisPublisher(cfg *config.Config, l *applogger.Logger) (*pubsub.RedisPublisher, func(), error) {
	if !cfg.Notify.Redis.Enabled {
		return nil, func() {}, nil
	}
	p, err := pubsub.NewRedisPublisher(
		pubsub.WithRedisAddr(cfg.Notify.Redis.Addr),
		pubsub.WithRedisPassword(cfg.Notify.Redis.Password),
		pubsub.WithRedisDB(cfg.Notify.Redis.DB),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("redis publisher: %w", err)
	}
	cleanup := func() {
		if err := p.Close(); err != nil {
			l.Warn("redis close error", applogger.Error(err))
		}
	}
	return p, cleanup, nil
}

// ProvideKafkaProducer creates a Kafka producer when the kafka sink is enabled.
func ProvideKafkaProducer(cfg *config.Config, l *applogger.Logger) (*pkgkafka.Producer, func(), error) {
	if !cfg.Notify.Kafka.Enabled {
		return nil, func() {}, nil
	}
	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Notify.Kafka.Brokers),
		pkgkafka.WithCompression(cfg.Notify.Kafka.Compression),
		pkgkafka.WithBatchSize(1),
		pkgkafka.WithBatchTimeout(10*time.Millisecond),
		pkgkafka.WithHashByKey(true),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("kafka producer: %w", err)
	}
	cleanup := func() {
		if err := producer.Close(); err != nil {
			l.Warn("kafka close error", applogger.Error(err))
		}
	}
	return producer, cleanup, nil
}

// ProvideNotifier assembles every enabled sink behind one Notifier.
func ProvideNotifier(
	cfg *config.Config,
	l *applogger.Logger,
	hub *ws.Hub,
	redis *pubsub.RedisPublisher,
	producer *pkgkafka.Producer,
) repository.Notifier {
	sinks := []repository.Notifier{notify.NewLogNotifier(l)}
	if cfg.Notify.Browser {
		sinks = append(sinks, notify.NewBrowserNotifier(hub))
	}
	if cfg.Notify.Webhook.Enabled {
		sinks = append(sinks, notify.NewWebhookNotifier(cfg.Notify.Webhook.URL, cfg.Notify.Webhook.Timeout))
	}
	if redis != nil {
		sinks = append(sinks, notify.NewRedisNotifier(redis, cfg.Notify.Redis.Channel))
	}
	if producer != nil {
		sinks = append(sinks, notify.NewKafkaNotifier(producer, cfg.Notify.Kafka.Topic))
	}
	return notify.NewMulti(sinks...)
}

func newDashboard(
	tv *tradingview.Client,
	prices repository.PriceProvider,
	engine domsvc.SignalEngine,
	risk domsvc.RiskCalculator,
	n repository.Notifier,
	m repository.Metrics,
	l *applogger.Logger,
) *usecase.Dashboard {
	changes := usecase.NewChangeNotifier(usecase.NewLastSignalTable(), n, m, l)
	return usecase.NewDashboard(tv, prices, engine, risk, changes, tv.Exchange(), m, l)
}

// ProvideDashboard creates the pipeline behind the HTTP dashboard.
func ProvideDashboard(
	tv *tradingview.Client,
	prices repository.PriceProvider,
	engine domsvc.SignalEngine,
	risk domsvc.RiskCalculator,
	n repository.Notifier,
	m repository.Metrics,
	l *applogger.Logger,
) *usecase.Dashboard {
	return newDashboard(tv, prices, engine, risk, n, m, l)
}

// ProvideWatcherDashboard creates the watcher's separate pipeline.
func ProvideWatcherDashboard(
	tv *tradingview.Client,
	prices repository.PriceProvider,
	engine domsvc.SignalEngine,
	risk domsvc.RiskCalculator,
	n repository.Notifier,
	m repository.Metrics,
	l *applogger.Logger,
) WatcherDashboard {
	return WatcherDashboard{newDashboard(tv, prices, engine, risk, n, m, l)}
}

// ProvideWatcher returns the background watcher, or nil when disabled.
func ProvideWatcher(cfg *config.Config, d WatcherDashboard, l *applogger.Logger) *usecase.Watcher {
	if !cfg.Watcher.Enabled {
		return nil
	}
	return usecase.NewWatcher(d.Dashboard, cfg.Dashboard.DefaultSymbols,
		repository.Timeframe(cfg.Dashboard.DefaultTimeframe), cfg.Watcher.Interval, l)
}

// ProvideCatalog returns the symbol catalog.
func ProvideCatalog() *catalog.Catalog {
	return catalog.New()
}

// ProvideLimiter creates the per-client limiter for the signals endpoint.
func ProvideLimiter(cfg *config.Config) *ratelimit.Limiter {
	return ratelimit.New(cfg.Dashboard.RateLimit.Capacity, cfg.Dashboard.RateLimit.RefillPerSec)
}

// ProvideDashboardHandler creates the echo handler for the dashboard.
func ProvideDashboardHandler(
	cfg *config.Config,
	l *applogger.Logger,
	d *usecase.Dashboard,
	cat *catalog.Catalog,
	limiter *ratelimit.Limiter,
	hub *ws.Hub,
) *api.DashboardEchoHandler {
	return api.NewDashboardEchoHandler(l, d, cat, limiter, hub, api.DashboardConfig{
		DefaultSymbols:   cfg.Dashboard.DefaultSymbols,
		DefaultTimeframe: repository.Timeframe(cfg.Dashboard.DefaultTimeframe),
		RefreshInterval:  cfg.Dashboard.RefreshInterval,
		Push:             cfg.Notify.Browser,
	})
}

// ProvideHTTPServer creates the echo server with the dashboard routes.
func ProvideHTTPServer(cfg *config.Config, l *applogger.Logger, h *api.DashboardEchoHandler) *xhttp.Server {
	return xhttp.NewServer(h,
		xhttp.WithHost(cfg.Server.Host),
		xhttp.WithPort(cfg.Server.Port),
		xhttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
		xhttp.WithSlowThreshold(cfg.Server.SlowThreshold),
		xhttp.WithMetrics(cfg.Metrics.Enabled),
		xhttp.WithLogger(l),
	)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	l *applogger.Logger,
	srv *xhttp.Server,
	d *usecase.Dashboard,
	w *usecase.Watcher,
	hub *ws.Hub,
) *server.App {
	return server.New(cfg, l, srv, d, w, hub)
}
