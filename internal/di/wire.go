//go:build wireinject
// +build wireinject

package di

import (
	"FinSignal/pkg/config"
	"FinSignal/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, func(), error) {
	wire.Build(
		// Ambient
		ProvideLogger,
		ProvideMetrics,

		// Providers
		ProvideAnalysisProvider,
		ProvidePriceProvider,
		ProvideSignalEngine,
		ProvideRiskCalculator,

		// Notification sinks
		ProvideHub,
		ProvideRedisPublisher,
		ProvideKafkaProducer,
		ProvideNotifier,

		// Use cases
		ProvideDashboard,
		ProvideWatcherDashboard,
		ProvideWatcher,

		// HTTP
		ProvideCatalog,
		ProvideLimiter,
		ProvideDashboardHandler,
		ProvideHTTPServer,

		// Application server
		ProvideApp,
	)
	return nil, nil, nil
}
