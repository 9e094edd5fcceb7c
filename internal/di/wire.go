//go:build wireinject
// +build wireinject

package di

import (
	"PitchCast/pkg/config"
	"PitchCast/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire generates the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,
		ProvideCache,

		// Infrastructure clients
		ProvideClickHouseClient,
		ProvideKafkaProducer,
		ProvideKafkaConsumer,

		// Repositories
		ProvidePredictionStore,
		ProvidePickPublisher,
		ProvideDataProvider,
		ProvideResultStream,

		// Use cases
		ProvideMatchAnalyzer,
		ProvideJackpotAnalyzer,
		ProvideDailyPicks,
		ProvideResultsRecorder,
		ProvideResultsHandler,

		// HTTP and application
		ProvideHTTPHandler,
		ProvideApp,
	)
	return &server.App{}, nil
}
