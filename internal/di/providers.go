package di

import (
	"context"
	"fmt"
	"time"

	"PitchCast/internal/domain/repository"
	"PitchCast/internal/handler/api"
	internalrepo "PitchCast/internal/repository"
	"PitchCast/internal/service/footballdata"
	"PitchCast/internal/service/livescore"
	"PitchCast/internal/usecase"
	"PitchCast/pkg/cache"
	pkgch "PitchCast/pkg/clickhouse"
	"PitchCast/pkg/config"
	xhttp "PitchCast/pkg/http"
	pkgkafka "PitchCast/pkg/kafka"
	applogger "PitchCast/pkg/logger"
	"PitchCast/pkg/metrics"
	"PitchCast/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	return applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideCache creates the cache service: layered memory+Redis when Redis is
// enabled, memory-only otherwise.
func ProvideCache(cfg *config.Config) (cache.Service, error) {
	memOpts := []cache.MemoryOption{
		cache.WithMemoryMaxSize(2048),
		cache.WithMemoryCleanup(time.Minute),
	}
	if !cfg.Redis.Enabled {
		return cache.NewMemoryCache(memOpts...), nil
	}

	redisCache, err := cache.NewRedisCache(
		cache.WithRedisHost(cfg.Redis.Host),
		cache.WithRedisPort(cfg.Redis.Port),
		cache.WithRedisPassword(cfg.Redis.Password),
		cache.WithRedisDB(cfg.Redis.DB),
	)
	if err != nil {
		return nil, fmt.Errorf("redis cache: %w", err)
	}
	return cache.NewLayeredCache(redisCache, memOpts...), nil
}

// ProvideClickHouseClient creates a ClickHouse client and ensures the
// prediction tables exist. Returns nil when ClickHouse is disabled.
func ProvideClickHouseClient(cfg *config.Config) (*pkgch.Client, error) {
	if !cfg.ClickHouse.Enabled {
		return nil, nil
	}

	client, err := pkgch.NewClient(
		pkgch.WithHost(cfg.ClickHouse.Host),
		pkgch.WithPort(cfg.ClickHouse.Port),
		pkgch.WithDatabase(cfg.ClickHouse.Database),
		pkgch.WithCredentials(cfg.ClickHouse.User, cfg.ClickHouse.Password),
		pkgch.WithMaxConnections(10, 5),
		pkgch.WithTimeouts(cfg.ClickHouse.DialTimeout.Std(), cfg.ClickHouse.ReadTimeout.Std()),
	)
	if err != nil {
		return nil, fmt.Errorf("clickhouse client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.InitSchema(ctx, internalrepo.SchemaStatements); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("clickhouse schema: %w", err)
	}

	return client, nil
}

// ProvidePredictionStore creates the ClickHouse-backed store, or nil when
// persistence is disabled.
func ProvidePredictionStore(chClient *pkgch.Client) repository.PredictionStore {
	if chClient == nil {
		return nil
	}
	return internalrepo.NewClickHouseStore(chClient.DB())
}

// ProvideKafkaProducer creates a Kafka producer, or nil when Kafka is
// disabled.
func ProvideKafkaProducer(cfg *config.Config) (*pkgkafka.Producer, error) {
	if !cfg.Kafka.Enabled {
		return nil, nil
	}
	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithCompression(cfg.Kafka.Compression),
		pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
		pkgkafka.WithBatch(cfg.Kafka.Producer.BatchSize, cfg.Kafka.Producer.Linger.Std()),
		pkgkafka.WithProducerTimeouts(cfg.Kafka.Producer.WriteTimeout.Std(), cfg.Kafka.Producer.ReadTimeout.Std()),
		pkgkafka.WithMaxAttempts(cfg.Kafka.Producer.MaxAttempts),
		pkgkafka.WithAsync(cfg.Kafka.Producer.Async),
		pkgkafka.WithHashByKey(true),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return producer, nil
}

// ProvidePickPublisher creates the Kafka pick publisher, or nil when Kafka
// is disabled.
func ProvidePickPublisher(producer *pkgkafka.Producer, cfg *config.Config) repository.PickPublisher {
	if producer == nil {
		return nil
	}
	return internalrepo.NewKafkaPickPublisher(producer, cfg.Kafka.PicksTopic)
}

// ProvideKafkaConsumer creates the results consumer, or nil when Kafka is
// disabled or no results topic is configured.
func ProvideKafkaConsumer(cfg *config.Config) (*pkgkafka.Consumer, error) {
	if !cfg.Kafka.Enabled || cfg.Kafka.ResultsTopic == "" {
		return nil, nil
	}
	consumer, err := pkgkafka.NewConsumer(
		pkgkafka.WithConsumerBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithConsumerGroupID(cfg.Kafka.Consumer.GroupID),
		pkgkafka.WithConsumerWorkers(cfg.Kafka.Consumer.Workers),
		pkgkafka.WithConsumerBufferSize(cfg.Kafka.Consumer.BufferSize),
		pkgkafka.WithConsumerRetry(cfg.Kafka.Consumer.RetryMax, cfg.Kafka.Consumer.BackoffMin.Std(), cfg.Kafka.Consumer.BackoffMax.Std()),
		pkgkafka.WithConsumerDLQ(cfg.Kafka.Consumer.DLQTopic),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka consumer: %w", err)
	}
	return consumer, nil
}

// ProvideDataProvider layers cache and static fallback over the provider
// API client. With no provider URL configured, only the bundled sample data
// is served.
func ProvideDataProvider(cfg *config.Config, cacheSvc cache.Service, m repository.Metrics, logger *applogger.Logger) repository.DataProvider {
	fallback := footballdata.NewStaticProvider()
	if cfg.Provider.BaseURL == "" {
		logger.Warn("no provider base_url configured, serving static dataset only")
		return fallback
	}

	primary := footballdata.NewClient(cfg.Provider.BaseURL, cfg.Provider.APIKey, cfg.Provider.Timeout.Std())
	return footballdata.NewCachedProvider(primary, fallback, cacheSvc, footballdata.TTLs{
		Standings: cfg.Provider.CacheTTL.Standings.Std(),
		H2H:       cfg.Provider.CacheTTL.H2H.Std(),
		Fixtures:  cfg.Provider.CacheTTL.Fixtures.Std(),
	}, m, logger)
}

// ProvideResultStream creates the live-score stream, or nil when disabled.
func ProvideResultStream(cfg *config.Config) repository.ResultStream {
	if !cfg.LiveScore.Enabled {
		return nil
	}
	return livescore.New(
		cfg.LiveScore.APIKey,
		cfg.LiveScore.WebSocketURL,
		cfg.Provider.Leagues,
		cfg.LiveScore.ReconnectDelay.Std(),
		cfg.LiveScore.PingInterval.Std(),
	)
}

// ProvideMatchAnalyzer creates the match analyzer use case.
func ProvideMatchAnalyzer(provider repository.DataProvider, store repository.PredictionStore, m repository.Metrics, logger *applogger.Logger) *usecase.MatchAnalyzer {
	return usecase.NewMatchAnalyzer(provider, store, m, logger)
}

// ProvideJackpotAnalyzer creates the jackpot analyzer use case.
func ProvideJackpotAnalyzer(analyzer *usecase.MatchAnalyzer, publisher repository.PickPublisher, logger *applogger.Logger) *usecase.JackpotAnalyzer {
	return usecase.NewJackpotAnalyzer(analyzer, publisher, logger)
}

// ProvideDailyPicks creates the daily picks use case.
func ProvideDailyPicks(analyzer *usecase.MatchAnalyzer, provider repository.DataProvider, publisher repository.PickPublisher, cfg *config.Config, logger *applogger.Logger) *usecase.DailyPicks {
	leagues := cfg.Picks.Leagues
	if len(leagues) == 0 {
		leagues = cfg.Provider.Leagues
	}
	return usecase.NewDailyPicks(analyzer, provider, publisher, leagues, logger)
}

// ProvideResultsRecorder creates the results recorder, or nil without a
// prediction store to settle against.
func ProvideResultsRecorder(store repository.PredictionStore, m repository.Metrics, logger *applogger.Logger) *usecase.ResultsRecorder {
	if store == nil {
		return nil
	}
	return usecase.NewResultsRecorder(store, m, logger)
}

// ProvideResultsHandler creates the Kafka results handler, or nil without a
// recorder.
func ProvideResultsHandler(cfg *config.Config, recorder *usecase.ResultsRecorder) pkgkafka.MessageHandler {
	if recorder == nil {
		return nil
	}
	return usecase.NewResultsHandler(cfg.Kafka.ResultsTopic, recorder)
}

// ProvideHTTPHandler creates the REST handler.
func ProvideHTTPHandler(
	logger *applogger.Logger,
	analyzer *usecase.MatchAnalyzer,
	jackpot *usecase.JackpotAnalyzer,
	picks *usecase.DailyPicks,
	store repository.PredictionStore,
	cacheSvc cache.Service,
	cfg *config.Config,
) xhttp.Handler {
	return api.NewPredictionsHandler(logger, analyzer, jackpot, picks, store, cacheSvc, cfg.Picks.ResponseTTL.Std())
}

// ProvideApp assembles the application.
func ProvideApp(
	cfg *config.Config,
	logger *applogger.Logger,
	httpHandler xhttp.Handler,
	consumer *pkgkafka.Consumer,
	resultsHandler pkgkafka.MessageHandler,
	stream repository.ResultStream,
	recorder *usecase.ResultsRecorder,
	publisher repository.PickPublisher,
	chClient *pkgch.Client,
	cacheSvc cache.Service,
) *server.App {
	return server.New(server.Deps{
		Config:         cfg,
		Logger:         logger,
		HTTPHandler:    httpHandler,
		Consumer:       consumer,
		ResultsHandler: resultsHandler,
		Stream:         stream,
		Recorder:       recorder,
		Publisher:      publisher,
		CHClient:       chClient,
		Cache:          cacheSvc,
	})
}
