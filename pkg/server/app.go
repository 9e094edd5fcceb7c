package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	drepo "PitchCast/internal/domain/repository"
	"PitchCast/internal/usecase"
	"PitchCast/pkg/cache"
	pkgch "PitchCast/pkg/clickhouse"
	"PitchCast/pkg/config"
	xhttp "PitchCast/pkg/http"
	pkgkafka "PitchCast/pkg/kafka"
	applogger "PitchCast/pkg/logger"
)

// App encapsulates the application lifecycle. Optional components (Kafka,
// ClickHouse, the live-score stream) are nil when disabled in config.
type App struct {
	cfg            *config.Config
	logger         *applogger.Logger
	httpHandler    xhttp.Handler
	httpServer     *xhttp.Server
	consumer       *pkgkafka.Consumer
	resultsHandler pkgkafka.MessageHandler
	stream         drepo.ResultStream
	recorder       *usecase.ResultsRecorder
	publisher      drepo.PickPublisher
	chClient       *pkgch.Client
	cacheSvc       cache.Service
}

// Deps bundles everything the app needs at start.
type Deps struct {
	Config         *config.Config
	Logger         *applogger.Logger
	HTTPHandler    xhttp.Handler
	Consumer       *pkgkafka.Consumer
	ResultsHandler pkgkafka.MessageHandler
	Stream         drepo.ResultStream
	Recorder       *usecase.ResultsRecorder
	Publisher      drepo.PickPublisher
	CHClient       *pkgch.Client
	Cache          cache.Service
}

// New creates the application from its wired dependencies.
func New(d Deps) *App {
	return &App{
		cfg:            d.Config,
		logger:         d.Logger,
		httpHandler:    d.HTTPHandler,
		consumer:       d.Consumer,
		resultsHandler: d.ResultsHandler,
		stream:         d.Stream,
		recorder:       d.Recorder,
		publisher:      d.Publisher,
		chClient:       d.CHClient,
		cacheSvc:       d.Cache,
	}
}

// Run starts all components and blocks until interrupted.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	metricsPath := ""
	if a.cfg.Metrics.Enabled {
		metricsPath = a.cfg.Metrics.Path
	}
	a.httpServer = xhttp.NewServer(a.httpHandler,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout.Std(), a.cfg.Server.WriteTimeout.Std(), a.cfg.Server.ShutdownTimeout.Std()),
		xhttp.WithMetricsPath(metricsPath),
		xhttp.WithLogger(a.logger),
	)

	if a.consumer != nil && a.resultsHandler != nil {
		a.consumer.RegisterHandler(a.resultsHandler)
		go func() {
			if err := a.consumer.Start(); err != nil {
				a.logger.Error("kafka consumer error", applogger.Error(err))
			}
		}()
		a.logger.Info("results consumer started", applogger.String("topic", a.resultsHandler.Topic()))
	}

	if a.stream != nil && a.recorder != nil {
		go func() {
			if err := a.recorder.RunStream(ctx, a.stream); err != nil {
				a.logger.Error("livescore stream stopped", applogger.Error(err))
			}
		}()
		a.logger.Info("livescore stream started")
	}

	if err := a.httpServer.Start(); err != nil {
		a.logger.Error("http server start error", applogger.Error(err))
		return err
	}
	a.logger.Info("http server started", applogger.Int("port", a.cfg.Server.Port))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.logger.Info("shutdown signal received")
	return a.shutdown(ctx)
}

func (a *App) shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout.Std())
	defer cancel()

	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.logger.Error("http shutdown error", applogger.Error(err))
	}

	if a.consumer != nil {
		if err := a.consumer.Stop(shutdownCtx); err != nil {
			a.logger.Warn("kafka consumer stop error", applogger.Error(err))
		}
	}

	if a.stream != nil {
		if err := a.stream.Close(); err != nil {
			a.logger.Warn("livescore close error", applogger.Error(err))
		}
	}

	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.logger.Warn("publisher close error", applogger.Error(err))
		}
	}

	if a.chClient != nil {
		if err := a.chClient.Close(); err != nil {
			a.logger.Warn("clickhouse close error", applogger.Error(err))
		}
	}

	if a.cacheSvc != nil {
		if err := a.cacheSvc.Close(); err != nil {
			a.logger.Warn("cache close error", applogger.Error(err))
		}
	}

	a.logger.Info("shutdown complete")
	return nil
}
