package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"attempt-stats/internal/aggregators"
	"attempt-stats/internal/events"
	"attempt-stats/internal/fetchers"
	internalhttp "attempt-stats/internal/http"
	"attempt-stats/internal/models"
	"attempt-stats/internal/normalizers"
	"attempt-stats/internal/pipelines"
	"attempt-stats/internal/shared/configs"
	"attempt-stats/internal/shared/databases"
	"attempt-stats/internal/shared/filestorages"
	"attempt-stats/internal/shared/loggers"
	"attempt-stats/internal/sinks"
	"attempt-stats/internal/stores"
	"attempt-stats/internal/streams"

	"google.golang.org/api/option"
)

const appName = "attempt-stats"

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	db        *databases.DB

	batchService pipelines.BatchService

	// serve mode only
	server               *http.Server
	batchRequestQueue    *streams.Queue[events.BatchRequestedEvent]
	batchRequestConsumer streams.BatchRequestConsumer
	scheduler            pipelines.Scheduler
	backgroundCtx        context.Context
	backgroundCancel     context.CancelFunc
}

// New creates and initializes a new App instance. Sinks are built only when enabled,
// so a disabled sink needs no configuration section.
func New(ctx context.Context, config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	appLogger = appLogger.With().
		Str(loggers.FieldApp, appName).
		Logger()

	app := &App{
		config:    config,
		appLogger: appLogger,
	}

	// Initialize file storage (raw batch archive and batch reports)
	fileStorage, err := newFileStorage(config.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	reportStore := stores.NewBatchReportStore(fileStorage)

	// Initialize sinks in delivery order
	var sinkList []sinks.Sink
	if config.Sinks.Archive {
		sinkList = append(sinkList, sinks.NewArchiveSink(stores.NewRawBatchStore(fileStorage)))
	}
	if config.Sinks.Sheets {
		sheetsSink, err := sinks.NewSheetsSink(ctx,
			sinks.SheetsOptions{SpreadsheetID: config.Sheets.SpreadsheetID, Worksheet: config.Sheets.Worksheet},
			option.WithCredentialsFile(config.Sheets.CredentialsFile),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize sheets sink: %w", err)
		}
		sinkList = append(sinkList, sheetsSink)
	}
	if config.Sinks.Table {
		dbLogger := appLogger.With().Str(loggers.FieldComponent, "db").Logger()
		db, err := databases.Open(ctx, dbOptions(config.DB), dbLogger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		app.db = db
		sinkList = append(sinkList, sinks.NewTableSink(stores.NewAttemptTableStore(db)))
	}

	var notifier sinks.Notifier
	if config.Sinks.Email {
		notifier, err = sinks.NewEmailNotifier(emailOptions(config.Email))
		if err != nil {
			_ = app.Close()
			return nil, fmt.Errorf("failed to initialize email notifier: %w", err)
		}
	}

	// Initialize fetcher
	fetcher := fetchers.NewStatisticsFetcher(
		fetchers.NewHTTPClient(time.Duration(config.API.Timeout)*time.Second),
		config.API.URL,
		fetchers.Credentials{Client: config.APIKeys.Client, ClientKey: config.APIKeys.ClientKey},
		retryPolicy(config.Retry),
	)

	// Initialize batch queue and service
	app.batchRequestQueue = streams.NewQueue[events.BatchRequestedEvent]()
	app.batchService = pipelines.NewBatchService(
		fetcher,
		normalizers.NewRecordNormalizer(),
		aggregators.NewSummaryAggregator(),
		sinks.NewDispatcher(sinkList...),
		notifier,
		reportStore,
		streams.NewBatchRequestProducer(app.batchRequestQueue),
	)

	consumerLogger := appLogger.With().Str(loggers.FieldComponent, "consumer").Logger()
	app.batchRequestConsumer = streams.NewBatchRequestConsumer(app.batchRequestQueue, app.batchService, consumerLogger)
	if config.Schedule.Interval > 0 {
		app.scheduler = pipelines.NewScheduler(app.batchService, time.Duration(config.Schedule.Interval)*time.Second)
	}

	// Initialize http router and server
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(app.batchService, httpLogger)
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	appLogger.Info().
		Bool("sink_archive", config.Sinks.Archive).
		Bool("sink_sheets", config.Sinks.Sheets).
		Bool("sink_table", config.Sinks.Table).
		Bool("sink_email", config.Sinks.Email).
		Str("storage_backend", config.Storage.Backend).
		Msg("application initialized")
	return app, nil
}

// Run executes one batch synchronously over window.
func (app *App) Run(ctx context.Context, window models.TimeWindow) (*models.BatchReport, error) {
	ctx = app.appLogger.With().Str(loggers.FieldComponent, "run").Logger().WithContext(ctx)

	report, svcErr := app.batchService.RunWindow(ctx, window)
	if svcErr != nil {
		return report, svcErr
	}
	return report, nil
}

// Start starts the background worker, the scheduler and the HTTP server, blocking on the latter.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting %s service on port %d (log_level=%s, schedule_interval=%ds)",
			appName,
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Schedule.Interval)

	app.backgroundCtx, app.backgroundCancel = context.WithCancel(context.Background())
	app.backgroundCtx = app.appLogger.WithContext(app.backgroundCtx)
	app.batchRequestConsumer.Start(app.backgroundCtx)
	if app.scheduler != nil {
		app.scheduler.Start(app.backgroundCtx)
	}

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Shutdown server so no new batches are accepted
	app.appLogger.Info().Msg("Shutting down server...")
	serverErr := app.server.Shutdown(ctx)
	if serverErr != nil {
		serverErr = fmt.Errorf("server shutdown failed: %w", serverErr)
		app.appLogger.Error().Err(serverErr).Msg("Server did not stop cleanly")
	} else {
		app.appLogger.Info().Msg("Server stopped")
	}

	// 2) Stop the scheduler, then let the worker run what was accepted. Past the
	// deadline the remaining batches are cancelled and stored as failed.
	if app.scheduler != nil {
		app.scheduler.Stop()
	}
	app.batchRequestQueue.Close()
	if err := app.batchRequestConsumer.Stop(ctx); err != nil {
		app.appLogger.Warn().Err(err).Msg("Queued batches cancelled at shutdown deadline")
	}
	if app.backgroundCancel != nil {
		app.backgroundCancel()
	}
	app.appLogger.Info().Msg("Background workers stopped")

	return errors.Join(serverErr, app.Close())
}

// Close releases the database connection pool.
func (app *App) Close() error {
	if app.db == nil {
		return nil
	}
	if err := app.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}

func newFileStorage(config configs.StorageConfig) (filestorages.FileStorage, error) {
	switch config.Backend {
	case "s3":
		return filestorages.NewS3Storage(filestorages.S3Options{
			Endpoint:  config.S3.Endpoint,
			Region:    config.S3.Region,
			Bucket:    config.S3.Bucket,
			AccessKey: config.S3.AccessKey,
			SecretKey: config.S3.SecretKey,
		})
	case "file", "":
		return filestorages.NewFileStorage(config.RootDir)
	default:
		return nil, errors.New("unsupported storage backend " + config.Backend)
	}
}

func dbOptions(config *configs.DBConfig) databases.Options {
	return databases.Options{
		Driver:   config.Driver,
		DBName:   config.DBName,
		User:     config.User,
		Password: config.Password,
		Host:     config.Host,
		Port:     config.Port,
		SSLMode:  config.SSLMode,
	}
}

func emailOptions(config *configs.EmailConfig) sinks.EmailOptions {
	return sinks.EmailOptions{
		SMTPServer: config.SMTPServer,
		Port:       config.Port,
		Sender:     config.SenderEmail,
		Password:   config.EmailPassword,
		Recipient:  config.Recipient,
	}
}

// retryPolicy overlays configured values on the default policy.
func retryPolicy(config configs.RetryConfig) fetchers.RetryPolicy {
	policy := fetchers.DefaultRetryPolicy()
	if config.MaxAttempts > 0 {
		policy.MaxAttempts = config.MaxAttempts
	}
	if config.InitialInterval > 0 {
		policy.InitialInterval = time.Duration(config.InitialInterval) * time.Second
	}
	if config.MaxInterval > 0 {
		policy.MaxInterval = time.Duration(config.MaxInterval) * time.Second
	}
	if config.Multiplier > 0 {
		policy.Multiplier = config.Multiplier
	}
	return policy
}
