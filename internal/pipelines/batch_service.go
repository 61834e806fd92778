package pipelines

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"attempt-stats/internal/aggregators"
	"attempt-stats/internal/events"
	"attempt-stats/internal/fetchers"
	"attempt-stats/internal/models"
	"attempt-stats/internal/normalizers"
	"attempt-stats/internal/shared/loggers"
	"attempt-stats/internal/shared/metrics"
	"attempt-stats/internal/shared/svcerrors"
	"attempt-stats/internal/shared/ulid"
	"attempt-stats/internal/sinks"
	"attempt-stats/internal/stores"
	"attempt-stats/internal/streams"
)

// SubmitResult is returned when a batch is accepted for a later run.
type SubmitResult struct {
	BatchID string
	Window  models.TimeWindow
}

//go:generate mockgen -source=batch_service.go -destination=./mocks/batch_service_mock.go -package=mocks
type BatchService interface {
	// SubmitBatch parses the window, records a pending report and queues the batch.
	SubmitBatch(ctx context.Context, start, end string, trigger events.BatchTrigger) (*SubmitResult, error)
	SubmitWindow(ctx context.Context, window models.TimeWindow, trigger events.BatchTrigger) (*SubmitResult, error)

	// RunWindow runs a batch synchronously under a fresh batch id.
	RunWindow(ctx context.Context, window models.TimeWindow) (*models.BatchReport, *svcerrors.ServiceError)

	// RunBatch fetches, normalizes, aggregates and delivers one window, then sends the
	// notification and stores the report. The report is returned even when the run fails.
	RunBatch(ctx context.Context, batchID string, window models.TimeWindow) (*models.BatchReport, *svcerrors.ServiceError)

	GetReport(ctx context.Context, batchID string) (*models.BatchReport, error)
}

type batchService struct {
	fetcher     fetchers.StatisticsFetcher
	normalizer  normalizers.RecordNormalizer
	aggregator  aggregators.SummaryAggregator
	dispatcher  sinks.Dispatcher
	notifier    sinks.Notifier
	reportStore stores.BatchReportStore
	producer    streams.BatchRequestProducer

	now func() time.Time
}

// NewBatchService wires the pipeline stages. notifier may be nil when email is disabled,
// producer may be nil when batches are only run synchronously.
func NewBatchService(
	fetcher fetchers.StatisticsFetcher,
	normalizer normalizers.RecordNormalizer,
	aggregator aggregators.SummaryAggregator,
	dispatcher sinks.Dispatcher,
	notifier sinks.Notifier,
	reportStore stores.BatchReportStore,
	producer streams.BatchRequestProducer,
) BatchService {
	return &batchService{
		fetcher:     fetcher,
		normalizer:  normalizer,
		aggregator:  aggregator,
		dispatcher:  dispatcher,
		notifier:    notifier,
		reportStore: reportStore,
		producer:    producer,
		now:         time.Now,
	}
}

func (s *batchService) SubmitBatch(ctx context.Context, start, end string, trigger events.BatchTrigger) (*SubmitResult, error) {
	window, err := models.ParseTimeWindow(start, end)
	if err != nil {
		svcError := errInvalidWindow(err)
		metricBatchSubmittedTotal.WithLabelValues(string(trigger), svcError.Code).Inc()
		return nil, svcError
	}
	return s.SubmitWindow(ctx, window, trigger)
}

func (s *batchService) SubmitWindow(ctx context.Context, window models.TimeWindow, trigger events.BatchTrigger) (*SubmitResult, error) {
	if s.producer == nil {
		return nil, errInternalPublishFailed(errors.New("no batch request producer configured"))
	}

	batchID := ulid.NewULID()
	now := s.now()
	logger := loggers.Ctx(ctx).With().Str(loggers.FieldBatchID, batchID).Logger()

	report := models.NewPendingBatchReport(batchID, window, now)
	if err := s.reportStore.Upsert(ctx, report); err != nil {
		svcError := errInternalReportStoreFailed(err)
		metricBatchSubmittedTotal.WithLabelValues(string(trigger), svcError.Code).Inc()
		return nil, svcError
	}

	event := events.BatchRequestedEvent{
		BatchID:     batchID,
		Window:      window,
		RequestedAt: now.UTC(),
		Trigger:     trigger,
	}
	if err := s.producer.Produce(ctx, event); err != nil {
		svcError := errInternalPublishFailed(err)
		metricBatchSubmittedTotal.WithLabelValues(string(trigger), svcError.Code).Inc()

		report.Status = models.BatchFailed
		report.ErrorCode = svcError.Code
		report.Error = svcError.Error()
		report.FinishedAt = s.now().UTC()
		if storeErr := s.reportStore.Upsert(ctx, report); storeErr != nil {
			logger.Error().Err(storeErr).Msg("failed to store report of unqueued batch")
		}
		return nil, svcError
	}

	metricBatchSubmittedTotal.WithLabelValues(string(trigger), metrics.ValueNoError).Inc()
	logger.Info().
		Str(loggers.FieldWindowStart, window.StartParam()).
		Str(loggers.FieldWindowEnd, window.EndParam()).
		Str("trigger", string(trigger)).
		Msg("batch queued")
	return &SubmitResult{BatchID: batchID, Window: window}, nil
}

func (s *batchService) RunWindow(ctx context.Context, window models.TimeWindow) (*models.BatchReport, *svcerrors.ServiceError) {
	return s.RunBatch(ctx, ulid.NewULID(), window)
}

func (s *batchService) RunBatch(ctx context.Context, batchID string, window models.TimeWindow) (report *models.BatchReport, runErr *svcerrors.ServiceError) {
	logger := loggers.Ctx(ctx).With().
		Str(loggers.FieldBatchID, batchID).
		Str(loggers.FieldWindowStart, window.StartParam()).
		Str(loggers.FieldWindowEnd, window.EndParam()).
		Logger()
	ctx = logger.WithContext(ctx)

	report = models.NewPendingBatchReport(batchID, window, s.now())

	// a panicking stage must not leave the stored report pending
	defer func() {
		if r := recover(); r != nil {
			logger.Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msgf("batch panic recovered: %v", r)

			panicErr, ok := r.(error)
			if !ok {
				panicErr = fmt.Errorf("%v", r)
			}
			runErr = svcerrors.NewInternalErrorPanic(panicErr)
			s.fail(ctx, report, runErr)
		}
	}()

	if !window.End.After(window.Start) {
		svcError := errInvalidWindow(models.ErrInvalidTimeWindow)
		s.fail(ctx, report, svcError)
		return report, svcError
	}
	if err := ctx.Err(); err != nil {
		svcError := errInternalRunCancelled(err)
		logger.Warn().Err(err).Str(loggers.FieldErrorCode, svcError.Code).Msg("batch cancelled before start")
		s.fail(ctx, report, svcError)
		return report, svcError
	}

	logger.Info().Msg("batch started")

	raws, err := s.fetcher.Fetch(ctx, window)
	if err != nil {
		svcError := errFetchFailed(err)
		logger.Error().Err(err).Str(loggers.FieldErrorCode, svcError.Code).Msg("fetch failed")
		s.fail(ctx, report, svcError)
		return report, svcError
	}

	records, skipped := s.normalizer.NormalizeAll(ctx, raws)
	summary := s.aggregator.Aggregate(records)
	batch := &models.Batch{
		BatchID: batchID,
		Window:  window,
		Raw:     raws,
		Records: records,
		Skipped: skipped,
		Summary: summary,
	}

	report.Fetched = len(raws)
	report.Skipped = skipped
	report.Summary = &summary
	report.Deliveries = s.dispatcher.Dispatch(ctx, batch)
	report.ResolveStatus()

	s.notify(ctx, report)
	if svcError := s.complete(ctx, report); svcError != nil {
		return report, svcError
	}

	logger.Info().
		Str("status", string(report.Status)).
		Int("fetched", report.Fetched).
		Int("skipped", report.Skipped).
		Int("total_attempts", summary.TotalAttempts).
		Int("successful_attempts", summary.SuccessfulAttempts).
		Int("unique_users", summary.UniqueUsers).
		Msg("batch finished")
	return report, nil
}

func (s *batchService) GetReport(ctx context.Context, batchID string) (*models.BatchReport, error) {
	report, err := s.reportStore.Get(ctx, batchID)
	if err != nil {
		if errors.Is(err, stores.ErrBatchReportNotFound) {
			return nil, errReportNotFound(batchID, err)
		}
		return nil, errInternalReportStoreFailed(err)
	}
	return report, nil
}

// fail marks the report failed, still sends the notification and stores the report.
func (s *batchService) fail(ctx context.Context, report *models.BatchReport, svcError *svcerrors.ServiceError) {
	report.Status = models.BatchFailed
	report.ErrorCode = svcError.Code
	report.Error = svcError.Error()

	s.notify(ctx, report)
	if storeError := s.complete(ctx, report); storeError != nil {
		loggers.Ctx(ctx).Error().Err(storeError).Msg("failed to store report of failed batch")
	}
	metricBatchRunsTotal.WithLabelValues(string(report.Status), svcError.Code).Inc()
}

func (s *batchService) notify(ctx context.Context, report *models.BatchReport) {
	if s.notifier == nil {
		return
	}

	result := &models.DeliveryResult{Sink: sinks.NameEmail, Delivered: true}
	if err := s.notifier.Notify(ctx, report); err != nil {
		result.Delivered = false
		result.Error = err.Error()
		if svcErr, ok := svcerrors.AsServiceError(err); ok {
			result.ErrorCode = svcErr.Code
		}
		loggers.Ctx(ctx).Error().Err(err).Str(loggers.FieldErrorCode, result.ErrorCode).Msg("notification failed")
		if report.Status == models.BatchSucceeded {
			report.Status = models.BatchPartiallyDelivered
		}
	}
	report.Notification = result
}

// complete stamps the finish time and persists the report.
func (s *batchService) complete(ctx context.Context, report *models.BatchReport) *svcerrors.ServiceError {
	report.FinishedAt = s.now().UTC()
	metricBatchRunDuration.WithLabelValues(string(report.Status)).Observe(report.FinishedAt.Sub(report.StartedAt).Seconds())

	// stored even when ctx was cancelled mid-run, so the report never stays pending
	if err := s.reportStore.Upsert(context.WithoutCancel(ctx), report); err != nil {
		svcError := errInternalReportStoreFailed(err)
		if report.Status != models.BatchFailed {
			metricBatchRunsTotal.WithLabelValues(string(report.Status), svcError.Code).Inc()
		}
		return svcError
	}
	if report.Status != models.BatchFailed {
		metricBatchRunsTotal.WithLabelValues(string(report.Status), metrics.ValueNoError).Inc()
	}
	return nil
}
