package pipelines

import (
	"context"
	"sync"
	"time"

	"attempt-stats/internal/events"
	"attempt-stats/internal/models"
	"attempt-stats/internal/shared/loggers"
)

// Scheduler queues the previous interval's window on every tick.
//
//go:generate mockgen -source=scheduler.go -destination=./mocks/scheduler_mock.go -package=mocks
type Scheduler interface {
	Start(ctx context.Context)
	Stop()
}

type scheduler struct {
	service  BatchService
	interval time.Duration

	wg       sync.WaitGroup
	stopOnce sync.Once
	stopCh   chan struct{}
}

func NewScheduler(service BatchService, interval time.Duration) Scheduler {
	return &scheduler{
		service:  service,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

func (s *scheduler) Start(ctx context.Context) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-s.stopCh:
				return
			case tick := <-ticker.C:
				s.submit(ctx, tick)
			}
		}
	}()
}

func (s *scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
}

func (s *scheduler) submit(ctx context.Context, tick time.Time) {
	window := models.PreviousWindow(tick, s.interval)
	result, err := s.service.SubmitWindow(ctx, window, events.TriggerSchedule)
	if err != nil {
		loggers.Ctx(ctx).Error().Err(err).
			Str(loggers.FieldWindowStart, window.StartParam()).
			Str(loggers.FieldWindowEnd, window.EndParam()).
			Msg("scheduled batch not queued")
		return
	}
	loggers.Ctx(ctx).Debug().Str(loggers.FieldBatchID, result.BatchID).Msg("scheduled batch queued")
}
