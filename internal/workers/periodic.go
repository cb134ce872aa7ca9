package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-provenance-keeper/internal/logger"
)

// periodicJob calls tick every interval on a background goroutine. With
// immediate set the first call happens right after Start.
type periodicJob struct {
	name      string
	interval  time.Duration
	immediate bool
	tick      func(ctx context.Context) error

	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func newPeriodicJob(name string, interval time.Duration, immediate bool, tick func(ctx context.Context) error, logger *logger.Logger) *periodicJob {
	return &periodicJob{
		name:      name,
		interval:  interval,
		immediate: immediate,
		tick:      tick,
		logger:    logger,
	}
}

// Start stops a previous run, then launches the ticker goroutine.
func (j *periodicJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	j.logger.Info().Str("worker", j.name).Dur("interval", j.interval).Msg("worker started")

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		if j.immediate {
			j.run(jobCtx)
		}

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.run(jobCtx)
			}
		}
	}()
}

// Stop cancels the goroutine and blocks until it exits.
func (j *periodicJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *periodicJob) run(ctx context.Context) {
	if err := j.tick(ctx); err != nil && ctx.Err() == nil {
		j.logger.Err(err).Str("worker", j.name).Msg("worker tick failed")
	}
}
