package workers

import (
	"context"

	"github.com/MKhiriev/go-provenance-keeper/internal/logger"
)

// Workers starts and stops a set of workers together.
type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

// NewWorkers groups workers. Nil entries, the result of a disabled job, are
// skipped.
func NewWorkers(logger *logger.Logger, workers ...Worker) *Workers {
	ws := &Workers{logger: logger}
	for _, w := range workers {
		if w != nil {
			ws.workers = append(ws.workers, w)
		}
	}

	return ws
}

// Run starts every worker.
func (w *Workers) Run(ctx context.Context) {
	w.logger.Info().Int("count", len(w.workers)).Msg("starting background workers")
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops the workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
	w.logger.Info().Msg("background workers stopped")
}
