package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-provenance-keeper/internal/logger"
	"github.com/MKhiriev/go-provenance-keeper/internal/service"
)

// NewReconcileWorker runs ReconciliationService.Reconcile every interval.
// It returns nil when interval is not positive, which disables the job.
func NewReconcileWorker(reconciliation service.ReconciliationService, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		return nil
	}

	return newPeriodicJob("reconcile", interval, false, func(ctx context.Context) error {
		report, err := reconciliation.Reconcile(ctx)
		if err != nil {
			return err
		}
		if len(report.Backfilled) > 0 || report.Resolved > 0 {
			logger.Warn().
				Int("scanned", report.Scanned).
				Strs("backfilled", report.Backfilled).
				Int("resolved", report.Resolved).
				Msg("reconciliation repaired the catalog")
		}
		return nil
	}, logger)
}
