package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-provenance-keeper/internal/logger"
	"github.com/MKhiriev/go-provenance-keeper/internal/store"
)

// NewSessionPurgeWorker drops revocation rows of sessions that expired
// anyway. It returns nil when interval is not positive.
func NewSessionPurgeWorker(sessions store.SessionRepository, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		return nil
	}

	return newPeriodicJob("session_purge", interval, false, func(ctx context.Context) error {
		purged, err := sessions.PurgeExpiredSessions(ctx, time.Now().UTC())
		if err != nil {
			return err
		}
		if purged > 0 {
			logger.Debug().Int64("purged", purged).Msg("expired session revocations purged")
		}
		return nil
	}, logger)
}
