package workers

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/MKhiriev/go-provenance-keeper/internal/logger"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// checkTimeout bounds a single dependency check.
const checkTimeout = 5 * time.Second

// NewHealthWorker pings every dependency each interval and publishes one
// serving status per dependency name plus the overall status under "".
// The overall status is SERVING only when every dependency answered.
//
// It returns nil when interval is not positive.
func NewHealthWorker(setter HealthSetter, dependencies map[string]Pinger, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 || setter == nil {
		return nil
	}

	names := make([]string, 0, len(dependencies))
	for name := range dependencies {
		names = append(names, name)
	}
	sort.Strings(names)

	return newPeriodicJob("health", interval, true, func(ctx context.Context) error {
		var errs []error
		for _, name := range names {
			status := healthpb.HealthCheckResponse_SERVING
			if err := ping(ctx, dependencies[name]); err != nil {
				status = healthpb.HealthCheckResponse_NOT_SERVING
				errs = append(errs, err)
				logger.Warn().Err(err).Str("dependency", name).Msg("health check failed")
			}
			setter.SetServingStatus(name, status)
		}

		overall := healthpb.HealthCheckResponse_SERVING
		if len(errs) > 0 {
			overall = healthpb.HealthCheckResponse_NOT_SERVING
		}
		setter.SetServingStatus("", overall)

		return errors.Join(errs...)
	}, logger)
}

func ping(ctx context.Context, p Pinger) error {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()
	return p.Ping(ctx)
}
