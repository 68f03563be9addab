package bootstrap

import (
	"context"
	"log/slog"

	"groombook/internal/pkg/config"
	"groombook/internal/pkg/metrics"
	"groombook/internal/pkg/ratelimit"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

const serviceName = "groombook-api"

var ObservabilityModule = fx.Module("observability",
	fx.Provide(
		NewMetrics,
		NewSearchLimiter,
	),
)

// NewMetrics returns nil when metrics are disabled; every recorder method
// accepts a nil receiver.
func NewMetrics(cfg config.Config) *metrics.Metrics {
	if !cfg.Metrics.Enabled {
		return nil
	}
	return metrics.New(serviceName, prometheus.DefaultRegisterer)
}

func NewSearchLimiter(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *ratelimit.Limiter {
	l := ratelimit.New(cfg.RateLimit.SearchRPS, cfg.RateLimit.SearchBurst, cfg.RateLimit.IdleTTL)

	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go l.Run(ctx, cfg.RateLimit.IdleTTL)
			logger.Info("search rate limiter started", "rps", cfg.RateLimit.SearchRPS, "burst", cfg.RateLimit.SearchBurst)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
	return l
}
