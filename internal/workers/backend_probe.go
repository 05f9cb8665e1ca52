package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/dashboard-server/internal/logger"
	"github.com/MKhiriev/dashboard-server/models"
)

// StatusChecker reports the reachability of the backend API.
type StatusChecker interface {
	Status(ctx context.Context) models.BackendStatus
}

// BackendProbe periodically checks the backend so that its health metrics
// stay current between dashboard requests. Only reachability changes are
// logged above debug level.
type BackendProbe struct {
	checker  StatusChecker
	interval time.Duration
	logger   *logger.Logger
}

func NewBackendProbe(checker StatusChecker, interval time.Duration, logger *logger.Logger) Worker {
	return &BackendProbe{
		checker:  checker,
		interval: interval,
		logger:   logger,
	}
}

func (p *BackendProbe) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	reachable := p.probe(ctx, nil)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			reachable = p.probe(ctx, reachable)
		}
	}
}

// probe checks the backend once and returns its reachability. prev is the
// result of the previous probe, nil before the first one.
func (p *BackendProbe) probe(ctx context.Context, prev *bool) *bool {
	status := p.checker.Status(ctx)
	if ctx.Err() != nil {
		return prev
	}

	p.logger.Debug().
		Str("func", "*BackendProbe.probe").
		Bool("reachable", status.Reachable).
		Int64("latency_ms", status.LatencyMS).
		Msg("backend probed")

	if prev == nil || *prev != status.Reachable {
		event := p.logger.Info()
		if !status.Reachable {
			event = p.logger.Warn().Str("error", status.Error)
		}
		event.Str("api_base_url", status.APIBaseURL).
			Bool("reachable", status.Reachable).
			Msg("backend reachability changed")
	}

	return &status.Reachable
}
