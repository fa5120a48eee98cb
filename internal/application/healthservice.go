package application

import (
	"context"
	"time"
)

// HealthReport is the liveness view served at /healthz.
type HealthReport struct {
	Status          string
	Pages           int
	ContentLoadedAt time.Time
	Uptime          time.Duration
}

// HealthService reports whether the site is ready to serve pages.
type HealthService struct {
	site    *Site
	started time.Time
}

// NewHealthService creates a HealthService. started is the process start time.
func NewHealthService(site *Site, started time.Time) *HealthService {
	return &HealthService{
		site:    site,
		started: started,
	}
}

// Check assembles the current health report. A site without pages is degraded.
func (s *HealthService) Check(ctx context.Context) HealthReport {
	report := HealthReport{
		Status: "ok",
		Uptime: time.Since(s.started).Round(time.Second),
	}
	if err := ctx.Err(); err != nil {
		report.Status = "unavailable"
		return report
	}

	if s.site == nil {
		report.Status = "degraded"
		return report
	}

	report.Pages = len(s.site.Pages())
	report.ContentLoadedAt = s.site.LoadedAt()
	if report.Pages == 0 {
		report.Status = "degraded"
	}
	return report
}
