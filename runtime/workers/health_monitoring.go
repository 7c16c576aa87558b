package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"
)

// HealthProbe checks a dependency, typically the store.
type HealthProbe func(ctx context.Context) error

// StatsProvider exposes live counters, typically the hub's.
type StatsProvider func() map[string]any

// HealthMonitoringWorker periodically probes dependencies, samples the own
// process and reports the serving status to whoever exposes it.
type HealthMonitoringWorker struct {
	log      *slog.Logger
	interval time.Duration
	probe    HealthProbe
	stats    StatsProvider
	report   func(serving bool)
}

func NewHealthMonitoringWorker(
	log *slog.Logger,
	interval time.Duration,
	probe HealthProbe,
	stats StatsProvider,
	report func(serving bool),
) *HealthMonitoringWorker {
	return &HealthMonitoringWorker{log: log, interval: interval, probe: probe, stats: stats, report: report}
}

func (w *HealthMonitoringWorker) Run(ctx context.Context) error {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.check(ctx, p)
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping health monitoring")
			return nil
		case <-ticker.C:
			w.check(ctx, p)
		}
	}
}

func (w *HealthMonitoringWorker) check(ctx context.Context, p *process.Process) {
	serving := true
	if w.probe != nil {
		if err := w.probe(ctx); err != nil {
			w.log.Error("Health probe failed", "error", err)
			serving = false
		}
	}
	if w.report != nil {
		w.report(serving)
	}

	attrs := []any{"serving", serving}
	if rss, cpu, err := selfStats(p); err != nil {
		w.log.Debug("Failed to collect self stats", "error", err)
	} else {
		attrs = append(attrs, "rss_bytes", rss, "cpu_percent", cpu)
	}
	if w.stats != nil {
		for k, v := range w.stats() {
			attrs = append(attrs, k, v)
		}
	}
	w.log.Debug("Health check", attrs...)
}

// selfStats retrieves memory and CPU usage of the given process.
func selfStats(p *process.Process) (uint64, float64, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, err
	}
	return memInfo.RSS, cpuPercent, nil
}
