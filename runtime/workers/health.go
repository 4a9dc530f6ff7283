package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"
)

// Health samples this process's own resource usage (RSS, CPU, OS status)
// on a fixed interval and logs it, so an operator running several logical
// nodes in one process can watch the whole colony through one log stream.
type Health struct {
	log      *slog.Logger
	interval time.Duration
}

func NewHealth(log *slog.Logger, interval time.Duration) *Health {
	return &Health{log: log, interval: interval}
}

func (w *Health) Run(ctx context.Context) error {
	w.log.Info("Starting health worker")
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			rss, cpu, status, err := selfStats(p)
			if err != nil {
				w.log.Error("Failed to collect self stats", "err", err)
				continue
			}
			w.log.Info("Process health", "pid", os.Getpid(), "status", status, "cpu_percent", cpu, "ram_bytes", rss)
		}
	}
}

// selfStats retrieves technical metrics (Memory, CPU, and OS Status) for the given process.
func selfStats(p *process.Process) (uint64, float64, string, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, "", err
	}

	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, "", err
	}

	status, err := p.Status()
	if err != nil {
		return 0, 0, "", err
	}
	return memInfo.RSS, cpuPercent, status, nil
}
