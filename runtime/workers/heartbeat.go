package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"chat-rooms/contract"

	"github.com/shirou/gopsutil/process"
)

var _ contract.Worker = (*HeartbeatWorker)(nil)

// ServerStats reports the live counters worth logging alongside process
// health.
type ServerStats func() (rooms, connections int)

// HeartbeatWorker periodically logs self health metrics (CPU, RSS, OS
// status) together with the room and connection counts.
type HeartbeatWorker struct {
	log      *slog.Logger
	interval time.Duration
	stats    ServerStats
}

func NewHeartbeatWorker(log *slog.Logger, interval time.Duration, stats ServerStats) *HeartbeatWorker {
	return &HeartbeatWorker{log: log, interval: interval, stats: stats}
}

func (w *HeartbeatWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			rss, cpu, status, err := selfStats(p)
			if err != nil {
				w.log.Error("Failed to collect self stats", "err", err)
				continue
			}
			rooms, conns := w.stats()
			w.log.Info("Heartbeat",
				"pid_status", status,
				"cpu_percent", cpu,
				"ram_bytes", rss,
				"rooms", rooms,
				"connections", conns)
		}
	}
}

// selfStats retrieves technical metrics (Memory, CPU, and OS Status) for
// the given process.
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
