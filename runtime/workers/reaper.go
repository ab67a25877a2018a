package workers

import (
	"context"
	"log/slog"
	"time"

	"chat-rooms/contract"
	"chat-rooms/domain"
)

var _ contract.Worker = (*ReaperWorker)(nil)

// idleReaper is the slice of the registry the reaper needs.
type idleReaper interface {
	ReapIdle(ttl time.Duration, hasSubscribers func(domain.RoomCode) bool) []domain.RoomCode
}

// ReaperWorker evicts rooms that lost all their subscribers without a
// clean disconnect (abrupt network loss) and have been idle beyond the
// configured TTL. Rooms with live subscribers are never touched.
type ReaperWorker struct {
	log      *slog.Logger
	registry idleReaper
	subs     contract.ISubscriptions
	ttl      time.Duration
	interval time.Duration
}

func NewReaperWorker(log *slog.Logger, registry idleReaper, subs contract.ISubscriptions,
	ttl, interval time.Duration) *ReaperWorker {
	return &ReaperWorker{log: log, registry: registry, subs: subs, ttl: ttl, interval: interval}
}

func (w *ReaperWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker")
			return ctx.Err()
		case <-ticker.C:
			reaped := w.registry.ReapIdle(w.ttl, w.subs.HasSubscribers)
			for _, code := range reaped {
				w.log.Info("Reaped idle room", "room", code)
			}
		}
	}
}
