package system

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/skyshot/arena/internal/core/event"
	coresys "github.com/skyshot/arena/internal/core/system"
	"github.com/skyshot/arena/internal/persist"
	"go.uber.org/zap"
)

// KillWriter persists batches of kill records.
type KillWriter interface {
	WriteKills(ctx context.Context, kills []persist.KillRecord) error
}

// LedgerSystem buffers EnemyKilled events and flushes them to the kill
// ledger every interval of simulated time. A failed flush keeps the batch
// for the next attempt. Phase 4 (Persist).
type LedgerSystem struct {
	writer   KillWriter
	session  uuid.UUID
	interval time.Duration
	log      *zap.Logger

	elapsed time.Duration
	pending []persist.KillRecord
	written int
}

// NewLedgerSystem subscribes to EnemyKilled on bus.
func NewLedgerSystem(bus *event.Bus, writer KillWriter, session uuid.UUID,
	interval time.Duration, log *zap.Logger) *LedgerSystem {
	s := &LedgerSystem{
		writer:   writer,
		session:  session,
		interval: interval,
		log:      log,
	}
	event.Subscribe(bus, s.onEnemyKilled)
	return s
}

func (s *LedgerSystem) Phase() coresys.Phase { return coresys.PhasePersist }

func (s *LedgerSystem) onEnemyKilled(ev event.EnemyKilled) {
	s.pending = append(s.pending, persist.KillRecord{
		SessionID: s.session,
		Wave:      ev.Wave,
		EnemyKey:  ev.Key,
		Position:  ev.Position,
		SimTime:   ev.At,
	})
}

func (s *LedgerSystem) Update(dt time.Duration) {
	s.elapsed += dt
	if s.elapsed < s.interval {
		return
	}
	s.elapsed = 0
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = s.Flush(ctx)
}

// Flush writes every buffered record now. Called on shutdown as well.
func (s *LedgerSystem) Flush(ctx context.Context) error {
	if len(s.pending) == 0 {
		return nil
	}
	if err := s.writer.WriteKills(ctx, s.pending); err != nil {
		s.log.Error("kill ledger flush failed", zap.Int("pending", len(s.pending)), zap.Error(err))
		return err
	}
	s.written += len(s.pending)
	s.log.Debug("kill ledger flushed", zap.Int("records", len(s.pending)))
	s.pending = s.pending[:0]
	return nil
}

// Pending returns the number of buffered records.
func (s *LedgerSystem) Pending() int { return len(s.pending) }

// Written returns the number of records persisted so far.
func (s *LedgerSystem) Written() int { return s.written }
