package persist

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/skyshot/arena/internal/geom"
)

// KillRecord is one resolved enemy death. The ledger is append-only
// telemetry; nothing reads it back into a running simulation.
type KillRecord struct {
	SessionID uuid.UUID
	Wave      int
	EnemyKey  string
	Position  geom.Vec3
	SimTime   time.Duration
}

type LedgerRepo struct {
	db *DB
}

func NewLedgerRepo(db *DB) *LedgerRepo {
	return &LedgerRepo{db: db}
}

// OpenSession registers a simulation session so its kills can reference it.
func (r *LedgerRepo) OpenSession(ctx context.Context, id uuid.UUID, seed int64) error {
	if _, err := r.db.Pool.Exec(ctx,
		`INSERT INTO sessions (id, seed) VALUES ($1, $2)`, id, seed,
	); err != nil {
		return fmt.Errorf("open session: %w", err)
	}
	return nil
}

// CloseSession stamps the end time and the number of waves reached.
func (r *LedgerRepo) CloseSession(ctx context.Context, id uuid.UUID, waves int) error {
	if _, err := r.db.Pool.Exec(ctx,
		`UPDATE sessions SET ended_at = now(), waves = $2 WHERE id = $1`, id, waves,
	); err != nil {
		return fmt.Errorf("close session: %w", err)
	}
	return nil
}

// WriteKills atomically writes a batch of kill records in a single transaction.
func (r *LedgerRepo) WriteKills(ctx context.Context, kills []KillRecord) error {
	if len(kills) == 0 {
		return nil
	}
	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("ledger begin: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, k := range kills {
		if _, err := tx.Exec(ctx,
			`INSERT INTO kill_ledger (session_id, wave, enemy_key, pos_x, pos_y, pos_z, sim_time_ms)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			k.SessionID, k.Wave, k.EnemyKey, k.Position.X, k.Position.Y, k.Position.Z, k.SimTime.Milliseconds(),
		); err != nil {
			return fmt.Errorf("ledger insert: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// CountKills returns how many kills a session has recorded.
func (r *LedgerRepo) CountKills(ctx context.Context, id uuid.UUID) (int, error) {
	var n int
	if err := r.db.Pool.QueryRow(ctx,
		`SELECT count(*) FROM kill_ledger WHERE session_id = $1`, id,
	).Scan(&n); err != nil {
		return 0, fmt.Errorf("count kills: %w", err)
	}
	return n, nil
}
