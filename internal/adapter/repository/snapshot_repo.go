package repository

import (
	"context"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// defaultSlot is the single persisted slot; the schema allows more for
// deployments that keep one resume per device/user.
const defaultSlot = "default"

// SnapshotRepo stores the snapshot in a single Postgres row, for
// deployments that want the slot in a shared database instead of a
// local file. A nil pool degrades to an empty, write-discarding slot.
type SnapshotRepo struct {
	pool *pgxpool.Pool
	slot string
}

func NewSnapshotRepo(pool *pgxpool.Pool) *SnapshotRepo {
	return &SnapshotRepo{pool: pool, slot: defaultSlot}
}

func (r *SnapshotRepo) Load(ctx context.Context) ([]byte, bool, error) {
	if r.pool == nil {
		return nil, false, nil
	}
	var data []byte
	err := r.pool.QueryRow(ctx,
		`SELECT data FROM resume_snapshots WHERE slot = $1`, r.slot).Scan(&data)
	if err == pgx.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (r *SnapshotRepo) Save(ctx context.Context, data []byte) error {
	if r.pool == nil {
		return nil
	}
	_, err := r.pool.Exec(ctx,
		`INSERT INTO resume_snapshots (slot, data, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (slot) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`,
		r.slot, data)
	return err
}
