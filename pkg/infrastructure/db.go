package infrastructure

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"
)

// NewSnapshotPool connects to the optional shared snapshot database.
func NewSnapshotPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	return pgxpool.Connect(ctx, dsn)
}
