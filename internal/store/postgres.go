package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/lifearchitect/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const createKVTableSQL = `
CREATE TABLE IF NOT EXISTS kv_state (
    key        TEXT PRIMARY KEY,
    value      JSONB NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

type pgxPool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PgStore keeps the dashboard state in a single jsonb key-value table.
type PgStore struct {
	db pgxPool
}

func NewPgStore(db pgxPool) *PgStore {
	return &PgStore{db: db}
}

// Migrate creates the state table if missing.
func (p *PgStore) Migrate(ctx context.Context) error {
	if _, err := p.db.Exec(ctx, createKVTableSQL); err != nil {
		return fmt.Errorf("create kv_state table: %w", err)
	}
	return nil
}

func (p *PgStore) Get(ctx context.Context, key string) (_ []byte, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.pg.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var value []byte
	err = p.db.QueryRow(ctx, `SELECT value FROM kv_state WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", key, err)
	}
	return value, nil
}

func (p *PgStore) Set(ctx context.Context, key string, value []byte) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.pg.set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = p.db.Exec(ctx, `
		INSERT INTO kv_state (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, string(value),
	)
	if err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}

func (p *PgStore) Keys(ctx context.Context) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.pg.keys")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := p.db.Query(ctx, `SELECT key FROM kv_state ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("select keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("scan key: %w", err)
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate keys: %w", err)
	}
	return keys, nil
}
