package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/serroba/templink/internal/shortener"
	"go.uber.org/zap"
)

// sweepInterval is how often expired rows are physically removed. Reads
// already filter on expires_at, so the sweep only reclaims space.
const sweepInterval = time.Minute

// PostgresStore is a PostgreSQL implementation of shortener.MappingStore.
// Postgres has no per-key TTL, so every row carries an expires_at deadline
// computed from the database clock: reads filter expired rows out and a
// background sweeper deletes them.
type PostgresStore struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
	done   chan struct{}
}

// NewPostgresStore creates a Postgres-backed mapping store and starts its
// expiry sweeper. Call Shutdown to stop the sweeper and close the pool.
func NewPostgresStore(pool *pgxpool.Pool, logger *zap.Logger) *PostgresStore {
	p := &PostgresStore{
		pool:   pool,
		logger: logger,
		done:   make(chan struct{}),
	}

	go p.sweep()

	return p
}

// EnsureSchema creates the mappings table and its expiry index when missing.
func (p *PostgresStore) EnsureSchema(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS mappings (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			expires_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS mappings_expires_at_idx ON mappings (expires_at)`,
	}

	for _, query := range queries {
		if _, err := p.pool.Exec(ctx, query); err != nil {
			return storeErr(err)
		}
	}

	return nil
}

func (p *PostgresStore) PutForward(ctx context.Context, code, url string, ttl time.Duration) error {
	return p.put(ctx, forwardPrefix+code, url, ttl)
}

func (p *PostgresStore) GetForward(ctx context.Context, code string) (string, bool, error) {
	return p.get(ctx, forwardPrefix+code)
}

func (p *PostgresStore) PutReverse(ctx context.Context, url, code string, ttl time.Duration) error {
	return p.put(ctx, reversePrefix+url, code, ttl)
}

func (p *PostgresStore) GetReverse(ctx context.Context, url string) (string, bool, error) {
	return p.get(ctx, reversePrefix+url)
}

func (p *PostgresStore) ExistsForward(ctx context.Context, code string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM mappings WHERE key = $1 AND expires_at > now())`

	var exists bool

	if err := p.pool.QueryRow(ctx, query, forwardPrefix+code).Scan(&exists); err != nil {
		return false, storeErr(err)
	}

	return exists, nil
}

func (p *PostgresStore) put(ctx context.Context, key, value string, ttl time.Duration) error {
	query := `
		INSERT INTO mappings (key, value, expires_at)
		VALUES ($1, $2, now() + $3)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, expires_at = EXCLUDED.expires_at
	`

	if _, err := p.pool.Exec(ctx, query, key, value, ttl); err != nil {
		return storeErr(err)
	}

	return nil
}

func (p *PostgresStore) get(ctx context.Context, key string) (string, bool, error) {
	query := `SELECT value FROM mappings WHERE key = $1 AND expires_at > now()`

	var value string

	err := p.pool.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}

		return "", false, storeErr(err)
	}

	return value, true, nil
}

func (p *PostgresStore) sweep() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-p.done:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			tag, err := p.pool.Exec(ctx, `DELETE FROM mappings WHERE expires_at <= now()`)

			cancel()

			if err != nil {
				p.logger.Warn("sweep of expired mappings failed", zap.Error(err))

				continue
			}

			if rows := tag.RowsAffected(); rows > 0 {
				p.logger.Debug("swept expired mappings", zap.Int64("rows", rows))
			}
		}
	}
}

// Shutdown stops the sweeper and closes the pool (invoked by the injector).
func (p *PostgresStore) Shutdown() error {
	close(p.done)
	p.pool.Close()

	return nil
}

// Compile-time check.
var _ shortener.MappingStore = (*PostgresStore)(nil)
