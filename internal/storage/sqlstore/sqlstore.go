// Package sqlstore persists catalog and counter in two SQL tables. The same
// statements run on PostgreSQL (pgx stdlib driver) and SQLite (modernc).
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
	"time"

	"scratchcard-backend/internal/features/offer/models"
	"scratchcard-backend/internal/storage"
)

// Dialect selects placeholder syntax and locking.
type Dialect int

const (
	SQLite Dialect = iota
	Postgres
)

func (d Dialect) String() string {
	if d == Postgres {
		return "postgres"
	}
	return "sqlite"
}

const schema = `
CREATE TABLE IF NOT EXISTS offers (
    position    INTEGER NOT NULL,
    id          TEXT PRIMARY KEY,
    name        TEXT NOT NULL,
    image       TEXT NOT NULL,
    max_usage   BIGINT NOT NULL,
    used_count  BIGINT NOT NULL,
    probability DOUBLE PRECISION NOT NULL
);
CREATE TABLE IF NOT EXISTS play_counter (
    id    INTEGER PRIMARY KEY,
    count BIGINT NOT NULL
);
`

const counterRowID = 1

// Store is a SQL-backed storage.Store.
type Store struct {
	db       *sql.DB
	dialect  Dialect
	lockWait time.Duration
}

// New wraps an open database. Call Migrate before use.
func New(db *sql.DB, dialect Dialect) *Store {
	return &Store{db: db, dialect: dialect, lockWait: 2 * time.Second}
}

// Migrate creates the tables when missing.
func (s *Store) Migrate(ctx context.Context) error {
	for _, stmt := range strings.Split(schema, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}

// rebind rewrites ? placeholders to $n for PostgreSQL.
func (s *Store) rebind(query string) string {
	if s.dialect != Postgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (s *Store) LoadCatalog(ctx context.Context) ([]models.Offer, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, name, image, max_usage, used_count, probability
FROM offers
ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query offers: %w", err)
	}
	defer rows.Close()

	var offers []models.Offer
	for rows.Next() {
		var o models.Offer
		if err := rows.Scan(&o.ID, &o.Name, &o.Image, &o.MaxUsage, &o.UsedCount, &o.Probability); err != nil {
			return nil, fmt.Errorf("scan offer: %w", err)
		}
		offers = append(offers, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate offers: %w", err)
	}
	if len(offers) == 0 {
		return nil, storage.ErrNotFound
	}
	return offers, nil
}

// SaveCatalog replaces every row in one transaction.
func (s *Store) SaveCatalog(ctx context.Context, offers []models.Offer) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM offers`); err != nil {
		return fmt.Errorf("clear offers: %w", err)
	}

	insert, err := tx.PrepareContext(ctx, s.rebind(`
INSERT INTO offers (position, id, name, image, max_usage, used_count, probability)
VALUES (?, ?, ?, ?, ?, ?, ?)`))
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer insert.Close()

	for i, o := range offers {
		if _, err = insert.ExecContext(ctx, i, o.ID, o.Name, o.Image, o.MaxUsage, o.UsedCount, o.Probability); err != nil {
			return fmt.Errorf("insert offer %s: %w", o.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit catalog: %w", err)
	}
	return nil
}

func (s *Store) LoadCount(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, s.rebind(`SELECT count FROM play_counter WHERE id = ?`), counterRowID).Scan(&count)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, storage.ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("query play count: %w", err)
	}
	return count, nil
}

func (s *Store) SaveCount(ctx context.Context, count int64) error {
	_, err := s.db.ExecContext(ctx, s.rebind(`
INSERT INTO play_counter (id, count) VALUES (?, ?)
ON CONFLICT (id) DO UPDATE SET count = excluded.count`), counterRowID, count)
	if err != nil {
		return fmt.Errorf("save play count: %w", err)
	}
	return nil
}

// Lock takes a session-level advisory lock on PostgreSQL so several
// instances can share one database. SQLite is single-host and relies on
// the in-process mutex, so Lock is a no-op there.
func (s *Store) Lock(ctx context.Context, name string) (func(), error) {
	if s.dialect != Postgres {
		return func() {}, nil
	}

	conn, err := s.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("reserve conn for lock %s: %w", name, err)
	}

	key := advisoryKey(name)
	lockCtx, cancel := context.WithTimeout(ctx, s.lockWait)
	defer cancel()

	if _, err := conn.ExecContext(lockCtx, `SELECT pg_advisory_lock($1)`, key); err != nil {
		_ = conn.Close()
		if errors.Is(lockCtx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("lock %s: %w", name, storage.ErrLockTimeout)
		}
		return nil, fmt.Errorf("acquire lock %s: %w", name, err)
	}

	return func() {
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), time.Second)
		defer cancel()
		_, _ = conn.ExecContext(releaseCtx, `SELECT pg_advisory_unlock($1)`, key)
		_ = conn.Close()
	}, nil
}

func advisoryKey(name string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("scratchcard:" + name))
	return int64(h.Sum64())
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
