package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lbi-bank/ods-console/internal/observability"
)

// DBTX is the subset of pgx satisfied by both *pgxpool.Pool and pgx.Tx, so
// the same queries serve plain reads and the seeding transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repository exposes read access to the lbi_ods schema and the console's
// own access-control tables. All lbi_ods tables are owned by the upstream
// core; this layer never writes them.
type Repository struct {
	db           DBTX
	queryTimeout time.Duration
}

func NewRepository(db DBTX) *Repository {
	return &Repository{db: db}
}

// WithQueryTimeout returns a Repository whose operations run under a
// per-query deadline. Zero disables the bound.
func (r *Repository) WithQueryTimeout(d time.Duration) *Repository {
	return &Repository{db: r.db, queryTimeout: d}
}

// WithTx returns a Repository bound to the given transaction.
func (r *Repository) WithTx(tx pgx.Tx) *Repository {
	return &Repository{db: tx, queryTimeout: r.queryTimeout}
}

// opCtx bounds a single query by the configured timeout.
func (r *Repository) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.queryTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.queryTimeout)
}

// observe records query latency for the metrics endpoint scraping this
// process.
func observe(op string, start time.Time) {
	observability.ObserveQuery(op, time.Since(start))
}

// noRows maps pgx.ErrNoRows onto the not-found contract: lookups by key
// yield nil, never an error.
func noRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// isUniqueViolation reports a duplicate-key insert, which the seeder treats
// as a fatal provisioning conflict.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

var _ DBTX = (*pgxpool.Pool)(nil)
