// Package repository implements URL record storage on top of PostgreSQL.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	"github.com/atinyakov/url-registry/internal/storage"
)

const (
	insertURLQuery  = `INSERT INTO urls (short_url, long_url) VALUES ($1, $2) RETURNING id, short_url, long_url;`
	selectURLsQuery = `SELECT id, short_url, long_url FROM urls;`
	deleteURLQuery  = `DELETE FROM urls WHERE id = $1 RETURNING id, short_url, long_url;`
)

const pingTimeout = 5 * time.Second

// PoolOptions bounds the connection pool shared by all requests.
type PoolOptions struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxIdleTime time.Duration
	ConnMaxLifetime time.Duration
}

// DefaultPoolOptions returns pool bounds sized for maxOpen connections.
func DefaultPoolOptions(maxOpen int) PoolOptions {
	if maxOpen <= 0 {
		maxOpen = 10
	}

	idle := maxOpen / 2
	if idle == 0 {
		idle = 1
	}

	return PoolOptions{
		MaxOpenConns:    maxOpen,
		MaxIdleConns:    idle,
		ConnMaxIdleTime: 2 * time.Minute,
		ConnMaxLifetime: 30 * time.Minute,
	}
}

// InitDB opens the pool, checks connectivity and applies pending migrations.
// The caller owns the returned pool and must close it.
func InitDB(ctx context.Context, dsn string, opts PoolOptions, logger *zap.Logger) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(opts.MaxOpenConns)
	db.SetMaxIdleConns(opts.MaxIdleConns)
	db.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	db.SetConnMaxLifetime(opts.ConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	applied, err := Migrate(ctx, db, logger)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	logger.Info("Database connected and schema ready", zap.Int("migrations_applied", applied))

	return db, nil
}

type URLRepository struct {
	db        *sql.DB
	generator storage.Generator
	logger    *zap.Logger
}

func CreateURLRepository(db *sql.DB, g storage.Generator, logger *zap.Logger) *URLRepository {
	return &URLRepository{
		db:        db,
		generator: g,
		logger:    logger,
	}
}

// withConn runs fn on a connection taken from the pool and always hands the
// connection back, whatever fn returns.
func (r *URLRepository) withConn(ctx context.Context, fn func(*sql.Conn) error) error {
	conn, err := r.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Close()

	return fn(conn)
}

// Create stores long under a freshly generated short code. A unique
// violation on the code is retried with a new code up to
// storage.MaxCreateAttempts times.
func (r *URLRepository) Create(ctx context.Context, long string) (storage.URLRecord, error) {
	var record storage.URLRecord

	for attempt := 1; attempt <= storage.MaxCreateAttempts; attempt++ {
		short := r.generator.Generate()

		err := r.withConn(ctx, func(conn *sql.Conn) error {
			return conn.QueryRowContext(ctx, insertURLQuery, short, long).
				Scan(&record.ID, &record.Short, &record.Original)
		})
		if err == nil {
			return record, nil
		}

		if !isUniqueViolation(err) {
			return storage.URLRecord{}, fmt.Errorf("insert url: %w", err)
		}

		r.logger.Warn("short url collision", zap.String("short", short), zap.Int("attempt", attempt))
	}

	return storage.URLRecord{}, fmt.Errorf("insert url after %d attempts: %w", storage.MaxCreateAttempts, storage.ErrConflict)
}

func (r *URLRepository) List(ctx context.Context) ([]storage.URLRecord, error) {
	records := make([]storage.URLRecord, 0)

	err := r.withConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, selectURLsQuery)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var rec storage.URLRecord
			if err := rows.Scan(&rec.ID, &rec.Short, &rec.Original); err != nil {
				return err
			}

			records = append(records, rec)
		}

		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("list urls: %w", err)
	}

	return records, nil
}

func (r *URLRepository) Delete(ctx context.Context, id int64) (storage.URLRecord, error) {
	var record storage.URLRecord

	err := r.withConn(ctx, func(conn *sql.Conn) error {
		return conn.QueryRowContext(ctx, deleteURLQuery, id).
			Scan(&record.ID, &record.Short, &record.Original)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return storage.URLRecord{}, fmt.Errorf("delete url %d: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return storage.URLRecord{}, fmt.Errorf("delete url %d: %w", id, err)
	}

	return record, nil
}

func (r *URLRepository) PingContext(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
