package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-car-keeper/internal/config"
	"github.com/MKhiriev/go-car-keeper/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// DB is the shared connection pool together with the settings every
// request session is configured with.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
	sessionSettings    []string
}

// querier is the subset of *sql.DB and *sql.Conn used by repositories.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// NewConnectPostgres opens the pgx-backed pool described by cfg, applies
// the pool limits and pings the server.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	conn.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("%w: %w", ErrTransientInfra, err)
	}
	log.Info().Str("func", "NewConnectPostgres").
		Int("max_open_conns", cfg.MaxOpenConns).
		Str("time_zone", cfg.TimeZone).
		Msg("connected to database successfully")

	return NewDB(conn, cfg.TimeZone, log), nil
}

// NewDB wraps an already opened pool. timeZone must be a "+HH:MM"/"-HH:MM"
// offset; it is validated by the config package.
func NewDB(conn *sql.DB, timeZone string, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
		sessionSettings:    sessionStatements(timeZone),
	}
}

// runner returns the request connection stored in ctx or the pool.
func (db *DB) runner(ctx context.Context) querier {
	if conn, ok := ConnFromContext(ctx); ok {
		return conn
	}

	return db.DB
}

// classify marks retryable driver errors with [ErrTransientInfra].
func (db *DB) classify(err error) error {
	if err == nil {
		return nil
	}
	if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w", ErrTransientInfra, err)
	}

	return err
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
