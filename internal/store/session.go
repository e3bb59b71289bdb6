// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-car-keeper/internal/logger"
)

type connCtxKey struct{}

// WithConn returns a copy of ctx carrying conn. Repositories called with
// the returned context run their statements on conn.
func WithConn(ctx context.Context, conn *sql.Conn) context.Context {
	return context.WithValue(ctx, connCtxKey{}, conn)
}

// ConnFromContext returns the connection stored by [WithConn].
func ConnFromContext(ctx context.Context) (*sql.Conn, bool) {
	conn, ok := ctx.Value(connCtxKey{}).(*sql.Conn)
	return conn, ok && conn != nil
}

// sessionStatements lists the statements run on every acquired connection:
// the session time zone and strict string literal handling.
func sessionStatements(timeZone string) []string {
	return []string{
		fmt.Sprintf("SET SESSION TIME ZONE INTERVAL '%s' HOUR TO MINUTE", timeZone),
		"SET SESSION standard_conforming_strings = on",
	}
}

// Acquire takes a dedicated connection from the pool and applies the
// session settings to it. Any failure is reported as [ErrTransientInfra];
// the connection is returned to the pool before that.
func (db *DB) Acquire(ctx context.Context) (*sql.Conn, error) {
	log := logger.FromContext(ctx)

	conn, err := db.DB.Conn(ctx)
	if err != nil {
		log.Err(err).Str("func", "*DB.Acquire").Msg("failed to acquire connection from pool")
		return nil, fmt.Errorf("%w: %w", ErrTransientInfra, err)
	}

	for _, stmt := range db.sessionSettings {
		if _, err = conn.ExecContext(ctx, stmt); err != nil {
			log.Err(err).Str("func", "*DB.Acquire").Str("statement", stmt).Msg("failed to configure session")
			_ = conn.Close()
			return nil, fmt.Errorf("%w: %w: %w", ErrTransientInfra, ErrConfiguringSession, err)
		}
	}

	return conn, nil
}
