// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "regexp"

var timeZoneOffset = regexp.MustCompile(`^[+-](0\d|1[0-4]):[0-5]\d$`)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrEmptyTokenSignKey
	}

	if cfg.App.TokenDuration != nil && *cfg.App.TokenDuration < 0 {
		return ErrInvalidTokenDuration
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrEmptyDSN
	}

	if cfg.Storage.DB.MaxOpenConns < 0 || cfg.Storage.DB.MaxIdleConns < 0 {
		return ErrInvalidPoolSize
	}

	// the offset ends up inside a SET statement, so only a strict shape is accepted
	if !timeZoneOffset.MatchString(cfg.Storage.DB.TimeZone) {
		return ErrInvalidTimeZone
	}

	return nil
}
