// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
	"strings"
)

// SupportedDrivers lists the database/sql driver names the store can open.
var SupportedDrivers = []string{"pgx", "sqlite3"}

// SupportedPasswordHashers lists the accepted values of Auth.PasswordHasher.
var SupportedPasswordHashers = []string{"bcrypt", "argon2id"}

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants required to start the server.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.PublicKeyPath == "" || cfg.Auth.PrivateKeyPath == "" {
		return fmt.Errorf("%w: both key paths are required", ErrInvalidAuthConfigs)
	}
	if cfg.Auth.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAuthConfigs)
	}
	if !slices.Contains(SupportedPasswordHashers, strings.ToLower(cfg.Auth.PasswordHasher)) {
		return fmt.Errorf("%w: unknown password hasher %q", ErrInvalidAuthConfigs, cfg.Auth.PasswordHasher)
	}

	if cfg.RateLimit.Capacity <= 0 || cfg.RateLimit.RefillTokens <= 0 || cfg.RateLimit.RefillInterval <= 0 {
		return ErrInvalidRateLimitConfigs
	}

	if !slices.Contains(SupportedDrivers, cfg.Storage.DB.Driver) {
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
