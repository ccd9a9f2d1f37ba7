// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hash Clash Authors

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// storage-layer invariants before it is used at startup.
//
// Rules:
//   - the database DSN must be non-empty and must not point at an
//     in-memory engine;
//   - pool limits must not be negative;
//   - the cleanup interval must not be negative (zero disables the worker).
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.DB.MaxOpenConns < 0 || cfg.Storage.DB.MaxIdleConns < 0 {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.CleanupInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
