// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hash Clash Authors

package workers

import (
	"context"
	"time"

	"github.com/hashclash/storage/internal/logger"
	"github.com/hashclash/storage/internal/store"
	"github.com/hashclash/storage/internal/utils"
)

// Janitor periodically removes expired verification codes from the store.
//
// Valid-code lookups already filter expired rows at query time, so the janitor
// is a disposal mechanism, not a correctness one: it keeps the temp_codes
// table from accumulating dead rows.
type Janitor struct {
	ctx      context.Context
	codes    store.TempCodeRepository
	interval time.Duration
	uuid     *utils.UUIDGenerator
	logger   *logger.Logger
}

// NewJanitor constructs a [Janitor] that sweeps expired codes every interval.
// The worker stops when ctx is cancelled.
func NewJanitor(ctx context.Context, codes store.TempCodeRepository, interval time.Duration, log *logger.Logger) *Janitor {
	return &Janitor{
		ctx:      ctx,
		codes:    codes,
		interval: interval,
		uuid:     utils.NewUUIDGenerator(),
		logger:   log,
	}
}

// Run performs an immediate sweep and then sweeps on every interval tick
// until the worker's context is cancelled. Run blocks; callers that need
// concurrency start it in a goroutine.
func (j *Janitor) Run() {
	j.logger.Info().
		Str("func", "Janitor.Run").
		Dur("interval", j.interval).
		Msg("starting expired code janitor")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.sweep()

	for {
		select {
		case <-j.ctx.Done():
			j.logger.Info().
				Str("func", "Janitor.Run").
				Msg("stopping expired code janitor")
			return
		case <-ticker.C:
			j.sweep()
		}
	}
}

// sweep runs one disposal cycle. Each cycle gets its own run ID so that all
// log entries produced by the cycle, including those emitted inside the
// repository, can be correlated.
func (j *Janitor) sweep() {
	runID := j.uuid.Generate()

	log := &logger.Logger{Logger: j.logger.With().Str("run_id", runID).Logger()}

	ctx := context.WithValue(j.ctx, utils.RunIDCtxKey, runID)
	ctx = log.WithContext(ctx)

	deleted, err := j.codes.DeleteExpiredCodes(ctx, time.Now())
	if err != nil {
		log.Err(err).
			Str("func", "Janitor.sweep").
			Msg("expired code sweep failed")
		return
	}

	log.Info().
		Str("func", "Janitor.sweep").
		Int64("deleted", deleted).
		Msg("expired code sweep finished")
}
