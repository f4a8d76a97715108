// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-homework-dispatch/internal/logger"
	"github.com/MKhiriev/go-homework-dispatch/internal/utils"
	"github.com/rs/zerolog"
)

// Dispatch modes, used as the "mode" log field.
const (
	ModeSequential    = "sequential"
	ModeConcurrent    = "concurrent"
	ModeCombined      = "combined"
	ModeCombinedAsync = "combined-async"
)

// Dispatcher runs work sets. It holds no per-run state and is safe for
// concurrent use.
type Dispatcher struct {
	logger *logger.Logger
	ids    *utils.RunIDGenerator
}

// NewDispatcher returns a Dispatcher that logs through log.
func NewDispatcher(log *logger.Logger) *Dispatcher {
	return &Dispatcher{
		logger: log,
		ids:    utils.NewRunIDGenerator(),
	}
}

// RunSequential invokes every worker's Run in order on the calling goroutine
// and returns after the last one completes. The first failing worker stops
// the run; its error is returned and later workers are not invoked.
func (d *Dispatcher) RunSequential(ctx context.Context, ws []Worker) error {
	if len(ws) == 0 {
		return ErrEmptyWorkSet
	}

	_, log := d.start(ctx, ModeSequential, len(ws))
	for i, w := range ws {
		if err := invoke(w, log); err != nil {
			return fmt.Errorf("sequential run stopped at worker %d: %w", i, err)
		}
	}

	log.Debug().Msg("dispatch finished")
	return nil
}

// RunConcurrent starts one goroutine per worker and returns without waiting
// for any of them. Output of different workers may interleave in any order.
// A failing worker is logged and reported by [Batch.Wait]; it does not
// affect the other goroutines.
func (d *Dispatcher) RunConcurrent(ctx context.Context, ws []Worker) (*Batch, error) {
	if len(ws) == 0 {
		return nil, ErrEmptyWorkSet
	}

	runID, log := d.start(ctx, ModeConcurrent, len(ws))
	batch := &Batch{id: runID}
	for _, w := range ws {
		w := w
		batch.goRun(func() error {
			return invoke(w, log)
		})
	}

	return batch, nil
}

// RunCombined folds ws into one chain and invokes it once on the calling
// goroutine. Members run in registration order; calling it again adds
// another full round in the same order. A failing member stops the chain
// and the returned error names it.
func (d *Dispatcher) RunCombined(ctx context.Context, ws []Worker) error {
	if len(ws) == 0 {
		return ErrEmptyWorkSet
	}

	_, log := d.start(ctx, ModeCombined, len(ws))
	if err := runInOrder(NewWorkers(ws...), log); err != nil {
		return fmt.Errorf("combined run stopped at %w", err)
	}

	log.Debug().Msg("dispatch finished")
	return nil
}

// RunCombinedAsync starts the combined chain of ws on a single background
// goroutine and returns immediately. All members share that goroutine, so
// their output keeps registration order.
func (d *Dispatcher) RunCombinedAsync(ctx context.Context, ws []Worker) (*Batch, error) {
	if len(ws) == 0 {
		return nil, ErrEmptyWorkSet
	}

	runID, log := d.start(ctx, ModeCombinedAsync, len(ws))
	chain := NewWorkers(ws...)

	batch := &Batch{id: runID}
	batch.goRun(func() error {
		if err := runInOrder(chain, log); err != nil {
			return fmt.Errorf("combined run stopped at %w", err)
		}
		return nil
	})

	return batch, nil
}

// runInOrder invokes the members of chain one by one on the calling
// goroutine and stops at the first failure, naming the failed member.
func runInOrder(chain *Workers, log *logger.Logger) error {
	for i, member := range chain.members() {
		if err := invoke(member, log); err != nil {
			return fmt.Errorf("member %d: %w", i, err)
		}
	}
	return nil
}

// start resolves the run id and the base logger, reusing those carried by
// ctx, and returns a child logger scoped to the run.
func (d *Dispatcher) start(ctx context.Context, mode string, size int) (string, *logger.Logger) {
	runID, ok := utils.GetRunIDFromContext(ctx)
	if !ok {
		runID = d.ids.Generate()
	}

	log := logger.FromContextOr(ctx, d.logger).GetChildLogger()
	log.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("run_id", runID).Str("mode", mode)
	})
	log.Debug().Int("workers", size).Msg("dispatch started")

	return runID, log
}
