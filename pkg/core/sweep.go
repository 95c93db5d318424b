/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: sweep.go
Description: Parameter sweep driver for the Akaylee Fold engine. Evaluates a
set of weighting configurations over a bounded worker pool with per-record
fault isolation: a failing configuration is captured as data and never aborts
or cancels its siblings.
*/

package core

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kleascm/akaylee-fold/pkg/interfaces"
	"github.com/kleascm/akaylee-fold/pkg/rna"
	"github.com/sirupsen/logrus"
)

// SweepOptions controls sweep evaluation.
type SweepOptions struct {
	// Workers bounds the evaluation pool; 0 means NumCPU. The 30 canonical
	// evaluations are independent, so parallel scheduling is safe.
	Workers int
	// Fallback routes every configuration through the fallback orchestrator
	// so records never carry errors. The default (false) is diagnostic mode:
	// solver failures are captured verbatim in the record, isolating the
	// external layer's own failure modes.
	Fallback bool
}

// SweepDriver runs the full cross-product of weighting configurations.
type SweepDriver struct {
	adapter   interfaces.SolverAdapter
	resolver  *Resolver
	logger    *logrus.Logger
	reporters []Reporter
	opts      SweepOptions
}

// NewSweepDriver creates a driver over the given adapter. The resolver is
// used in fallback mode; when fallback is requested without one, the driver
// builds its own so the mode can never be silently lost.
func NewSweepDriver(adapter interfaces.SolverAdapter, resolver *Resolver, opts SweepOptions, logger *logrus.Logger) *SweepDriver {
	if logger == nil {
		logger = logrus.New()
	}
	if opts.Fallback && resolver == nil {
		resolver = NewResolver(adapter, logger)
	}
	return &SweepDriver{
		adapter:  adapter,
		resolver: resolver,
		logger:   logger,
		opts:     opts,
	}
}

// AddReporter registers a Reporter for per-record telemetry.
func (d *SweepDriver) AddReporter(r Reporter) {
	d.reporters = append(d.reporters, r)
}

// Run evaluates every configuration and returns exactly one record per
// configuration, in input order (insertion order = evaluation order of the
// canonical set: gamma outer, engine inner). No configuration is skipped:
// a failure on record k never prevents evaluation of record k+1, and sibling
// evaluations are never cancelled by a failing one.
func (d *SweepDriver) Run(ctx context.Context, seq rna.Sequence, m *rna.PairMatrix, configs []interfaces.FoldConfig) []interfaces.SweepRecord {
	records := make([]interfaces.SweepRecord, len(configs))
	if len(configs) == 0 {
		return records
	}

	workers := d.opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(configs) {
		workers = len(configs)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				records[idx] = d.evaluate(ctx, seq, m, configs[idx])
			}
		}()
	}
	for idx := range configs {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	for idx := range records {
		for _, r := range d.reporters {
			r.OnRecord(&records[idx])
		}
	}
	return records
}

// evaluate runs one configuration, capturing errors as data.
func (d *SweepDriver) evaluate(ctx context.Context, seq rna.Sequence, m *rna.PairMatrix, config interfaces.FoldConfig) interfaces.SweepRecord {
	record := interfaces.SweepRecord{
		ID:     uuid.New().String(),
		Gamma:  config.Gamma,
		Engine: config.Engine.String(),
	}
	start := time.Now()

	if d.opts.Fallback {
		structure, fellBack := d.resolver.Resolve(ctx, seq, m, config)
		record.Structure = structure.String()
		record.Duration = time.Since(start)
		if fellBack {
			d.logger.WithFields(logrus.Fields{
				"gamma":  config.Gamma,
				"engine": record.Engine,
			}).Debug("Sweep record resolved via local fallback")
		}
		return record
	}

	structure, err := d.adapter.Invoke(ctx, seq, config)
	record.Duration = time.Since(start)
	if err != nil {
		record.Error = err.Error()
		return record
	}
	record.Structure = structure.String()
	return record
}
