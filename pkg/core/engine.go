/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: engine.go
Description: Main fold engine implementation. Owns the per-request estimation
lifecycle: sequence validation, partition-function lookup, single-configuration
resolution with fallback, and the full parameter sweep. Each request is
self-contained with no shared mutable state, so requests may run concurrently
without coordination.
*/

package core

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/kleascm/akaylee-fold/pkg/interfaces"
	"github.com/kleascm/akaylee-fold/pkg/rna"
	"github.com/sirupsen/logrus"
)

// EngineConfig represents the configuration for the fold engine.
type EngineConfig struct {
	Workers      int    // sweep worker pool size (0 = auto-detect)
	Fallback     bool   // sweep records via fallback orchestrator instead of diagnostic capture
	WithSweep    bool   // attach the canonical 30-record sweep to results
	WithPairProb bool   // attach per-position pairing probabilities to results
	LogLevel     string // logrus level name
}

// Engine implements the fold request lifecycle.
// Components are injected with Set* before Initialize, in the same dependency
// injection style as the rest of the Akaylee tooling.
type Engine struct {
	config   *EngineConfig
	logger   *logrus.Logger
	provider interfaces.MatrixProvider
	adapter  interfaces.SolverAdapter
	resolver *Resolver
	driver   *SweepDriver
}

// NewEngine creates a new fold engine instance.
func NewEngine() *Engine {
	return &Engine{logger: logrus.New()}
}

// SetProvider sets the partition-function provider for the engine.
func (e *Engine) SetProvider(provider interfaces.MatrixProvider) {
	e.provider = provider
}

// SetAdapter sets the external solver adapter for the engine.
func (e *Engine) SetAdapter(adapter interfaces.SolverAdapter) {
	e.adapter = adapter
}

// SetLogger replaces the engine logger.
func (e *Engine) SetLogger(logger *logrus.Logger) {
	if logger != nil {
		e.logger = logger
	}
}

// Initialize prepares the engine for requests. Provider and adapter must be
// injected first.
func (e *Engine) Initialize(config *EngineConfig) error {
	if config == nil {
		config = &EngineConfig{}
	}
	e.config = config

	if config.LogLevel != "" {
		if level, err := logrus.ParseLevel(config.LogLevel); err == nil {
			e.logger.SetLevel(level)
		} else {
			e.logger.WithField("level", config.LogLevel).Warn("Unknown log level, keeping current level")
		}
	}

	if e.provider == nil {
		return fmt.Errorf("matrix provider not set - use SetProvider() before Initialize()")
	}
	if e.adapter == nil {
		return fmt.Errorf("solver adapter not set - use SetAdapter() before Initialize()")
	}

	e.resolver = NewResolver(e.adapter, e.logger)
	e.driver = NewSweepDriver(e.adapter, e.resolver, SweepOptions{
		Workers:  config.Workers,
		Fallback: config.Fallback,
	}, e.logger)
	e.driver.AddReporter(NewLoggerReporter(e.logger))

	e.logger.Info("Fold engine initialized successfully")
	return nil
}

// Predict estimates the structure of one sequence under a single
// configuration. The sequence is validated before any estimation; the
// consensus structure comes from the fallback orchestrator so a solver outage
// degrades to the local DP instead of failing the request.
func (e *Engine) Predict(ctx context.Context, seqID, raw string, config interfaces.FoldConfig) (*interfaces.FoldResult, error) {
	seq, err := rna.NewSequence(raw)
	if err != nil {
		return nil, err
	}

	requestID := uuid.New().String()
	log := e.logger.WithFields(logrus.Fields{
		"request": requestID,
		"seq_id":  seqID,
		"length":  seq.Len(),
	})
	log.Info("Fold request started")

	mfe, mfeStructure, m, err := e.provider.Fold(ctx, seq)
	if err != nil {
		return nil, fmt.Errorf("partition function for %q: %w", seqID, err)
	}

	structure, fellBack := e.resolver.Resolve(ctx, seq, m, config)
	result := &interfaces.FoldResult{
		SeqID:             seqID,
		Length:            seq.Len(),
		MFE:               round2(mfe),
		MFEStructure:      mfeStructure,
		CentroidStructure: structure.String(),
	}
	if e.config.WithPairProb {
		result.PairProb = m.Marginals()[1:]
	}
	if e.config.WithSweep {
		result.Sweep = e.driver.Run(ctx, seq, m, interfaces.SweepConfigs())
	}

	log.WithFields(logrus.Fields{
		"mfe":       result.MFE,
		"fell_back": fellBack,
	}).Info("Fold request completed")
	return result, nil
}

// Sweep evaluates the canonical 30-configuration sweep for one sequence and
// returns a result carrying only the sweep records. In diagnostic mode the
// probability matrix is only needed for fallback, so a provider outage is
// tolerated there and fatal otherwise.
func (e *Engine) Sweep(ctx context.Context, seqID, raw string) (*interfaces.FoldResult, error) {
	seq, err := rna.NewSequence(raw)
	if err != nil {
		return nil, err
	}

	result := &interfaces.FoldResult{SeqID: seqID, Length: seq.Len()}

	mfe, mfeStructure, m, err := e.provider.Fold(ctx, seq)
	switch {
	case err == nil:
		result.MFE = round2(mfe)
		result.MFEStructure = mfeStructure
		if e.config.WithPairProb {
			result.PairProb = m.Marginals()[1:]
		}
	case e.config.Fallback:
		return nil, fmt.Errorf("partition function for %q: %w", seqID, err)
	default:
		e.logger.WithField("seq_id", seqID).WithError(err).Warn("Sweeping without probability matrix")
		m = rna.NewPairMatrix(seq.Len())
	}

	result.Sweep = e.driver.Run(ctx, seq, m, interfaces.SweepConfigs())
	return result, nil
}

// round2 rounds to two decimals, matching how free energies are reported.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
