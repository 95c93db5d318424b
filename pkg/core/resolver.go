/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: resolver.go
Description: Fallback orchestrator for the Akaylee Fold engine. Tries the
external solver once per configuration and falls back to the local
gamma-centroid DP on any failure kind, so a single-configuration failure never
propagates to the caller.
*/

package core

import (
	"context"

	"github.com/kleascm/akaylee-fold/pkg/estimator"
	"github.com/kleascm/akaylee-fold/pkg/interfaces"
	"github.com/kleascm/akaylee-fold/pkg/rna"
	"github.com/kleascm/akaylee-fold/pkg/solver"
	"github.com/sirupsen/logrus"
)

// resolveState is the explicit two-state machine of one resolution:
// TryingExternal -> Done on success, TryingExternal -> RunningLocalDP -> Done
// on any solver failure. No retries: each configuration gets at most one
// external attempt.
type resolveState int

const (
	stateTryingExternal resolveState = iota
	stateRunningLocalDP
	stateDone
)

// Resolver derives one structure for one configuration, preferring the
// external solver and never failing: the external path is an optional
// acceleration, correctness never depends on its availability.
type Resolver struct {
	adapter  interfaces.SolverAdapter
	fallback interfaces.Estimator
	logger   *logrus.Logger
}

// NewResolver creates a resolver over the given solver adapter. The fallback
// estimator defaults to the gamma-centroid DP.
func NewResolver(adapter interfaces.SolverAdapter, logger *logrus.Logger) *Resolver {
	if logger == nil {
		logger = logrus.New()
	}
	return &Resolver{
		adapter:  adapter,
		fallback: estimator.NewCentroidEstimator(),
		logger:   logger,
	}
}

// SetFallback replaces the local estimator used when the external solver
// fails. Used by tests and by greedy-preferring callers.
func (r *Resolver) SetFallback(est interfaces.Estimator) {
	r.fallback = est
}

// Resolve returns a structure for the configuration, and whether the local
// fallback produced it. Never returns an error: any of the four solver
// failure kinds (and any other adapter error) triggers the local DP with the
// configuration's gamma.
func (r *Resolver) Resolve(ctx context.Context, seq rna.Sequence, m *rna.PairMatrix, config interfaces.FoldConfig) (rna.Structure, bool) {
	var (
		structure rna.Structure
		fellBack  bool
	)

	for state := stateTryingExternal; state != stateDone; {
		switch state {
		case stateTryingExternal:
			st, err := r.adapter.Invoke(ctx, seq, config)
			if err == nil {
				structure = st
				state = stateDone
				break
			}
			fields := logrus.Fields{
				"gamma":  config.Gamma,
				"engine": config.Engine.String(),
			}
			if se, ok := solver.AsSolverError(err); ok {
				fields["kind"] = se.Kind.String()
			}
			fields["cause"] = err.Error()
			r.logger.WithFields(fields).Warn("Fallback to local estimator")
			state = stateRunningLocalDP

		case stateRunningLocalDP:
			structure = r.fallback.Estimate(m, config.Gamma)
			fellBack = true
			state = stateDone
		}
	}
	return structure, fellBack
}
