/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: engine_test.go
Description: Tests for the fold engine lifecycle: initialization guards,
prediction with fallback, pair-probability attachment and sweep behavior when
the partition function is unavailable.
*/

package core

import (
	"context"
	"errors"
	"testing"

	"github.com/kleascm/akaylee-fold/pkg/interfaces"
	"github.com/kleascm/akaylee-fold/pkg/rna"
	"github.com/kleascm/akaylee-fold/pkg/solver"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProvider scripts the partition-function engine.
type stubProvider struct {
	fold func(ctx context.Context, seq rna.Sequence) (float64, string, *rna.PairMatrix, error)
}

func (s *stubProvider) Fold(ctx context.Context, seq rna.Sequence) (float64, string, *rna.PairMatrix, error) {
	return s.fold(ctx, seq)
}

func singlePairProvider(mfe float64) *stubProvider {
	return &stubProvider{
		fold: func(_ context.Context, seq rna.Sequence) (float64, string, *rna.PairMatrix, error) {
			m := singlePairMatrix(seq.Len(), 3, 9, 0.9)
			return mfe, "..(.....)...", m, nil
		},
	}
}

func newTestEngine(t *testing.T, provider interfaces.MatrixProvider, adapter interfaces.SolverAdapter, config *EngineConfig) *Engine {
	t.Helper()
	e := NewEngine()
	e.SetProvider(provider)
	e.SetAdapter(adapter)
	require.NoError(t, e.Initialize(config))
	return e
}

func TestInitializeRequiresProviderAndAdapter(t *testing.T) {
	e := NewEngine()
	assert.Error(t, e.Initialize(nil))

	e.SetProvider(singlePairProvider(-1))
	assert.Error(t, e.Initialize(nil))

	e.SetAdapter(&stubAdapter{invoke: alwaysUnpaired})
	assert.NoError(t, e.Initialize(nil))
}

func TestInitializeSetsLogLevel(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	e := NewEngine()
	e.SetLogger(logger)
	e.SetProvider(singlePairProvider(-1))
	e.SetAdapter(&stubAdapter{invoke: alwaysUnpaired})

	require.NoError(t, e.Initialize(&EngineConfig{LogLevel: "debug"}))
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
}

func TestInitializeWarnsOnUnknownLogLevel(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	e := NewEngine()
	e.SetLogger(logger)
	e.SetProvider(singlePairProvider(-1))
	e.SetAdapter(&stubAdapter{invoke: alwaysUnpaired})

	require.NoError(t, e.Initialize(&EngineConfig{LogLevel: "loud"}))
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())

	warned := false
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel && entry.Data["level"] == "loud" {
			warned = true
		}
	}
	assert.True(t, warned, "expected a warning about the unknown log level")
}

func TestPredictFallsBackWhenSolverUnavailable(t *testing.T) {
	adapter := &stubAdapter{
		invoke: func(context.Context, rna.Sequence, interfaces.FoldConfig) (rna.Structure, error) {
			return "", &solver.SolverError{Kind: solver.FailureUnavailable, Message: "scripted"}
		},
	}
	e := newTestEngine(t, singlePairProvider(-3.456), adapter, &EngineConfig{})

	config := interfaces.FoldConfig{Gamma: 0.2, Engine: interfaces.EngineBL, PairWeight: interfaces.DefaultPairWeight}
	result, err := e.Predict(context.Background(), "test-seq", "GGGAAACCCUUU", config)
	require.NoError(t, err)

	assert.Equal(t, "test-seq", result.SeqID)
	assert.Equal(t, 12, result.Length)
	assert.Equal(t, -3.46, result.MFE)
	assert.Equal(t, "..(.....)...", result.MFEStructure)
	assert.Equal(t, "..(.....)...", result.CentroidStructure)
	assert.Nil(t, result.PairProb)
	assert.Nil(t, result.Sweep)
	assert.Empty(t, result.Error)
}

func TestPredictAttachesPairProbAndSweep(t *testing.T) {
	e := newTestEngine(t, singlePairProvider(-1.0), &stubAdapter{invoke: alwaysUnpaired},
		&EngineConfig{WithPairProb: true, WithSweep: true, Workers: 2})

	result, err := e.Predict(context.Background(), "test-seq", "GGGAAACCCUUU", interfaces.DefaultFoldConfig())
	require.NoError(t, err)

	require.Len(t, result.PairProb, 12)
	assert.InDelta(t, 0.9, result.PairProb[2], 1e-12) // position 3, zero-based
	assert.InDelta(t, 0.9, result.PairProb[8], 1e-12)
	assert.Equal(t, 0.0, result.PairProb[0])
	assert.Len(t, result.Sweep, 30)
}

func TestPredictRejectsInvalidSequence(t *testing.T) {
	e := newTestEngine(t, singlePairProvider(-1.0), &stubAdapter{invoke: alwaysUnpaired}, nil)

	_, err := e.Predict(context.Background(), "bad", "GGG-AAA", interfaces.DefaultFoldConfig())
	assert.True(t, errors.Is(err, rna.ErrInvalidSequence))
}

func TestPredictProviderFailureIsFatal(t *testing.T) {
	provider := &stubProvider{
		fold: func(context.Context, rna.Sequence) (float64, string, *rna.PairMatrix, error) {
			return 0, "", nil, solver.ErrModelUnavailable
		},
	}
	e := newTestEngine(t, provider, &stubAdapter{invoke: alwaysUnpaired}, nil)

	_, err := e.Predict(context.Background(), "test-seq", "GGGAAACCCUUU", interfaces.DefaultFoldConfig())
	assert.True(t, errors.Is(err, solver.ErrModelUnavailable))
}

func TestSweepDiagnosticToleratesProviderOutage(t *testing.T) {
	provider := &stubProvider{
		fold: func(context.Context, rna.Sequence) (float64, string, *rna.PairMatrix, error) {
			return 0, "", nil, solver.ErrModelUnavailable
		},
	}
	e := newTestEngine(t, provider, &stubAdapter{invoke: alwaysUnpaired}, &EngineConfig{})

	result, err := e.Sweep(context.Background(), "test-seq", "GGGAAACCCUUU")
	require.NoError(t, err)
	assert.Empty(t, result.MFEStructure)
	assert.Len(t, result.Sweep, 30)
	for _, record := range result.Sweep {
		assert.Empty(t, record.Error)
	}
}

func TestSweepFallbackModeNeedsProvider(t *testing.T) {
	provider := &stubProvider{
		fold: func(context.Context, rna.Sequence) (float64, string, *rna.PairMatrix, error) {
			return 0, "", nil, solver.ErrModelUnavailable
		},
	}
	e := newTestEngine(t, provider, &stubAdapter{invoke: alwaysUnpaired}, &EngineConfig{Fallback: true})

	_, err := e.Sweep(context.Background(), "test-seq", "GGGAAACCCUUU")
	assert.True(t, errors.Is(err, solver.ErrModelUnavailable))
}

func TestSweepCarriesPartitionFunctionResult(t *testing.T) {
	e := newTestEngine(t, singlePairProvider(-2.5), &stubAdapter{invoke: alwaysUnpaired}, &EngineConfig{})

	result, err := e.Sweep(context.Background(), "test-seq", "GGGAAACCCUUU")
	require.NoError(t, err)
	assert.Equal(t, -2.5, result.MFE)
	assert.Equal(t, "..(.....)...", result.MFEStructure)
	assert.Len(t, result.Sweep, 30)
}
