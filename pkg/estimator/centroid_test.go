/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: centroid_test.go
Description: Tests for the gamma-centroid estimator: determinism, short-input
handling, gamma limit behavior and agreement with the greedy estimator on an
unambiguous matrix.
*/

package estimator

import (
	"testing"

	"github.com/kleascm/akaylee-fold/pkg/rna"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// uniformMatrix fills every admissible pair with the same probability.
func uniformMatrix(n int, p float64) *rna.PairMatrix {
	m := rna.NewPairMatrix(n)
	for i := 1; i <= n; i++ {
		for j := i + rna.MinLoopLen; j <= n; j++ {
			m.Set(i, j, p)
		}
	}
	return m
}

func TestCentroidShortInputsAllUnpaired(t *testing.T) {
	est := NewCentroidEstimator()
	for n := 1; n < rna.MinLoopLen; n++ {
		m := uniformMatrix(n, 0.9)
		assert.Equal(t, rna.AllUnpaired(n), est.Estimate(m, 1.0))
	}
}

func TestCentroidDeterministic(t *testing.T) {
	m := rna.NewPairMatrix(20)
	m.Set(1, 20, 0.8)
	m.Set(2, 19, 0.8)
	m.Set(3, 10, 0.4)
	m.Set(4, 9, 0.4)
	m.Set(11, 18, 0.4)
	m.Set(12, 17, 0.4)

	est := NewCentroidEstimator()
	first := est.Estimate(m, 2.0)
	for run := 0; run < 5; run++ {
		assert.Equal(t, first, est.Estimate(m, 2.0))
	}
	require.NoError(t, first.Validate())
}

func TestCentroidHighGammaAllUnpaired(t *testing.T) {
	m := uniformMatrix(12, 0.3)
	got := NewCentroidEstimator().Estimate(m, 128)
	assert.Equal(t, rna.AllUnpaired(12), got)
}

func TestCentroidLowGammaMaximalPairing(t *testing.T) {
	// With near-zero unpaired gain the DP maximizes pair count. For n=12 and
	// the minimum loop length the optimum is a fully nested stack of four.
	m := uniformMatrix(12, 0.3)
	got := NewCentroidEstimator().Estimate(m, 0.01)
	require.NoError(t, got.Validate())
	assert.Len(t, got.Pairs(), 4)
}

func TestCentroidSinglePairAgreesWithGreedy(t *testing.T) {
	// One dominant pair and silence elsewhere: both estimators must return
	// exactly that pair.
	m := rna.NewPairMatrix(12)
	m.Set(3, 9, 0.9)

	want := rna.Structure("..(.....)...")
	assert.Equal(t, want, NewCentroidEstimator().Estimate(m, 0.2))
	assert.Equal(t, want, NewGreedyEstimator().Estimate(m, 0.2))
}

func TestCentroidOutputValidates(t *testing.T) {
	m := rna.NewPairMatrix(15)
	m.Set(1, 15, 0.6)
	m.Set(2, 14, 0.55)
	m.Set(3, 8, 0.5)
	m.Set(5, 13, 0.45)

	est := NewCentroidEstimator()
	for _, gamma := range []float64{0.5, 1, 6, 64} {
		got := est.Estimate(m, gamma)
		assert.Equal(t, 15, got.Len())
		assert.NoError(t, got.Validate(), "gamma=%v produced %q", gamma, got)
	}
}

func TestCentroidName(t *testing.T) {
	assert.Equal(t, "gamma-centroid", NewCentroidEstimator().Name())
}
