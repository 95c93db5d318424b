/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: greedy_test.go
Description: Tests for the greedy threshold estimator: threshold behavior,
deterministic ordering, endpoint conflicts and crossing rejection.
*/

package estimator

import (
	"testing"

	"github.com/kleascm/akaylee-fold/pkg/rna"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGreedyThresholdIsStrict(t *testing.T) {
	m := rna.NewPairMatrix(12)
	m.Set(2, 8, 0.5) // exactly at the threshold: not a candidate

	got := NewGreedyEstimator().Estimate(m, 1.0)
	assert.Equal(t, rna.AllUnpaired(12), got)
}

func TestGreedyAcceptsAboveThreshold(t *testing.T) {
	m := rna.NewPairMatrix(12)
	m.Set(2, 8, 0.51)

	got := NewGreedyEstimator().Estimate(m, 1.0)
	assert.Equal(t, rna.Structure(".(.....)...."), got)
}

func TestGreedyEndpointConflictResolvedByProbability(t *testing.T) {
	// Both candidates claim position 8; the higher-probability pair wins.
	m := rna.NewPairMatrix(12)
	m.Set(2, 8, 0.7)
	m.Set(8, 12, 0.9)

	got := NewGreedyEstimator().Estimate(m, 1.0)
	pairs := got.Pairs()
	require.Len(t, pairs, 1)
	assert.Equal(t, rna.Pair{I: 8, J: 12}, pairs[0])
}

func TestGreedyRejectsCrossingPairs(t *testing.T) {
	// (4,10) crosses the already-accepted (1,7) even though all four
	// endpoints are distinct; (8,12) nests cleanly after it.
	m := rna.NewPairMatrix(12)
	m.Set(1, 7, 0.9)
	m.Set(4, 10, 0.8)
	m.Set(8, 12, 0.6)

	got := NewGreedyEstimator().Estimate(m, 1.0)
	require.NoError(t, got.Validate())
	assert.Equal(t, []rna.Pair{{I: 1, J: 7}, {I: 8, J: 12}}, got.Pairs())
}

func TestGreedyTieBreaksBySmallerIndices(t *testing.T) {
	// Equal probabilities: the pair with the smaller opening position is
	// considered first and blocks the other's endpoint.
	m := rna.NewPairMatrix(12)
	m.Set(2, 8, 0.6)
	m.Set(3, 8, 0.6)

	got := NewGreedyEstimator().Estimate(m, 1.0)
	pairs := got.Pairs()
	require.Len(t, pairs, 1)
	assert.Equal(t, rna.Pair{I: 2, J: 8}, pairs[0])
}

func TestGreedyIgnoresGamma(t *testing.T) {
	m := rna.NewPairMatrix(12)
	m.Set(3, 9, 0.8)

	est := NewGreedyEstimator()
	assert.Equal(t, est.Estimate(m, 0.1), est.Estimate(m, 128))
}

func TestGreedyName(t *testing.T) {
	assert.Equal(t, "greedy-threshold", NewGreedyEstimator().Name())
}
