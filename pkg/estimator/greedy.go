/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: greedy.go
Description: Greedy threshold estimator for the Akaylee Fold engine. Accepts
highest-probability pairs above a fixed threshold in deterministic order,
rejecting endpoint conflicts and crossing pairs explicitly.
*/

package estimator

import (
	"sort"

	"github.com/kleascm/akaylee-fold/pkg/rna"
)

// GreedyThreshold is the acceptance threshold: only pairs with P(i,j) above
// it are candidates.
const GreedyThreshold = 0.5

// GreedyEstimator approximates the consensus structure by greedy selection.
// Cheaper than the centroid DP but only an approximation; used as a secondary
// strategy and for cross-checking on unambiguous matrices.
type GreedyEstimator struct{}

// NewGreedyEstimator creates a greedy estimator.
func NewGreedyEstimator() *GreedyEstimator { return &GreedyEstimator{} }

// Name identifies the estimator in logs and reports.
func (e *GreedyEstimator) Name() string { return "greedy-threshold" }

type candidate struct {
	i, j int
	p    float64
}

// Estimate scans all candidate pairs (j-i >= MinLoopLen, P > GreedyThreshold)
// by probability descending, ties broken by smaller i then smaller j, and
// accepts a candidate only when both endpoints are free and it crosses no
// already-accepted pair. Gamma is ignored. Never fails: with no candidate
// above the threshold the result is all-unpaired.
func (e *GreedyEstimator) Estimate(m *rna.PairMatrix, _ float64) rna.Structure {
	n := m.N()

	var cands []candidate
	for i := 1; i <= n; i++ {
		for j := i + rna.MinLoopLen; j <= n; j++ {
			if p := m.At(i, j); p > GreedyThreshold {
				cands = append(cands, candidate{i: i, j: j, p: p})
			}
		}
	}
	sort.Slice(cands, func(a, b int) bool {
		if cands[a].p != cands[b].p {
			return cands[a].p > cands[b].p
		}
		if cands[a].i != cands[b].i {
			return cands[a].i < cands[b].i
		}
		return cands[a].j < cands[b].j
	})

	used := make([]bool, n+1)
	var accepted []rna.Pair
	for _, c := range cands {
		if used[c.i] || used[c.j] {
			continue
		}
		// Endpoint uniqueness alone does not rule out crossings, so check
		// the candidate against every accepted pair.
		if crossesAny(c.i, c.j, accepted) {
			continue
		}
		used[c.i], used[c.j] = true, true
		accepted = append(accepted, rna.Pair{I: c.i, J: c.j})
	}
	return rna.FromPairs(n, accepted)
}

// crossesAny reports whether (i,j) crosses any pair in accepted: two pairs
// (i1,j1), (i2,j2) cross iff i1 < i2 < j1 < j2 in either role assignment.
func crossesAny(i, j int, accepted []rna.Pair) bool {
	for _, p := range accepted {
		if (p.I < i && i < p.J && p.J < j) || (i < p.I && p.I < j && j < p.J) {
			return true
		}
	}
	return false
}
