/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: centroid.go
Description: Gamma-centroid estimator for the Akaylee Fold engine. Maximizes
the expected-gain objective over all non-crossing structures with a cubic-time
dynamic program and an explicit-stack traceback, matching the CentroidFold
recurrence used by the external solver.
*/

package estimator

import (
	"github.com/kleascm/akaylee-fold/pkg/rna"
)

// Traceback choice encoding per DP cell: unpairI and unpairJ reduce the
// interval, any positive value k records "pair i with k".
const (
	unpairI = 0
	unpairJ = -1
)

// CentroidEstimator computes the gamma-centroid structure: the non-crossing
// matching maximizing
//
//	sum over paired (i,k) of P(i,k)  +  gamma * sum over unpaired i of p[i]
//
// where p[i] is the clamped marginal pairing probability of position i.
// Low gamma drives toward maximal pairing, high gamma toward all-unpaired.
type CentroidEstimator struct{}

// NewCentroidEstimator creates a gamma-centroid estimator.
func NewCentroidEstimator() *CentroidEstimator {
	return &CentroidEstimator{}
}

// Name identifies the estimator in logs and reports.
func (e *CentroidEstimator) Name() string { return "gamma-centroid" }

// Estimate runs the DP for the given matrix and gamma. Deterministic: ties
// between candidates are broken by evaluation order (unpair-i, unpair-j, then
// pair partners in increasing k) via strict-greater updates. Total function:
// n < 4 yields the all-unpaired structure, gamma <= 0 is accepted and simply
// produces a maximally paired result.
func (e *CentroidEstimator) Estimate(m *rna.PairMatrix, gamma float64) rna.Structure {
	n := m.N()
	if n < rna.MinLoopLen {
		return rna.AllUnpaired(n)
	}

	marg := m.Marginals()

	// gain and trace are (n+2)^2 arenas owned by this call; row width n+2
	// admits the i+1/j-1/k+1 lookups without bounds juggling. Cells with
	// i > j represent empty subsequences and stay zero.
	w := n + 2
	gain := make([]float64, w*w)
	trace := make([]int, w*w)
	cell := func(i, j int) int { return i*w + j }

	// Fill by increasing subsequence length so smaller subproblems are ready.
	for span := 1; span <= n; span++ {
		for i := 1; i+span-1 <= n; i++ {
			j := i + span - 1

			// Leave i unpaired.
			best := gamma*marg[i] + gain[cell(i+1, j)]
			choice := unpairI

			// Leave j unpaired.
			if i < j {
				if v := gamma*marg[j] + gain[cell(i, j-1)]; v > best {
					best = v
					choice = unpairJ
				}
			}

			// Pair i with k, honoring the minimum loop length.
			for k := i + rna.MinLoopLen; k <= j; k++ {
				if v := m.At(i, k) + gain[cell(i+1, k-1)] + gain[cell(k+1, j)]; v > best {
					best = v
					choice = k
				}
			}

			gain[cell(i, j)] = best
			trace[cell(i, j)] = choice
		}
	}

	// Traceback over strictly decreasing intervals with an explicit stack;
	// recursion depth would otherwise scale with n.
	buf := make([]byte, n)
	for idx := range buf {
		buf[idx] = '.'
	}
	stack := [][2]int{{1, n}}
	for len(stack) > 0 {
		iv := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		i, j := iv[0], iv[1]
		if i > j || i < 1 || j > n {
			continue
		}
		switch choice := trace[cell(i, j)]; choice {
		case unpairI:
			stack = append(stack, [2]int{i + 1, j})
		case unpairJ:
			stack = append(stack, [2]int{i, j - 1})
		default:
			buf[i-1] = '('
			buf[choice-1] = ')'
			stack = append(stack, [2]int{i + 1, choice - 1}, [2]int{choice + 1, j})
		}
	}
	return rna.Structure(buf)
}
