/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: matrix.go
Description: Base-pair probability matrix for the Akaylee Fold engine. Stores
the upper-triangular pairing-probability table with symmetric access and
derives clamped per-position marginal probabilities for the estimators.
*/

package rna

// MinLoopLen is the minimum hairpin loop constraint: a pair (i,j) is only
// valid when j-i >= MinLoopLen, leaving at least three unpaired positions
// strictly between the endpoints.
const MinLoopLen = 4

// PairMatrix is a square pairing-probability table indexed 1..n x 1..n.
// Only entries with i < j are stored; access is symmetric. Entries hold
// P(i,j) in [0,1], the modeled probability that positions i and j pair.
type PairMatrix struct {
	n int
	// Upper triangle in row-major order: (i,j) with 1 <= i < j <= n lives at
	// index (i-1)*n - i*(i-1)/2 + (j-i-1).
	p []float64
}

// NewPairMatrix creates an all-zero matrix for a sequence of length n.
func NewPairMatrix(n int) *PairMatrix {
	if n < 1 {
		n = 1
	}
	return &PairMatrix{n: n, p: make([]float64, n*(n-1)/2)}
}

// N returns the sequence length the matrix covers.
func (m *PairMatrix) N() int { return m.n }

func (m *PairMatrix) index(i, j int) (int, bool) {
	if i > j {
		i, j = j, i
	}
	if i < 1 || j > m.n || i == j {
		return 0, false
	}
	return (i-1)*m.n - i*(i-1)/2 + (j - i - 1), true
}

// At returns P(i,j) with symmetric access: At(i,j) == At(j,i).
// Out-of-range or diagonal lookups return 0.
func (m *PairMatrix) At(i, j int) float64 {
	idx, ok := m.index(i, j)
	if !ok {
		return 0
	}
	return m.p[idx]
}

// Set stores P(i,j), clamping the value into [0,1]. Diagonal and
// out-of-range indices are ignored.
func (m *PairMatrix) Set(i, j int, prob float64) {
	idx, ok := m.index(i, j)
	if !ok {
		return
	}
	if prob < 0 {
		prob = 0
	} else if prob > 1 {
		prob = 1
	}
	m.p[idx] = prob
}

// Marginals returns the per-position marginal pairing probability
// p[i] = sum over k != i of P(min(i,k), max(i,k)), clamped to [0,1].
// The slice is 1-indexed: element 0 is unused.
func (m *PairMatrix) Marginals() []float64 {
	marg := make([]float64, m.n+1)
	for i := 1; i <= m.n; i++ {
		for j := i + 1; j <= m.n; j++ {
			p := m.At(i, j)
			marg[i] += p
			marg[j] += p
		}
	}
	for i := 1; i <= m.n; i++ {
		if marg[i] > 1 {
			marg[i] = 1
		}
	}
	return marg
}
