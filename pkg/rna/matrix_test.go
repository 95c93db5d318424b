/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: matrix_test.go
Description: Tests for the base-pair probability matrix: symmetric access,
value clamping and clamped marginal probabilities.
*/

package rna

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPairMatrixSymmetricAccess(t *testing.T) {
	m := NewPairMatrix(10)
	m.Set(2, 8, 0.7)

	assert.Equal(t, 0.7, m.At(2, 8))
	assert.Equal(t, 0.7, m.At(8, 2))
	assert.Equal(t, 0.0, m.At(3, 8))
}

func TestPairMatrixSetClampsIntoUnitInterval(t *testing.T) {
	m := NewPairMatrix(6)
	m.Set(1, 6, 1.5)
	m.Set(2, 6, -0.2)

	assert.Equal(t, 1.0, m.At(1, 6))
	assert.Equal(t, 0.0, m.At(2, 6))
}

func TestPairMatrixIgnoresInvalidIndices(t *testing.T) {
	m := NewPairMatrix(5)
	m.Set(3, 3, 0.9) // diagonal
	m.Set(0, 4, 0.9) // below range
	m.Set(2, 6, 0.9) // above range

	assert.Equal(t, 0.0, m.At(3, 3))
	assert.Equal(t, 0.0, m.At(0, 4))
	assert.Equal(t, 0.0, m.At(2, 6))
	for i := 1; i <= 5; i++ {
		for j := i + 1; j <= 5; j++ {
			assert.Equal(t, 0.0, m.At(i, j))
		}
	}
}

func TestMarginalsSumPerPosition(t *testing.T) {
	m := NewPairMatrix(8)
	m.Set(1, 5, 0.3)
	m.Set(1, 8, 0.2)
	m.Set(2, 6, 0.4)

	marg := m.Marginals()
	assert.Len(t, marg, 9)
	assert.InDelta(t, 0.5, marg[1], 1e-12)
	assert.InDelta(t, 0.4, marg[2], 1e-12)
	assert.InDelta(t, 0.3, marg[5], 1e-12)
	assert.InDelta(t, 0.2, marg[8], 1e-12)
	assert.Equal(t, 0.0, marg[3])
}

func TestMarginalsClampToOne(t *testing.T) {
	// Per-entry probabilities are individually valid but sum past 1 at
	// position 1; the marginal must clamp.
	m := NewPairMatrix(12)
	m.Set(1, 5, 0.6)
	m.Set(1, 9, 0.6)

	marg := m.Marginals()
	assert.Equal(t, 1.0, marg[1])
	assert.InDelta(t, 0.6, marg[5], 1e-12)
}
