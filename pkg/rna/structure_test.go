/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: structure_test.go
Description: Tests for dot-bracket structures: pair extraction, rendering
round-trips and well-formedness validation with the minimum loop-length rule.
*/

package rna

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllUnpaired(t *testing.T) {
	assert.Equal(t, Structure("....."), AllUnpaired(5))
	assert.Equal(t, Structure(""), AllUnpaired(0))
}

func TestPairsExtractionSortedByOpening(t *testing.T) {
	s := Structure("((((...))))....(....)")
	pairs := s.Pairs()
	require.Len(t, pairs, 5)
	assert.Equal(t, Pair{I: 1, J: 11}, pairs[0])
	assert.Equal(t, Pair{I: 2, J: 10}, pairs[1])
	assert.Equal(t, Pair{I: 3, J: 9}, pairs[2])
	assert.Equal(t, Pair{I: 4, J: 8}, pairs[3])
	assert.Equal(t, Pair{I: 16, J: 21}, pairs[4])
}

func TestFromPairsRoundTrip(t *testing.T) {
	for _, text := range []string{
		"...........",
		"(((...)))..",
		"((((...))))....(....)",
		".(....).(....).",
	} {
		s := Structure(text)
		require.NoError(t, s.Validate())
		assert.Equal(t, s, FromPairs(s.Len(), s.Pairs()))
	}
}

func TestValidateAcceptsWellFormed(t *testing.T) {
	for _, text := range []string{"", ".....", "(....)", "((((...))))"} {
		assert.NoError(t, Structure(text).Validate(), "expected %q to validate", text)
	}
}

func TestValidateRejectsUnbalanced(t *testing.T) {
	for _, text := range []string{"((....)", "(....))", ")....("} {
		err := Structure(text).Validate()
		assert.True(t, errors.Is(err, ErrMalformedStructure), "expected rejection of %q", text)
	}
}

func TestValidateRejectsShortLoops(t *testing.T) {
	// Pair (1,4) leaves only two inner positions.
	err := Structure("(..)").Validate()
	assert.True(t, errors.Is(err, ErrMalformedStructure))

	// Pair (1,5) is the shortest admissible span.
	assert.NoError(t, Structure("(...)").Validate())
}

func TestValidateRejectsForeignSymbols(t *testing.T) {
	err := Structure("(..x..)").Validate()
	assert.True(t, errors.Is(err, ErrMalformedStructure))
}
