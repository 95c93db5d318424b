/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: sequence.go
Description: RNA sequence value type for the Akaylee Fold engine. Provides
validated, immutable nucleotide sequences with strict alphabet checking so
invalid input is rejected before any estimation begins.
*/

package rna

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSequence is returned when a sequence is empty or contains symbols
// outside the nucleotide alphabet. Fatal for the request: nothing downstream
// runs on an invalid sequence.
var ErrInvalidSequence = errors.New("invalid sequence")

// Sequence is an ordered, immutable string of nucleotide symbols.
// Always upper-case once constructed.
type Sequence string

// NewSequence validates and normalizes a raw nucleotide string.
// Accepted symbols are A, C, G, T, U and N in either case; T is preserved
// as-is since the solver handles DNA input itself.
func NewSequence(raw string) (Sequence, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if len(s) == 0 {
		return "", fmt.Errorf("%w: empty sequence", ErrInvalidSequence)
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'A', 'C', 'G', 'T', 'U', 'N':
		default:
			return "", fmt.Errorf("%w: symbol %q at position %d", ErrInvalidSequence, s[i], i+1)
		}
	}
	return Sequence(s), nil
}

// Len returns the sequence length in nucleotides.
func (s Sequence) Len() int { return len(s) }

// String returns the raw sequence text.
func (s Sequence) String() string { return string(s) }
