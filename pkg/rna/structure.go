/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: structure.go
Description: Dot-bracket secondary structure value type for the Akaylee Fold
engine. Provides pair extraction, rendering from pair sets, and well-formedness
validation of the non-crossing matching with the minimum loop-length rule.
*/

package rna

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrMalformedStructure is returned by Validate for structures that are not a
// well-formed non-crossing matching over {'(', ')', '.'}.
var ErrMalformedStructure = errors.New("malformed structure")

// Structure is a fixed-length dot-bracket string over {'(', ')', '.'}: each
// '(' at position i matches exactly one ')' at some j > i, no two pairs
// cross, and every pair satisfies j-i >= MinLoopLen.
type Structure string

// Pair is one base pair (I, J) with 1 <= I < J <= n.
type Pair struct {
	I int
	J int
}

// AllUnpaired returns the structure of length n with no pairs.
func AllUnpaired(n int) Structure {
	return Structure(strings.Repeat(".", n))
}

// Len returns the structure length.
func (s Structure) Len() int { return len(s) }

// String returns the dot-bracket text.
func (s Structure) String() string { return string(s) }

// Pairs extracts the base pairs via stack-based bracket matching, sorted by
// opening position. The structure is assumed valid; Validate first when the
// text comes from an external source.
func (s Structure) Pairs() []Pair {
	var stack []int
	var pairs []Pair
	for idx := 0; idx < len(s); idx++ {
		switch s[idx] {
		case '(':
			stack = append(stack, idx+1)
		case ')':
			if len(stack) == 0 {
				continue
			}
			i := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			pairs = append(pairs, Pair{I: i, J: idx + 1})
		}
	}
	sort.Slice(pairs, func(a, b int) bool { return pairs[a].I < pairs[b].I })
	return pairs
}

// FromPairs renders a pair set into dot-bracket notation of length n.
// Rendering a structure's own pair set reproduces it exactly.
func FromPairs(n int, pairs []Pair) Structure {
	buf := []byte(strings.Repeat(".", n))
	for _, p := range pairs {
		if p.I < 1 || p.J > n || p.I >= p.J {
			continue
		}
		buf[p.I-1] = '('
		buf[p.J-1] = ')'
	}
	return Structure(buf)
}

// Validate checks that the structure is a well-formed non-crossing matching:
// balanced brackets, no foreign symbols, and every pair obeying the minimum
// loop-length rule. Non-crossing holds by construction for any balanced
// bracket string, so balance plus loop length is the full check.
func (s Structure) Validate() error {
	var stack []int
	for idx := 0; idx < len(s); idx++ {
		switch s[idx] {
		case '.':
		case '(':
			stack = append(stack, idx+1)
		case ')':
			if len(stack) == 0 {
				return fmt.Errorf("%w: unmatched ')' at position %d", ErrMalformedStructure, idx+1)
			}
			i := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if j := idx + 1; j-i < MinLoopLen {
				return fmt.Errorf("%w: pair (%d,%d) violates minimum loop length", ErrMalformedStructure, i, j)
			}
		default:
			return fmt.Errorf("%w: symbol %q at position %d", ErrMalformedStructure, s[idx], idx+1)
		}
	}
	if len(stack) > 0 {
		return fmt.Errorf("%w: unmatched '(' at position %d", ErrMalformedStructure, stack[len(stack)-1])
	}
	return nil
}
