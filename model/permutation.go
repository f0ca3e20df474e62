package model

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// Permutation is the column reading order of a columnar transposition.
// Entry i names the column emitted at output position i. A valid
// permutation is a bijection over [0, len): every column index appears
// exactly once.
type Permutation []int

// Identity returns the permutation [0, 1, ..., n-1].
func Identity(n int) Permutation {
	p := make(Permutation, n)
	for i := range p {
		p[i] = i
	}
	return p
}

// Shuffled returns a uniformly random permutation of size n drawn from rng.
func Shuffled(n int, rng *rand.Rand) Permutation {
	p := Identity(n)
	rng.Shuffle(n, func(i, j int) {
		p[i], p[j] = p[j], p[i]
	})
	return p
}

// Validate checks that the permutation is a bijection over [0, len).
func (p Permutation) Validate() error {
	seen := make([]bool, len(p))
	for _, v := range p {
		if v < 0 || v >= len(p) {
			return fmt.Errorf("permutation entry %d out of range [0, %d)", v, len(p))
		}
		if seen[v] {
			return fmt.Errorf("permutation entry %d appears more than once", v)
		}
		seen[v] = true
	}
	return nil
}

// Inverse returns the permutation q such that q[p[i]] = i. Applying the
// inverse recovers the original column order.
func (p Permutation) Inverse() Permutation {
	q := make(Permutation, len(p))
	for i, v := range p {
		q[v] = i
	}
	return q
}

// Equal reports whether p and q are the same sequence.
func (p Permutation) Equal(q Permutation) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of p.
func (p Permutation) Clone() Permutation {
	q := make(Permutation, len(p))
	copy(q, p)
	return q
}

// Next advances p in place to its lexicographic successor. It returns
// false when p was already the last permutation, in which case p is left
// unchanged. Starting from Identity and calling Next until it returns
// false enumerates all n! permutations in lexicographic order.
func (p Permutation) Next() bool {
	// Find the longest non-increasing suffix.
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}

	// Swap the pivot with the rightmost element greater than it, then
	// reverse the suffix.
	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	for l, r := i+1, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}
	return true
}

// String renders the permutation as e.g. "[2 4 0 3 1]".
func (p Permutation) String() string {
	parts := make([]string, len(p))
	for i, v := range p {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
