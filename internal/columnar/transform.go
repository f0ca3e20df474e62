// Package columnar implements the reversible mapping between a flat
// string and the permuted column-major layout of a columnar
// transposition cipher.
package columnar

import (
	"github.com/cipherkit/go-columnar-solver/internal/errors"
	"github.com/cipherkit/go-columnar-solver/model"
)

// Characters are assigned to columns round-robin: character i belongs
// to column i mod period, at row i / period. When the text length is
// not a multiple of the period the first (len mod period) columns are
// one character longer than the rest.

// colLength returns the length of column col for a text of n characters.
func colLength(n, period, col int) int {
	length := n / period
	if col < n%period {
		length++
	}
	return length
}

func validate(period int, perm model.Permutation) error {
	if period < 2 {
		return errors.NewInvalidPeriodError(period)
	}
	if len(perm) != period {
		return errors.NewInvalidPermutationError(period, "size does not match period")
	}
	if err := perm.Validate(); err != nil {
		return errors.NewInvalidPermutationError(period, err.Error())
	}
	return nil
}

// Apply encrypts: it splits plaintext into period columns round-robin
// and concatenates the columns in the order given by perm.
func Apply(plaintext string, period int, perm model.Permutation) (string, error) {
	if err := validate(period, perm); err != nil {
		return "", err
	}
	return apply(plaintext, period, perm), nil
}

// Reverse decrypts: it reconstructs the round-robin layout from the
// permuted column blocks and re-interleaves characters into original
// position order. Reverse(Apply(p, period, perm), period, perm) == p
// for every valid input, including ragged column lengths.
func Reverse(ciphertext string, period int, perm model.Permutation) (string, error) {
	if err := validate(period, perm); err != nil {
		return "", err
	}
	return reverse(ciphertext, period, perm), nil
}

// apply and reverse skip validation; callers inside the search loops
// validate once up front and then transform thousands of times.

func apply(plaintext string, period int, perm model.Permutation) string {
	n := len(plaintext)
	out := make([]byte, 0, n)
	for _, col := range perm {
		for i := col; i < n; i += period {
			out = append(out, plaintext[i])
		}
	}
	return string(out)
}

func reverse(ciphertext string, period int, perm model.Permutation) string {
	n := len(ciphertext)

	// Locate each original column's block inside the ciphertext. Block k
	// holds column perm[k] and its length depends on that column's index.
	starts := make([]int, period)
	offset := 0
	for _, col := range perm {
		starts[col] = offset
		offset += colLength(n, period, col)
	}

	out := make([]byte, n)
	for col := 0; col < period; col++ {
		start := starts[col]
		length := colLength(n, period, col)
		for row := 0; row < length; row++ {
			out[row*period+col] = ciphertext[start+row]
		}
	}
	return string(out)
}
