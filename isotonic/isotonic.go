package isotonic

import "errors"

// ErrEmptyInput indicates that values is empty.
var ErrEmptyInput = errors.New("isotonic: values must be non-empty")

// ErrLengthMismatch indicates len(rank) != len(values).
var ErrLengthMismatch = errors.New("isotonic: rank order length mismatch")

// ErrBadRankOrder indicates rank is not a permutation of 0..n-1.
var ErrBadRankOrder = errors.New("isotonic: rank order is not a permutation")

// pool is a contiguous run (in rank order) sharing one fitted value.
// The fitted value is sum/count; storing the raw sum keeps merges exact.
type pool struct {
	sum   float64
	count int
}

// Regression returns the L2-optimal non-decreasing fit of values under the
// supplied rank order.
//
// rank is a permutation of 0..n-1: rank[k] is the index into values of the
// k-th element in the required monotonic order. The returned slice is
// aligned with values (out[i] is the fitted value for values[i]); reading
// out[rank[0]], out[rank[1]], … yields a non-decreasing sequence.
//
// Stage 1: validate lengths and that rank is a permutation.
// Stage 2: single scan with a pool stack (Pool Adjacent Violators).
// Stage 3: expand pools back into per-index fitted values.
//
// Errors: ErrEmptyInput, ErrLengthMismatch, ErrBadRankOrder.
//
// Complexity: O(n) amortized time (each element merges at most once),
// O(n) space.
func Regression(values []float64, rank []int) ([]float64, error) {
	// Stage 1: contract.
	n := len(values)
	if n == 0 {
		return nil, ErrEmptyInput
	}
	if len(rank) != n {
		return nil, ErrLengthMismatch
	}
	seen := make([]bool, n)
	for _, r := range rank {
		if r < 0 || r >= n || seen[r] {
			return nil, ErrBadRankOrder
		}
		seen[r] = true
	}

	// Stage 2: PAV scan.
	var (
		stack = make([]pool, 0, n)
		p     pool
		top   int
		k     int
	)
	for k = 0; k < n; k++ {
		p = pool{sum: values[rank[k]], count: 1}
		// Merge while the previous pool's mean exceeds the new pool's mean.
		for len(stack) > 0 {
			top = len(stack) - 1
			if stack[top].sum*float64(p.count) <= p.sum*float64(stack[top].count) {
				break // monotone: prev mean ≤ new mean (cross-multiplied, no division)
			}
			p.sum += stack[top].sum
			p.count += stack[top].count
			stack = stack[:top]
		}
		stack = append(stack, p)
	}

	// Stage 3: expand fitted values back into input positions.
	var (
		out = make([]float64, n)
		pos int
		avg float64
		i   int
	)
	for _, p = range stack {
		avg = p.sum / float64(p.count)
		for i = 0; i < p.count; i++ {
			out[rank[pos]] = avg
			pos++
		}
	}

	return out, nil
}
