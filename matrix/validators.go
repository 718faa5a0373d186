// Package matrix: single, canonical source of truth for validation checks
// shared by the ordination engines.
//
// Design:
//   - Keep kernels minimal by delegating shape/nil/symmetry checks here.
//   - Return sentinel errors wrapped with a validator tag so call sites can
//     match via errors.Is and still see which check fired.
//   - All checks are pure, deterministic and allocate nothing.
//   - Symmetry runs O(n²) on the upper triangle only.
package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateDissimilarity performs full validation of a dissimilarity matrix:
//   - non-nil, square, n ≥ 1,
//   - diagonal ≈ 0 (|a_ii| ≤ SymTol),
//   - every entry finite and within [0, 1] (tolerance SymTol on the bounds),
//   - symmetric within SymTol.
//
// Returns n (matrix order) on success.
//
// Contract: this is the gate every engine runs before reading D; passing it
// guarantees the hot loops may skip per-entry guards.
//
// Complexity: O(n²) time, O(1) space.
func ValidateDissimilarity(d *Dense) (int, error) {
	// Stage 1: shape.
	if err := ValidateSquare(d); err != nil {
		return 0, err
	}
	n := d.Rows()

	// Stage 2: diagonal, bounds, finiteness, symmetry over the flat slice.
	var (
		i, j     int
		aij, aji float64
		diff     float64
		raw      = d.Raw()
	)

	// Diagonal: a_ii ≈ 0.
	for i = 0; i < n; i++ {
		aij = raw[i*n+i]
		if math.Abs(aij) > SymTol {
			return 0, validatorErrorf("ValidateDissimilarity: diagonal", ErrNonZeroDiagonal)
		}
	}

	// Full scan: finite, within [0,1].
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			aij = raw[i*n+j]
			if math.IsNaN(aij) || math.IsInf(aij, 0) {
				return 0, validatorErrorf("ValidateDissimilarity: entry", ErrNonFiniteValue)
			}
			if aij < -SymTol || aij > 1+SymTol {
				return 0, validatorErrorf("ValidateDissimilarity: entry", ErrValueOutOfRange)
			}
		}
	}

	// Upper triangle: symmetry.
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			aij = raw[i*n+j]
			aji = raw[j*n+i]
			diff = aij - aji
			if diff < 0 {
				diff = -diff
			}
			if diff > SymTol {
				return 0, validatorErrorf("ValidateDissimilarity: symmetry", ErrAsymmetry)
			}
		}
	}

	return n, nil
}

// IsZeroOffDiagonal reports whether every off-diagonal entry of d is ≈ 0
// within tol. Engines use it to short-circuit into the degenerate-input
// fallback (all communities compositionally identical).
//
// Assumes d already passed ValidateDissimilarity.
//
// Complexity: O(n²) time, O(1) space.
func IsZeroOffDiagonal(d *Dense, tol float64) bool {
	var (
		n   = d.Rows()
		raw = d.Raw()
		i   int
		j   int
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if math.Abs(raw[i*n+j]) > tol {
				return false
			}
		}
	}

	return true
}
