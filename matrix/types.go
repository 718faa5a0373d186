package matrix

import "errors"

// SymTol is the structural tolerance used by symmetry and zero-diagonal
// checks. It is deliberately tight: dissimilarity builders in this library
// write both triangles from the same expression, so any drift beyond FP
// noise indicates a malformed input.
const SymTol = 1e-12

// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
var ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
var ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

// ErrNilMatrix indicates that a nil *Dense was passed to an operation.
var ErrNilMatrix = errors.New("matrix: nil matrix")

// ErrNonSquare indicates that a square matrix was required.
var ErrNonSquare = errors.New("matrix: matrix is not square")

// ErrAsymmetry indicates that symmetry was required but |a_ij − a_ji| exceeds tolerance.
var ErrAsymmetry = errors.New("matrix: matrix is not symmetric")

// ErrNonZeroDiagonal indicates that a zero diagonal was required.
var ErrNonZeroDiagonal = errors.New("matrix: diagonal entry is not zero")

// ErrNonFiniteValue indicates a NaN or ±Inf entry where finite values are required.
var ErrNonFiniteValue = errors.New("matrix: non-finite entry")

// ErrValueOutOfRange indicates an entry outside the required [0,1] dissimilarity range.
var ErrValueOutOfRange = errors.New("matrix: entry outside [0,1]")
