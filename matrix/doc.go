// SPDX-License-Identifier: MIT

// Package matrix provides the dense float64 storage used for pairwise
// distance tables.
//
// The package offers:
//
//   - Dense, a row-major r×c matrix with bounds-checked At/Set and deep Clone.
//   - Validators (ValidateSquare, ValidateSymmetric, ValidateZeroDiagonal)
//     returning plain sentinel errors wrapped with the validator tag.
//
// A 0×0 Dense is a legal value: it represents the distance table of an empty
// instance. Negative shapes are rejected with ErrInvalidDimensions.
//
// Complexity:
//
//	Rows/Cols/At/Set run in O(1); Clone and the validators run in O(r*c).
package matrix
