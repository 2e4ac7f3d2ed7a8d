// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/tspsolver/matrix"
	"github.com/stretchr/testify/require"
)

// square builds an n×n Dense from a row-major literal.
func square(t *testing.T, rows [][]float64) matrix.Matrix {
	t.Helper()
	m, err := matrix.NewDense(len(rows), len(rows[0]))
	require.NoError(t, err)
	for i := range rows {
		for j := range rows[i] {
			require.NoError(t, m.Set(i, j, rows[i][j]))
		}
	}

	return m
}

// TestValidateSquare covers nil inputs, square and non-square cases.
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	nonSquare, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	empty, err := matrix.NewSquare(0)
	require.NoError(t, err)

	tests := []struct {
		name    string
		m       matrix.Matrix
		wantErr error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"empty", empty, nil},
		{"2x3", nonSquare, matrix.ErrNonSquare},
		{"2x2", square(t, [][]float64{{0, 1}, {1, 0}}), nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSquare(tc.m)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Truef(t, errors.Is(err, tc.wantErr), "expected errors.Is(%v, %v)", err, tc.wantErr)
		})
	}
}

// TestValidateSymmetric checks tolerance handling and the asymmetry sentinel.
func TestValidateSymmetric(t *testing.T) {
	t.Parallel()

	sym := square(t, [][]float64{{0, 3.9, 6.44}, {3.9, 0, 4.7}, {6.44, 4.7, 0}})
	require.NoError(t, matrix.ValidateSymmetric(sym, 0))

	skew := square(t, [][]float64{{0, 1}, {1.001, 0}})
	require.ErrorIs(t, matrix.ValidateSymmetric(skew, 1e-6), matrix.ErrAsymmetry)
	require.NoError(t, matrix.ValidateSymmetric(skew, 1e-2))
	require.NoError(t, matrix.ValidateSymmetric(skew, -1e-2), "negative tolerance folds to |tol|")
	require.ErrorIs(t, matrix.ValidateSymmetric(skew, math.NaN()), matrix.ErrNaNInf)
}

// TestValidateZeroDiagonal checks the diagonal sentinel.
func TestValidateZeroDiagonal(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateZeroDiagonal(square(t, [][]float64{{0, 2}, {2, 0}}), 0))
	require.ErrorIs(t,
		matrix.ValidateZeroDiagonal(square(t, [][]float64{{0, 2}, {2, 0.5}}), 1e-9),
		matrix.ErrNonZeroDiagonal)
}
