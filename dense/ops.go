package dense

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Mul returns a·b. It fails when a.Cols() != b.Rows().
func Mul(a, b *Matrix) (*Matrix, error) {
	if a.nc != b.nr {
		return nil, fmt.Errorf("%w: %dx%d by %dx%d", ErrDimensionMismatch, a.nr, a.nc, b.nr, b.nc)
	}
	r := NewMatrix(a.nr, b.nc)
	for i := 0; i < a.nr; i++ {
		for k := 0; k < a.nc; k++ {
			aik := a.data[i*a.nc+k]
			if aik == 0 {
				continue
			}
			for j := 0; j < b.nc; j++ {
				r.data[i*b.nc+j] += aik * b.data[k*b.nc+j]
			}
		}
	}
	return r, nil
}

// Scale returns s·a as a new matrix
func Scale(s float64, a *Matrix) *Matrix {
	r := NewMatrix(a.nr, a.nc)
	floats.ScaleTo(r.data, s, a.data)
	return r
}

// MulVec returns a·v. It fails when a.Cols() != v.Len().
func MulVec(a *Matrix, v *Vector) (*Vector, error) {
	if a.nc != len(v.data) {
		return nil, fmt.Errorf("%w: %dx%d by vector of %d", ErrDimensionMismatch, a.nr, a.nc, len(v.data))
	}
	r := NewVector(a.nr)
	if a.nc == 0 {
		return r, nil
	}
	for i := 0; i < a.nr; i++ {
		r.data[i] = floats.Dot(a.data[i*a.nc:(i+1)*a.nc], v.data)
	}
	return r, nil
}

// Det returns the determinant of the square matrix a. Sizes 1 to 3 use closed
// forms; larger matrices use cofactor expansion along the first row, which is
// exponential in n and only meant for element sized matrices. The determinant
// of a 0×0 matrix is 1. Det panics with ErrNonSquare for non-square input.
func Det(a *Matrix) float64 {
	if a.nr != a.nc {
		panic(ErrNonSquare)
	}
	d := a.data
	switch a.nr {
	case 0:
		return 1
	case 1:
		return d[0]
	case 2:
		return d[0]*d[3] - d[1]*d[2]
	case 3:
		return d[0]*d[4]*d[8] - d[0]*d[5]*d[7] -
			d[1]*d[3]*d[8] + d[1]*d[5]*d[6] +
			d[2]*d[3]*d[7] - d[2]*d[4]*d[6]
	}
	var (
		acc  float64
		sign = 1.0
	)
	for c := 0; c < a.nc; c++ {
		if d[c] != 0 {
			acc += sign * d[c] * Det(Minor(a, 0, c))
		}
		sign = -sign
	}
	return acc
}

// Minor returns a copy of a with row r and column c removed
func Minor(a *Matrix, r, c int) *Matrix {
	m := a.Clone()
	m.RemoveRow(r)
	m.RemoveColumn(c)
	return m
}
