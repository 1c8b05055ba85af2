package dense

import (
	"fmt"
	"math"
)

// PivotEpsilon replaces a Cholesky diagonal pivot that is not strictly positive.
const PivotEpsilon = 1e-6

// CholeskyInverse inverts the symmetric matrix a through a = L·Lᵗ:
// Y = L⁻¹ by forward substitution, then X = Lᵗ⁻¹·Y = a⁻¹ by back substitution.
//
// A pivot a[j,j] - Σ L[j,k]² that is not strictly positive (singular or
// indefinite direction, or NaN) is replaced with PivotEpsilon instead of
// failing. That keeps the solve alive at the cost of accuracy, so the result
// is only an approximation whenever clamped is non-empty. clamped lists the
// affected pivot indices in increasing order.
func CholeskyInverse(a *Matrix) (inv *Matrix, clamped []int, err error) {
	if a.nr != a.nc {
		return nil, nil, fmt.Errorf("%w: %dx%d", ErrNonSquare, a.nr, a.nc)
	}
	n := a.nr
	L := NewMatrix(n, n)
	for j := 0; j < n; j++ {
		var acc float64
		for k := 0; k < j; k++ {
			acc += L.data[j*n+k] * L.data[j*n+k]
		}
		if d := a.data[j*n+j] - acc; d > 0 {
			L.data[j*n+j] = math.Sqrt(d)
		} else {
			L.data[j*n+j] = PivotEpsilon
			clamped = append(clamped, j)
		}
		ljj := L.data[j*n+j]
		for i := j + 1; i < n; i++ {
			acc = 0
			for k := 0; k < j; k++ {
				acc += L.data[i*n+k] * L.data[j*n+k]
			}
			L.data[i*n+j] = (a.data[i*n+j] - acc) / ljj
		}
	}

	// Y = L⁻¹, lower triangular
	Y := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		lii := L.data[i*n+i]
		Y.data[i*n+i] = 1 / lii
		for j := 0; j < i; j++ {
			var acc float64
			for k := j; k < i; k++ {
				acc += L.data[i*n+k] * Y.data[k*n+j]
			}
			Y.data[i*n+j] = -acc / lii
		}
	}

	// Lᵗ·X = Y
	inv = NewMatrix(n, n)
	for i := n - 1; i >= 0; i-- {
		lii := L.data[i*n+i]
		for j := 0; j < n; j++ {
			var acc float64
			for k := i + 1; k < n; k++ {
				acc += L.data[k*n+i] * inv.data[k*n+j]
			}
			inv.data[i*n+j] = (Y.data[i*n+j] - acc) / lii
		}
	}
	return inv, clamped, nil
}

// Inverse is CholeskyInverse without the clamped pivot report
func Inverse(a *Matrix) (*Matrix, error) {
	inv, _, err := CholeskyInverse(a)
	return inv, err
}
