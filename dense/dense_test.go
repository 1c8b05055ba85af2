package dense

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestMatrixAccumulateAndClone(t *testing.T) {
	m := NewMatrix(2, 2)
	m.Set(0, 1, 3)
	m.Add(0, 1, 2)
	m.Add(1, 1, -1)
	assert.Equal(t, 5.0, m.Get(0, 1))
	assert.Equal(t, -1.0, m.At(1, 1))

	c := m.Clone()
	c.Set(0, 1, 100)
	assert.Equal(t, 5.0, m.Get(0, 1), "clone must not alias")

	m.Init()
	assert.True(t, mat.Equal(m, mat.NewDense(2, 2, nil)))

	assert.Panics(t, func() { m.At(0, 2) })
	assert.Panics(t, func() { m.Set(2, 0, 1) })
}

func TestMatrixRemoveRowColumn(t *testing.T) {
	m := NewMatrixFrom(3, 3, []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})
	m.RemoveRow(1)
	m.RemoveColumn(0)
	r, c := m.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 2, c)
	assert.Equal(t, []float64{2, 3, 8, 9}, m.data)

	m.RemoveColumn(1)
	assert.Equal(t, []float64{2, 8}, m.data)
	assert.Equal(t, 1, m.Cols())
}

func TestMatrixSetSize(t *testing.T) {
	m := NewMatrixFrom(1, 2, []float64{1, 2})
	m.SetSize(3, 4)
	r, c := m.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 4, c)
	m.Init()
	assert.Equal(t, 0.0, m.At(2, 3))
}

func TestTranspose(t *testing.T) {
	m := NewMatrixFrom(2, 3, []float64{1, 2, 3, 4, 5, 6})
	tr := m.Transpose()
	r, c := tr.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, 6.0, tr.At(2, 1))
	assert.True(t, mat.Equal(tr, m.T()))
}

func TestMul(t *testing.T) {
	a := NewMatrixFrom(2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := NewMatrixFrom(3, 2, []float64{7, 8, 9, 10, 11, 12})
	r, err := Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{58, 64, 139, 154}, r.data)

	var want mat.Dense
	want.Mul(a, b)
	assert.True(t, mat.Equal(&want, r))
}

func TestMulDimensionMismatch(t *testing.T) {
	a := NewMatrix(2, 3)
	b := NewMatrix(2, 3)
	_, err := Mul(a, b)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = MulVec(a, NewVector(2))
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestScaleAndMulVec(t *testing.T) {
	a := NewMatrixFrom(2, 3, []float64{1, 2, 3, 4, 5, 6})
	s := Scale(-2, a)
	assert.Equal(t, []float64{-2, -4, -6, -8, -10, -12}, s.data)
	assert.Equal(t, 1.0, a.At(0, 0), "scale must not modify its operand")

	v, err := MulVec(a, NewVectorFrom([]float64{1, 0, -1}))
	require.NoError(t, err)
	assert.Equal(t, []float64{-2, -2}, v.RawData())
}

func TestDet(t *testing.T) {
	assert.Equal(t, 8.0, Det(Scale(2, Identity(3))))

	singular := NewMatrixFrom(3, 3, []float64{
		1, 2, 3,
		1, 2, 3,
		4, 5, 7,
	})
	assert.Equal(t, 0.0, Det(singular))

	assert.Equal(t, 7.0, Det(NewMatrixFrom(1, 1, []float64{7})))
	assert.Equal(t, -2.0, Det(NewMatrixFrom(2, 2, []float64{1, 2, 3, 4})))

	rnd := rand.New(rand.NewSource(3))
	for n := 4; n <= 6; n++ {
		t.Run(fmt.Sprintf("N=%d", n), func(t *testing.T) {
			m := randomMatrix(rnd, n)
			assert.InDelta(t, mat.Det(m), Det(m), 1e-10)
		})
	}
	assert.Panics(t, func() { Det(NewMatrix(2, 3)) })
}

func TestInverseRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))
	for n := 1; n <= 8; n++ {
		t.Run(fmt.Sprintf("N=%d", n), func(t *testing.T) {
			a := randomSPD(rnd, n)

			inv, clamped, err := CholeskyInverse(a)
			require.NoError(t, err)
			assert.Empty(t, clamped)

			var want mat.Dense
			require.NoError(t, want.Inverse(a))
			assert.True(t, mat.EqualApprox(&want, inv, 1e-9))

			back, err := Inverse(inv)
			require.NoError(t, err)
			assert.True(t, mat.EqualApprox(a, back, 1e-8))

			prod, err := Mul(a, inv)
			require.NoError(t, err)
			assert.True(t, mat.EqualApprox(Identity(n), prod, 1e-9))
		})
	}
}

func TestInverseClampsNonPositivePivot(t *testing.T) {
	inv, clamped, err := CholeskyInverse(NewMatrix(2, 2))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, clamped)
	for _, v := range inv.data {
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0))
	}
	assert.InDelta(t, 1/(PivotEpsilon*PivotEpsilon), inv.At(0, 0), 1)

	// indefinite: second pivot is 1 - 4 < 0
	_, clamped, err = CholeskyInverse(NewMatrixFrom(2, 2, []float64{1, 2, 2, 1}))
	require.NoError(t, err)
	assert.Equal(t, []int{1}, clamped)

	_, _, err = CholeskyInverse(NewMatrix(2, 3))
	assert.ErrorIs(t, err, ErrNonSquare)
}

func TestVector(t *testing.T) {
	v := NewVectorFrom([]float64{1, 2, 3, 4})
	v.Add(1, 10)
	v.Remove(0)
	assert.Equal(t, []float64{12, 3, 4}, v.RawData())
	r, c := v.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 1, c)
	assert.True(t, mat.Equal(v, mat.NewVecDense(3, []float64{12, 3, 4})))

	cl := v.Clone()
	cl.Set(0, 0)
	assert.Equal(t, 12.0, v.Get(0))

	v.SetSize(2)
	assert.Equal(t, 2, v.Len())
	assert.Equal(t, 0.0, v.Norm())
	assert.Panics(t, func() { v.Get(2) })
}

func randomMatrix(rnd *rand.Rand, n int) *Matrix {
	m := NewMatrix(n, n)
	for i := range m.data {
		m.data[i] = 2*rnd.Float64() - 1
	}
	return m
}

// randomSPD returns M·Mᵗ + n·I
func randomSPD(rnd *rand.Rand, n int) *Matrix {
	m := randomMatrix(rnd, n)
	a, _ := Mul(m, m.Transpose())
	for i := 0; i < n; i++ {
		a.Add(i, i, float64(n))
	}
	return a
}
