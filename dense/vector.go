package dense

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Vector is a dense column vector. It satisfies gonum's mat.Vector.
type Vector struct {
	data []float64
}

var _ mat.Vector = (*Vector)(nil)

func NewVector(n int) *Vector {
	if n < 0 {
		panic(ErrBadShape)
	}
	return &Vector{data: make([]float64, n)}
}

// NewVectorFrom wraps data without copying
func NewVectorFrom(data []float64) *Vector {
	return &Vector{data: data}
}

func (v *Vector) Len() int { return len(v.data) }

func (v *Vector) Dims() (r, c int) { return len(v.data), 1 }

func (v *Vector) At(i, j int) float64 {
	if j != 0 {
		panic(ErrIndexOutOfRange)
	}
	return v.AtVec(i)
}

func (v *Vector) AtVec(i int) float64 {
	if i < 0 || i >= len(v.data) {
		panic(ErrIndexOutOfRange)
	}
	return v.data[i]
}

func (v *Vector) T() mat.Matrix { return mat.TransposeVec{Vector: v} }

func (v *Vector) Get(i int) float64 { return v.AtVec(i) }

func (v *Vector) Set(i int, val float64) {
	if i < 0 || i >= len(v.data) {
		panic(ErrIndexOutOfRange)
	}
	v.data[i] = val
}

// Add accumulates val into element i
func (v *Vector) Add(i int, val float64) {
	if i < 0 || i >= len(v.data) {
		panic(ErrIndexOutOfRange)
	}
	v.data[i] += val
}

func (v *Vector) Init() {
	for i := range v.data {
		v.data[i] = 0
	}
}

func (v *Vector) Clone() *Vector {
	data := make([]float64, len(v.data))
	copy(data, v.data)
	return &Vector{data: data}
}

// SetSize reallocates the vector with n zero entries
func (v *Vector) SetSize(n int) {
	if n < 0 {
		panic(ErrBadShape)
	}
	v.data = make([]float64, n)
}

// Remove deletes element i, shifting later elements down by one
func (v *Vector) Remove(i int) {
	if i < 0 || i >= len(v.data) {
		panic(ErrIndexOutOfRange)
	}
	v.data = append(v.data[:i], v.data[i+1:]...)
}

// RawData returns the backing slice
func (v *Vector) RawData() []float64 { return v.data }

// Norm returns the Euclidean norm
func (v *Vector) Norm() float64 { return floats.Norm(v.data, 2) }

func (v *Vector) String() string {
	return fmt.Sprintf("%v", mat.Formatted(v.T(), mat.Squeeze()))
}
