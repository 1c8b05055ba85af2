package dense

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a row-major dense matrix whose size is fixed at runtime and can be
// shrunk one row or column at a time. It satisfies gonum's mat.Matrix.
type Matrix struct {
	nr, nc int
	data   []float64 // len nr*nc, element (r,c) at r*nc+c
}

var _ mat.Matrix = (*Matrix)(nil)

// NewMatrix returns a zero filled r×c matrix
func NewMatrix(r, c int) *Matrix {
	if r < 0 || c < 0 {
		panic(ErrBadShape)
	}
	return &Matrix{nr: r, nc: c, data: make([]float64, r*c)}
}

// NewMatrixFrom wraps data, given in row-major order, as an r×c matrix
func NewMatrixFrom(r, c int, data []float64) *Matrix {
	if r < 0 || c < 0 || len(data) != r*c {
		panic(ErrBadShape)
	}
	return &Matrix{nr: r, nc: c, data: data}
}

// Identity returns the n×n identity matrix
func Identity(n int) *Matrix {
	m := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m
}

func (m *Matrix) Dims() (r, c int) { return m.nr, m.nc }

func (m *Matrix) Rows() int { return m.nr }

func (m *Matrix) Cols() int { return m.nc }

// At implements mat.Matrix. It panics when (r,c) is out of range.
func (m *Matrix) At(r, c int) float64 {
	return m.data[m.index(r, c)]
}

// T implements mat.Matrix with an implicit transpose. Use Transpose for a copy.
func (m *Matrix) T() mat.Matrix { return mat.Transpose{Matrix: m} }

// Get is the same as At
func (m *Matrix) Get(r, c int) float64 { return m.At(r, c) }

func (m *Matrix) Set(r, c int, v float64) {
	m.data[m.index(r, c)] = v
}

// Add accumulates v into (r,c)
func (m *Matrix) Add(r, c int, v float64) {
	m.data[m.index(r, c)] += v
}

// Init zero fills the matrix at its current size
func (m *Matrix) Init() {
	for i := range m.data {
		m.data[i] = 0
	}
}

// Clone returns a deep copy
func (m *Matrix) Clone() *Matrix {
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return &Matrix{nr: m.nr, nc: m.nc, data: data}
}

// SetSize reallocates the matrix as r×c. Previous contents are discarded and
// the new storage is zero filled.
func (m *Matrix) SetSize(r, c int) {
	if r < 0 || c < 0 {
		panic(ErrBadShape)
	}
	m.nr, m.nc = r, c
	m.data = make([]float64, r*c)
}

// RemoveRow deletes row i, keeping the relative order of the remaining rows
func (m *Matrix) RemoveRow(i int) {
	if i < 0 || i >= m.nr {
		panic(ErrIndexOutOfRange)
	}
	m.data = append(m.data[:i*m.nc], m.data[(i+1)*m.nc:]...)
	m.nr--
}

// RemoveColumn deletes column j, keeping the relative order of the remaining columns
func (m *Matrix) RemoveColumn(j int) {
	if j < 0 || j >= m.nc {
		panic(ErrIndexOutOfRange)
	}
	nc := m.nc - 1
	var dst int
	for r := 0; r < m.nr; r++ {
		for c := 0; c < m.nc; c++ {
			if c == j {
				continue
			}
			m.data[dst] = m.data[r*m.nc+c]
			dst++
		}
	}
	m.data = m.data[:m.nr*nc]
	m.nc = nc
}

// Transpose returns a new matrix holding the transpose of m
func (m *Matrix) Transpose() *Matrix {
	t := NewMatrix(m.nc, m.nr)
	for r := 0; r < m.nr; r++ {
		for c := 0; c < m.nc; c++ {
			t.data[c*m.nr+r] = m.data[r*m.nc+c]
		}
	}
	return t
}

func (m *Matrix) String() string {
	return fmt.Sprintf("%v", mat.Formatted(m, mat.Squeeze()))
}

func (m *Matrix) index(r, c int) int {
	if r < 0 || r >= m.nr || c < 0 || c >= m.nc {
		panic(ErrIndexOutOfRange)
	}
	return r*m.nc + c
}
