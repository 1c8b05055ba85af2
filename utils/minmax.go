package utils

import "gonum.org/v1/gonum/mat"

// MinMax returns the extremes of s, or zeros for an empty slice
func MinMax(s []float64) (min, max float64) {
	if len(s) == 0 {
		return 0, 0
	}
	min, max = s[0], s[0]
	for _, v := range s[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return
}

// MatrixMinMax extracts the minimum and maximum values from a matrix
func MatrixMinMax(m mat.Matrix) (min, max float64) {
	if m == nil {
		return 0, 0
	}
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return 0, 0
	}
	min = m.At(0, 0)
	max = min
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			val := m.At(i, j)
			if val < min {
				min = val
			}
			if val > max {
				max = val
			}
		}
	}
	return min, max
}
