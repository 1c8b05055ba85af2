package element

import (
	"fmt"

	"github.com/notargets/TetFEM/dense"
)

// LocalSystem is the 4×4 stiffness matrix and length-4 load vector of one
// element, before assembly.
type LocalSystem struct {
	Element  *Tet
	K        *dense.Matrix
	B        *dense.Vector
	Jacobian float64
	Volume   float64

	DegenerateJacobian bool // Jacobian was replaced by DegenerateEpsilon
	DegenerateVolume   bool // Volume was replaced by DegenerateEpsilon
}

// BuildLocalSystem computes K = f_K·Bᵗ·(Aᵗ·(A·B)) and b = f_b·[1,1,1,1] for t,
// where the prefactors come from model.
func BuildLocalSystem(t *Tet, model Model, conductivity, source float64) (*LocalSystem, error) {
	ls := &LocalSystem{Element: t}
	ls.Jacobian, ls.DegenerateJacobian = t.Jacobian()
	ls.Volume, ls.DegenerateVolume = t.Volume()

	B := ShapeDerivatives()
	A := t.FluxMatrix()

	AB, err := dense.Mul(A, B)
	if err != nil {
		return nil, fmt.Errorf("element %d: %w", t.ID, err)
	}
	AtAB, err := dense.Mul(A.Transpose(), AB)
	if err != nil {
		return nil, fmt.Errorf("element %d: %w", t.ID, err)
	}
	BtAtAB, err := dense.Mul(B.Transpose(), AtAB)
	if err != nil {
		return nil, fmt.Errorf("element %d: %w", t.ID, err)
	}
	ls.K = dense.Scale(model.StiffnessFactor(conductivity, ls.Volume, ls.Jacobian), BtAtAB)

	f := model.LoadFactor(source, ls.Jacobian)
	ls.B = dense.NewVectorFrom([]float64{f, f, f, f})
	return ls, nil
}
