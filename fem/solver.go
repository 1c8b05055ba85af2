package fem

import (
	"fmt"

	"github.com/notargets/TetFEM/dense"
	"github.com/notargets/TetFEM/mesh"
)

// Solve returns x = K⁻¹·b using the Cholesky inverse. clamped lists the pivots
// that were replaced by dense.PivotEpsilon; x is approximate when it is not
// empty.
func Solve(K *dense.Matrix, b *dense.Vector) (x *dense.Vector, clamped []int, err error) {
	inv, clamped, err := dense.CholeskyInverse(K)
	if err != nil {
		return nil, nil, fmt.Errorf("solve: %w", err)
	}
	if x, err = dense.MulVec(inv, b); err != nil {
		return nil, nil, fmt.Errorf("solve: %w", err)
	}
	return x, clamped, nil
}

// MergeWithDirichlet expands the reduced solution x to one value per node.
// Node IDs are walked in increasing order: a prescribed node takes its
// Dirichlet value, any other node takes the next unused entry of x.
func MergeWithDirichlet(x *dense.Vector, m *mesh.Mesh) (*dense.Vector, error) {
	prescribed := 0
	for id := 1; id <= m.NumNodes(); id++ {
		if m.HasDirichlet(id) {
			prescribed++
		}
	}
	if want := m.NumNodes() - prescribed; x.Len() != want {
		return nil, fmt.Errorf("merge: %w: reduced solution has %d entries, want %d",
			dense.ErrDimensionMismatch, x.Len(), want)
	}

	out := dense.NewVector(m.NumNodes())
	next := 0
	for id := 1; id <= m.NumNodes(); id++ {
		if v, ok := m.DirichletValue(id); ok {
			out.Set(id-1, v)
			continue
		}
		out.Set(id-1, x.AtVec(next))
		next++
	}
	return out, nil
}
