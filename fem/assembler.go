package fem

import (
	"github.com/notargets/TetFEM/dense"
	"github.com/notargets/TetFEM/element"
	"github.com/notargets/TetFEM/mesh"
)

// Assemble scatter-adds every local system into a zeroed global K and b of
// size m.NumNodes(). Node ID i maps to row and column i-1.
func Assemble(m *mesh.Mesh, locals []*element.LocalSystem) (*dense.Matrix, *dense.Vector) {
	n := m.NumNodes()
	K := dense.NewMatrix(n, n)
	b := dense.NewVector(n)

	for _, ls := range locals {
		idx := ls.Element.GlobalIndices()
		for a := 0; a < 4; a++ {
			for c := 0; c < 4; c++ {
				K.Add(idx[a], idx[c], ls.K.At(a, c))
			}
			b.Add(idx[a], ls.B.AtVec(a))
		}
	}
	return K, b
}
