package element

import (
	"math"

	"github.com/notargets/TetFEM/dense"
	"gonum.org/v1/gonum/spatial/r3"
)

// DegenerateEpsilon replaces a zero or NaN Jacobian or volume. Elements that
// hit it produce a finite but inaccurate local system.
const DegenerateEpsilon = 1e-6

// Tet is a 4-node tetrahedron. Node order fixes the orientation, and with it
// the sign of the Jacobian. Nodes are owned by the mesh.
type Tet struct {
	ID    int
	Nodes [4]*Node
}

func NewTet(id int, n1, n2, n3, n4 *Node) *Tet {
	return &Tet{ID: id, Nodes: [4]*Node{n1, n2, n3, n4}}
}

// GlobalIndices returns ID-1 for each of the element's nodes, in node order
func (t *Tet) GlobalIndices() (idx [4]int) {
	for i, n := range t.Nodes {
		idx[i] = n.Index()
	}
	return
}

// Edges returns the edge vectors from node 1 to nodes 2, 3 and 4
func (t *Tet) Edges() (e1, e2, e3 r3.Vec) {
	p1 := t.Nodes[0].Point()
	e1 = r3.Sub(t.Nodes[1].Point(), p1)
	e2 = r3.Sub(t.Nodes[2].Point(), p1)
	e3 = r3.Sub(t.Nodes[3].Point(), p1)
	return
}

// JacobianMatrix maps the reference tetrahedron onto the element. Column i
// holds edge vector i:
//
//	[x2-x1 x3-x1 x4-x1]
//	[y2-y1 y3-y1 y4-y1]
//	[z2-z1 z3-z1 z4-z1]
func (t *Tet) JacobianMatrix() *dense.Matrix {
	e1, e2, e3 := t.Edges()
	return dense.NewMatrixFrom(3, 3, []float64{
		e1.X, e2.X, e3.X,
		e1.Y, e2.Y, e3.Y,
		e1.Z, e2.Z, e3.Z,
	})
}

// Jacobian returns the signed determinant of JacobianMatrix. A zero or NaN
// determinant is replaced with DegenerateEpsilon and substituted is true.
func (t *Tet) Jacobian() (jac float64, substituted bool) {
	return nonDegenerate(dense.Det(t.JacobianMatrix()))
}

// Volume returns |det(edge matrix)|/6, with the same substitution as Jacobian
func (t *Tet) Volume() (vol float64, substituted bool) {
	edges := t.JacobianMatrix().Transpose()
	return nonDegenerate(math.Abs(dense.Det(edges)) / 6)
}

// FluxMatrix returns the cofactor matrix of JacobianMatrix, whose columns are
// e2×e3, e3×e1 and e1×e2. Physical gradients of the shape functions are
// FluxMatrix·ShapeDerivatives/Jacobian.
func (t *Tet) FluxMatrix() *dense.Matrix {
	e1, e2, e3 := t.Edges()
	c1, c2, c3 := r3.Cross(e2, e3), r3.Cross(e3, e1), r3.Cross(e1, e2)
	return dense.NewMatrixFrom(3, 3, []float64{
		c1.X, c2.X, c3.X,
		c1.Y, c2.Y, c3.Y,
		c1.Z, c2.Z, c3.Z,
	})
}

// ShapeDerivatives returns the constant 3×4 matrix of reference gradients of
// the linear shape functions N1 = 1-ξ-η-ζ, N2 = ξ, N3 = η, N4 = ζ.
func ShapeDerivatives() *dense.Matrix {
	return dense.NewMatrixFrom(3, 4, []float64{
		-1, 1, 0, 0,
		-1, 0, 1, 0,
		-1, 0, 0, 1,
	})
}

func nonDegenerate(v float64) (float64, bool) {
	if v == 0 || math.IsNaN(v) {
		return DegenerateEpsilon, true
	}
	return v, false
}
