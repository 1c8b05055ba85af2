package element

import "fmt"

// Dimensionality represents the spatial dimension of an element
type Dimensionality uint8

const D3 Dimensionality = 3

func (d Dimensionality) String() string {
	return fmt.Sprintf("%dD", int(d))
}

// GeometryType identifies the shape of an element
type GeometryType uint8

const TetGeometry GeometryType = iota

func (g GeometryType) String() string {
	if g == TetGeometry {
		return "Tetrahedron"
	}
	return "Unknown"
}

// ElementProperties contains metadata describing an element type
type ElementProperties struct {
	Name       string       // Full descriptive name
	ShortName  string       // Abbreviated name (e.g., "Tet4")
	Type       GeometryType // Element shape
	Order      int          // Polynomial order of the shape functions
	Np         int          // Nodes per element
	NFaces     int          // Faces per element
	NEdges     int          // Edges per element
	Dimensions Dimensionality
}

// Tet4Properties describes the linear 4-node tetrahedron used by the solver
func Tet4Properties() ElementProperties {
	return ElementProperties{
		Name:       "Linear Lagrange Tetrahedron",
		ShortName:  "Tet4",
		Type:       TetGeometry,
		Order:      1,
		Np:         4,
		NFaces:     4,
		NEdges:     6,
		Dimensions: D3,
	}
}
