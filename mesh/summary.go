package mesh

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/TetFEM/element"
	"github.com/notargets/TetFEM/utils"
)

// String returns a summary of the mesh: sizes, problem constants, coordinate
// ranges and element geometry ranges
func (m *Mesh) String() string {
	var sb strings.Builder

	sb.WriteString("=== Mesh Summary ===\n")

	props := element.Tet4Properties()
	sb.WriteString("\n--- Element Properties ---\n")
	sb.WriteString(fmt.Sprintf("  Name: %s (%s)\n", props.Name, props.ShortName))
	sb.WriteString(fmt.Sprintf("  Type: %v\n", props.Type))
	sb.WriteString(fmt.Sprintf("  Nodes per element (Np): %d\n", props.Np))
	sb.WriteString(fmt.Sprintf("  Dimensions: %v\n", props.Dimensions))

	sb.WriteString("\n--- Problem ---\n")
	sb.WriteString(fmt.Sprintf("  Conductivity (k): %g\n", m.Problem.Conductivity))
	sb.WriteString(fmt.Sprintf("  Source (Q): %g\n", m.Problem.Source))

	sb.WriteString("\n--- Sizes ---\n")
	sb.WriteString(fmt.Sprintf("  Number of nodes: %d\n", m.NumNodes()))
	sb.WriteString(fmt.Sprintf("  Number of elements: %d\n", m.NumElements()))
	sb.WriteString(fmt.Sprintf("  Dirichlet conditions: %d\n", m.NumDirichlet()))
	sb.WriteString(fmt.Sprintf("  Neumann conditions: %d\n", m.NumNeumann()))
	sb.WriteString(fmt.Sprintf("  Unknowns after condensation: %d\n", m.NumNodes()-m.NumDirichlet()))

	if m.NumNodes() > 0 && m.Validate() == nil {
		x := make([]float64, m.NumNodes())
		y := make([]float64, m.NumNodes())
		z := make([]float64, m.NumNodes())
		for i, n := range m.nodes {
			x[i], y[i], z[i] = n.X, n.Y, n.Z
		}
		sb.WriteString("\n--- Coordinates ---\n")
		sb.WriteString(fmt.Sprintf("  X range: [%.4f, %.4f]\n", floats.Min(x), floats.Max(x)))
		sb.WriteString(fmt.Sprintf("  Y range: [%.4f, %.4f]\n", floats.Min(y), floats.Max(y)))
		sb.WriteString(fmt.Sprintf("  Z range: [%.4f, %.4f]\n", floats.Min(z), floats.Max(z)))
	}

	if m.NumElements() > 0 {
		jac := make([]float64, m.NumElements())
		vol := make([]float64, m.NumElements())
		var degenerate int
		for i, t := range m.elements {
			var dj, dv bool
			jac[i], dj = t.Jacobian()
			vol[i], dv = t.Volume()
			if dj || dv {
				degenerate++
			}
		}
		jMin, jMax := utils.MinMax(jac)
		vMin, vMax := utils.MinMax(vol)
		sb.WriteString("\n--- Element Geometry ---\n")
		sb.WriteString(fmt.Sprintf("  Jacobian range: [%.4e, %.4e]\n", jMin, jMax))
		sb.WriteString(fmt.Sprintf("  Volume range: [%.4e, %.4e]\n", vMin, vMax))
		sb.WriteString(fmt.Sprintf("  Total volume: %.6e\n", floats.Sum(vol)))
		if degenerate > 0 {
			sb.WriteString(fmt.Sprintf("  Degenerate elements: %d\n", degenerate))
		}
	}

	sb.WriteString("\n====================\n")
	return sb.String()
}
