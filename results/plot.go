package results

import (
	"errors"
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/notargets/TetFEM/element"
	"github.com/notargets/TetFEM/mesh"
)

var ErrUnknownAxis = errors.New("results: axis must be x, y or z")

// Axis selects the coordinate a profile is plotted against
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "z":
		return AxisZ, nil
	}
	return AxisX, fmt.Errorf("%q: %w", s, ErrUnknownAxis)
}

func (a Axis) String() string { return [...]string{"x", "y", "z"}[a] }

func (a Axis) coord(n *element.Node) float64 {
	switch a {
	case AxisY:
		return n.Y
	case AxisZ:
		return n.Z
	default:
		return n.X
	}
}

// ProfileXYs pairs every node's coordinate along axis with its value
func ProfileXYs(m *mesh.Mesh, values mat.Vector, axis Axis) (plotter.XYs, error) {
	if values.Len() != m.NumNodes() {
		return nil, fmt.Errorf("%d values for %d nodes", values.Len(), m.NumNodes())
	}
	pts := make(plotter.XYs, m.NumNodes())
	for i := range pts {
		pts[i].X = axis.coord(m.NodeAt(i))
		pts[i].Y = values.AtVec(i)
	}
	return pts, nil
}

// PlotProfile saves a scatter chart of nodal values against one coordinate.
// The image format follows the extension of path (png, svg, pdf, ...).
func PlotProfile(m *mesh.Mesh, values mat.Vector, axis Axis, path string) error {
	pts, err := ProfileXYs(m, values, axis)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = "Nodal solution"
	p.X.Label.Text = axis.String()
	p.Y.Label.Text = "T"
	p.Add(plotter.NewGrid())

	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	sc.GlyphStyle.Radius = vg.Points(2)
	p.Add(sc)

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
