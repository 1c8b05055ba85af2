package fem

import (
	"fmt"
	"time"

	"github.com/notargets/TetFEM/dense"
	"github.com/notargets/TetFEM/mesh"
	"github.com/notargets/TetFEM/utils"
)

// Result is the nodal solution of a run plus the numerical fallbacks taken on
// the way
type Result struct {
	Values *dense.Vector // one value per node, node ID i at index i-1

	DegenerateJacobians int   // elements whose Jacobian was replaced by element.DegenerateEpsilon
	DegenerateVolumes   int   // elements whose volume was replaced by element.DegenerateEpsilon
	ClampedPivots       []int // reduced system pivots replaced by dense.PivotEpsilon
}

// Run executes the pipeline on a populated mesh: local systems, assembly,
// Neumann, Dirichlet condensation, solve and merge
func Run(m *mesh.Mesh, opts Options) (*Result, error) {
	opts = opts.withDefaults()
	rep := opts.Reporter
	start := time.Now()

	if err := m.Validate(); err != nil {
		return nil, err
	}

	rep.Printf("Creating local systems (%s model, %d workers, %v partitioning)...\n",
		opts.Model.Name(), opts.Workers, opts.Strategy)
	locals, err := BuildLocalSystems(m, opts)
	if err != nil {
		return nil, err
	}
	res := &Result{}
	for _, ls := range locals {
		if ls.DegenerateJacobian {
			res.DegenerateJacobians++
		}
		if ls.DegenerateVolume {
			res.DegenerateVolumes++
		}
	}
	if res.DegenerateJacobians > 0 {
		rep.Printf("  %d elements with zero or NaN Jacobian\n", res.DegenerateJacobians)
	}
	if res.DegenerateVolumes > 0 {
		rep.Printf("  %d elements with zero or NaN volume\n", res.DegenerateVolumes)
	}

	rep.Printf("Performing assembly...\n")
	K, b := Assemble(m, locals)
	if rep != nil && rep.Verbose {
		kMin, kMax := utils.MatrixMinMax(K)
		rep.Printf("  K is %dx%d, entries in [%.4e, %.4e]\n", K.Rows(), K.Cols(), kMin, kMax)
	}

	rep.Printf("Applying Neumann boundary conditions...\n")
	ApplyNeumann(b, m.Neumann())

	rep.Printf("Applying Dirichlet boundary conditions...\n")
	ApplyDirichlet(K, b, m.Dirichlet())

	rep.Printf("Solving global system (%d unknowns)...\n", b.Len())
	x, clamped, err := Solve(K, b)
	if err != nil {
		return nil, err
	}
	res.ClampedPivots = clamped
	if len(clamped) > 0 {
		rep.Printf("  %d non-positive pivots clamped, solution is approximate\n", len(clamped))
	}

	rep.Printf("Preparing results...\n")
	if res.Values, err = MergeWithDirichlet(x, m); err != nil {
		return nil, fmt.Errorf("run: %w", err)
	}
	rep.Printf("Done in %v, |T| = %.6e\n", time.Since(start), res.Values.Norm())
	return res, nil
}
