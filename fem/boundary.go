package fem

import (
	"sort"

	"github.com/notargets/TetFEM/dense"
	"github.com/notargets/TetFEM/mesh"
)

// ApplyNeumann adds each condition's value to b at its node
func ApplyNeumann(b *dense.Vector, conds []mesh.Condition) {
	for _, c := range conds {
		b.Add(c.Node.Index(), c.Value)
	}
}

// ApplyDirichlet condenses the prescribed nodes out of K and b in place.
//
// Conditions are processed by increasing node index whatever order they are
// given in, so a condition's current position is its original index minus
// the number of smaller indices already removed. Before row and column are
// removed, value·K[r, pos] is moved to the right hand side of every row r.
// Repeated nodes are condensed once, using the first value given.
//
// The returned slice holds the removed original indices in increasing order.
func ApplyDirichlet(K *dense.Matrix, b *dense.Vector, conds []mesh.Condition) []int {
	sorted := make([]mesh.Condition, len(conds))
	copy(sorted, conds)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Node.Index() < sorted[j].Node.Index()
	})

	removed := make([]int, 0, len(sorted))
	for _, c := range sorted {
		idx := c.Node.Index()
		if len(removed) > 0 && removed[len(removed)-1] == idx {
			continue
		}
		pos := idx - len(removed)
		for r := 0; r < K.Rows(); r++ {
			b.Add(r, -c.Value*K.At(r, pos))
		}
		K.RemoveRow(pos)
		K.RemoveColumn(pos)
		b.Remove(pos)
		removed = append(removed, idx)
	}
	return removed
}
