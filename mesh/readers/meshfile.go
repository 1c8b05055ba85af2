package readers

import (
	"fmt"

	gmesh "github.com/notargets/gocfd/DG3D/mesh"
	greaders "github.com/notargets/gocfd/DG3D/mesh/readers"

	"github.com/notargets/TetFEM/mesh"
)

// NodeSet prescribes one value on a list of node IDs
type NodeSet struct {
	Value float64
	Nodes []int
}

// ReadMeshFile imports a tetrahedral mesh in any format gocfd reads (gmsh,
// gambit neutral, su2) and attaches the problem constants and conditions
func ReadMeshFile(path string, problem mesh.Problem, dirichlet, neumann NodeSet) (*mesh.Mesh, error) {
	msh, err := greaders.ReadMeshFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	m, err := FromGocfd(msh, problem, dirichlet, neumann)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// FromGocfd converts a gocfd mesh. Lower dimensional elements (boundary
// faces, edges) are skipped, any other 3D element type is an error. Second
// order tets keep their four corners and only vertices that are a tet corner
// become nodes, numbered 1.. in vertex order. Condition node IDs use the gocfd
// numbering, vertex i is i+1; naming a vertex that is not a corner is
// mesh.ErrNodeNotFound.
func FromGocfd(msh *gmesh.Mesh, problem mesh.Problem, dirichlet, neumann NodeSet) (*mesh.Mesh, error) {
	var corners [][4]int
	for i := 0; i < msh.NumElements; i++ {
		elemType := msh.ElementTypes[i]
		if elemType.GetDimension() != 3 {
			continue
		}
		if elemType != gmesh.Tet && elemType != gmesh.Tet10 {
			return nil, fmt.Errorf("element %d is not tetrahedral (type=%v): %w", i, elemType, ErrMalformedInput)
		}
		verts := msh.EtoV[i]
		if len(verts) < 4 {
			return nil, fmt.Errorf("tetrahedral element %d has %d nodes: %w", i, len(verts), ErrMalformedInput)
		}
		for _, v := range verts[:4] {
			if v < 0 || v >= len(msh.Vertices) {
				return nil, fmt.Errorf("element %d: vertex %d of %d: %w", i, v, len(msh.Vertices), ErrMalformedInput)
			}
		}
		corners = append(corners, [4]int{verts[0], verts[1], verts[2], verts[3]})
	}
	if len(corners) == 0 {
		return nil, fmt.Errorf("mesh has no tets: %w", ErrMalformedInput)
	}

	// vertex -> node ID, 0 for vertices no tet uses as a corner
	vToN := make([]int, len(msh.Vertices))
	for _, c := range corners {
		for _, v := range c {
			vToN[v] = 1
		}
	}
	var numNodes int
	for v, used := range vToN {
		if used != 0 {
			numNodes++
			vToN[v] = numNodes
		}
	}

	m := mesh.New(problem, numNodes, len(corners))
	for v, id := range vToN {
		if id == 0 {
			continue
		}
		xyz := msh.Vertices[v]
		if len(xyz) < 3 {
			return nil, fmt.Errorf("vertex %d has %d coordinates: %w", v, len(xyz), ErrMalformedInput)
		}
		if _, err := m.AddNode(id, xyz[0], xyz[1], xyz[2]); err != nil {
			return nil, err
		}
	}
	for k, c := range corners {
		ids := [4]int{vToN[c[0]], vToN[c[1]], vToN[c[2]], vToN[c[3]]}
		if _, err := m.AddElement(k+1, ids); err != nil {
			return nil, err
		}
	}

	nodeID := func(vertexID int) (int, error) {
		if vertexID < 1 || vertexID > len(vToN) || vToN[vertexID-1] == 0 {
			return 0, fmt.Errorf("vertex %d is not a tet corner: %w", vertexID, mesh.ErrNodeNotFound)
		}
		return vToN[vertexID-1], nil
	}
	for _, vid := range dirichlet.Nodes {
		id, err := nodeID(vid)
		if err != nil {
			return nil, err
		}
		if err = m.AddDirichlet(id, dirichlet.Value); err != nil {
			return nil, err
		}
	}
	for _, vid := range neumann.Nodes {
		id, err := nodeID(vid)
		if err != nil {
			return nil, err
		}
		if err = m.AddNeumann(id, neumann.Value); err != nil {
			return nil, err
		}
	}
	return m, nil
}
