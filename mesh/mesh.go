package mesh

import (
	"errors"
	"fmt"

	"github.com/notargets/TetFEM/element"
)

var (
	ErrNodeNotFound       = errors.New("mesh: node not found")
	ErrDuplicateNode      = errors.New("mesh: duplicate node id")
	ErrNodeGap            = errors.New("mesh: node ids are not contiguous from 1")
	ErrDuplicateCondition = errors.New("mesh: node already has a condition of this kind")
)

// Problem holds the scalar constants of the field problem
type Problem struct {
	Conductivity float64 // diffusion / conductivity coefficient k
	Source       float64 // source term Q
}

// Condition prescribes a value at a node. For Dirichlet conditions it is the
// field value, for Neumann conditions a flux contribution.
type Condition struct {
	Node  *element.Node
	Value float64
}

// Mesh owns the nodes, elements and boundary conditions of a problem. Node
// IDs must be exactly 1..NumNodes, node ID i is stored at index i-1.
type Mesh struct {
	Problem Problem

	nodes     []*element.Node
	elements  []*element.Tet
	dirichlet []Condition
	neumann   []Condition

	// node ID -> position in dirichlet / neumann
	dirichletByNode map[int]int
	neumannByNode   map[int]int
}

// New returns an empty mesh. The hints only size the initial storage.
func New(problem Problem, numNodes, numElements int) *Mesh {
	return &Mesh{
		Problem:         problem,
		nodes:           make([]*element.Node, 0, numNodes),
		elements:        make([]*element.Tet, 0, numElements),
		dirichletByNode: make(map[int]int),
		neumannByNode:   make(map[int]int),
	}
}

// AddNode stores a node at slot id-1. Nodes may arrive in any order; gaps
// are reported by Validate.
func (m *Mesh) AddNode(id int, x, y, z float64) (*element.Node, error) {
	if id < 1 {
		return nil, fmt.Errorf("node id %d: %w", id, ErrNodeGap)
	}
	for len(m.nodes) < id {
		m.nodes = append(m.nodes, nil)
	}
	if m.nodes[id-1] != nil {
		return nil, fmt.Errorf("node id %d: %w", id, ErrDuplicateNode)
	}
	n := &element.Node{ID: id, X: x, Y: y, Z: z}
	m.nodes[id-1] = n
	return n, nil
}

// AddElement appends a tetrahedron built from four existing node IDs
func (m *Mesh) AddElement(id int, nodeIDs [4]int) (*element.Tet, error) {
	var nodes [4]*element.Node
	for i, nid := range nodeIDs {
		n, ok := m.Node(nid)
		if !ok {
			return nil, fmt.Errorf("element %d, node %d: %w", id, nid, ErrNodeNotFound)
		}
		nodes[i] = n
	}
	t := &element.Tet{ID: id, Nodes: nodes}
	m.elements = append(m.elements, t)
	return t, nil
}

func (m *Mesh) AddDirichlet(nodeID int, value float64) error {
	return m.addCondition(&m.dirichlet, m.dirichletByNode, "dirichlet", nodeID, value)
}

func (m *Mesh) AddNeumann(nodeID int, value float64) error {
	return m.addCondition(&m.neumann, m.neumannByNode, "neumann", nodeID, value)
}

func (m *Mesh) addCondition(list *[]Condition, byNode map[int]int, kind string, nodeID int, value float64) error {
	n, ok := m.Node(nodeID)
	if !ok {
		return fmt.Errorf("%s condition, node %d: %w", kind, nodeID, ErrNodeNotFound)
	}
	if _, dup := byNode[nodeID]; dup {
		return fmt.Errorf("%s condition, node %d: %w", kind, nodeID, ErrDuplicateCondition)
	}
	byNode[nodeID] = len(*list)
	*list = append(*list, Condition{Node: n, Value: value})
	return nil
}

// Validate checks that node IDs are 1..NumNodes without gaps
func (m *Mesh) Validate() error {
	for i, n := range m.nodes {
		if n == nil {
			return fmt.Errorf("missing node id %d: %w", i+1, ErrNodeGap)
		}
	}
	return nil
}

func (m *Mesh) NumNodes() int     { return len(m.nodes) }
func (m *Mesh) NumElements() int  { return len(m.elements) }
func (m *Mesh) NumDirichlet() int { return len(m.dirichlet) }
func (m *Mesh) NumNeumann() int   { return len(m.neumann) }

// Node returns the node with the given ID
func (m *Mesh) Node(id int) (*element.Node, bool) {
	if id < 1 || id > len(m.nodes) || m.nodes[id-1] == nil {
		return nil, false
	}
	return m.nodes[id-1], true
}

// NodeAt returns the node at 0-based index i, which has ID i+1
func (m *Mesh) NodeAt(i int) *element.Node { return m.nodes[i] }

func (m *Mesh) Element(i int) *element.Tet { return m.elements[i] }

func (m *Mesh) Elements() []*element.Tet { return m.elements }

// Dirichlet returns the Dirichlet conditions in insertion order
func (m *Mesh) Dirichlet() []Condition { return m.dirichlet }

// Neumann returns the Neumann conditions in insertion order
func (m *Mesh) Neumann() []Condition { return m.neumann }

// DirichletValue returns the prescribed value at a node, if there is one
func (m *Mesh) DirichletValue(nodeID int) (float64, bool) {
	i, ok := m.dirichletByNode[nodeID]
	if !ok {
		return 0, false
	}
	return m.dirichlet[i].Value, true
}

func (m *Mesh) HasDirichlet(nodeID int) bool {
	_, ok := m.dirichletByNode[nodeID]
	return ok
}
