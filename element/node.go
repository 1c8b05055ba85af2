package element

import "gonum.org/v1/gonum/spatial/r3"

// Node is a mesh point. IDs are 1-based and stable for the life of the mesh.
type Node struct {
	ID      int
	X, Y, Z float64
}

func (n *Node) Point() r3.Vec {
	return r3.Vec{X: n.X, Y: n.Y, Z: n.Z}
}

// Index is the global equation index of the node, ID - 1
func (n *Node) Index() int { return n.ID - 1 }
