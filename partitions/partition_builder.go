package partitions

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownStrategy = errors.New("partitions: unknown strategy")

// PartitionStrategy defines how elements are grouped
type PartitionStrategy int

const (
	BlockPartition PartitionStrategy = iota // Consecutive elements
	RoundRobin                              // Distribute cyclically
)

func (s PartitionStrategy) String() string {
	switch s {
	case BlockPartition:
		return "block"
	case RoundRobin:
		return "round-robin"
	default:
		return fmt.Sprintf("PartitionStrategy(%d)", int(s))
	}
}

// ParseStrategy maps a configuration name to a strategy. The empty string
// selects BlockPartition.
func ParseStrategy(name string) (PartitionStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "block":
		return BlockPartition, nil
	case "round-robin", "roundrobin", "cyclic":
		return RoundRobin, nil
	}
	return BlockPartition, fmt.Errorf("%q: %w", name, ErrUnknownStrategy)
}

// PartitionBuilder splits NumElements elements into NumPartitions batches
type PartitionBuilder struct {
	NumElements   int
	NumPartitions int
	Strategy      PartitionStrategy
}

// BuildPartitions creates a validated partition layout. The partition count
// is clamped to [1, NumElements] so no partition is empty, except for a mesh
// with no elements which yields one empty partition.
func (pb *PartitionBuilder) BuildPartitions() (*PartitionLayout, error) {
	if pb.NumElements < 0 {
		return nil, fmt.Errorf("negative element count %d", pb.NumElements)
	}
	numPartitions := pb.calculateNumPartitions()

	eToP, err := pb.partitionElements(numPartitions)
	if err != nil {
		return nil, err
	}
	partitions := pb.createPartitions(eToP, numPartitions)

	layout := &PartitionLayout{
		Partitions:    partitions,
		KpartMax:      calculateKpartMax(partitions),
		TotalElements: pb.NumElements,
		NumPartitions: numPartitions,
		EToP:          eToP,
	}
	if err := layout.ValidateLayout(); err != nil {
		return nil, fmt.Errorf("invalid partition layout: %w", err)
	}
	return layout, nil
}

func (pb *PartitionBuilder) calculateNumPartitions() int {
	n := pb.NumPartitions
	if n > pb.NumElements {
		n = pb.NumElements
	}
	if n < 1 {
		n = 1
	}
	return n
}

func (pb *PartitionBuilder) partitionElements(numPartitions int) ([]int, error) {
	eToP := make([]int, pb.NumElements)

	switch pb.Strategy {
	case BlockPartition:
		// consecutive runs whose sizes differ by at most one
		for i := 0; i < pb.NumElements; i++ {
			eToP[i] = i * numPartitions / pb.NumElements
		}
	case RoundRobin:
		for i := 0; i < pb.NumElements; i++ {
			eToP[i] = i % numPartitions
		}
	default:
		return nil, fmt.Errorf("%v: %w", pb.Strategy, ErrUnknownStrategy)
	}
	return eToP, nil
}

func (pb *PartitionBuilder) createPartitions(eToP []int, numPartitions int) []Partition {
	partitions := make([]Partition, numPartitions)
	for i := range partitions {
		partitions[i] = Partition{ID: i, Elements: make([]int, 0)}
	}
	for elem, part := range eToP {
		partitions[part].Elements = append(partitions[part].Elements, elem)
		partitions[part].NumElements++
	}
	return partitions
}

func calculateKpartMax(partitions []Partition) int {
	kpartMax := 0
	for _, p := range partitions {
		if p.NumElements > kpartMax {
			kpartMax = p.NumElements
		}
	}
	return kpartMax
}
