package partitions

import (
	"fmt"
	"math"
)

// Partition is a batch of elements whose local systems are built together by
// one worker
type Partition struct {
	ID int

	Elements    []int // 0-based element indices in this partition
	NumElements int
}

// PartitionLayout is the complete decomposition of a mesh's elements
type PartitionLayout struct {
	Partitions []Partition

	KpartMax      int // max(NumElements) across all partitions
	TotalElements int
	NumPartitions int

	// Element to partition mapping: element k belongs to partition EToP[k]
	EToP []int
}

// GetPartition returns the partition containing element k
func (pl *PartitionLayout) GetPartition(elementID int) int {
	if elementID < 0 || elementID >= len(pl.EToP) {
		return -1
	}
	return pl.EToP[elementID]
}

// ValidateLayout checks partition consistency: every element appears exactly
// once, in the partition EToP names, and KpartMax is the largest partition.
func (pl *PartitionLayout) ValidateLayout() error {
	if len(pl.Partitions) != pl.NumPartitions {
		return fmt.Errorf("have %d partitions, NumPartitions is %d",
			len(pl.Partitions), pl.NumPartitions)
	}
	if len(pl.EToP) != pl.TotalElements {
		return fmt.Errorf("EToP has %d entries, TotalElements is %d",
			len(pl.EToP), pl.TotalElements)
	}

	seen := make([]bool, pl.TotalElements)
	actualMax, total := 0, 0
	for _, p := range pl.Partitions {
		if p.NumElements != len(p.Elements) {
			return fmt.Errorf("partition %d: NumElements %d != len(Elements) %d",
				p.ID, p.NumElements, len(p.Elements))
		}
		if p.NumElements > actualMax {
			actualMax = p.NumElements
		}
		total += p.NumElements
		for _, k := range p.Elements {
			if k < 0 || k >= pl.TotalElements {
				return fmt.Errorf("partition %d: element %d out of range", p.ID, k)
			}
			if seen[k] {
				return fmt.Errorf("partition %d: element %d assigned twice", p.ID, k)
			}
			seen[k] = true
			if pl.EToP[k] != p.ID {
				return fmt.Errorf("element %d: EToP says partition %d, found in %d",
					k, pl.EToP[k], p.ID)
			}
		}
	}
	if total != pl.TotalElements {
		return fmt.Errorf("partitions hold %d elements, TotalElements is %d",
			total, pl.TotalElements)
	}
	if actualMax != pl.KpartMax {
		return fmt.Errorf("computed KpartMax %d != stored KpartMax %d",
			actualMax, pl.KpartMax)
	}
	return nil
}

type PartitionStats struct {
	NumPartitions int
	MinElements   int
	MaxElements   int
	AvgElements   float64
	Imbalance     float64 // MaxElements / AvgElements
}

// PartitionStatistics computes load balance metrics
func (pl *PartitionLayout) PartitionStatistics() PartitionStats {
	stats := PartitionStats{
		NumPartitions: pl.NumPartitions,
		MinElements:   math.MaxInt32,
	}
	if pl.NumPartitions == 0 {
		stats.MinElements = 0
		return stats
	}
	stats.AvgElements = float64(pl.TotalElements) / float64(pl.NumPartitions)

	for _, p := range pl.Partitions {
		if p.NumElements < stats.MinElements {
			stats.MinElements = p.NumElements
		}
		if p.NumElements > stats.MaxElements {
			stats.MaxElements = p.NumElements
		}
	}
	if stats.AvgElements > 0 {
		stats.Imbalance = float64(stats.MaxElements) / stats.AvgElements
	}
	return stats
}
