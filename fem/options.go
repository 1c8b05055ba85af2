package fem

import (
	"github.com/notargets/TetFEM/element"
	"github.com/notargets/TetFEM/partitions"
	"github.com/notargets/TetFEM/utils"
)

// Options controls how Run builds and solves a mesh
type Options struct {
	Model    element.Model
	Workers  int // number of element partitions built concurrently
	Strategy partitions.PartitionStrategy
	Reporter *utils.Reporter // nil is silent
}

// DefaultOptions selects the heat transfer model, one worker, block
// partitioning and no reporting
func DefaultOptions() Options {
	return Options{
		Model:    element.HeatTransfer{},
		Workers:  1,
		Strategy: partitions.BlockPartition,
	}
}

func (o Options) withDefaults() Options {
	if o.Model == nil {
		o.Model = element.HeatTransfer{}
	}
	if o.Workers < 1 {
		o.Workers = 1
	}
	return o
}
