package fem

import (
	"fmt"
	"sync"

	"github.com/notargets/TetFEM/element"
	"github.com/notargets/TetFEM/mesh"
	"github.com/notargets/TetFEM/partitions"
)

// BuildLocalSystems computes the local system of every element. Elements are
// split into opts.Workers partitions and each partition is built by its own
// goroutine. locals[k] belongs to m.Element(k), whatever the partitioning.
func BuildLocalSystems(m *mesh.Mesh, opts Options) ([]*element.LocalSystem, error) {
	opts = opts.withDefaults()
	pb := &partitions.PartitionBuilder{
		NumElements:   m.NumElements(),
		NumPartitions: opts.Workers,
		Strategy:      opts.Strategy,
	}
	layout, err := pb.BuildPartitions()
	if err != nil {
		return nil, err
	}
	if layout.NumPartitions > 1 {
		stats := layout.PartitionStatistics()
		opts.Reporter.Printf("  %d partitions, %d to %d elements each, imbalance %.3f\n",
			stats.NumPartitions, stats.MinElements, stats.MaxElements, stats.Imbalance)
	}

	var (
		locals = make([]*element.LocalSystem, m.NumElements())
		errs   = make([]error, layout.NumPartitions)
		wg     = sync.WaitGroup{}
	)
	for np := 0; np < layout.NumPartitions; np++ {
		wg.Add(1)
		go func(np int) {
			defer wg.Done()
			for _, k := range layout.Partitions[np].Elements {
				ls, err := element.BuildLocalSystem(m.Element(k), opts.Model,
					m.Problem.Conductivity, m.Problem.Source)
				if err != nil {
					errs[np] = fmt.Errorf("element index %d, partition %d: %w",
						k, layout.GetPartition(k), err)
					return
				}
				locals[k] = ls
			}
		}(np)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return locals, nil
}
