package partitions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockPartition(t *testing.T) {
	pb := &PartitionBuilder{NumElements: 10, NumPartitions: 4, Strategy: BlockPartition}
	layout, err := pb.BuildPartitions()
	require.NoError(t, err)

	assert.Equal(t, 4, layout.NumPartitions)
	assert.Equal(t, []int{0, 0, 0, 1, 1, 2, 2, 2, 3, 3}, layout.EToP)
	assert.Equal(t, []int{3, 4}, layout.Partitions[1].Elements)
	assert.Equal(t, 3, layout.KpartMax)
	assert.Equal(t, 2, layout.GetPartition(5))
	assert.Equal(t, -1, layout.GetPartition(10))

	stats := layout.PartitionStatistics()
	assert.Equal(t, 2, stats.MinElements)
	assert.Equal(t, 3, stats.MaxElements)
	assert.InDelta(t, 2.5, stats.AvgElements, 1e-15)
	assert.InDelta(t, 1.2, stats.Imbalance, 1e-15)
}

func TestRoundRobinPartition(t *testing.T) {
	pb := &PartitionBuilder{NumElements: 7, NumPartitions: 3, Strategy: RoundRobin}
	layout, err := pb.BuildPartitions()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3, 6}, layout.Partitions[0].Elements)
	assert.Equal(t, []int{2, 5}, layout.Partitions[2].Elements)
	assert.Equal(t, 3, layout.KpartMax)
}

func TestPartitionCountIsClamped(t *testing.T) {
	for _, tc := range []struct {
		elements, requested, want int
	}{
		{5, 8, 5},
		{5, 0, 1},
		{5, -2, 1},
		{0, 4, 1},
	} {
		for _, s := range []PartitionStrategy{BlockPartition, RoundRobin} {
			pb := &PartitionBuilder{NumElements: tc.elements, NumPartitions: tc.requested, Strategy: s}
			layout, err := pb.BuildPartitions()
			require.NoError(t, err)
			assert.Equal(t, tc.want, layout.NumPartitions, "%v %+v", s, tc)
			if tc.elements > 0 {
				for _, p := range layout.Partitions {
					assert.NotZero(t, p.NumElements, "%v %+v", s, tc)
				}
			}
		}
	}
}

func TestValidateLayoutRejectsInconsistency(t *testing.T) {
	pb := &PartitionBuilder{NumElements: 4, NumPartitions: 2}
	layout, err := pb.BuildPartitions()
	require.NoError(t, err)
	require.NoError(t, layout.ValidateLayout())

	layout.EToP[0] = 1
	assert.Error(t, layout.ValidateLayout())
	layout.EToP[0] = 0

	layout.KpartMax = 7
	assert.Error(t, layout.ValidateLayout())
	layout.KpartMax = 2

	layout.Partitions[1].Elements[0] = 0
	assert.Error(t, layout.ValidateLayout())
}

func TestParseStrategy(t *testing.T) {
	s, err := ParseStrategy("")
	require.NoError(t, err)
	assert.Equal(t, BlockPartition, s)

	s, err = ParseStrategy("Round-Robin")
	require.NoError(t, err)
	assert.Equal(t, RoundRobin, s)
	assert.Equal(t, "round-robin", s.String())

	_, err = ParseStrategy("metis")
	assert.ErrorIs(t, err, ErrUnknownStrategy)

	_, err = (&PartitionBuilder{NumElements: 3, NumPartitions: 1, Strategy: PartitionStrategy(9)}).BuildPartitions()
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}
