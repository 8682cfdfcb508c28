package metis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func triangleGraph() *Graph {
	xadj := []int32{0, 2, 4, 6}
	adjncy := []int32{1, 2, 0, 2, 0, 1}
	g, _ := NewGraph(3, xadj, adjncy)
	return g
}

func TestNewGraph(t *testing.T) {
	g, err := NewGraph(3, []int32{0, 2, 4, 6}, []int32{1, 2, 0, 2, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, 3, g.NumVertices())
	assert.Equal(t, 3, g.NumEdges())

	_, err = NewGraph(3, []int32{0, 2, 4}, nil)
	assert.Error(t, err)
}

func TestWithVwgtAndAdjwgt(t *testing.T) {
	g := triangleGraph()

	g, err := g.WithVwgt([]int64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, int64(2), g.VertexWeight(1))

	_, err = g.WithVwgt([]int64{1, 2})
	assert.Error(t, err)

	g, err = g.WithAdjwgt([]int64{1, 2, 1, 3, 3, 2})
	require.NoError(t, err)
	assert.Equal(t, int64(1), g.EdgeWeight(0, 0))

	_, err = g.WithAdjwgt([]int64{1, 2})
	assert.Error(t, err)
}

func TestDegreeAndNeighbors(t *testing.T) {
	g := triangleGraph()
	assert.Equal(t, 2, g.Degree(0))
	assert.Equal(t, []int32{1, 2}, g.Neighbors(0))
}

func TestUnitWeightsWhenUnset(t *testing.T) {
	g := triangleGraph()
	for u := 0; u < g.NumVertices(); u++ {
		assert.Equal(t, int64(1), g.VertexWeight(u))
	}
	assert.Equal(t, int64(1), g.EdgeWeight(0, 0))
	assert.Equal(t, int64(2), g.WeightedDegree(0))
}

func TestEdgeCut(t *testing.T) {
	g := triangleGraph()

	allSame := []int{0, 0, 0}
	assert.Equal(t, int64(0), g.EdgeCut(allSame))

	split := []int{0, 0, 1}
	assert.Equal(t, int64(2), g.EdgeCut(split))
}

func TestPartitionBalance(t *testing.T) {
	g := triangleGraph()
	g, err := g.WithVwgt([]int64{1, 1, 2})
	require.NoError(t, err)

	min, max, avg := g.PartitionBalance([]int{0, 0, 1}, 2)
	assert.Equal(t, 2.0, min)
	assert.Equal(t, 2.0, max)
	assert.Equal(t, 2.0, avg)
}
