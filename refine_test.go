package metis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFMRefineReducesOrMaintainsCut(t *testing.T) {
	xadj, adjncy := createRandomGraph(80)
	g, _ := NewGraph(80, xadj, adjncy)

	part := InitialPartition(g, 4)
	before := g.EdgeCut(part)

	FMRefine(g, part, 4, 10)
	after := g.EdgeCut(part)

	assert.LessOrEqual(t, after, before)
}

func TestFMRefineRespectsBalanceCap(t *testing.T) {
	xadj, adjncy := createRandomGraph(80)
	g, _ := NewGraph(80, xadj, adjncy)
	nparts := 4

	part := InitialPartition(g, nparts)
	FMRefine(g, part, nparts, 10)

	var total int64
	for u := 0; u < g.NumVertices(); u++ {
		total += g.VertexWeight(u)
	}
	maxWeight := int64((float64(total) * imbalanceFactor / float64(nparts)) + 1)

	weights := make([]int64, nparts)
	for u, p := range part {
		weights[p] += g.VertexWeight(u)
	}
	for _, w := range weights {
		assert.LessOrEqual(t, w, maxWeight)
	}
}

func TestFMRefineNoOpOnDegenerateInput(t *testing.T) {
	empty, _ := NewGraph(0, []int32{0}, nil)
	part := []int{}
	FMRefine(empty, part, 2, 5)
	assert.Empty(t, part)

	g := triangleGraph()
	part = []int{0, 0, 0}
	FMRefine(g, part, 1, 5)
	assert.Equal(t, []int{0, 0, 0}, part)
}

func TestFmPassStopsWhenNoImprovingMove(t *testing.T) {
	// A perfectly balanced, already-optimal bisection of two triangles
	// joined by a single bridge edge should not move any vertex.
	xadj := []int32{0, 2, 4, 7, 10, 12, 14}
	adjncy := []int32{
		1, 2, // 0
		0, 2, // 1
		0, 1, 3, // 2
		2, 4, 5, // 3
		3, 5, // 4
		3, 4, // 5
	}
	g, _ := NewGraph(6, xadj, adjncy)
	part := []int{0, 0, 0, 1, 1, 1}
	before := append([]int{}, part...)

	moved := fmPass(g, part, 2)
	assert.False(t, moved)
	assert.Equal(t, before, part)
}
