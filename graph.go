package metis

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Graph represents an undirected weighted graph in Compressed Sparse Row
// (CSR) format. Vertices are numbered 0..n. For vertex u, its neighbors are
// Adjncy[Xadj[u]:Xadj[u+1]], with edge weights Adjwgt[Xadj[u]:Xadj[u+1]]
// when Adjwgt is non-empty.
//
// Once its weights are attached, a Graph is safe to share across
// concurrent calls to Partition, FMRefine, and the other exported
// functions, none of which mutate it. WithAdjwgt and WithVwgt are the
// exceptions: they set the weight fields of g in place.
type Graph struct {
	Xadj   []int32 // row pointers, length NumVertices()+1
	Adjncy []int32 // concatenated adjacency lists, length Xadj[n]
	Adjwgt []int64 // edge weights aligned with Adjncy; nil means unit weight
	Vwgt   []int64 // vertex weights; nil means unit weight
}

// NewGraph creates a Graph from CSR row pointers and adjacency lists. It
// fails if xadj does not have exactly n+1 entries.
func NewGraph(n int, xadj, adjncy []int32) (*Graph, error) {
	if len(xadj) != n+1 {
		return nil, fmt.Errorf("metis: xadj must have length %d, got %d", n+1, len(xadj))
	}
	return &Graph{Xadj: xadj, Adjncy: adjncy}, nil
}

// WithAdjwgt attaches edge weights to g. adjwgt must have the same length
// as g.Adjncy.
func (g *Graph) WithAdjwgt(adjwgt []int64) (*Graph, error) {
	if len(adjwgt) != len(g.Adjncy) {
		return nil, fmt.Errorf("metis: adjwgt must have length %d, got %d", len(g.Adjncy), len(adjwgt))
	}
	g.Adjwgt = adjwgt
	return g, nil
}

// WithVwgt attaches vertex weights to g. vwgt must have length g.NumVertices().
func (g *Graph) WithVwgt(vwgt []int64) (*Graph, error) {
	if len(vwgt) != g.NumVertices() {
		return nil, fmt.Errorf("metis: vwgt must have length %d, got %d", g.NumVertices(), len(vwgt))
	}
	g.Vwgt = vwgt
	return g, nil
}

// NumVertices returns the number of vertices in the graph.
func (g *Graph) NumVertices() int {
	return len(g.Xadj) - 1
}

// NumEdges returns the number of edges in the graph, counting each
// undirected edge once.
func (g *Graph) NumEdges() int {
	return len(g.Adjncy) / 2
}

// Degree returns the number of neighbors of vertex u.
func (g *Graph) Degree(u int) int {
	return int(g.Xadj[u+1] - g.Xadj[u])
}

// Neighbors returns the neighbor list of vertex u.
func (g *Graph) Neighbors(u int) []int32 {
	return g.Adjncy[g.Xadj[u]:g.Xadj[u+1]]
}

// EdgeWeight returns the weight of the k-th edge in u's neighbor list (k is
// a position within the list, not a neighbor ID). Unit weight if Adjwgt is
// empty.
func (g *Graph) EdgeWeight(u, k int) int64 {
	if len(g.Adjwgt) == 0 {
		return 1
	}
	return g.Adjwgt[int(g.Xadj[u])+k]
}

// VertexWeight returns the weight of vertex u. Unit weight if Vwgt is empty.
func (g *Graph) VertexWeight(u int) int64 {
	if len(g.Vwgt) == 0 {
		return 1
	}
	return g.Vwgt[u]
}

// WeightedDegree returns the sum of edge weights incident to u.
func (g *Graph) WeightedDegree(u int) int64 {
	start, end := g.Xadj[u], g.Xadj[u+1]
	if len(g.Adjwgt) == 0 {
		return int64(end - start)
	}
	var sum int64
	for _, w := range g.Adjwgt[start:end] {
		sum += w
	}
	return sum
}

// EdgeCut returns the total weight of edges whose endpoints lie in
// different parts, under the convention that every edge appears twice in
// the CSR (once from each endpoint): the raw sum is divided by two.
func (g *Graph) EdgeCut(part []int) int64 {
	var cut int64
	n := g.NumVertices()
	for u := 0; u < n; u++ {
		neighbors := g.Neighbors(u)
		for k, v := range neighbors {
			if part[u] != part[int(v)] {
				cut += g.EdgeWeight(u, k)
			}
		}
	}
	return cut / 2
}

// PartitionBalance reports the minimum, maximum, and average total vertex
// weight across nparts parts for the given partition vector. It is a
// read-only diagnostic over a finished partition and does not influence
// Partition or FMRefine.
func (g *Graph) PartitionBalance(part []int, nparts int) (min, max, avg float64) {
	weights := make([]float64, nparts)
	for u, p := range part {
		weights[p] += float64(g.VertexWeight(u))
	}
	total := floats.Sum(weights)
	return floats.Min(weights), floats.Max(weights), total / float64(nparts)
}
