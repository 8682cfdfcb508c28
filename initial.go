package metis

import "sort"

// InitialPartition partitions a (typically coarsest-level) graph into
// nparts parts. It bisects by greedy graph growing, then recursively
// subdivides each side for nparts > 2. Degenerate cases: nparts <= 1
// returns all zeros; an empty graph returns an empty vector.
func InitialPartition(g *Graph, nparts int) []int {
	n := g.NumVertices()
	if nparts <= 1 || n == 0 {
		return make([]int, n)
	}

	bisect := initialBisection(g)
	if nparts == 2 {
		return bisect
	}

	leftParts := nparts / 2
	rightParts := nparts - leftParts

	var leftVerts, rightVerts []int
	for u, p := range bisect {
		if p == 0 {
			leftVerts = append(leftVerts, u)
		} else {
			rightVerts = append(rightVerts, u)
		}
	}

	leftSub := buildSubgraph(g, leftVerts)
	rightSub := buildSubgraph(g, rightVerts)

	leftPart := InitialPartition(leftSub, leftParts)
	rightPart := InitialPartition(rightSub, rightParts)

	part := make([]int, n)
	for local, global := range leftVerts {
		part[global] = leftPart[local]
	}
	for local, global := range rightVerts {
		part[global] = leftParts + rightPart[local]
	}

	return part
}

// initialBisection bisects g by greedy graph growing from each of a small
// deterministic set of candidate seeds, keeping the bisection with the
// smallest edge cut (first produced wins on ties).
func initialBisection(g *Graph) []int {
	n := g.NumVertices()
	if n == 0 {
		return nil
	}
	if n == 1 {
		return []int{0}
	}

	candidates := []int{0, n / 2, n - 1}
	byDegree := make([]int, n)
	for u := range byDegree {
		byDegree[u] = u
	}
	sort.SliceStable(byDegree, func(i, j int) bool {
		return g.WeightedDegree(byDegree[i]) > g.WeightedDegree(byDegree[j])
	})
	candidates = append(candidates, byDegree[:min(4, n)]...)

	sort.Ints(candidates)
	candidates = dedupSorted(candidates)

	bestPart := make([]int, n)
	bestCut := int64(-1)

	for _, seed := range candidates {
		part := growBisection(g, seed)
		cut := g.EdgeCut(part)
		if bestCut < 0 || cut < bestCut {
			bestCut = cut
			bestPart = part
		}
	}

	return bestPart
}

// growBisection grows part 0 outward from seed, at each step moving the
// not-yet-assigned vertex with the greatest sum of edge weight to vertices
// already in part 0 (first-seen wins on ties), stopping once part 0's
// total vertex weight reaches at least half the graph's total weight. If
// no positive-gain vertex remains but the target is still unmet, the
// loop keeps pulling in the best available (possibly zero- or
// negative-gain) vertex until the target is met or no candidate remains.
func growBisection(g *Graph, seed int) []int {
	n := g.NumVertices()
	part := make([]int, n)
	inPart0 := make([]bool, n)
	for u := range part {
		part[u] = 1
	}

	var totalWeight int64
	for u := 0; u < n; u++ {
		totalWeight += g.VertexWeight(u)
	}
	target := totalWeight / 2

	inPart0[seed] = true
	part[seed] = 0
	weight0 := g.VertexWeight(seed)

	for weight0 < target {
		bestU := -1
		bestGain := int64(-1)

		for u := 0; u < n; u++ {
			if inPart0[u] {
				continue
			}
			var gain int64
			for k := 0; k < g.Degree(u); k++ {
				v := int(g.Neighbors(u)[k])
				if inPart0[v] {
					gain += g.EdgeWeight(u, k)
				}
			}
			if bestU < 0 || gain > bestGain {
				bestGain = gain
				bestU = u
			}
		}

		if bestU < 0 {
			break
		}
		inPart0[bestU] = true
		part[bestU] = 0
		weight0 += g.VertexWeight(bestU)
	}

	return part
}

// buildSubgraph builds the induced subgraph over verts (a subset of g's
// vertices in ascending order), preserving vertex weights and the weights
// of edges with both endpoints in verts.
func buildSubgraph(g *Graph, verts []int) *Graph {
	nSub := len(verts)
	if nSub == 0 {
		return &Graph{Xadj: []int32{0}}
	}

	globalToLocal := make(map[int]int, nSub)
	for local, global := range verts {
		globalToLocal[global] = local
	}

	xadj := make([]int32, nSub+1)
	var adjncy []int32
	var adjwgt []int64
	vwgt := make([]int64, nSub)

	for local, global := range verts {
		vwgt[local] = g.VertexWeight(global)
		for k := 0; k < g.Degree(global); k++ {
			nv := int(g.Neighbors(global)[k])
			if lv, ok := globalToLocal[nv]; ok {
				adjncy = append(adjncy, int32(lv))
				adjwgt = append(adjwgt, g.EdgeWeight(global, k))
			}
		}
		xadj[local+1] = int32(len(adjncy))
	}

	return &Graph{Xadj: xadj, Adjncy: adjncy, Adjwgt: adjwgt, Vwgt: vwgt}
}

func dedupSorted(xs []int) []int {
	out := xs[:0]
	for i, x := range xs {
		if i == 0 || x != out[len(out)-1] {
			out = append(out, x)
		}
	}
	return out
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
