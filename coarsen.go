package metis

import "sort"

// coarseLevel holds one level of the multilevel coarsening stack: the
// coarsened graph, the mapping from every vertex of the finer graph that
// produced it to a coarse vertex ID, and the coarse vertex count.
type coarseLevel struct {
	graph *Graph
	cmap  []int
	nc    int
}

// coarsenOnce contracts g by one level of heavy-edge matching. Vertices are
// visited in ascending index order; each unmatched vertex is paired with
// its heaviest unmatched neighbor (first-seen wins on ties), or left as a
// singleton coarse vertex if none is available.
func coarsenOnce(g *Graph) coarseLevel {
	n := g.NumVertices()
	matched := make([]bool, n)
	cmap := make([]int, n)
	nc := 0

	for u := 0; u < n; u++ {
		if matched[u] {
			continue
		}

		bestV := -1
		bestW := int64(-1)
		for k := 0; k < g.Degree(u); k++ {
			v := int(g.Neighbors(u)[k])
			if v == u || matched[v] {
				continue
			}
			if w := g.EdgeWeight(u, k); w > bestW {
				bestW = w
				bestV = v
			}
		}

		if bestV >= 0 {
			cmap[u] = nc
			cmap[bestV] = nc
			matched[u] = true
			matched[bestV] = true
		} else {
			cmap[u] = nc
			matched[u] = true
		}
		nc++
	}

	return coarseLevel{graph: buildCoarseGraph(g, cmap, nc), cmap: cmap, nc: nc}
}

// buildCoarseGraph builds the coarsened graph from the fine graph and its
// vertex mapping. Coarse vertex weight is the sum of constituent fine
// vertex weights; parallel fine edges between two coarse vertices combine
// by summation; each coarse vertex's neighbor list is emitted sorted by
// neighbor ID.
func buildCoarseGraph(g *Graph, cmap []int, nc int) *Graph {
	cvwgt := make([]int64, nc)
	for u := 0; u < g.NumVertices(); u++ {
		cvwgt[cmap[u]] += g.VertexWeight(u)
	}

	adj := make([]map[int]int64, nc)
	for i := range adj {
		adj[i] = make(map[int]int64)
	}

	for u := 0; u < g.NumVertices(); u++ {
		cu := cmap[u]
		for k := 0; k < g.Degree(u); k++ {
			v := int(g.Neighbors(u)[k])
			cv := cmap[v]
			if cu != cv {
				adj[cu][cv] += g.EdgeWeight(u, k)
			}
		}
	}

	xadj := make([]int32, nc+1)
	var adjncy []int32
	var adjwgt []int64

	for cu := 0; cu < nc; cu++ {
		neighbors := make([]int, 0, len(adj[cu]))
		for v := range adj[cu] {
			neighbors = append(neighbors, v)
		}
		sort.Ints(neighbors)
		for _, v := range neighbors {
			adjncy = append(adjncy, int32(v))
			adjwgt = append(adjwgt, adj[cu][v])
		}
		xadj[cu+1] = int32(len(adjncy))
	}

	return &Graph{Xadj: xadj, Adjncy: adjncy, Adjwgt: adjwgt, Vwgt: cvwgt}
}

// multilevelCoarsen repeatedly coarsens g, pushing each level onto a stack
// ordered finest-to-coarsest, until the coarse graph has at most threshold
// vertices or a level makes no progress (nc >= the vertex count it started
// from).
func multilevelCoarsen(g *Graph, threshold int) []coarseLevel {
	var levels []coarseLevel
	current := g

	for current.NumVertices() > threshold {
		level := coarsenOnce(current)
		if level.nc >= current.NumVertices() {
			break
		}
		current = level.graph
		levels = append(levels, level)
	}

	return levels
}
