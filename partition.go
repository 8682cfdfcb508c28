package metis

// coarsenThresholdFloor is the minimum coarsening stop threshold
// regardless of nparts.
const coarsenThresholdFloor = 20

// refinePasses is the default number of FM refinement passes run at each
// level of the uncoarsening phase.
const refinePasses = 10

// Partition assigns each vertex of g to one of nparts parts, approximately
// minimizing the total weight of edges crossing between parts subject to a
// soft per-part weight balance. It returns the resulting edge cut and the
// partition vector (part[u] is u's part ID).
//
// Partition runs the full multilevel pipeline: heavy-edge-matching
// coarsening down to a threshold of max(20, 2*nparts) vertices, greedy
// graph growing plus recursive bisection on the coarsest graph, then
// FM boundary refinement at every level while uncoarsening back to g.
func Partition(g *Graph, nparts int) (int64, []int) {
	n := g.NumVertices()
	if n == 0 {
		return 0, []int{}
	}
	if nparts <= 1 {
		return 0, make([]int, n)
	}
	if n <= nparts {
		part := make([]int, n)
		for u := range part {
			part[u] = u
		}
		return g.EdgeCut(part), part
	}

	threshold := coarsenThresholdFloor
	if 2*nparts > threshold {
		threshold = 2 * nparts
	}
	levels := multilevelCoarsen(g, threshold)

	coarsest := g
	if len(levels) > 0 {
		coarsest = levels[len(levels)-1].graph
	}

	currentPart := InitialPartition(coarsest, nparts)
	FMRefine(coarsest, currentPart, nparts, refinePasses)

	for i := len(levels) - 1; i >= 0; i-- {
		var fineGraph *Graph
		if i == 0 {
			fineGraph = g
		} else {
			fineGraph = levels[i-1].graph
		}

		finePart := make([]int, fineGraph.NumVertices())
		for u, c := range levels[i].cmap {
			finePart[u] = currentPart[c]
		}

		FMRefine(fineGraph, finePart, nparts, refinePasses)
		currentPart = finePart
	}

	return g.EdgeCut(currentPart), currentPart
}
