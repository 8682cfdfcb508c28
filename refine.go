package metis

import "math"

// imbalanceFactor is the maximum allowed per-part weight above perfect
// balance (total_weight / nparts).
const imbalanceFactor = 1.05

// FMRefine improves part in place using up to maxPasses passes of
// Fiduccia-Mattheyses-style boundary refinement: each pass repeatedly finds
// the single best-gain move across all unlocked vertices and commits it if
// the gain is strictly positive, locking the moved vertex for the rest of
// the pass. A pass that makes no move ends the refinement early. Moves are
// rejected if they would push the destination part's total vertex weight
// above ceil(total*1.05/nparts); the source part's weight is never
// constrained.
func FMRefine(g *Graph, part []int, nparts int, maxPasses int) {
	if g.NumVertices() == 0 || nparts <= 1 {
		return
	}
	for pass := 0; pass < maxPasses; pass++ {
		if !fmPass(g, part, nparts) {
			break
		}
	}
}

// fmPass runs a single refinement pass and reports whether it moved at
// least one vertex.
func fmPass(g *Graph, part []int, nparts int) bool {
	n := g.NumVertices()

	partWeight := make([]int64, nparts)
	for u := 0; u < n; u++ {
		partWeight[part[u]] += g.VertexWeight(u)
	}
	var total int64
	for _, w := range partWeight {
		total += w
	}
	maxPartWeight := int64(math.Ceil(float64(total) * imbalanceFactor / float64(nparts)))

	improved := false
	locked := make([]bool, n)

	for iter := 0; iter < n; iter++ {
		bestU := -1
		bestTo := 0
		bestGain := int64(math.MinInt64)

		for u := 0; u < n; u++ {
			if locked[u] {
				continue
			}
			from := part[u]

			ext := make([]int64, nparts)
			var internal int64
			for k := 0; k < g.Degree(u); k++ {
				v := int(g.Neighbors(u)[k])
				w := g.EdgeWeight(u, k)
				if part[v] == from {
					internal += w
				} else {
					ext[part[v]] += w
				}
			}

			isBoundary := false
			for _, e := range ext {
				if e > 0 {
					isBoundary = true
					break
				}
			}
			if !isBoundary {
				continue
			}

			vw := g.VertexWeight(u)
			for to := 0; to < nparts; to++ {
				if to == from || ext[to] == 0 {
					continue
				}
				if partWeight[to]+vw > maxPartWeight {
					continue
				}
				gain := ext[to] - internal
				if gain > bestGain {
					bestGain = gain
					bestU = u
					bestTo = to
				}
			}
		}

		if bestU < 0 || bestGain <= 0 {
			break
		}

		from := part[bestU]
		vw := g.VertexWeight(bestU)
		partWeight[from] -= vw
		partWeight[bestTo] += vw
		part[bestU] = bestTo
		locked[bestU] = true
		improved = true
	}

	return improved
}
