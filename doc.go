/*
Package metis implements a pure-Go multilevel k-way graph partitioner: given
an undirected weighted graph, it assigns each vertex to one of k parts while
approximately minimizing the total weight of edges crossing between parts,
subject to a soft balance constraint on total vertex weight per part.

# Overview

The package implements the three classic multilevel partitioning phases:
  - Coarsening: heavy-edge matching repeatedly contracts the graph into a
    stack of progressively smaller graphs.
  - Initial partitioning: the coarsest graph is bisected by greedy graph
    growing, then recursively subdivided for k > 2.
  - Uncoarsening and refinement: the partition is projected back up the
    level stack one graph at a time, with Fiduccia-Mattheyses-style boundary
    refinement run at every level.

# Basic Usage

	xadj := []int32{0, 2, 5, 7, 9, 12, 14}
	adjncy := []int32{1, 3, 0, 2, 4, 1, 5, 0, 4, 1, 3, 5, 2, 4}

	g, err := metis.NewGraph(6, xadj, adjncy)
	if err != nil {
		log.Fatal(err)
	}

	cut, part := metis.Partition(g, 2)
	fmt.Printf("Partition: %v, edge cut: %d\n", part, cut)

# Graph Format

Graphs are represented in Compressed Sparse Row (CSR) format:
  - Xadj is an index array of size n+1, where n is the number of vertices.
  - Adjncy holds the concatenated adjacency lists.
  - Xadj[u] points to the start of u's adjacency list in Adjncy.
  - Vertices are numbered from 0.

Example for a triangle graph (0-1-2-0):

	xadj   = [0, 2, 4, 6]
	adjncy = [1, 2, 0, 2, 0, 1]  // 0->[1,2], 1->[0,2], 2->[0,1]

# Weighted Graphs

Both vertices and edges can carry weights, attached after construction:

	g, _ := metis.NewGraph(4, xadj, adjncy)
	g, _ = g.WithVwgt([]int64{10, 20, 30, 40})
	g, _ = g.WithAdjwgt([]int64{1, 2, 1, 3, 3, 2})

An empty Adjwgt or Vwgt is treated as unit weight everywhere it is read.

# Balance

FMRefine never moves a vertex into a part if that would push the part's
total vertex weight above ceil(totalWeight*1.05/nparts). The cap is applied
only to the destination part of a candidate refinement move; the source
part is never constrained. The initial partition is not rebalanced against
the cap, so a part of the result can weigh more than the cap, and a part
can end up empty when refinement moves all of its vertices out.

# Diagnostics

Graph.EdgeCut and Graph.PartitionBalance compute the edge cut and the
min/max/average part weight of a finished partition vector. Partition uses
EdgeCut to compare candidate bisections and to compute the cut it returns;
PartitionBalance is not used by Partition.

# Algorithm Phases

Coarsening stops once the graph has shrunk to at most max(20, 2*nparts)
vertices, or once a coarsening pass fails to make progress. The coarsest
graph is then bisected (and recursively subdivided for k > 2) before
FMRefine runs at every level on the way back to the original graph.

# Performance Considerations

Coarsening is O(n + m) per level; the number of levels is typically
O(log n). Each FMRefine pass makes up to n moves and rescans every unlocked
vertex before each move, so a pass costs O(n * (n + m)) in the worst case.
This scan is the dominant cost on large graphs, since FMRefine does not
maintain a gain-bucket priority structure.

# Thread Safety

A Graph is immutable once constructed and safe to share across concurrent
calls to Partition. Partition and FMRefine do not mutate the Graph they are
given; the partition vector passed to FMRefine is mutated in place and must
not be shared across concurrent calls.
*/
package metis
