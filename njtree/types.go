package njtree

// noNeighbor marks an absent neighbor slot.
const noNeighbor = -1

// Node is a leaf or synthesized internal node of an NJ tree.
//
// Leaf indices are [0, n); synthesized internals get successive indices
// n, n+1, .... A leaf has exactly one non-absent neighbor, at slot 0 — this
// is what Newick rendering follows to find the edge away from a chosen
// outlier. An internal node has all three slots filled: slot 0 holds
// whichever node it was later joined to (or its final partner, for the
// last two survivors), slots 1 and 2 its two children at synthesis time.
// The three slots are otherwise unordered; rendering a tree rooted away
// from this natural construction order walks all three symmetrically.
type Node struct {
	Index     int
	Name      string
	Neighbors [3]int
}

// Tree is the result of Build: a node table of size NumAllNodes and the
// expanded NumAllNodes x NumAllNodes distance matrix among all of them
// (leaves and internals alike).
type Tree struct {
	Nodes []Node
	D     [][]float64
}

// NumAllNodes returns len(Nodes).
func (t *Tree) NumAllNodes() int {
	return len(t.Nodes)
}

// Edge is one joined edge of the tree: U and V are node indices, Length
// is the branch length between them (may be slightly negative: Build
// emits NJ branch lengths as computed, without clamping).
type Edge struct {
	U, V   int
	Length float64
}

// EdgeSink receives edges as Build joins them, in emission order.
type EdgeSink interface {
	Emit(Edge) error
}

// SliceSink is an EdgeSink that accumulates every emitted edge in Edges.
type SliceSink struct {
	Edges []Edge
}

// Emit appends e to s.Edges.
func (s *SliceSink) Emit(e Edge) error {
	s.Edges = append(s.Edges, e)
	return nil
}
