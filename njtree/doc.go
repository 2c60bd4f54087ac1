// Package njtree implements the neighbor-joining (NJ) tree-reconstruction
// engine of Saitou & Nei.
//
// Build consumes a distmatrix.DistanceMatrix and produces a fully linked
// Tree: a node table (leaves plus synthesized internal nodes) and the
// expanded distance matrix among all of them. Each iteration of the main
// loop picks the pair minimizing the Q criterion, joins it under a new
// internal node, updates the distance matrix, and shrinks the active set
// by one. An optional EdgeSink receives every joined edge in emission
// order, which is part of the public contract: it is required for
// reproducible edge-stream output.
//
// Build owns its Tree-under-construction exclusively for the duration of
// the call; nothing else may alias the mutable expanded matrix while it
// runs.
package njtree
