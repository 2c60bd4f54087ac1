// Package phylonj reconstructs unrooted binary phylogenetic trees from
// pairwise genetic-distance matrices using neighbor-joining (Saitou & Nei).
//
// What is phylonj?
//
//	A small, thread-safe-by-construction, zero-hidden-dependency pipeline
//	that brings together:
//
//	  - A strict CSV distance-matrix parser
//	  - A neighbor-joining reconstruction engine
//	  - Matrix and Newick renderers for the resulting tree
//
// Why choose phylonj?
//
//   - Deterministic    — identical input always produces identical output,
//     including tie-breaks in the neighbor-joining Q-matrix search
//   - Explicit errors  — every malformed input maps to a specific sentinel
//     error, never a panic
//   - Pure Go          — no cgo, no hidden dependencies
//
// Under the hood, everything is organized under three subpackages:
//
//	distmatrix/ — DistanceMatrix type and the strict CSV parser
//	njtree/     — Node/Tree types and the neighbor-joining Build function
//	render/     — matrix-CSV and Newick renderers
//
// Quick example: four taxa A, B, C, D are joined into an unrooted binary
// tree with two internal nodes,
//
//	A       C
//	 \     /
//	  4---5
//	 /     \
//	B       D
//
// reconstructed from nothing but their pairwise distances.
//
// See the distmatrix package documentation for the CSV input grammar,
// render.WriteNewick for the Newick output format, and the Example
// functions in distmatrix and render for worked examples.
//
//	go get github.com/saitounei/phylonj
package phylonj
