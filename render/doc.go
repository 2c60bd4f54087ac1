// Package render serializes a njtree.Tree in the two output formats the
// pipeline supports: the expanded distance matrix (same CSV shape as the
// input, including synthesized internal nodes) and a rooted Newick tree
// obtained by designating an outlier leaf. A third, trivial format — the
// edge stream emitted during njtree.Build itself — is exposed here as
// EdgeStreamWriter since a sink is just another writer-backed renderer.
//
// Renderers are strict readers: none of them mutates the Tree or the
// DistanceMatrix they are given.
package render
