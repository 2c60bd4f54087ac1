package njtree

import "github.com/saitounei/phylonj/distmatrix"

// MaxNodes bounds the total node count (leaves + synthesized internals) a
// Tree may hold: 2*MaxTaxa - 2, the node count of a fully resolved binary
// tree over distmatrix's default maximum number of taxa.
const MaxNodes = 2*distmatrix.MaxTaxa - 2
