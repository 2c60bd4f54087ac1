package njtree

import "errors"

// ErrNodeLimitExceeded is returned if Build would synthesize more than
// MaxNodes nodes. MaxNodes is derived from distmatrix's default MaxTaxa, so
// this path is reached only for a matrix with more taxa than that default
// (for example one parsed with a larger distmatrix.WithMaxTaxa limit).
var ErrNodeLimitExceeded = errors.New("njtree: node limit exceeded")
