package distmatrix

// DistanceMatrix is a symmetric, zero-diagonal matrix of pairwise genetic
// distances over a set of labeled taxa. Construct one via Parse; treat it
// as read-only afterward.
type DistanceMatrix struct {
	// Labels holds the taxon labels in input order, byte-verbatim.
	Labels []string

	// D is the N x N distance matrix; D[i][i] == 0, D[i][j] == D[j][i].
	D [][]float64
}

// N returns the number of taxa.
func (m *DistanceMatrix) N() int {
	return len(m.Labels)
}
