package distmatrix

import "fmt"

// validate checks the matrix-level invariants that span the whole matrix
// rather than a single field: zero diagonal and symmetry. Field-level and
// row-level checks happen inline during parsing.
func validate(m *DistanceMatrix) error {
	n := m.N()
	for i := 0; i < n; i++ {
		// Diagonal is compared as single precision: the parser's
		// fixed-point decimal conversion can leave a double-precision
		// residue that single precision rounds away.
		if float32(m.D[i][i]) != 0 {
			return fmt.Errorf("%w: d[%d][%d]=%v", ErrNonZeroDiagonal, i, i, m.D[i][i])
		}
		for j := i + 1; j < n; j++ {
			if m.D[i][j] != m.D[j][i] {
				return fmt.Errorf("%w: d[%d][%d]=%v != d[%d][%d]=%v",
					ErrAsymmetric, i, j, m.D[i][j], j, i, m.D[j][i])
			}
		}
	}
	return nil
}
