package distmatrix

// additiveTolerance bounds the floating-point slack allowed when comparing
// the two largest of the three pairwise sums in the four-point condition.
const additiveTolerance = 1e-9

// CheckAdditive tests whether the matrix is additive: whether the
// distances could have arisen from summing edge lengths along some tree.
// The four-point condition is checked for every quadruple (i,j,k,l): among
// the three sums d[i][j]+d[k][l], d[i][k]+d[j][l], d[i][l]+d[j][k], the two
// largest must be equal.
//
// On success, ok is true and the remaining return values are -1. On the
// first failing quadruple, ok is false and i, j, k, l identify it.
func (m *DistanceMatrix) CheckAdditive() (ok bool, i, j, k, l int) {
	n := m.N()
	if n < 4 {
		return true, -1, -1, -1, -1
	}

	d := m.D
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			for k = j + 1; k < n; k++ {
				for l = k + 1; l < n; l++ {
					s1 := d[i][j] + d[k][l]
					s2 := d[i][k] + d[j][l]
					s3 := d[i][l] + d[j][k]
					if !twoLargestEqual(s1, s2, s3) {
						return false, i, j, k, l
					}
				}
			}
		}
	}

	return true, -1, -1, -1, -1
}

// twoLargestEqual reports whether the two largest of three sums agree to
// within additiveTolerance, which is the four-point condition.
func twoLargestEqual(a, b, c float64) bool {
	// sort three values ascending without allocating
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}
	// a <= b <= c; the two largest are b and c
	diff := c - b
	if diff < 0 {
		diff = -diff
	}
	return diff <= additiveTolerance
}
