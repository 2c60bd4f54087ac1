// Package distmatrix defines the DistanceMatrix value type and the strict
// CSV parser that materializes it from a byte stream.
//
// A DistanceMatrix is a symmetric, zero-diagonal matrix of pairwise genetic
// distances over a set of labeled taxa. It is produced exclusively by Parse
// and is read-only afterward: the neighbor-joining engine in njtree never
// mutates a caller's DistanceMatrix, only its own expanded copy.
//
// Input grammar:
//
//	# comment lines, skipped entirely, anywhere before the header
//	,label1,label2,...,labelN
//	label1,d11,d12,...,d1N
//	label2,d21,d22,...,d2N
//	...
//
// Numeric fields match [0-9]+(\.[0-9]+)?: no sign, no exponent, and no
// leading zeros other than the bare digit "0". Parse validates row shape,
// label consistency, diagonal zero (compared as single precision), and
// symmetry, reporting the first violation found.
package distmatrix
