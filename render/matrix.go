package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/saitounei/phylonj/distmatrix"
	"github.com/saitounei/phylonj/njtree"
)

// WriteMatrix emits the expanded distance matrix of t (leaves plus
// synthesized internal nodes) in the same CSV shape as the distmatrix
// input grammar: a header of an empty field followed by every node name,
// then one row per node with its name and its distances to every other
// node, formatted %.2f. m is accepted for symmetry with WriteNewick and
// for callers that want to assert the leaf submatrix round-trips; it is
// not otherwise consulted since t.D already holds every distance.
func WriteMatrix(w io.Writer, t *njtree.Tree, m *distmatrix.DistanceMatrix) error {
	bw := bufio.NewWriter(w)

	n := t.NumAllNodes()
	for i := 0; i < n; i++ {
		if _, err := fmt.Fprintf(bw, ",%s", t.Nodes[i].Name); err != nil {
			return err
		}
	}
	if _, err := bw.WriteString("\n"); err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		if _, err := fmt.Fprintf(bw, "%s", t.Nodes[i].Name); err != nil {
			return err
		}
		for j := 0; j < n; j++ {
			if _, err := fmt.Fprintf(bw, ",%.2f", t.D[i][j]); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString("\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}
