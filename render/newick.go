package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/saitounei/phylonj/distmatrix"
	"github.com/saitounei/phylonj/njtree"
)

// WriteNewick serializes t as a Newick tree rooted at the chosen
// outlier's sole neighbor; the outlier itself is excluded from the
// output. With no WithOutlier option, the outlier is the leaf maximizing
// its row-sum over the other leaves, ties broken by lowest index.
func WriteNewick(w io.Writer, t *njtree.Tree, m *distmatrix.DistanceMatrix, opts ...Option) error {
	cfg := newConfig(opts)
	n := m.N()

	outlier, err := selectOutlier(t, m, cfg)
	if err != nil {
		return err
	}

	if n == 1 {
		_, err = fmt.Fprintf(w, "%s;", t.Nodes[0].Name)
		return err
	}

	if n == 2 {
		// The outlier's sole neighbor is itself a leaf here (there is
		// no internal node for n=2); per the spec's resolution of this
		// ambiguity, the surviving leaf is emitted bare.
		other := 1 - outlier
		_, err = fmt.Fprintf(w, "%s;", t.Nodes[other].Name)
		return err
	}

	root := t.Nodes[outlier].Neighbors[0]
	body := serializeSubtree(t, root, outlier)
	_, err = fmt.Fprintf(w, "%s;", body)
	return err
}

// selectOutlier resolves the outlier leaf per cfg: the explicitly named
// leaf if cfg.hasOutlier, else the leaf with greatest row-sum over the
// other leaves (lowest index wins ties).
func selectOutlier(t *njtree.Tree, m *distmatrix.DistanceMatrix, cfg config) (int, error) {
	n := m.N()

	if cfg.hasOutlier {
		for i, label := range m.Labels {
			if label == cfg.outlier {
				return i, nil
			}
		}
		return 0, fmt.Errorf("%w: %q", ErrUnknownOutlier, cfg.outlier)
	}

	best, bestSum := 0, -1.0
	for i := 0; i < n; i++ {
		var sum float64
		for k := 0; k < n; k++ {
			if k == i {
				continue
			}
			sum += t.D[i][k]
		}
		if sum > bestSum {
			bestSum = sum
			best = i
		}
	}
	return best, nil
}

// serializeSubtree renders the subtree rooted at node, excluding the edge
// back to parent, as a Newick fragment with no trailing branch length
// (callers append ":length" for non-root recursive calls). Leaves render
// as their bare name; internal nodes wrap their remaining neighbors.
func serializeSubtree(t *njtree.Tree, node, parent int) string {
	var children []int
	for _, nb := range t.Nodes[node].Neighbors {
		if nb == -1 || nb == parent {
			continue
		}
		children = append(children, nb)
	}

	if len(children) == 0 {
		return t.Nodes[node].Name
	}

	parts := make([]string, len(children))
	for i, c := range children {
		parts[i] = fmt.Sprintf("%s:%.2f", serializeSubtree(t, c, node), t.D[node][c])
	}
	return "(" + strings.Join(parts, ",") + ")"
}
