package render_test

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/saitounei/phylonj/distmatrix"
	"github.com/saitounei/phylonj/njtree"
	"github.com/saitounei/phylonj/render"
)

// buildSyntheticCSV produces a valid n-taxon distance matrix for benchmarking.
func buildSyntheticCSV(n int) string {
	var b strings.Builder
	b.WriteString(",")
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, "T%d", i)
	}
	b.WriteString("\n")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "T%d", i)
		for j := 0; j < n; j++ {
			d := 0
			if i != j {
				d = 1 + (i+j)%13
			}
			fmt.Fprintf(&b, ",%d", d)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// BenchmarkWriteMatrix measures expanded-matrix rendering throughput over a
// synthetic 100-taxon tree.
func BenchmarkWriteMatrix(b *testing.B) {
	input := buildSyntheticCSV(100)
	m, err := distmatrix.Parse(strings.NewReader(input))
	if err != nil {
		b.Fatal(err)
	}
	tree, err := njtree.Build(m, nil)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = render.WriteMatrix(io.Discard, tree, m)
	}
}

// BenchmarkWriteNewick measures Newick serialization throughput over the
// same synthetic 100-taxon tree.
func BenchmarkWriteNewick(b *testing.B) {
	input := buildSyntheticCSV(100)
	m, err := distmatrix.Parse(strings.NewReader(input))
	if err != nil {
		b.Fatal(err)
	}
	tree, err := njtree.Build(m, nil)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = render.WriteNewick(io.Discard, tree, m)
	}
}
