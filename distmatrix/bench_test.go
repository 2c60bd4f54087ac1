package distmatrix_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/saitounei/phylonj/distmatrix"
)

// buildMatrixCSV generates a synthetic n-taxon distance matrix in valid CSV form.
func buildMatrixCSV(n int) string {
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
				d = 1 + (i+j)%9
			}
			fmt.Fprintf(&b, ",%d", d)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// BenchmarkParse measures Parse throughput on a synthetic 200-taxon matrix.
func BenchmarkParse(b *testing.B) {
	input := buildMatrixCSV(200)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = distmatrix.Parse(strings.NewReader(input))
	}
}
