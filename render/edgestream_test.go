package render_test

import (
	"strings"
	"testing"

	"github.com/saitounei/phylonj/njtree"
	"github.com/saitounei/phylonj/render"
	"github.com/stretchr/testify/require"
)

func TestEdgeStreamWriter_EmitsOneLinePerEdge(t *testing.T) {
	m := parseOrFail(t, ",A,B,C\nA,0,2,4\nB,2,0,4\nC,4,4,0\n")

	var buf strings.Builder
	sink := render.NewEdgeStreamWriter(&buf)
	_, err := njtree.Build(m, sink)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		require.Len(t, strings.Split(line, ","), 3)
	}
}
