package render_test

import (
	"strings"
	"testing"

	"github.com/saitounei/phylonj/distmatrix"
	"github.com/saitounei/phylonj/njtree"
	"github.com/saitounei/phylonj/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteMatrix_ExpandedMatrixRoundTrips(t *testing.T) {
	input := ",A,B,C,D\n" +
		"A,0,5,9,9\n" +
		"B,5,0,10,10\n" +
		"C,9,10,0,8\n" +
		"D,9,10,8,0\n"
	m := parseOrFail(t, input)

	var sink njtree.SliceSink
	tree, err := njtree.Build(m, &sink)
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, render.WriteMatrix(&buf, tree, m))

	reparsed, err := distmatrix.Parse(strings.NewReader(buf.String()))
	require.NoError(t, err)

	assert.Equal(t, tree.NumAllNodes(), reparsed.N())
	for i := 0; i < reparsed.N(); i++ {
		assert.Equal(t, tree.Nodes[i].Name, reparsed.Labels[i])
		for j := 0; j < reparsed.N(); j++ {
			assert.InDelta(t, tree.D[i][j], reparsed.D[i][j], 1e-9)
		}
	}
}

func TestWriteMatrix_HeaderListsEveryNode(t *testing.T) {
	m := parseOrFail(t, ",A,B\nA,0,7\nB,7,0\n")
	tree, err := njtree.Build(m, nil)
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, render.WriteMatrix(&buf, tree, m))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, tree.NumAllNodes()+1)
	assert.Equal(t, ",A,B", lines[0])
}
