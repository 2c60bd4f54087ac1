package njtree

import (
	"fmt"
	"math"

	"github.com/saitounei/phylonj/distmatrix"
)

// Build runs neighbor-joining on m and returns the fully linked Tree. If
// sink is non-nil, every joined edge is emitted to it in emission order:
// within an iteration the f->u edge precedes the g->u edge; iterations
// run in order; the final closing edge follows all of them.
func Build(m *distmatrix.DistanceMatrix, sink EdgeSink) (*Tree, error) {
	n := m.N()

	switch {
	case n == 1:
		return buildSingleton(m), nil
	case n == 2:
		return buildPair(m, sink)
	default:
		return buildGeneral(m, sink)
	}
}

func buildSingleton(m *distmatrix.DistanceMatrix) *Tree {
	return &Tree{
		Nodes: []Node{{Index: 0, Name: m.Labels[0], Neighbors: [3]int{noNeighbor, noNeighbor, noNeighbor}}},
		D:     [][]float64{{0}},
	}
}

func buildPair(m *distmatrix.DistanceMatrix, sink EdgeSink) (*Tree, error) {
	d := [][]float64{
		{0, m.D[0][1]},
		{m.D[1][0], 0},
	}
	nodes := []Node{
		{Index: 0, Name: m.Labels[0], Neighbors: [3]int{1, noNeighbor, noNeighbor}},
		{Index: 1, Name: m.Labels[1], Neighbors: [3]int{0, noNeighbor, noNeighbor}},
	}

	if sink != nil {
		if err := sink.Emit(Edge{U: 0, V: 1, Length: d[0][1]}); err != nil {
			return nil, err
		}
	}

	return &Tree{Nodes: nodes, D: d}, nil
}

func buildGeneral(m *distmatrix.DistanceMatrix, sink EdgeSink) (*Tree, error) {
	n := m.N()
	numAllNodes := 2*n - 2

	d := make([][]float64, numAllNodes)
	for i := range d {
		d[i] = make([]float64, numAllNodes)
	}
	for i := 0; i < n; i++ {
		copy(d[i][:n], m.D[i])
	}

	nodes := make([]Node, numAllNodes)
	for i := 0; i < n; i++ {
		nodes[i] = Node{Index: i, Name: m.Labels[i], Neighbors: [3]int{noNeighbor, noNeighbor, noNeighbor}}
	}

	active := newActiveSet(n)
	next := n // index of the next synthesized internal node

	for iter := 0; iter < n-2; iter++ {
		size := active.len()

		sum := make(map[int]float64, size)
		for _, i := range active.idx {
			var s float64
			for _, j := range active.idx {
				s += d[i][j]
			}
			sum[i] = s
		}

		f, g := selectPair(active.idx, d, sum, size)

		if next >= MaxNodes {
			return nil, fmt.Errorf("%w: would synthesize node %d", ErrNodeLimitExceeded, next)
		}
		u := next
		next++

		lenF := d[f][g]/2 + (sum[f]-sum[g])/(2*float64(size-2))
		lenG := d[f][g] - lenF
		d[f][u], d[u][f] = lenF, lenF
		d[g][u], d[u][g] = lenG, lenG

		if sink != nil {
			if err := sink.Emit(Edge{U: f, V: u, Length: lenF}); err != nil {
				return nil, err
			}
			if err := sink.Emit(Edge{U: g, V: u, Length: lenG}); err != nil {
				return nil, err
			}
		}

		nodes[u] = Node{Index: u, Name: fmt.Sprintf("#%d", u), Neighbors: [3]int{noNeighbor, f, g}}
		nodes[f].Neighbors[0] = u
		nodes[g].Neighbors[0] = u

		for _, k := range active.idx {
			if k == f || k == g {
				continue
			}
			v := (d[f][k] + d[g][k] - d[f][g]) / 2
			d[u][k] = v
			d[k][u] = v
		}
		d[u][u] = 0

		active.removeTwoAppendOne(f, g, u)
	}

	p, q := active.idx[0], active.idx[1]
	finalLen := d[p][q]
	if sink != nil {
		if err := sink.Emit(Edge{U: p, V: q, Length: finalLen}); err != nil {
			return nil, err
		}
	}
	nodes[p].Neighbors[0] = q
	nodes[q].Neighbors[0] = p

	return &Tree{Nodes: nodes, D: d}, nil
}

// selectPair finds the unordered pair {i, j} in active minimizing
// Q(i,j) = (size-2)*d[i][j] - sum[i] - sum[j], scanning active in nested
// iteration order so ties resolve to the first pair encountered by
// position. This fixed order is what makes Build deterministic.
func selectPair(active []int, d [][]float64, sum map[int]float64, size int) (int, int) {
	bestI, bestJ := noNeighbor, noNeighbor
	bestQ := math.Inf(1)

	for ai := 0; ai < len(active); ai++ {
		for aj := ai + 1; aj < len(active); aj++ {
			i, j := active[ai], active[aj]
			if qv := q(i, j, d, sum, size); qv < bestQ {
				bestQ = qv
				bestI, bestJ = i, j
			}
		}
	}

	return bestI, bestJ
}

func q(i, j int, d [][]float64, sum map[int]float64, size int) float64 {
	return float64(size-2)*d[i][j] - sum[i] - sum[j]
}
