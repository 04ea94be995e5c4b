package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/encodeous/dvsim/protocol"
	"github.com/encodeous/dvsim/state"
)

// dijkstra is the reference single-source shortest path oracle the engine's
// converged costs are checked against. Linear scan instead of a heap: the
// test topologies are tiny.
func dijkstra(topo *state.Topology, src state.NodeId) map[state.NodeId]state.Cost {
	dist := make(map[state.NodeId]state.Cost, len(topo.Nodes()))
	done := make(map[state.NodeId]bool, len(topo.Nodes()))
	for _, n := range topo.Nodes() {
		dist[n] = state.Infinity
	}
	dist[src] = 0

	for range topo.Nodes() {
		cur := state.NodeId("")
		best := state.Infinity
		for _, n := range topo.Nodes() {
			if !done[n] && dist[n] < best {
				cur, best = n, dist[n]
			}
		}
		if cur == "" {
			break
		}
		done[cur] = true
		for _, k := range topo.Neighbors(cur) {
			if c := state.AddCost(best, topo.Cost(cur, k)); c < dist[k] {
				dist[k] = c
			}
		}
	}
	return dist
}

func TestConvergedCostsMatchDijkstra(t *testing.T) {
	topo := buildTopo(t, []state.NodeId{"A", "B", "C", "D", "E", "F", "G"}, map[[2]state.NodeId]int{
		{"A", "B"}: 4,
		{"A", "C"}: 2,
		{"B", "C"}: 1,
		{"B", "D"}: 5,
		{"C", "D"}: 8,
		{"C", "E"}: 10,
		{"D", "E"}: 2,
		{"D", "F"}: 6,
		{"E", "F"}: 3,
		// G is isolated and must stay unreachable from everywhere
	})
	e := NewEngine(testEnv(), topo)
	converge(t, e)

	for _, n := range topo.Nodes() {
		want := dijkstra(topo, n)
		for _, d := range topo.Nodes() {
			if d == n {
				continue
			}
			_, got := e.Routing.NextHop(n, d)
			assert.Equal(t, want[d], got, "%s -> %s", n, d)
		}
	}
}

func TestOracleAgreesAfterUpdates(t *testing.T) {
	topo := buildTopo(t, []state.NodeId{"A", "B", "C", "D", "E"}, map[[2]state.NodeId]int{
		{"A", "B"}: 3,
		{"B", "C"}: 4,
		{"C", "D"}: 2,
		{"D", "E"}: 1,
		{"A", "E"}: 9,
	})
	e := NewEngine(testEnv(), topo)
	converge(t, e)

	assert.NoError(t, e.ApplyUpdates([]protocol.LinkUpdate{
		{Src: "B", Dest: "C", Cost: 1},
		{Src: "A", Dest: "E", Cost: state.DeleteCost},
	}))
	converge(t, e)

	for _, n := range topo.Nodes() {
		want := dijkstra(topo, n)
		for _, d := range topo.Nodes() {
			if d == n {
				continue
			}
			_, got := e.Routing.NextHop(n, d)
			assert.Equal(t, want[d], got, "%s -> %s", n, d)
		}
	}
}
