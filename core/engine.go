package core

import (
	"errors"

	"github.com/encodeous/dvsim/protocol"
	"github.com/encodeous/dvsim/state"
)

var ErrNotConverged = errors.New("did not converge within the round bound")

// Engine runs synchronous relaxation rounds over a Topology until no
// router's selected cost or next hop changes. It owns the distance and
// routing stores for the lifetime of a simulation; they are never
// reinitialized, which is what makes re-convergence after topology updates a
// warm start rather than a restart.
type Engine struct {
	Env     *state.Env
	Topo    *state.Topology
	Dist    *state.Table
	Routing *state.Routing
}

func NewEngine(env *state.Env, topo *state.Topology) *Engine {
	dist, routing := state.InitTables(topo)
	return &Engine{Env: env, Topo: topo, Dist: dist, Routing: routing}
}

// Sweep computes one full relaxation round. All candidate costs are read
// from the previous round's snapshot and committed into fresh buffers at the
// end, so iteration order within the round cannot leak between routers.
// It reports whether any selected cost or next hop changed.
func (e *Engine) Sweep() bool {
	prev := e.Dist
	next := prev.Clone()
	nextRt := e.Routing.Clone()
	changed := false
	nodes := e.Topo.Nodes()

	for _, n := range nodes {
		for _, d := range nodes {
			if d == n {
				continue
			}
			prevHop, prevCost := e.Routing.NextHop(n, d)
			selCost := state.Infinity
			var selHop state.NodeId
			for _, m := range nodes {
				if m == n {
					continue
				}
				var cand state.Cost
				if m == d {
					cand = e.Topo.Cost(n, d)
				} else {
					// m's aggregate best for d, read without the component
					// that routes back through n
					cand = state.AddCost(e.Topo.Cost(n, m), prev.Best(m, d, n))
				}
				next.Set(n, m, d, cand)
				if cand < selCost {
					selCost = cand
					selHop = m
				}
			}
			// an equal-cost alternative never replaces the current next hop
			if prevHop != "" && next.Get(n, prevHop, d) == selCost {
				selHop = prevHop
			}
			if selCost == state.Infinity {
				selHop = ""
			}
			next.Set(n, n, d, selCost)
			nextRt.Select(n, d, selHop, selCost)
			if selCost != prevCost || selHop != prevHop {
				changed = true
			}
		}
	}

	e.Dist = next
	e.Routing = nextRt
	return changed
}

// Run reports the current snapshot at startRound, then sweeps until a full
// round produces no change, reporting each round's table as it commits. It
// returns the round number the next phase should start at. Exceeding the
// configured round bound is reported as ErrNotConverged, never silently
// truncated.
func (e *Engine) Run(rep *protocol.Reporter, startRound int) (int, error) {
	t := startRound
	if err := rep.DistanceTables(t, e.Dist); err != nil {
		return t, err
	}
	for {
		if err := e.Env.Context.Err(); err != nil {
			return t, err
		}
		if t-startRound >= e.Env.MaxRounds {
			e.Env.Log.Warn("round bound exceeded", "round", t, "bound", e.Env.MaxRounds)
			return t, ErrNotConverged
		}
		changed := e.Sweep()
		t++
		if err := rep.DistanceTables(t, e.Dist); err != nil {
			return t, err
		}
		if !changed {
			e.Env.Log.Debug("converged", "round", t)
			return t + 1, nil
		}
		e.Env.Log.Debug("round changed", "round", t)
	}
}
