package state

import "slices"

// Table is the per-node, per-row, per-destination cost store, laid out as a
// dense 3-D matrix over indices assigned once from the sorted node set.
// Entry (n, r, d) is the cost n believes it would pay to reach d by routing
// through r. The self row (n, n, d) mirrors n's currently selected best and
// is what n would advertise for d.
type Table struct {
	nodes []NodeId
	index map[NodeId]int
	costs []Cost
}

func NewTable(nodes []NodeId) *Table {
	sorted := slices.Clone(nodes)
	slices.Sort(sorted)
	index := make(map[NodeId]int, len(sorted))
	for i, n := range sorted {
		index[n] = i
	}
	costs := make([]Cost, len(sorted)*len(sorted)*len(sorted))
	for i := range costs {
		costs[i] = Infinity
	}
	return &Table{nodes: sorted, index: index, costs: costs}
}

// Nodes returns the router labels in ascending index order.
func (t *Table) Nodes() []NodeId {
	return t.nodes
}

func (t *Table) at(n, r, d NodeId) int {
	k := len(t.nodes)
	return (t.index[n]*k+t.index[r])*k + t.index[d]
}

func (t *Table) Get(n, r, d NodeId) Cost {
	return t.costs[t.at(n, r, d)]
}

func (t *Table) Set(n, r, d NodeId, c Cost) {
	t.costs[t.at(n, r, d)] = c
}

// Clone is the buffer a sweep commits into, so every router of a round reads
// a consistent snapshot of the previous one.
func (t *Table) Clone() *Table {
	return &Table{nodes: t.nodes, index: t.index, costs: slices.Clone(t.costs)}
}

// Best returns the minimum estimate node n holds for destination d, scanning
// every row except n's own mirror row and any row named in skip. Returns
// Infinity when no scanned row holds a finite entry.
func (t *Table) Best(n, d NodeId, skip ...NodeId) Cost {
	best := Infinity
	for _, r := range t.nodes {
		if r == n || slices.Contains(skip, r) {
			continue
		}
		if c := t.Get(n, r, d); c < best {
			best = c
		}
	}
	return best
}

// Routing is the per-node selected next hop and cost for each destination.
// It is only ever derived from a Table, never mutated independently.
type Routing struct {
	nodes []NodeId
	index map[NodeId]int
	hops  []NodeId
	costs []Cost
}

func NewRouting(nodes []NodeId) *Routing {
	sorted := slices.Clone(nodes)
	slices.Sort(sorted)
	index := make(map[NodeId]int, len(sorted))
	for i, n := range sorted {
		index[n] = i
	}
	costs := make([]Cost, len(sorted)*len(sorted))
	for i := range costs {
		costs[i] = Infinity
	}
	return &Routing{
		nodes: sorted,
		index: index,
		hops:  make([]NodeId, len(sorted)*len(sorted)),
		costs: costs,
	}
}

func (r *Routing) Nodes() []NodeId {
	return r.nodes
}

func (r *Routing) at(n, d NodeId) int {
	return r.index[n]*len(r.nodes) + r.index[d]
}

// Select records hop as n's next hop towards d at the given cost. An
// unreachable destination carries Infinity and an empty hop.
func (r *Routing) Select(n, d, hop NodeId, c Cost) {
	i := r.at(n, d)
	r.hops[i] = hop
	r.costs[i] = c
}

// NextHop returns n's selected next hop and cost towards d. The hop is empty
// and the cost Infinity when d is currently unreachable.
func (r *Routing) NextHop(n, d NodeId) (NodeId, Cost) {
	i := r.at(n, d)
	return r.hops[i], r.costs[i]
}

func (r *Routing) Clone() *Routing {
	return &Routing{
		nodes: r.nodes,
		index: r.index,
		hops:  slices.Clone(r.hops),
		costs: slices.Clone(r.costs),
	}
}

// InitTables seeds the distance and routing stores from direct links only:
// for every router n and direct neighbor k, (n,k,k) and the mirror (n,n,k)
// hold the link cost and k is selected as its own next hop. Everything else
// starts unreachable.
func InitTables(topo *Topology) (*Table, *Routing) {
	dt := NewTable(topo.Nodes())
	rt := NewRouting(topo.Nodes())
	for _, n := range topo.Nodes() {
		for _, k := range topo.Neighbors(n) {
			c := topo.Cost(n, k)
			dt.Set(n, k, k, c)
			dt.Set(n, n, k, c)
			rt.Select(n, k, k, c)
		}
	}
	return dt, rt
}
