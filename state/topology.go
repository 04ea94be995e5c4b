package state

import (
	"errors"
	"fmt"
	"slices"
)

// NodeId is the label of a router. The node set is fixed for the lifetime of
// a simulation; only links change.
type NodeId string

var (
	ErrInvalidCost   = errors.New("link cost must be a positive integer or the -1 delete sentinel")
	ErrUnknownRouter = errors.New("router is not part of the declared node set")
)

// Topology holds the direct links between routers. Links are symmetric and
// self-loops are rejected. A Topology is owned by exactly one simulation and
// is passed explicitly to both the engine and the update applier, so
// independent simulations cannot interfere.
type Topology struct {
	nodes []NodeId
	links map[NodeId]map[NodeId]Cost
}

func NewTopology(nodes []NodeId) *Topology {
	sorted := slices.Clone(nodes)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)
	links := make(map[NodeId]map[NodeId]Cost, len(sorted))
	for _, n := range sorted {
		links[n] = make(map[NodeId]Cost)
	}
	return &Topology{nodes: sorted, links: links}
}

// Nodes returns the declared router labels in ascending order.
func (t *Topology) Nodes() []NodeId {
	return t.nodes
}

func (t *Topology) checkNode(n NodeId) error {
	if _, ok := t.links[n]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownRouter, n)
	}
	return nil
}

// SetLink adds or overwrites the symmetric link between a and b. A wire cost
// of DeleteCost removes the link; zero or any other negative cost fails with
// ErrInvalidCost.
func (t *Topology) SetLink(a, b NodeId, cost int) error {
	if err := t.checkNode(a); err != nil {
		return err
	}
	if err := t.checkNode(b); err != nil {
		return err
	}
	if a == b {
		return fmt.Errorf("%w: self-loop on %s", ErrInvalidCost, a)
	}
	if cost == DeleteCost {
		t.RemoveLink(a, b)
		return nil
	}
	if cost <= 0 || int64(cost) > int64(MaxFinite) {
		return fmt.Errorf("%w: %s-%s cost %d", ErrInvalidCost, a, b, cost)
	}
	t.links[a][b] = Cost(cost)
	t.links[b][a] = Cost(cost)
	return nil
}

// RemoveLink deletes both directions of the a-b link. Removing an absent
// link is a no-op, not an error.
func (t *Topology) RemoveLink(a, b NodeId) {
	delete(t.links[a], b)
	delete(t.links[b], a)
}

// Cost returns the direct link cost, or Infinity when a and b are not
// directly linked.
func (t *Topology) Cost(a, b NodeId) Cost {
	if c, ok := t.links[a][b]; ok {
		return c
	}
	return Infinity
}

// Neighbors returns the routers currently linked to n, in ascending order.
// The slice is computed on demand and never retained by the Topology.
func (t *Topology) Neighbors(n NodeId) []NodeId {
	out := make([]NodeId, 0, len(t.links[n]))
	for k := range t.links[n] {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
