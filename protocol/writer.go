package protocol

import (
	"fmt"
	"io"
	"strings"

	"github.com/encodeous/dvsim/state"
)

// Reporter renders distance and routing table snapshots in the fixed text
// format consumed by downstream tooling. Every block is preceded by a blank
// line; routers are always emitted in ascending label order.
type Reporter struct {
	W io.Writer
}

// DistanceTables writes one table per router for round t. Columns are the
// destinations and rows the candidate next hops, both sorted and excluding
// the router itself; unreachable entries render as INF.
func (r *Reporter) DistanceTables(t int, dt *state.Table) error {
	for _, n := range dt.Nodes() {
		if _, err := fmt.Fprintf(r.W, "\nDistance Table of router %s at t=%d:\n", n, t); err != nil {
			return err
		}
		others := make([]string, 0, len(dt.Nodes())-1)
		for _, d := range dt.Nodes() {
			if d != n {
				others = append(others, string(d))
			}
		}
		if _, err := fmt.Fprintf(r.W, "     %s\n", strings.Join(others, "    ")); err != nil {
			return err
		}
		for _, row := range dt.Nodes() {
			if row == n {
				continue
			}
			costs := make([]string, 0, len(others))
			for _, d := range dt.Nodes() {
				if d == n {
					continue
				}
				costs = append(costs, dt.Get(n, row, d).String())
			}
			if _, err := fmt.Fprintf(r.W, "%s    %s\n", row, strings.Join(costs, "    ")); err != nil {
				return err
			}
		}
	}
	return nil
}

// RoutingTables writes one dest,nexthop,cost line per reachable destination,
// omitting unreachable destinations and the router itself.
func (r *Reporter) RoutingTables(rt *state.Routing) error {
	for _, n := range rt.Nodes() {
		if _, err := fmt.Fprintf(r.W, "\nRouting Table of router %s:\n", n); err != nil {
			return err
		}
		for _, d := range rt.Nodes() {
			if d == n {
				continue
			}
			hop, cost := rt.NextHop(n, d)
			if cost == state.Infinity || hop == "" {
				continue
			}
			if _, err := fmt.Fprintf(r.W, "%s,%s,%d\n", d, hop, cost); err != nil {
				return err
			}
		}
	}
	return nil
}

// Marker writes the line separating the pre-update and post-update phases.
func (r *Reporter) Marker(marker string) error {
	_, err := fmt.Fprintf(r.W, "\n%s\n", marker)
	return err
}
