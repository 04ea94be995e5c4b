// Package protocol implements the line-oriented text format the simulator
// speaks: the scenario input (router labels, initial links, queued updates)
// and the distance/routing table report written after every round.
package protocol

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/encodeous/dvsim/state"
)

// LinkUpdate is one src-dest-cost triple. Cost uses the wire encoding: a
// positive integer, or -1 meaning "no link" in the initial block and
// "delete link" in the update block.
type LinkUpdate struct {
	Src  state.NodeId
	Dest state.NodeId
	Cost int
}

// Scenario is the parsed form of a simulation input.
type Scenario struct {
	Nodes   []state.NodeId
	Links   []LinkUpdate
	Updates []LinkUpdate
}

const (
	markStart  = "START"
	markUpdate = "UPDATE"
	markEnd    = "END"
)

// ParseScenario reads router labels up to START, initial link triples up to
// UPDATE, and update triples up to END. Any malformed line, undeclared
// label, or out-of-range cost is a fatal parse error; nothing is simulated
// from a rejected input.
func ParseScenario(r io.Reader) (*Scenario, error) {
	sc := bufio.NewScanner(r)
	s := &Scenario{}
	lineNo := 0

	next := func() (string, bool) {
		for sc.Scan() {
			lineNo++
			line := strings.TrimSpace(sc.Text())
			if line == "" {
				continue
			}
			return line, true
		}
		return "", false
	}

	for {
		line, ok := next()
		if !ok {
			return nil, fmt.Errorf("line %d: unexpected end of input, expected %s", lineNo, markStart)
		}
		if line == markStart {
			break
		}
		if err := state.LabelValidator(line); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if slices.Contains(s.Nodes, state.NodeId(line)) {
			return nil, fmt.Errorf("line %d: duplicate router label %s", lineNo, line)
		}
		s.Nodes = append(s.Nodes, state.NodeId(line))
	}
	if len(s.Nodes) == 0 {
		return nil, fmt.Errorf("line %d: no routers declared before %s", lineNo, markStart)
	}

	links, err := parseTriples(next, s.Nodes, markUpdate, &lineNo)
	if err != nil {
		return nil, err
	}
	s.Links = links

	updates, err := parseTriples(next, s.Nodes, markEnd, &lineNo)
	if err != nil {
		return nil, err
	}
	s.Updates = updates

	if err := sc.Err(); err != nil {
		return nil, err
	}
	return s, nil
}

func parseTriples(next func() (string, bool), nodes []state.NodeId, terminator string, lineNo *int) ([]LinkUpdate, error) {
	var out []LinkUpdate
	for {
		line, ok := next()
		if !ok {
			return nil, fmt.Errorf("line %d: unexpected end of input, expected %s", *lineNo, terminator)
		}
		if line == terminator {
			return out, nil
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("line %d: expected \"src dest cost\", got %q", *lineNo, line)
		}
		src, dest := state.NodeId(fields[0]), state.NodeId(fields[1])
		for _, n := range []state.NodeId{src, dest} {
			if !slices.Contains(nodes, n) {
				return nil, fmt.Errorf("line %d: %w: %s", *lineNo, state.ErrUnknownRouter, n)
			}
		}
		if src == dest {
			return nil, fmt.Errorf("line %d: %w: self-loop on %s", *lineNo, state.ErrInvalidCost, src)
		}
		cost, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("line %d: cost %q is not an integer", *lineNo, fields[2])
		}
		if cost <= 0 && cost != state.DeleteCost {
			return nil, fmt.Errorf("line %d: %w: got %d", *lineNo, state.ErrInvalidCost, cost)
		}
		out = append(out, LinkUpdate{Src: src, Dest: dest, Cost: cost})
	}
}

// BuildTopology constructs the initial Topology from the scenario's declared
// nodes and link block. Triples carrying the -1 sentinel declare the absence
// of a link and are skipped.
func (s *Scenario) BuildTopology() (*state.Topology, error) {
	topo := state.NewTopology(s.Nodes)
	for _, l := range s.Links {
		if l.Cost == state.DeleteCost {
			continue
		}
		if err := topo.SetLink(l.Src, l.Dest, l.Cost); err != nil {
			return nil, err
		}
	}
	return topo, nil
}
