package protocol

import (
	"strings"
	"testing"

	"github.com/encodeous/dvsim/state"
	"github.com/stretchr/testify/assert"
)

func seededTables(t *testing.T) (*state.Table, *state.Routing) {
	topo := state.NewTopology([]state.NodeId{"A", "B", "C"})
	assert.NoError(t, topo.SetLink("A", "B", 1))
	assert.NoError(t, topo.SetLink("B", "C", 1))
	dt, rt := state.InitTables(topo)
	return dt, rt
}

func TestDistanceTablesFormat(t *testing.T) {
	dt, _ := seededTables(t)
	var sb strings.Builder
	rep := &Reporter{W: &sb}
	assert.NoError(t, rep.DistanceTables(0, dt))

	want := `
Distance Table of router A at t=0:
     B    C
B    1    INF
C    INF    INF

Distance Table of router B at t=0:
     A    C
A    1    INF
C    INF    1

Distance Table of router C at t=0:
     A    B
A    INF    INF
B    INF    1
`
	assert.Equal(t, want, sb.String())
}

func TestRoutingTablesFormat(t *testing.T) {
	_, rt := seededTables(t)
	var sb strings.Builder
	rep := &Reporter{W: &sb}
	assert.NoError(t, rep.RoutingTables(rt))

	// unreachable destinations are omitted
	want := `
Routing Table of router A:
B,B,1

Routing Table of router B:
A,A,1
C,C,1

Routing Table of router C:
B,B,1
`
	assert.Equal(t, want, sb.String())
}

func TestMarker(t *testing.T) {
	var sb strings.Builder
	rep := &Reporter{W: &sb}
	assert.NoError(t, rep.Marker("APPLYING UPDATES"))
	assert.Equal(t, "\nAPPLYING UPDATES\n", sb.String())
}
