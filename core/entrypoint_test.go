package core

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/encodeous/dvsim/protocol"
	"github.com/encodeous/dvsim/state"
)

func TestStartEndToEnd(t *testing.T) {
	scenario, err := protocol.ParseScenario(strings.NewReader(`A
B
C
START
A B 1
B C 1
UPDATE
A C 1
END
`))
	require.NoError(t, err)

	var out bytes.Buffer
	cfg := state.DefaultSimCfg()
	require.NoError(t, Start(cfg, scenario, &out, slog.LevelWarn))

	text := out.String()
	assert.Contains(t, text, "Distance Table of router A at t=0:")
	assert.Contains(t, text, "Distance Table of router C at t=0:")

	phases := strings.SplitN(text, "\n"+cfg.UpdateMarker+"\n", 2)
	require.Len(t, phases, 2, "output must contain the update marker")
	pre, post := phases[0], phases[1]

	// before updates: A reaches C through B at cost 2
	assert.Contains(t, pre, "Routing Table of router A:\nB,B,1\nC,B,2\n")
	assert.Contains(t, pre, "Routing Table of router C:\nA,B,2\nB,B,1\n")

	// after the A-C link is added: direct at cost 1
	assert.Contains(t, post, "Routing Table of router A:\nB,B,1\nC,C,1\n")
	assert.Contains(t, post, "Routing Table of router C:\nA,A,1\nB,B,1\n")

	// round numbering continues across the update marker
	assert.NotContains(t, post, "at t=0:")
}

func TestStartWithoutUpdates(t *testing.T) {
	scenario, err := protocol.ParseScenario(strings.NewReader(`A
B
START
A B 2
UPDATE
END
`))
	require.NoError(t, err)

	var out bytes.Buffer
	cfg := state.DefaultSimCfg()
	require.NoError(t, Start(cfg, scenario, &out, slog.LevelWarn))
	assert.NotContains(t, out.String(), cfg.UpdateMarker)
	assert.Contains(t, out.String(), "Routing Table of router A:\nB,B,2\n")
}

func TestStartReportsNonConvergence(t *testing.T) {
	// removing C-D strands A, B and C in a mutual count-up over D
	scenario, err := protocol.ParseScenario(strings.NewReader(`A
B
C
D
START
A B 1
A C 1
B C 1
C D 1
UPDATE
C D -1
END
`))
	require.NoError(t, err)

	cfg := state.DefaultSimCfg()
	cfg.MaxRounds = 10
	var out bytes.Buffer
	err = Start(cfg, scenario, &out, slog.LevelError)
	assert.ErrorIs(t, err, ErrNotConverged)
}
