package state

import (
	"context"
	"log/slog"
)

// Env carries the cross-cutting pieces of one simulation run. The stores it
// is handed alongside are owned by a single goroutine; there is no shared
// mutable state across concurrent actors because none exist in this design.
type Env struct {
	Context context.Context
	Cancel  context.CancelCauseFunc
	Log     *slog.Logger
	SimCfg
}
