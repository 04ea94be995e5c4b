package core

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path"

	"github.com/encodeous/dvsim/protocol"
	"github.com/encodeous/dvsim/state"
	"github.com/encodeous/tint"
	slogmulti "github.com/samber/slog-multi"
)

// Start wires up logging, builds the topology and table stores from the
// scenario, and runs both convergence phases, writing the table protocol to
// out. The second phase starts from the first phase's tables; only the
// topology is edited in between.
func Start(cfg state.SimCfg, scenario *protocol.Scenario, out io.Writer, logLevel slog.Level) error {
	ctx, cancel := context.WithCancelCause(context.Background())
	defer cancel(nil)

	handlers := make([]slog.Handler, 0)
	handlers = append(handlers,
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:        logLevel,
			AddSource:    false,
			CustomPrefix: "dvsim",
			ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
				if attr.Key == "time" {
					return slog.Attr{}
				}
				return attr
			},
		}))

	if cfg.LogPath != "" {
		err := os.MkdirAll(path.Dir(cfg.LogPath), 0700)
		if err != nil {
			return err
		}
		f, err := os.OpenFile(cfg.LogPath, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0700)
		if err != nil {
			return err
		}
		defer f.Close()
		handlers = append(handlers, slog.NewTextHandler(f, &slog.HandlerOptions{Level: logLevel}))
	}

	env := &state.Env{
		Context: ctx,
		Cancel:  cancel,
		Log:     slog.New(slogmulti.Fanout(handlers...)),
		SimCfg:  cfg,
	}

	topo, err := scenario.BuildTopology()
	if err != nil {
		return err
	}
	eng := NewEngine(env, topo)
	rep := &protocol.Reporter{W: out}

	env.Log.Info("starting convergence", "routers", len(topo.Nodes()), "links", len(scenario.Links), "updates", len(scenario.Updates))
	t, err := eng.Run(rep, 0)
	if err != nil {
		return err
	}
	if err := rep.RoutingTables(eng.Routing); err != nil {
		return err
	}

	if len(scenario.Updates) == 0 {
		return nil
	}

	if err := rep.Marker(cfg.UpdateMarker); err != nil {
		return err
	}
	if err := eng.ApplyUpdates(scenario.Updates); err != nil {
		return err
	}
	env.Log.Info("re-converging after updates", "round", t)
	if _, err := eng.Run(rep, t); err != nil {
		return err
	}
	return rep.RoutingTables(eng.Routing)
}
