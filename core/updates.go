package core

import (
	"github.com/encodeous/dvsim/protocol"
	"github.com/encodeous/dvsim/state"
)

// ApplyUpdates mutates the topology per the queued edit list, in list order,
// and refreshes the edited pairs' direct-link table entries so the next
// reported snapshot reflects them. No other entry is touched: stale
// multi-hop costs are left for the relaxation rounds to correct, which is
// where count-to-infinity comes from on link removal.
func (e *Engine) ApplyUpdates(updates []protocol.LinkUpdate) error {
	for _, u := range updates {
		if err := e.Topo.SetLink(u.Src, u.Dest, u.Cost); err != nil {
			return err
		}
		c := e.Topo.Cost(u.Src, u.Dest) // Infinity after a delete
		e.Dist.Set(u.Src, u.Dest, u.Dest, c)
		e.Dist.Set(u.Dest, u.Src, u.Src, c)
		if c != state.Infinity {
			e.Dist.Set(u.Src, u.Src, u.Dest, c)
			e.Dist.Set(u.Dest, u.Dest, u.Src, c)
		}
		e.Env.Log.Debug("applied update", "src", u.Src, "dest", u.Dest, "cost", c)
	}
	return nil
}
