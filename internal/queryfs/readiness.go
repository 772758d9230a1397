package queryfs

import (
	"context"
	"log/slog"

	"github.com/swiftfs/swiftfs/internal/engine"
)

// useIndex decides, once per operation, whether the index engine may serve
// a query against the given canonical path. This is the whole routing
// decision: availability flag first, then per-volume readiness.
func (c *Client) useIndex(ctx context.Context, cpath string) bool {
	if !c.available.Load() {
		return false
	}
	root := volumeRoot(cpath)
	if root == "" {
		return false
	}
	return c.isReady(ctx, root)
}

// IsReady reports whether the index is available and populated for the
// given volume root. The first call per root probes the engine; the result
// is then frozen for the life of the Client, even if the index service's
// state changes afterwards. The root is normalized first, so "c:" and "C:\"
// share one cache entry with the internally derived "C:" key.
func (c *Client) IsReady(ctx context.Context, root string) bool {
	root = NormalizeRoot(root)
	if !c.available.Load() || root == "" {
		return false
	}
	return c.isReady(ctx, root)
}

func (c *Client) isReady(ctx context.Context, root string) bool {
	c.mu.Lock()
	if ready, ok := c.readiness[root]; ok {
		c.mu.Unlock()
		return ready
	}
	c.mu.Unlock()

	// Probe outside the lock so one slow volume cannot stall readiness
	// checks for other volumes. A duplicate probe on a race is harmless:
	// the probe is idempotent and both racers compute the same value.
	ready, ok := c.probe(ctx, root)
	if !ok {
		return false
	}

	c.mu.Lock()
	if cached, exists := c.readiness[root]; exists {
		ready = cached
	} else {
		c.readiness[root] = ready
	}
	c.mu.Unlock()

	c.logger.Info("volume readiness probed",
		slog.String("root", root),
		slog.Bool("ready", ready))
	return ready
}

// probe issues the minimal existence query for a root: at most one result
// anywhere under the root. At least one result means the index is
// populated for that volume. A transport failure disables the engine and
// leaves the root unprobed.
func (c *Client) probe(ctx context.Context, root string) (ready, ok bool) {
	scope, sep := probeScope(root)
	out, err := c.transport.Query(ctx, engine.ProbeQuery(scope, sep))
	if err != nil {
		c.disable("readiness_probe", err)
		return false, false
	}
	return len(engine.ParseNames(out)) > 0, true
}

// ReadinessSnapshot returns a copy of the probed volume roots and their
// frozen readiness values.
func (c *Client) ReadinessSnapshot() map[string]bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := make(map[string]bool, len(c.readiness))
	for root, ready := range c.readiness {
		snap[root] = ready
	}
	return snap
}
