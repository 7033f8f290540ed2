package pdr

import (
	"github.com/katalvlaran/pdrplan/heuristic"
	"github.com/katalvlaran/pdrplan/layer"
)

// Option customizes a Driver under construction by mutating a
// driverConfig before the driver starts stepping. Applied left to
// right by NewDriver.
type Option func(*driverConfig)

type driverConfig struct {
	oracle                 heuristic.Oracle
	obligationRescheduling bool
	layerSimplification    bool
	debugAssertions        bool
}

func defaultDriverConfig() driverConfig {
	return driverConfig{
		oracle:                 heuristic.Null{},
		obligationRescheduling: true,
	}
}

// WithHeuristic installs the Oracle used to seed each newly created
// layer. The default is heuristic.Null (no seeding).
func WithHeuristic(oracle heuristic.Oracle) Option {
	if oracle == nil {
		panic("pdr: WithHeuristic(nil)")
	}
	return func(c *driverConfig) { c.oracle = oracle }
}

// WithObligationRescheduling controls whether a blocked obligation is
// re-pushed at a lower priority (i+1) so it can be retried once deeper
// layers have accumulated more clauses. Enabled by default.
func WithObligationRescheduling(enabled bool) Option {
	return func(c *driverConfig) { c.obligationRescheduling = enabled }
}

// WithLayerSimplification is accepted for forward compatibility but is
// intentionally never acted on: layer simplification is not
// implemented, and this is documented here as a permanent no-op
// rather than silently dropped.
func WithLayerSimplification(enabled bool) Option {
	return func(c *driverConfig) { c.layerSimplification = enabled }
}

// WithDebugAssertions enables the layer package's expensive
// cross-layer invariant re-derivation after every clause insertion.
// Off by default; intended for tests and diagnostic runs, not
// production solves, since the check is O(n²)-ish in the stack size.
func WithDebugAssertions(enabled bool) Option {
	return func(c *driverConfig) {
		c.debugAssertions = enabled
		layer.SetDebugAssertions(enabled)
	}
}
