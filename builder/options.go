package builder

import "github.com/PolyhedraZK/ExpanderKeccakCircuit/ir"

// Option configures a Builder.
type Option func(*config)

type config struct {
	maxRefs   uint32
	gateHint  int
	profiling bool
}

func defaultConfig() config {
	return config{
		maxRefs: uint32(ir.NoRef),
	}
}

// WithMaxRefs bounds the number of references the pool may issue, the zero
// wire included. Allocating past the bound panics.
func WithMaxRefs(n uint32) Option {
	return func(c *config) {
		c.maxRefs = min(n, uint32(ir.NoRef))
	}
}

// WithGateHint preallocates room for n gates.
func WithGateHint(n int) Option {
	return func(c *config) {
		c.gateHint = n
	}
}

// WithProfiling records the source line that emitted each gate.
func WithProfiling() Option {
	return func(c *config) {
		c.profiling = true
	}
}
