package test

import (
	"testing"

	"github.com/PolyhedraZK/ExpanderKeccakCircuit/checker"
	"github.com/PolyhedraZK/ExpanderKeccakCircuit/ir"
)

type Assert struct {
	t *testing.T
}

func NewAssert(t *testing.T) *Assert {
	return &Assert{t: t}
}

// Valid fails the test if c is not a well-formed gate graph.
func (a *Assert) Valid(c *ir.Circuit) {
	a.t.Helper()
	if err := ir.Validate(c); err != nil {
		a.t.Fatalf("invalid circuit: %v", err)
	}
}

// MapsLanes fails the test unless c, whose inputs and outputs are both 1600
// state bits, maps in to want.
func (a *Assert) MapsLanes(c *ir.Circuit, in, want [25]uint64) {
	a.t.Helper()
	got := BitsToLanes(checker.EvalOutputs(c, LanesToBits(&in)))
	for i := range want {
		if got[i] != want[i] {
			a.t.Fatalf("lane %d: got %#016x, want %#016x", i, got[i], want[i])
		}
	}
}
