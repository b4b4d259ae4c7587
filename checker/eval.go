// Package checker evaluates gate graphs on concrete bits.
package checker

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/PolyhedraZK/ExpanderKeccakCircuit/ir"
)

// Eval returns the value of every wire of c when bit i of input drives
// c.Inputs[i]. Bits of input past len(c.Inputs) are ignored, missing bits read 0.
// The circuit is expected to be valid, see ir.Validate.
func Eval(c *ir.Circuit, input *bitset.BitSet) *bitset.BitSet {
	values := bitset.New(uint(c.NbRef))
	for i, in := range c.Inputs {
		if input.Test(uint(i)) {
			values.Set(uint(in))
		}
	}
	for i := range c.Gates {
		g := &c.Gates[i]
		if g.Eval(values.Test(uint(g.A)), values.Test(uint(g.B))) {
			values.Set(uint(g.Out))
		}
	}
	if values.Test(uint(ir.ZeroRef)) {
		panic("zero wire evaluated to one")
	}
	return values
}

// EvalOutputs returns the values of c.Outputs, bit i for output i.
func EvalOutputs(c *ir.Circuit, input *bitset.BitSet) *bitset.BitSet {
	values := Eval(c, input)
	out := bitset.New(uint(len(c.Outputs)))
	for i, o := range c.Outputs {
		if values.Test(uint(o)) {
			out.Set(uint(i))
		}
	}
	return out
}

// CheckCircuit reports whether c maps input to want on its outputs.
func CheckCircuit(c *ir.Circuit, input, want *bitset.BitSet) bool {
	got := EvalOutputs(c, input)
	for i := range c.Outputs {
		if got.Test(uint(i)) != want.Test(uint(i)) {
			return false
		}
	}
	return true
}
