// Package keccak expresses synthesized gate graphs as gnark constraints.
package keccak

import (
	"fmt"
	"sync"

	"github.com/consensys/gnark/frontend"

	"github.com/PolyhedraZK/ExpanderKeccakCircuit/ir"
	synth "github.com/PolyhedraZK/ExpanderKeccakCircuit/keccak"
)

// Replay re-emits every gate of c through api, inputs[i] driving c.Inputs[i],
// and returns the variables of c.Outputs. Inputs must be boolean.
func Replay(api frontend.API, c *ir.Circuit, inputs []frontend.Variable) []frontend.Variable {
	if len(inputs) != len(c.Inputs) {
		panic(fmt.Sprintf("input length mismatch: got %d, circuit has %d", len(inputs), len(c.Inputs)))
	}
	values := make([]frontend.Variable, c.NbRef)
	values[ir.ZeroRef] = 0
	for i, in := range c.Inputs {
		values[in] = inputs[i]
	}

	read := func(r ir.Ref, p ir.Pin) frontend.Variable {
		switch p {
		case ir.PinZero:
			return 0
		case ir.PinOne:
			return 1
		case ir.PinNegated:
			v := api.Sub(1, values[r])
			api.Compiler().MarkBoolean(v)
			return v
		}
		return values[r]
	}

	for _, g := range c.Gates {
		a := read(g.A, g.PinA)
		b := read(g.B, g.PinB)
		if g.Op == ir.OpAnd {
			values[g.Out] = api.And(a, b)
		} else {
			values[g.Out] = api.Xor(a, b)
		}
	}

	res := make([]frontend.Variable, len(c.Outputs))
	for i, o := range c.Outputs {
		res[i] = values[o]
	}
	return res
}

var (
	permutationOnce sync.Once
	permutation     *ir.Circuit
)

// Permutation returns the gate graph of Keccak-f[1600], synthesized once.
func Permutation() *ir.Circuit {
	permutationOnce.Do(func() {
		permutation = synth.Synthesize()
	})
	return permutation
}

// PermutationCircuit constrains Out to be Keccak-f[1600](In). Lane (x, y) is
// element x+5*y, read as a 64-bit little-endian integer.
type PermutationCircuit struct {
	In  [25]frontend.Variable
	Out [25]frontend.Variable `gnark:",public"`
}

func (c *PermutationCircuit) Define(api frontend.API) error {
	bits := make([]frontend.Variable, 0, synth.Width)
	for i := range c.In {
		bits = append(bits, api.ToBinary(c.In[i], synth.LaneSize)...)
	}
	out := Replay(api, Permutation(), bits)
	for i := range c.Out {
		lane := out[i*synth.LaneSize : (i+1)*synth.LaneSize]
		api.AssertIsEqual(api.FromBinary(lane...), c.Out[i])
	}
	return nil
}
