package keccak

import (
	"github.com/PolyhedraZK/ExpanderKeccakCircuit/builder"
)

// Chi emits the nonlinear step:
//
//	A'[x, y, z] = A[x, y, z] ^ ((A[x+1, y, z] ^ 1) & A[x+2, y, z])
//
// as one AND gate with a negated first pin followed by one XOR gate per bit,
// 3200 gates in total.
func Chi(b *builder.Builder, s *State) {
	s.step("chi", func() {
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				for z := 0; z < LaneSize; z++ {
					aux := b.And(
						builder.Not(s.In((x+1)%5, y, z)),
						builder.Signal(s.In((x+2)%5, y, z)),
					)
					s.SetOut(x, y, z, b.Xor(builder.Signal(aux), builder.Signal(s.In(x, y, z))))
				}
			}
		}
	})
}
