package keccak

import (
	"github.com/PolyhedraZK/ExpanderKeccakCircuit/builder"
)

// Iota copies the state and XORs the round constant into lane (0, 0).
// Bits where the constant is zero keep the input reference, so at most 7
// gates are emitted.
func Iota(b *builder.Builder, s *State, round int) {
	rc := RoundConstant(round)
	s.step("iota", func() {
		s.Sout = s.Sin
		for z := 0; z < LaneSize; z++ {
			if rc>>z&1 == 0 {
				continue
			}
			s.SetOut(0, 0, z, b.Xor(builder.Constant(1), builder.Signal(s.In(0, 0, z))))
		}
	})
}
