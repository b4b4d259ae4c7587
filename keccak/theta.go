package keccak

import (
	"github.com/PolyhedraZK/ExpanderKeccakCircuit/builder"
	"github.com/PolyhedraZK/ExpanderKeccakCircuit/ir"
)

// Theta emits the column parity step:
//
//	C[x, z] = A[x, 0, z] ^ A[x, 1, z] ^ A[x, 2, z] ^ A[x, 3, z] ^ A[x, 4, z]
//	D[x, z] = C[x-1, z] ^ C[x+1, z-1]
//	A'[x, y, z] = A[x, y, z] ^ D[x, z]
//
// 1280 + 320 + 1600 XOR gates.
func Theta(b *builder.Builder, s *State) {
	s.step("theta", func() {
		var c, d [5][LaneSize]ir.Ref
		for x := 0; x < 5; x++ {
			for z := 0; z < LaneSize; z++ {
				acc := s.In(x, 0, z)
				for y := 1; y < 5; y++ {
					acc = b.Xor(builder.Signal(acc), builder.Signal(s.In(x, y, z)))
				}
				c[x][z] = acc
			}
		}
		for x := 0; x < 5; x++ {
			for z := 0; z < LaneSize; z++ {
				d[x][z] = b.Xor(
					builder.Signal(c[(x+4)%5][z]),
					builder.Signal(c[(x+1)%5][(z+LaneSize-1)%LaneSize]),
				)
			}
		}
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				for z := 0; z < LaneSize; z++ {
					s.SetOut(x, y, z, b.Xor(builder.Signal(s.In(x, y, z)), builder.Signal(d[x][z])))
				}
			}
		}
	})
}
