package keccak

import (
	"math/bits"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PolyhedraZK/ExpanderKeccakCircuit/builder"
	"github.com/PolyhedraZK/ExpanderKeccakCircuit/ir"
	"github.com/PolyhedraZK/ExpanderKeccakCircuit/test"
)

func iotaStep(round int) func(b *builder.Builder, s *State) {
	return func(b *builder.Builder, s *State) {
		Iota(b, s, round)
	}
}

func TestIotaRoundZero(t *testing.T) {
	_, s, emitted := stepCircuit(iotaStep(0))
	assert.Equal(t, 1, emitted)
	for i := range s.Sout {
		if i == Bit(0, 0, 0) {
			assert.NotEqual(t, s.Sin[i], s.Sout[i])
			continue
		}
		require.Equal(t, s.Sin[i], s.Sout[i], "bit %d", i)
	}
}

func TestIotaGateCount(t *testing.T) {
	for round := 0; round < NumRounds; round++ {
		_, s, emitted := stepCircuit(iotaStep(round))
		rc := RoundConstant(round)
		assert.Equal(t, bits.OnesCount64(rc), emitted, "round %d", round)
		assert.LessOrEqual(t, emitted, 7)
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				for z := 0; z < LaneSize; z++ {
					touched := x == 0 && y == 0 && rc>>z&1 == 1
					if touched {
						assert.NotEqual(t, s.In(x, y, z), s.Sout[Bit(x, y, z)])
					} else {
						require.Equal(t, s.In(x, y, z), s.Sout[Bit(x, y, z)], "round %d (%d, %d, %d)", round, x, y, z)
					}
				}
			}
		}
	}
}

func TestIotaInjectsConstant(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	a := test.NewAssert(t)
	for _, round := range []int{0, 1, 12, 23} {
		c, _, _ := stepCircuit(iotaStep(round))
		in := test.RandomLanes(r)
		want := in
		want[0] ^= RoundConstant(round)
		a.MapsLanes(c, in, want)
	}
}

func TestIotaGateShape(t *testing.T) {
	c, _, _ := stepCircuit(iotaStep(1))
	for _, g := range c.Gates {
		assert.Equal(t, ir.OpXor, g.Op)
		assert.Equal(t, ir.PinOne, g.PinA)
		assert.Equal(t, ir.ZeroRef, g.A)
		assert.Equal(t, ir.PinRaw, g.PinB)
	}
}

func TestIotaRoundOutOfRange(t *testing.T) {
	assert.Panics(t, func() { stepCircuit(iotaStep(NumRounds)) })
	assert.Panics(t, func() { stepCircuit(iotaStep(-1)) })
}
