package keccak

import (
	"fmt"

	"github.com/consensys/gnark/logger"

	"github.com/PolyhedraZK/ExpanderKeccakCircuit/builder"
	"github.com/PolyhedraZK/ExpanderKeccakCircuit/ir"
)

// MaxGates bounds the number of gates of one permutation: theta and chi emit
// 2*Width gates each per round, iota at most 7.
const MaxGates = NumRounds * (4*Width + 7)

// Round applies theta, rho, pi, chi and iota in order. The result of the round
// is left in s.Sin.
func Round(b *builder.Builder, s *State, round int) {
	if round < 0 || round >= NumRounds {
		panic(fmt.Sprintf("round index %d out of range [0, %d)", round, NumRounds))
	}
	Theta(b, s)
	s.Next()
	Rho(s)
	s.Next()
	Pi(s)
	s.Next()
	Chi(b, s)
	s.Next()
	Iota(b, s, round)
	s.Next()
}

// Permute emits the 24 rounds of Keccak-f[1600] on the state in and returns
// the references of the permuted state.
func Permute(b *builder.Builder, in [Width]ir.Ref) [Width]ir.Ref {
	s := NewStateFrom(&in)
	for round := 0; round < NumRounds; round++ {
		Round(b, s, round)
	}
	return s.Sin
}

// Synthesize builds the gate graph of Keccak-f[1600] in a fresh session.
// Input i and output i of the circuit both correspond to flat index i, see Bit.
func Synthesize(opts ...builder.Option) *ir.Circuit {
	b := builder.New(append([]builder.Option{builder.WithGateHint(MaxGates)}, opts...)...)
	var in [Width]ir.Ref
	copy(in[:], b.AllocN(Width))
	out := Permute(b, in)
	b.Output(out[:]...)
	c := b.Finalize()

	stats := c.GetStats()
	log := logger.Logger()
	log.Debug().
		Int("nbGate", stats.NbGate).
		Int("nbAnd", stats.NbAnd).
		Int("nbXor", stats.NbXor).
		Int("depth", stats.Depth).
		Int("andDepth", stats.AndDepth).
		Msg("keccak-f[1600] synthesized")
	return c
}
