package keccak

import (
	"github.com/PolyhedraZK/ExpanderKeccakCircuit/builder"
	"github.com/PolyhedraZK/ExpanderKeccakCircuit/ir"
)

// stepCircuit runs one step on a state of fresh input wires and exposes Sout
// as the outputs of the circuit.
func stepCircuit(step func(b *builder.Builder, s *State)) (*ir.Circuit, *State, int) {
	b := builder.New()
	s := NewState()
	copy(s.Sin[:], b.AllocN(Width))
	before := b.NbGates()
	step(b, s)
	emitted := b.NbGates() - before
	b.Output(s.Sout[:]...)
	return b.Finalize(), s, emitted
}
