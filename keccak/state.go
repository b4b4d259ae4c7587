// Package keccak synthesizes the Keccak-f[1600] permutation as a gate graph.
//
// Every step mapping reads a full lane state from State.Sin and populates all
// of State.Sout, emitting gates into a shared builder.Builder. Steps never talk
// to each other except through the reference arrays of the state.
package keccak

import (
	"fmt"

	"github.com/PolyhedraZK/ExpanderKeccakCircuit/ir"
)

const (
	// LaneSize is the number of bits of a lane (w).
	LaneSize = 64
	// Width is the number of bits of the state (b = 25w).
	Width = 25 * LaneSize
	// NumRounds is the number of rounds of Keccak-f[1600].
	NumRounds = 24
)

// Bit returns the flat index of bit z of lane (x, y).
// Every step relies on this ordering.
func Bit(x, y, z int) int {
	if x < 0 || x >= 5 || y < 0 || y >= 5 || z < 0 || z >= LaneSize {
		panic(fmt.Sprintf("lane coordinate (%d, %d, %d) out of range", x, y, z))
	}
	return (x+5*y)*LaneSize + z
}

// State holds the references of the state entering a step (Sin) and of the
// state the step produces (Sout).
type State struct {
	Sin  [Width]ir.Ref
	Sout [Width]ir.Ref
}

// NewState returns a state whose input and output are both unpopulated.
func NewState() *State {
	s := &State{}
	for i := range s.Sin {
		s.Sin[i] = ir.NoRef
		s.Sout[i] = ir.NoRef
	}
	return s
}

// NewStateFrom returns a state whose input holds in.
func NewStateFrom(in *[Width]ir.Ref) *State {
	s := NewState()
	s.Sin = *in
	return s
}

// In returns the reference of bit (x, y, z) entering the step.
func (s *State) In(x, y, z int) ir.Ref {
	return s.Sin[Bit(x, y, z)]
}

// SetOut assigns the reference of bit (x, y, z) produced by the step.
func (s *State) SetOut(x, y, z int, r ir.Ref) {
	s.Sout[Bit(x, y, z)] = r
}

// Next hands the output of a step to the next one: Sout becomes Sin and Sout
// is cleared.
func (s *State) Next() {
	s.mustBeComplete(&s.Sout, "output")
	s.Sin = s.Sout
	for i := range s.Sout {
		s.Sout[i] = ir.NoRef
	}
}

func (s *State) mustBeComplete(refs *[Width]ir.Ref, side string) {
	for i, r := range refs {
		if r == ir.NoRef {
			panic(fmt.Sprintf("state %s bit (%d, %d, %d) is unpopulated", side, i/LaneSize%5, i/LaneSize/5, i%LaneSize))
		}
	}
}

// step wraps a step mapping with the checks every step owes its caller:
// the input is complete before it runs, the output is complete after.
func (s *State) step(name string, f func()) {
	s.mustBeComplete(&s.Sin, name+" input")
	f()
	s.mustBeComplete(&s.Sout, name+" output")
}
