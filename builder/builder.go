// Package builder provides the wire pool and gate graph shared by every step
// of a circuit synthesis session:
// - references are issued in strictly increasing order and never reused,
// - gates are append-only and can only read references issued before them,
// - a single gate shape is emitted, negation and constants live in pin selectors.
package builder

import (
	"fmt"
	"runtime"
	"slices"

	"github.com/consensys/gnark/logger"

	"github.com/PolyhedraZK/ExpanderKeccakCircuit/ir"
	"github.com/PolyhedraZK/ExpanderKeccakCircuit/utils"
)

// Builder owns the wire pool and the gate graph of one synthesis session.
// It is not safe for concurrent use; independent sessions need independent builders.
type Builder struct {
	config config

	// next reference to issue
	next ir.Ref

	inputs  []ir.Ref
	gates   []ir.Gate
	outputs []ir.Ref

	// source location of each gate, filled in profiling mode
	gateSourceInfo []utils.SourceInfo
}

// New returns a builder whose only allocated wire is ir.ZeroRef.
func New(opts ...Option) *Builder {
	b := &Builder{
		config: defaultConfig(),
	}
	for _, opt := range opts {
		opt(&b.config)
	}
	b.Reset()
	return b
}

// Reset discards every reference and gate and starts a new session with the same options.
func (b *Builder) Reset() {
	b.next = ir.ZeroRef + 1
	b.inputs = nil
	b.gates = make([]ir.Gate, 0, b.config.gateHint)
	b.outputs = nil
	b.gateSourceInfo = nil
}

// Zero returns the pre-allocated constant-zero wire.
func (b *Builder) Zero() ir.Ref {
	return ir.ZeroRef
}

func (b *Builder) newRef() ir.Ref {
	if uint32(b.next) >= b.config.maxRefs {
		panic(fmt.Sprintf("wire pool exhausted: %d references issued", b.next))
	}
	r := b.next
	b.next++
	return r
}

// Alloc returns a fresh wire driven from outside the circuit.
func (b *Builder) Alloc() ir.Ref {
	r := b.newRef()
	b.inputs = append(b.inputs, r)
	return r
}

// AllocN returns n fresh input wires with consecutive references.
func (b *Builder) AllocN(n int) []ir.Ref {
	res := make([]ir.Ref, n)
	for i := range res {
		res[i] = b.Alloc()
	}
	return res
}

// Emit records op(a, c) as a new gate and returns its output wire.
// It is the universal gate primitive every boolean operation compiles to.
func (b *Builder) Emit(op ir.Op, a, c Operand) ir.Ref {
	return b.emit(op, a, c)
}

// And returns a wire carrying a AND c.
func (b *Builder) And(a, c Operand) ir.Ref {
	return b.emit(ir.OpAnd, a, c)
}

// Xor returns a wire carrying a XOR c.
func (b *Builder) Xor(a, c Operand) ir.Ref {
	return b.emit(ir.OpXor, a, c)
}

// emit must be called directly by the exported gate methods, profiling relies on the call depth.
func (b *Builder) emit(op ir.Op, a, c Operand) ir.Ref {
	var newGate func(a ir.Ref, pinA ir.Pin, b ir.Ref, pinB ir.Pin, out ir.Ref) ir.Gate
	switch op {
	case ir.OpAnd:
		newGate = ir.NewAndGate
	case ir.OpXor:
		newGate = ir.NewXorGate
	default:
		panic(fmt.Sprintf("unknown gate op %d", op))
	}
	ra, pa := b.resolve(a)
	rc, pc := b.resolve(c)
	out := b.newRef()
	b.gates = append(b.gates, newGate(ra, pa, rc, pc, out))
	if b.config.profiling {
		b.recordCaller(2)
	}
	return out
}

// resolve turns an operand into pin selector metadata, checking that the
// referenced wire already exists.
func (b *Builder) resolve(o Operand) (ir.Ref, ir.Pin) {
	r, p := o.pin()
	if p.IsConstant() {
		return r, p
	}
	if r == ir.NoRef {
		panic("gate input is an unpopulated reference")
	}
	if r >= b.next {
		panic(fmt.Sprintf("gate input %d is not allocated yet", r))
	}
	return r, p
}

func (b *Builder) recordCaller(skip int) {
	_, file, line, ok := runtime.Caller(skip + 1)
	si := utils.SourceInfo{File: "unknown", Line: 0}
	if ok {
		si = utils.SourceInfo{File: file, Line: line}
	}
	b.gateSourceInfo = append(b.gateSourceInfo, si)
}

// Output appends wires to the outputs of the circuit.
func (b *Builder) Output(refs ...ir.Ref) {
	for _, r := range refs {
		if r == ir.NoRef || r >= b.next {
			panic(fmt.Sprintf("output %d is not allocated", r))
		}
	}
	b.outputs = append(b.outputs, refs...)
}

// NbRefs returns the number of references issued so far, the zero wire included.
func (b *Builder) NbRefs() int {
	return int(b.next)
}

// NbGates returns the number of gates emitted so far.
func (b *Builder) NbGates() int {
	return len(b.gates)
}

// Gates returns the gates emitted so far. The slice must not be modified.
func (b *Builder) Gates() []ir.Gate {
	return b.gates
}

// Finalize returns the gate graph built so far. The builder stays usable;
// later emissions do not affect the returned circuit.
func (b *Builder) Finalize() *ir.Circuit {
	c := &ir.Circuit{
		NbRef:   uint32(b.next),
		Inputs:  slices.Clone(b.inputs),
		Gates:   slices.Clone(b.gates),
		Outputs: slices.Clone(b.outputs),
	}
	log := logger.Logger()
	log.Debug().
		Int("nbRef", int(c.NbRef)).
		Int("nbInput", len(c.Inputs)).
		Int("nbGate", len(c.Gates)).
		Int("nbOutput", len(c.Outputs)).
		Msg("gate graph finalized")
	return c
}
