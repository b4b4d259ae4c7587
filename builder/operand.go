package builder

import (
	"fmt"

	"github.com/PolyhedraZK/ExpanderKeccakCircuit/ir"
)

type operandKind uint8

const (
	kindSignal operandKind = iota
	kindNotSignal
	kindConstant
)

// Operand is one input of a gate: a wire, the complement of a wire, or a constant bit.
type Operand struct {
	kind operandKind
	ref  ir.Ref
	bit  uint8
}

// Signal reads wire r as is.
func Signal(r ir.Ref) Operand {
	return Operand{kind: kindSignal, ref: r}
}

// Not reads the complement of wire r.
func Not(r ir.Ref) Operand {
	return Operand{kind: kindNotSignal, ref: r}
}

// Constant reads a fixed bit, 0 or 1.
func Constant(bit uint8) Operand {
	if bit > 1 {
		panic(fmt.Sprintf("constant operand must be 0 or 1, got %d", bit))
	}
	return Operand{kind: kindConstant, bit: bit}
}

// pin returns the wire and the selector a gate uses to read the operand.
// Constants are read through the zero wire.
func (o Operand) pin() (ir.Ref, ir.Pin) {
	switch o.kind {
	case kindSignal:
		return o.ref, ir.PinRaw
	case kindNotSignal:
		return o.ref, ir.PinNegated
	case kindConstant:
		if o.bit == 1 {
			return ir.ZeroRef, ir.PinOne
		}
		return ir.ZeroRef, ir.PinZero
	}
	panic("unknown operand kind")
}

func (o Operand) String() string {
	switch o.kind {
	case kindSignal:
		return fmt.Sprintf("v%d", o.ref)
	case kindNotSignal:
		return fmt.Sprintf("!v%d", o.ref)
	}
	return fmt.Sprintf("%d", o.bit)
}
