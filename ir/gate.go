package ir

import "math"

// Ref identifies one boolean wire of a circuit.
type Ref uint32

const (
	// ZeroRef is the constant-zero wire, allocated before anything else.
	ZeroRef Ref = 0
	// NoRef marks an unpopulated slot. It is never issued by a builder.
	NoRef Ref = math.MaxUint32
)

// Op enumerates the operations a gate can apply to its two pins.
type Op uint8

const (
	OpXor Op = iota
	OpAnd
)

func (op Op) String() string {
	switch op {
	case OpXor:
		return "xor"
	case OpAnd:
		return "and"
	}
	return "op?"
}

// Pin selects how a gate reads one of its input wires.
type Pin uint8

const (
	// PinRaw reads the wire as is.
	PinRaw Pin = iota
	// PinNegated reads the complement of the wire.
	PinNegated
	// PinZero ignores the wire and reads constant 0.
	PinZero
	// PinOne ignores the wire and reads constant 1.
	PinOne
)

// Apply returns the value the pin reads from a wire carrying v.
func (p Pin) Apply(v bool) bool {
	switch p {
	case PinRaw:
		return v
	case PinNegated:
		return !v
	case PinZero:
		return false
	case PinOne:
		return true
	}
	panic("unknown pin")
}

// IsConstant reports whether the pin ignores its wire.
func (p Pin) IsConstant() bool {
	return p == PinZero || p == PinOne
}

// Gate is the single gate shape of the circuit: out = op(pinA(a), pinB(b)).
type Gate struct {
	Op   Op
	A    Ref
	PinA Pin
	B    Ref
	PinB Pin
	Out  Ref
}

// Eval applies the gate to the values carried by its two input wires.
func (g *Gate) Eval(a, b bool) bool {
	x, y := g.PinA.Apply(a), g.PinB.Apply(b)
	if g.Op == OpAnd {
		return x && y
	}
	return x != y
}

// NewXorGate returns the gate out = pinA(a) XOR pinB(b).
func NewXorGate(a Ref, pinA Pin, b Ref, pinB Pin, out Ref) Gate {
	return Gate{Op: OpXor, A: a, PinA: pinA, B: b, PinB: pinB, Out: out}
}

// NewAndGate returns the gate out = pinA(a) AND pinB(b).
func NewAndGate(a Ref, pinA Pin, b Ref, pinB Pin, out Ref) Gate {
	return Gate{Op: OpAnd, A: a, PinA: pinA, B: b, PinB: pinB, Out: out}
}
