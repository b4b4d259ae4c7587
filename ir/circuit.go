package ir

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/bits-and-blooms/bitset"
)

// Circuit is a gate graph over boolean wires.
type Circuit struct {
	// number of references issued, ZeroRef included
	NbRef uint32
	// wires driven from outside, in the order inputs are assigned
	Inputs []Ref
	// gates in emission order; the graph is acyclic because every input of a gate
	// is defined before the gate itself
	Gates []Gate
	// wires exposed as the result of the circuit
	Outputs []Ref
}

// Validate checks that every reference is in range, that every gate output is
// fresh and that every gate input is defined before it is read.
// Every issued reference is the zero wire, an input or a gate output, so NbRef
// must be exactly 1 + len(Inputs) + len(Gates).
func Validate(c *Circuit) error {
	if c.NbRef == 0 {
		return fmt.Errorf("zero wire is not allocated")
	}
	if want := 1 + uint64(len(c.Inputs)) + uint64(len(c.Gates)); uint64(c.NbRef) != want {
		return fmt.Errorf("reference count %d does not match %d inputs and %d gates", c.NbRef, len(c.Inputs), len(c.Gates))
	}
	defined := bitset.New(uint(c.NbRef))
	defined.Set(uint(ZeroRef))
	for i, in := range c.Inputs {
		if uint32(in) >= c.NbRef {
			return fmt.Errorf("input %d references %d out of bound", i, in)
		}
		if defined.Test(uint(in)) {
			return fmt.Errorf("input %d references %d which is already defined", i, in)
		}
		defined.Set(uint(in))
	}
	checkPin := func(gid int, name string, r Ref, p Pin) error {
		if p > PinOne {
			return fmt.Errorf("gate %d pin %s has unknown selector %d", gid, name, p)
		}
		if p.IsConstant() {
			if r != ZeroRef {
				return fmt.Errorf("gate %d constant pin %s must reference the zero wire, got %d", gid, name, r)
			}
			return nil
		}
		if uint32(r) >= c.NbRef {
			return fmt.Errorf("gate %d input %s references %d out of bound", gid, name, r)
		}
		if !defined.Test(uint(r)) {
			return fmt.Errorf("gate %d input %s references %d before it is defined", gid, name, r)
		}
		return nil
	}
	for i := range c.Gates {
		g := &c.Gates[i]
		if g.Op != OpXor && g.Op != OpAnd {
			return fmt.Errorf("gate %d has unknown op %d", i, g.Op)
		}
		if err := checkPin(i, "a", g.A, g.PinA); err != nil {
			return err
		}
		if err := checkPin(i, "b", g.B, g.PinB); err != nil {
			return err
		}
		if uint32(g.Out) >= c.NbRef {
			return fmt.Errorf("gate %d output %d out of bound", i, g.Out)
		}
		if g.Out <= g.A || g.Out <= g.B {
			return fmt.Errorf("gate %d output %d is not newer than its inputs", i, g.Out)
		}
		if defined.Test(uint(g.Out)) {
			return fmt.Errorf("gate %d output %d is defined twice", i, g.Out)
		}
		defined.Set(uint(g.Out))
	}
	for i, o := range c.Outputs {
		if uint32(o) >= c.NbRef || !defined.Test(uint(o)) {
			return fmt.Errorf("output %d references undefined wire %d", i, o)
		}
	}
	return nil
}

func pinToStr(r Ref, p Pin) string {
	switch p {
	case PinNegated:
		return "!v" + strconv.Itoa(int(r))
	case PinZero:
		return "0"
	case PinOne:
		return "1"
	}
	return "v" + strconv.Itoa(int(r))
}

// Fprint writes one line per gate, then the outputs.
func (c *Circuit) Fprint(w io.Writer) {
	fmt.Fprintf(w, "nbRef=%d nbIn=%d nbGate=%d nbOut=%d\n", c.NbRef, len(c.Inputs), len(c.Gates), len(c.Outputs))
	for i, in := range c.Inputs {
		fmt.Fprintf(w, "v%d = in%d\n", in, i)
	}
	for _, g := range c.Gates {
		fmt.Fprintf(w, "v%d = %s(%s, %s)\n", g.Out, g.Op, pinToStr(g.A, g.PinA), pinToStr(g.B, g.PinB))
	}
	for i, o := range c.Outputs {
		fmt.Fprintf(w, "out%d = v%d\n", i, o)
	}
}

func (c *Circuit) Print() {
	c.Fprint(os.Stdout)
}
