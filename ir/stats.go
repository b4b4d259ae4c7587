package ir

import "github.com/PolyhedraZK/ExpanderKeccakCircuit/utils"

type Stats struct {
	// number of references issued, the zero wire included
	NbRef int
	// number of input and output wires
	NbInput  int
	NbOutput int
	// number of gates of each kind
	NbGate int
	NbXor  int
	NbAnd  int
	// number of pins reading a complemented or a constant value
	NbNegatedPin  int
	NbConstantPin int
	// longest gate path from an input to any wire
	Depth int
	// largest number of AND gates on a path, i.e. the multiplicative depth
	AndDepth int
	// total cost according to some formula
	TotalCost int
}

// GetStats counts gates and pins and computes the depths of the circuit.
// The circuit is expected to be valid.
func (c *Circuit) GetStats() Stats {
	r := Stats{
		NbRef:    int(c.NbRef),
		NbInput:  len(c.Inputs),
		NbOutput: len(c.Outputs),
		NbGate:   len(c.Gates),
	}
	depth := make([]int32, c.NbRef)
	andDepth := make([]int32, c.NbRef)
	for i := range c.Gates {
		g := &c.Gates[i]
		if g.Op == OpAnd {
			r.NbAnd++
		} else {
			r.NbXor++
		}
		for _, p := range []Pin{g.PinA, g.PinB} {
			if p == PinNegated {
				r.NbNegatedPin++
			} else if p.IsConstant() {
				r.NbConstantPin++
			}
		}
		d := max(depth[g.A], depth[g.B]) + 1
		ad := max(andDepth[g.A], andDepth[g.B])
		if g.Op == OpAnd {
			ad++
		}
		depth[g.Out] = d
		andDepth[g.Out] = ad
		r.Depth = max(r.Depth, int(d))
		r.AndDepth = max(r.AndDepth, int(ad))
	}
	r.TotalCost = r.NbInput * utils.CostOfInput
	r.TotalCost += r.NbGate * utils.CostOfVariable
	r.TotalCost += r.NbAnd * utils.CostOfAndGate
	r.TotalCost += r.NbXor * utils.CostOfXorGate
	return r
}
