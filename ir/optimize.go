package ir

import "github.com/bits-and-blooms/bitset"

// Optimize removes the gates whose result never reaches an output and
// renumbers the remaining wires densely. Inputs keep their order and
// relative references keep their order, so the result is still valid.
func Optimize(c *Circuit) *Circuit {
	used := bitset.New(uint(c.NbRef))
	for _, o := range c.Outputs {
		used.Set(uint(o))
	}
	markPin := func(r Ref, p Pin) {
		if !p.IsConstant() {
			used.Set(uint(r))
		}
	}
	for i := len(c.Gates) - 1; i >= 0; i-- {
		g := &c.Gates[i]
		if used.Test(uint(g.Out)) {
			markPin(g.A, g.PinA)
			markPin(g.B, g.PinB)
		}
	}

	newId := make([]Ref, c.NbRef)
	for i := range newId {
		newId[i] = NoRef
	}
	newId[ZeroRef] = ZeroRef
	nextId := Ref(1)

	// inputs and gate outputs are numbered in the order they were issued
	isInput := bitset.New(uint(c.NbRef))
	for _, in := range c.Inputs {
		isInput.Set(uint(in))
	}
	isKept := isInput.Clone()
	for i := range c.Gates {
		if used.Test(uint(c.Gates[i].Out)) {
			isKept.Set(uint(c.Gates[i].Out))
		}
	}
	for i, e := isKept.NextSet(1); e; i, e = isKept.NextSet(i + 1) {
		newId[i] = nextId
		nextId++
	}

	res := &Circuit{
		NbRef:   uint32(nextId),
		Inputs:  make([]Ref, len(c.Inputs)),
		Gates:   make([]Gate, 0, len(c.Gates)),
		Outputs: make([]Ref, len(c.Outputs)),
	}
	for i, in := range c.Inputs {
		res.Inputs[i] = newId[in]
	}
	for _, g := range c.Gates {
		if !used.Test(uint(g.Out)) {
			continue
		}
		g.A = newId[g.A]
		g.B = newId[g.B]
		g.Out = newId[g.Out]
		res.Gates = append(res.Gates, g)
	}
	for i, o := range c.Outputs {
		res.Outputs[i] = newId[o]
	}
	return res
}
