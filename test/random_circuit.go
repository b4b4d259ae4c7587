package test

import (
	"math/rand"

	"github.com/PolyhedraZK/ExpanderKeccakCircuit/builder"
	"github.com/PolyhedraZK/ExpanderKeccakCircuit/ir"
)

// RandomCircuitConfig describes the shape of a random gate graph.
type RandomCircuitConfig struct {
	Seed     int64
	NbInput  int
	NbGate   int
	NbOutput int
	// percentage of AND gates, the rest are XOR
	AndPercent int
	// percentage of operands read negated, and read as a constant
	NotPercent   int
	ConstPercent int
}

// RandomCircuit builds a valid gate graph whose gates read uniformly random
// earlier wires. The result only depends on conf.
func RandomCircuit(conf RandomCircuitConfig) *ir.Circuit {
	r := rand.New(rand.NewSource(conf.Seed))
	b := builder.New(builder.WithGateHint(conf.NbGate))
	wires := b.AllocN(conf.NbInput)
	wires = append(wires, b.Zero())

	operand := func() builder.Operand {
		p := r.Intn(100)
		if p < conf.ConstPercent {
			return builder.Constant(uint8(r.Intn(2)))
		}
		w := wires[r.Intn(len(wires))]
		if p < conf.ConstPercent+conf.NotPercent {
			return builder.Not(w)
		}
		return builder.Signal(w)
	}

	for i := 0; i < conf.NbGate; i++ {
		op := ir.OpXor
		if r.Intn(100) < conf.AndPercent {
			op = ir.OpAnd
		}
		wires = append(wires, b.Emit(op, operand(), operand()))
	}
	for i := 0; i < conf.NbOutput; i++ {
		b.Output(wires[r.Intn(len(wires))])
	}
	return b.Finalize()
}
