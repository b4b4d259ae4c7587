package checker

import (
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/assert"

	"github.com/PolyhedraZK/ExpanderKeccakCircuit/builder"
	"github.com/PolyhedraZK/ExpanderKeccakCircuit/ir"
)

func TestEvalPins(t *testing.T) {
	b := builder.New()
	x := b.Alloc()
	y := b.Alloc()
	b.Output(
		b.And(builder.Signal(x), builder.Signal(y)),
		b.And(builder.Not(x), builder.Signal(y)),
		b.Xor(builder.Signal(x), builder.Signal(y)),
		b.Xor(builder.Constant(1), builder.Signal(x)),
		b.Xor(builder.Constant(0), builder.Signal(y)),
		b.And(builder.Constant(1), builder.Not(y)),
		b.Xor(builder.Signal(b.Zero()), builder.Not(b.Zero())),
	)
	c := b.Finalize()

	for v := 0; v < 4; v++ {
		xv, yv := v&1 == 1, v&2 == 2
		in := bitset.New(2)
		in.SetTo(0, xv)
		in.SetTo(1, yv)
		out := EvalOutputs(c, in)
		want := []bool{xv && yv, !xv && yv, xv != yv, !xv, yv, !yv, true}
		for i, w := range want {
			assert.Equal(t, w, out.Test(uint(i)), "x=%v y=%v output %d", xv, yv, i)
		}
	}
}

func TestEvalZeroWire(t *testing.T) {
	b := builder.New()
	b.Alloc()
	c := b.Finalize()
	values := Eval(c, bitset.New(1).Set(0))
	assert.False(t, values.Test(uint(ir.ZeroRef)))
	assert.True(t, values.Test(1))
}

func TestCheckCircuit(t *testing.T) {
	b := builder.New()
	x := b.Alloc()
	y := b.Alloc()
	b.Output(b.Xor(builder.Signal(x), builder.Signal(y)))
	c := b.Finalize()

	in := bitset.New(2).Set(0)
	assert.True(t, CheckCircuit(c, in, bitset.New(1).Set(0)))
	assert.False(t, CheckCircuit(c, in, bitset.New(1)))
}
