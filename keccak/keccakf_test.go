package keccak

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"

	"github.com/PolyhedraZK/ExpanderKeccakCircuit/builder"
	"github.com/PolyhedraZK/ExpanderKeccakCircuit/checker"
	"github.com/PolyhedraZK/ExpanderKeccakCircuit/ir"
	"github.com/PolyhedraZK/ExpanderKeccakCircuit/test"
)

func TestRoundMatchesReference(t *testing.T) {
	r := rand.New(rand.NewSource(17))
	a := test.NewAssert(t)
	for _, round := range []int{0, 1, 7, 23} {
		c, _, _ := stepCircuit(func(b *builder.Builder, s *State) {
			Round(b, s, round)
			// Round leaves its result in Sin
			s.Sout = s.Sin
		})
		in := test.RandomLanes(r)
		want := in
		test.KeccakRound(&want, round)
		a.MapsLanes(c, in, want)
	}
}

func TestPermutation(t *testing.T) {
	c := Synthesize()
	a := test.NewAssert(t)
	a.Valid(c)

	st := c.GetStats()
	assert.Equal(t, Width, st.NbInput)
	assert.Equal(t, Width, st.NbOutput)
	assert.LessOrEqual(t, st.NbGate, MaxGates)
	assert.Equal(t, NumRounds*Width, st.NbAnd)
	assert.Equal(t, NumRounds, st.AndDepth)
	// every gate reaches an output
	assert.Len(t, ir.Optimize(c).Gates, st.NbGate)

	var zero [25]uint64
	want := zero
	test.KeccakF1600(&want)
	a.MapsLanes(c, zero, want)

	r := rand.New(rand.NewSource(23))
	for i := 0; i < 4; i++ {
		in := test.RandomLanes(r)
		want := in
		test.KeccakF1600(&want)
		a.MapsLanes(c, in, want)
	}
}

func TestPermutationKeccak256(t *testing.T) {
	c := Synthesize()
	permute := func(a *[25]uint64) {
		*a = test.BitsToLanes(checker.EvalOutputs(c, test.LanesToBits(a)))
	}
	for _, msg := range []string{"", "abc", "The quick brown fox jumps over the lazy dog"} {
		h := sha3.NewLegacyKeccak256()
		h.Write([]byte(msg))
		require.Equal(t, h.Sum(nil), test.Keccak256([]byte(msg), permute), "message %q", msg)
	}
}

func TestGateInputsPrecedeOutputs(t *testing.T) {
	b := builder.New()
	s := NewState()
	copy(s.Sin[:], b.AllocN(Width))
	for round := 0; round < 2; round++ {
		Chi(b, s)
		s.Next()
		Iota(b, s, round)
		s.Next()
	}
	for _, g := range b.Gates() {
		require.Less(t, g.A, g.Out)
		require.Less(t, g.B, g.Out)
	}
	assert.NoError(t, ir.Validate(b.Finalize()))
}

func TestPermuteSharesReferenceSpace(t *testing.T) {
	b := builder.New()
	var in [Width]ir.Ref
	copy(in[:], b.AllocN(Width))
	first := Permute(b, in)
	n := b.NbRefs()
	second := Permute(b, first)
	for i := range second {
		assert.GreaterOrEqual(t, int(second[i]), n)
	}
	assert.Equal(t, 2*(n-Width-1), b.NbRefs()-Width-1)
}
