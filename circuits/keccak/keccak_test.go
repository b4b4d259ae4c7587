package keccak

import (
	"math/rand"
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/test"
	"github.com/stretchr/testify/require"

	"github.com/PolyhedraZK/ExpanderKeccakCircuit/checker"
	"github.com/PolyhedraZK/ExpanderKeccakCircuit/ir"
	ktest "github.com/PolyhedraZK/ExpanderKeccakCircuit/test"
)

func TestPermutationCircuit(t *testing.T) {
	r := rand.New(rand.NewSource(29))
	in := ktest.RandomLanes(r)
	out := in
	ktest.KeccakF1600(&out)

	var assignment PermutationCircuit
	for i := range in {
		assignment.In[i] = in[i]
		assignment.Out[i] = out[i]
	}
	require.NoError(t, test.IsSolved(&PermutationCircuit{}, &assignment, ecc.BN254.ScalarField()))

	assignment.Out[3] = out[3] ^ 1
	require.Error(t, test.IsSolved(&PermutationCircuit{}, &assignment, ecc.BN254.ScalarField()))
}

type replayCircuit struct {
	In  []frontend.Variable
	Out []frontend.Variable `gnark:",public"`
	c   *ir.Circuit
}

func (rc *replayCircuit) Define(api frontend.API) error {
	out := Replay(api, rc.c, rc.In)
	for i := range out {
		api.AssertIsEqual(out[i], rc.Out[i])
	}
	return nil
}

func TestReplayMatchesChecker(t *testing.T) {
	for seed := int64(1); seed <= 4; seed++ {
		c := ktest.RandomCircuit(ktest.RandomCircuitConfig{
			Seed: seed, NbInput: 12, NbGate: 300, NbOutput: 10,
			AndPercent: 50, NotPercent: 25, ConstPercent: 10,
		})
		r := rand.New(rand.NewSource(seed))
		input := bitset.New(12)
		for i := uint(0); i < 12; i++ {
			input.SetTo(i, r.Intn(2) == 1)
		}
		want := checker.EvalOutputs(c, input)

		circuit := &replayCircuit{In: make([]frontend.Variable, 12), Out: make([]frontend.Variable, 10), c: c}
		assignment := &replayCircuit{In: make([]frontend.Variable, 12), Out: make([]frontend.Variable, 10), c: c}
		for i := range assignment.In {
			assignment.In[i] = boolToInt(input.Test(uint(i)))
		}
		for i := range assignment.Out {
			assignment.Out[i] = boolToInt(want.Test(uint(i)))
		}
		require.NoError(t, test.IsSolved(circuit, assignment, ecc.BN254.ScalarField()), "seed %d", seed)

		assignment.Out[0] = 1 - boolToInt(want.Test(0))
		require.Error(t, test.IsSolved(circuit, assignment, ecc.BN254.ScalarField()), "seed %d", seed)
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
