package keccak

import "fmt"

// roundConstants caches RC for the 24 rounds; RoundConstantBit is pure so the
// table never changes.
var roundConstants [NumRounds]uint64

func init() {
	for ir := 0; ir < NumRounds; ir++ {
		roundConstants[ir] = roundConstant(ir)
	}
}

// RoundConstantBit returns rc(t), the output of the LFSR
// x^8 + x^6 + x^5 + x^4 + 1 after t mod 255 steps.
func RoundConstantBit(t uint64) uint8 {
	n := t % 255
	if n == 0 {
		return 1
	}

	// r[8] holds the bit shifted out of r[0..7]
	var r [9]uint8
	r[0] = 1
	for i := uint64(0); i < n; i++ {
		copy(r[1:], r[:8])
		r[0] = 0
		r[0] ^= r[8]
		r[4] ^= r[8]
		r[5] ^= r[8]
		r[6] ^= r[8]
		r[8] = 0
	}
	return r[0]
}

func roundConstant(ir int) uint64 {
	var rc uint64
	for j := 0; j <= 6; j++ {
		rc |= uint64(RoundConstantBit(uint64(j+7*ir))) << ((1 << j) - 1)
	}
	return rc
}

// RoundConstant returns the word RC XORed into lane (0, 0) by round ir:
// bit 2^j - 1 is rc(j + 7*ir) for j in [0, 6], all other bits are zero.
func RoundConstant(ir int) uint64 {
	if ir < 0 || ir >= NumRounds {
		panic(fmt.Sprintf("round index %d out of range [0, %d)", ir, NumRounds))
	}
	return roundConstants[ir]
}
