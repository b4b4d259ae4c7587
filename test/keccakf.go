// Package test provides tooling shared by the tests of this module: a plain
// software Keccak-f[1600] used as the reference, converters between lanes and
// circuit bits, assertions and random gate graphs.
package test

import "math/bits"

// rc stores the round constants of FIPS 202, independently of the LFSR
// that the circuit uses.
var rc = [24]uint64{
	0x0000000000000001,
	0x0000000000008082,
	0x800000000000808A,
	0x8000000080008000,
	0x000000000000808B,
	0x0000000080000001,
	0x8000000080008081,
	0x8000000000008009,
	0x000000000000008A,
	0x0000000000000088,
	0x0000000080008009,
	0x000000008000000A,
	0x000000008000808B,
	0x800000000000008B,
	0x8000000000008089,
	0x8000000000008003,
	0x8000000000008002,
	0x8000000000000080,
	0x000000000000800A,
	0x800000008000000A,
	0x8000000080008081,
	0x8000000000008080,
	0x0000000080000001,
	0x8000000080008008,
}

// rotation of lane x+5*y in the rho step
var rotc = [25]int{
	0, 1, 62, 28, 27,
	36, 44, 6, 55, 20,
	3, 10, 43, 25, 39,
	41, 45, 15, 21, 8,
	18, 2, 61, 56, 14,
}

// RoundConstants returns the FIPS 202 round constants.
func RoundConstants() [24]uint64 {
	return rc
}

// KeccakF1600 applies the permutation to a, lane (x, y) being a[x+5*y].
func KeccakF1600(a *[25]uint64) {
	for round := 0; round < 24; round++ {
		KeccakRound(a, round)
	}
}

// KeccakRound applies round number round of the permutation to a.
func KeccakRound(a *[25]uint64, round int) {
	var c [5]uint64
	for x := 0; x < 5; x++ {
		c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
	}
	for x := 0; x < 5; x++ {
		d := c[(x+4)%5] ^ bits.RotateLeft64(c[(x+1)%5], 1)
		for y := 0; y < 5; y++ {
			a[x+5*y] ^= d
		}
	}

	// rho and pi: B[y, 2x+3y] = rot(A[x, y])
	var b [25]uint64
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			b[y+5*((2*x+3*y)%5)] = bits.RotateLeft64(a[x+5*y], rotc[x+5*y])
		}
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			a[x+5*y] = b[x+5*y] ^ (^b[(x+1)%5+5*y] & b[(x+2)%5+5*y])
		}
	}

	a[0] ^= rc[round]
}

// Chi applies only the chi step to a.
func Chi(a *[25]uint64) {
	b := *a
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			a[x+5*y] = b[x+5*y] ^ (^b[(x+1)%5+5*y] & b[(x+2)%5+5*y])
		}
	}
}
