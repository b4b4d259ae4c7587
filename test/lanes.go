package test

import (
	"encoding/binary"
	"math/rand"

	"github.com/bits-and-blooms/bitset"
)

// LanesToBits lays out a state as circuit bits: bit z of lane i is bit i*64+z.
func LanesToBits(a *[25]uint64) *bitset.BitSet {
	return bitset.From(append([]uint64(nil), a[:]...))
}

// BitsToLanes is the inverse of LanesToBits.
func BitsToLanes(b *bitset.BitSet) [25]uint64 {
	var a [25]uint64
	for i := range a {
		for z := 0; z < 64; z++ {
			if b.Test(uint(i*64 + z)) {
				a[i] |= 1 << z
			}
		}
	}
	return a
}

// RandomLanes returns a state filled from r.
func RandomLanes(r *rand.Rand) [25]uint64 {
	var a [25]uint64
	for i := range a {
		a[i] = r.Uint64()
	}
	return a
}

// AbsorbBlock XORs a rate-sized block into the first lanes of a, reading
// each lane little-endian as the sponge construction does.
func AbsorbBlock(a *[25]uint64, block []byte) {
	for i := 0; i+8 <= len(block); i += 8 {
		a[i/8] ^= binary.LittleEndian.Uint64(block[i:])
	}
}

// SqueezeBytes reads the first n bytes of the state, little-endian per lane.
func SqueezeBytes(a *[25]uint64, n int) []byte {
	out := make([]byte, 0, 200)
	for i := range a {
		out = binary.LittleEndian.AppendUint64(out, a[i])
	}
	return out[:n]
}

// Keccak256 hashes a message shorter than one block (135 bytes) with the
// legacy Keccak padding, running permute on the padded state.
func Keccak256(msg []byte, permute func(a *[25]uint64)) []byte {
	const rate = 136
	if len(msg) >= rate {
		panic("message must fit in a single block")
	}
	block := make([]byte, rate)
	copy(block, msg)
	block[len(msg)] ^= 0x01
	block[rate-1] ^= 0x80
	var a [25]uint64
	AbsorbBlock(&a, block)
	permute(&a)
	return SqueezeBytes(&a, 32)
}
