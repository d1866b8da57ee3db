// Package rng provides the seedable random source used by maze generators.
//
// ChaCha12 reproduces the ChaCha stream cipher with twelve rounds, keyed from
// a 64-bit seed through a PCG32 expansion. The same seed always yields the
// same stream on every platform, so a maze can be regenerated from its seed.
package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/bits"
)

const (
	// KeyWords is the number of 32-bit words in a key.
	KeyWords = 8

	blockWords  = 16
	doubleRound = 6
)

var sigma = [4]uint32{0x61707865, 0x3320646e, 0x79622d32, 0x6b206574}

// Key is the 256-bit ChaCha key.
type Key [KeyWords]uint32

// ChaCha12 is a deterministic random source. It is not safe for concurrent use.
type ChaCha12 struct {
	key     Key
	counter uint64
	block   [blockWords]uint32
	index   int
}

// New creates a source from key with the block counter at zero.
func New(key Key) *ChaCha12 {
	return &ChaCha12{key: key, index: blockWords}
}

// SeedFromUint64 derives a key from seed and returns a new source.
func SeedFromUint64(seed uint64) *ChaCha12 {
	return New(KeyFromUint64(seed))
}

// KeyFromUint64 expands a 64-bit seed into a full key with a PCG32 generator.
func KeyFromUint64(seed uint64) Key {
	const (
		mul = 6364136223846793005
		inc = 11634580027462260723
	)

	var key Key
	state := seed
	for i := range key {
		state = state*mul + inc
		xorshifted := uint32(((state >> 18) ^ state) >> 27)
		rot := int(state >> 59)
		key[i] = bits.RotateLeft32(xorshifted, -rot)
	}
	return key
}

// EntropyKey reads a fresh key from the operating system.
func EntropyKey() (Key, error) {
	var buf [KeyWords * 4]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return Key{}, err
	}
	var key Key
	for i := range key {
		key[i] = binary.LittleEndian.Uint32(buf[i*4:])
	}
	return key, nil
}

// EntropySeed returns a random non-zero seed for callers that need a concrete,
// repeatable seed rather than an entropy key.
func EntropySeed() (uint64, error) {
	var buf [8]byte
	for {
		if _, err := crand.Read(buf[:]); err != nil {
			return 0, err
		}
		if seed := binary.LittleEndian.Uint64(buf[:]); seed != 0 {
			return seed, nil
		}
	}
}

// Key returns the key the source was created with.
func (c *ChaCha12) Key() Key {
	return c.key
}

// Reset rewinds the source to the start of its stream.
func (c *ChaCha12) Reset() {
	c.counter = 0
	c.index = blockWords
}

// Uint32 returns the next 32-bit word of the stream.
func (c *ChaCha12) Uint32() uint32 {
	if c.index >= blockWords {
		c.refill()
	}
	v := c.block[c.index]
	c.index++
	return v
}

// Uint64 returns the next two words of the stream, low word first.
func (c *ChaCha12) Uint64() uint64 {
	lo := uint64(c.Uint32())
	hi := uint64(c.Uint32())
	return hi<<32 | lo
}

func (c *ChaCha12) refill() {
	var in [blockWords]uint32
	copy(in[0:4], sigma[:])
	copy(in[4:12], c.key[:])
	in[12] = uint32(c.counter)
	in[13] = uint32(c.counter >> 32)

	x := in
	for i := 0; i < doubleRound; i++ {
		quarterRound(&x, 0, 4, 8, 12)
		quarterRound(&x, 1, 5, 9, 13)
		quarterRound(&x, 2, 6, 10, 14)
		quarterRound(&x, 3, 7, 11, 15)

		quarterRound(&x, 0, 5, 10, 15)
		quarterRound(&x, 1, 6, 11, 12)
		quarterRound(&x, 2, 7, 8, 13)
		quarterRound(&x, 3, 4, 9, 14)
	}

	for i := range x {
		c.block[i] = x[i] + in[i]
	}
	c.counter++
	c.index = 0
}

func quarterRound(x *[blockWords]uint32, a, b, c, d int) {
	x[a] += x[b]
	x[d] = bits.RotateLeft32(x[d]^x[a], 16)
	x[c] += x[d]
	x[b] = bits.RotateLeft32(x[b]^x[c], 12)
	x[a] += x[b]
	x[d] = bits.RotateLeft32(x[d]^x[a], 8)
	x[c] += x[d]
	x[b] = bits.RotateLeft32(x[b]^x[c], 7)
}
