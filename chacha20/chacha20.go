// Package chacha20 implements the ChaCha20 block function and the
// keystream cipher built on it, matching RFC 7539/8439: a 256-bit key,
// a 96-bit nonce split into three little-endian words, and a 32-bit
// block counter.
package chacha20

import (
	"encoding/binary"
	"io"

	"github.com/AldanTanneo/cryptography-class/streamio"
)

// the four constant words "expand 32-byte k", little-endian.
const (
	c0 = 0x61707865
	c1 = 0x3320646e
	c2 = 0x79622d32
	c3 = 0x6b206574
)

// Nonce is the 96-bit ChaCha20 nonce, held as three little-endian
// 32-bit words per RFC 7539 rather than a flat byte array, matching
// how the block function indexes it directly into the state.
type Nonce [3]uint32

// NonceFromBytes splits a 12-byte nonce into its three little-endian
// words.
func NonceFromBytes(b [12]byte) Nonce {
	return Nonce{
		binary.LittleEndian.Uint32(b[0:4]),
		binary.LittleEndian.Uint32(b[4:8]),
		binary.LittleEndian.Uint32(b[8:12]),
	}
}

type state [16]uint32

func newState(key *[32]byte, counter uint32, nonce Nonce) state {
	var s state
	s[0], s[1], s[2], s[3] = c0, c1, c2, c3
	for i := 0; i < 8; i++ {
		s[4+i] = binary.LittleEndian.Uint32(key[4*i : 4*i+4])
	}
	s[12] = counter
	s[13], s[14], s[15] = nonce[0], nonce[1], nonce[2]
	return s
}

func quarterRound(s *state, i, j, k, l int) {
	a, b, c, d := s[i], s[j], s[k], s[l]

	a += b
	d ^= a
	d = bitsRotateLeft32(d, 16)

	c += d
	b ^= c
	b = bitsRotateLeft32(b, 12)

	a += b
	d ^= a
	d = bitsRotateLeft32(d, 8)

	c += d
	b ^= c
	b = bitsRotateLeft32(b, 7)

	s[i], s[j], s[k], s[l] = a, b, c, d
}

func bitsRotateLeft32(x uint32, n uint) uint32 {
	return (x << n) | (x >> (32 - n))
}

func doubleRound(s *state) {
	quarterRound(s, 0, 4, 8, 12)
	quarterRound(s, 1, 5, 9, 13)
	quarterRound(s, 2, 6, 10, 14)
	quarterRound(s, 3, 7, 11, 15)

	quarterRound(s, 0, 5, 10, 15)
	quarterRound(s, 1, 6, 11, 12)
	quarterRound(s, 2, 7, 8, 13)
	quarterRound(s, 3, 4, 9, 14)
}

func (s *state) blockRound() {
	init := *s
	for i := 0; i < 10; i++ {
		doubleRound(s)
	}
	for i := range s {
		s[i] += init[i]
	}
}

func (s *state) serialize() [64]byte {
	var out [64]byte
	for i, word := range s {
		binary.LittleEndian.PutUint32(out[4*i:4*i+4], word)
	}
	return out
}

// Block computes the 64-byte ChaCha20 block function output for a
// single (key, counter, nonce) input.
func Block(key [32]byte, counter uint32, nonce Nonce) [64]byte {
	s := newState(&key, counter, nonce)
	s.blockRound()
	return s.serialize()
}

// Cipher XORs an underlying reader's bytes against the ChaCha20
// keystream, one 64-byte block at a time. Its internal counter starts
// at zero and is incremented before the first block is generated, so
// the first produced keystream block uses counter 1 — block 0 is
// reserved for callers (such as the AEAD construction) that need to
// derive material from it separately before streaming begins.
type Cipher struct {
	key   [32]byte
	nonce Nonce
	r     io.Reader

	counter uint32
	block   [64]byte
	pos     int
	end     int
}

// NewCipher returns a Cipher that XORs r's bytes against the keystream
// derived from key and nonce, starting at block counter 1.
func NewCipher(key [32]byte, nonce Nonce, r io.Reader) *Cipher {
	return &Cipher{key: key, nonce: nonce, r: r, pos: 64, end: 64}
}

func (c *Cipher) Read(buf []byte) (int, error) {
	if c.pos >= c.end {
		n, err := streamio.ReadAll(c.r, c.block[:])
		if err != nil {
			return 0, err
		}
		if n == 0 {
			return 0, io.EOF
		}

		c.counter++
		ks := Block(c.key, c.counter, c.nonce)
		for i := 0; i < n; i++ {
			c.block[i] ^= ks[i]
		}
		c.pos = 0
		c.end = n
	}
	n := copy(buf, c.block[c.pos:c.end])
	c.pos += n
	return n, nil
}

// XORKeyStream encrypts or decrypts src into dst in one call, starting
// at the given block counter (unlike Cipher, which always starts its
// internal counter at 1). Used for one-shot key derivation blocks and
// by callers that need explicit control of the starting counter.
func XORKeyStream(dst, src []byte, key [32]byte, nonce Nonce, startCounter uint32) {
	counter := startCounter
	for off := 0; off < len(src); off += 64 {
		ks := Block(key, counter, nonce)
		end := off + 64
		if end > len(src) {
			end = len(src)
		}
		for i := off; i < end; i++ {
			dst[i] = src[i] ^ ks[i-off]
		}
		counter++
	}
}
