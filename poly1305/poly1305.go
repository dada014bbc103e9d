// Package poly1305 implements the Poly1305 one-time message
// authenticator over GF(2^130-5), built on github.com/holiman/uint256
// for the field arithmetic instead of a hand-rolled bignum loop.
package poly1305

import (
	"io"

	"github.com/holiman/uint256"

	"github.com/AldanTanneo/cryptography-class/streamio"
)

// modulus is 2^130 - 5, computed once at init time rather than parsed
// from a hex literal.
var modulus = newModulus()

func newModulus() *uint256.Int {
	p := new(uint256.Int).Lsh(uint256.NewInt(1), 130)
	return p.Sub(p, uint256.NewInt(5))
}

// clampedR applies the RFC 8439 clamping mask to the first half of the
// one-time key, operating byte-wise on the little-endian key exactly
// as the reference clamping pseudocode does.
func clampedR(key *[32]byte) *uint256.Int {
	var r [16]byte
	copy(r[:], key[:16])
	r[3] &= 15
	r[7] &= 15
	r[11] &= 15
	r[15] &= 15
	r[4] &= 252
	r[8] &= 252
	r[12] &= 252
	return leBytesToUint256(r[:])
}

// leBytesToUint256 interprets b as a little-endian integer.
func leBytesToUint256(b []byte) *uint256.Int {
	be := make([]byte, len(b))
	for i, c := range b {
		be[len(b)-1-i] = c
	}
	return new(uint256.Int).SetBytes(be)
}

// Sum reads r to EOF in 16-byte blocks, accumulating the Poly1305 tag
// under the given one-time key, and returns the 16-byte little-endian
// tag.
func Sum(r io.Reader, key [32]byte) ([16]byte, error) {
	rVal := clampedR(&key)
	s := leBytesToUint256(key[16:])

	acc := new(uint256.Int)
	buf := make([]byte, 17)
	for {
		n, err := streamio.ReadAll(r, buf[:16])
		if err != nil {
			return [16]byte{}, err
		}
		if n == 0 {
			break
		}
		block := buf[:n+1]
		block[n] = 1

		m := leBytesToUint256(block)
		acc.AddMod(acc, m, modulus)
		acc.MulMod(acc, rVal, modulus)
	}
	acc.Add(acc, s)

	be := acc.Bytes32()
	var tag [16]byte
	for i, c := range be[16:32] {
		tag[15-i] = c
	}
	return tag, nil
}
