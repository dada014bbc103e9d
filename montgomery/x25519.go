package montgomery

import (
	"math/big"

	"github.com/AldanTanneo/cryptography-class/field"
)

var curve25519Prime = newDecimalModulus(
	"57896044618658097711785492504343953926634992332820282019728792003956564819949", 32)

// Curve25519 is the Montgomery curve y^2 = x^3 + 486662x^2 + x over
// GF(2^255-19), the curve X25519 operates on.
var Curve25519 = NewCurve(curve25519Prime, 486662)

const x25519Bits = 256

func newDecimalModulus(decimal string, byteLen int) *field.Modulus {
	p, ok := new(big.Int).SetString(decimal, 10)
	if !ok {
		panic("montgomery: invalid prime literal")
	}
	return field.NewModulus(p, byteLen)
}

// ClampX25519 applies the RFC 7748 scalar clamp to a 32-byte
// little-endian scalar: clear the low 3 bits, clear the top bit, set
// the second-highest bit.
func ClampX25519(scalar [32]byte) [32]byte {
	scalar[0] &= 248
	scalar[31] &= 127
	scalar[31] |= 64
	return scalar
}

// DecodeUX25519 decodes a 32-byte little-endian u-coordinate, masking
// off the unused high bit of the last byte per RFC 7748 §5.
func DecodeUX25519(u [32]byte) *field.Elem {
	u[31] &= 0x7f
	return curve25519Prime.FromLEBytes(u[:])
}

// X25519 computes the RFC 7748 scalar multiplication result for a
// 32-byte scalar k (clamped internally) and u-coordinate u.
func X25519(k, u [32]byte) [32]byte {
	scalarBytes := ClampX25519(k)
	scalar := leBytesToBigInt(scalarBytes[:])
	uElem := DecodeUX25519(u)

	result := Curve25519.Ladder(scalar, x25519Bits, uElem)

	var out [32]byte
	copy(out[:], result.LEBytes())
	return out
}

func leBytesToBigInt(b []byte) *big.Int {
	be := make([]byte, len(b))
	for i, c := range b {
		be[len(b)-1-i] = c
	}
	return new(big.Int).SetBytes(be)
}
