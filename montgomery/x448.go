package montgomery

import "github.com/AldanTanneo/cryptography-class/field"

var curve448Prime = newDecimalModulus(
	"72683872429560689054932380788800453435364136068731806028149019918061232816673"+
		"0772686396383698676545930088884461843637361053498018365439", 56)

// Curve448 is the Montgomery curve y^2 = x^3 + 156326x^2 + x over
// GF(2^448 - 2^224 - 1), the curve X448 operates on.
var Curve448 = NewCurve(curve448Prime, 156326)

const x448Bits = 448

// ClampX448 applies the RFC 7748 scalar clamp for X448: clear the low
// 2 bits, set the top bit.
func ClampX448(scalar [56]byte) [56]byte {
	scalar[0] &= 252
	scalar[55] |= 128
	return scalar
}

// DecodeUX448 decodes a 56-byte little-endian u-coordinate. Unlike
// X25519, no high bit needs masking: 448 bits exactly fills the
// encoding.
func DecodeUX448(u [56]byte) *field.Elem {
	return curve448Prime.FromLEBytes(u[:])
}

// X448 computes the RFC 7748 scalar multiplication result for a
// 56-byte scalar k (clamped internally) and u-coordinate u.
func X448(k, u [56]byte) [56]byte {
	scalarBytes := ClampX448(k)
	scalar := leBytesToBigInt(scalarBytes[:])
	uElem := DecodeUX448(u)

	result := Curve448.Ladder(scalar, x448Bits, uElem)

	var out [56]byte
	copy(out[:], result.LEBytes())
	return out
}
