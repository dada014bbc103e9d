// Package ed25519 implements the Ed25519 signature scheme on top of
// the shared montgomery package: Edwards<->Montgomery birational maps
// reuse the Curve25519 ladder for scalar multiplication, point
// encoding follows RFC 8032's compressed form, and signing streams
// its input twice (prefix hash, then message hash) via an
// io.ReadSeeker rather than buffering the whole message.
package ed25519

import (
	"math/big"

	"github.com/AldanTanneo/cryptography-class/field"
	"github.com/AldanTanneo/cryptography-class/montgomery"
)

// Fp is Curve25519's base field, shared with the montgomery package
// rather than redefined.
var Fp = montgomery.Curve25519.F

// frModulus is GF(L), the order of the Ed25519 base point.
var frModulus = field.NewModulus(mustDecimal(
	"7237005577332262213973186563042994240857116359379907606001950938285454250989"), 32)

// The following constants are taken verbatim from the reference
// field-arithmetic derivation rather than recomputed, since they are
// fixed values tied to Curve25519's specific prime.
var (
	// d, the Edwards curve coefficient: -121665/121666 mod p.
	edD = Fp.Elem(mustDecimal("37095705934669439343138083508754565189542113879843219016388785533085940283555"))
	// sqrtM1, a square root of -1 mod p (2^((p-1)/4) mod p).
	sqrtM1 = Fp.Elem(mustDecimal("19681161376707505956807079304988542015446066515923890162744021073123829784752"))
	// birationalSqrt, sqrt(-486664) mod p, used by the Montgomery<->Edwards maps.
	birationalSqrt = Fp.Elem(mustDecimal("51042569399160536130206135233146329284152202253034631822681833788666877215207"))
	// pPlus3Div8 = (p+3)/8, the exponent the p≡5(mod 8) square root
	// algorithm raises its argument to.
	pPlus3Div8 = mustDecimal("7237005577332262213973186563042994240829374041602535252466099000494570602494")
)

// Curve25519 Montgomery base point, x=9 with its known v-coordinate.
var (
	baseX = Fp.Elem(big.NewInt(9))
	baseY = Fp.Elem(mustDecimal("14781619447589544791020593568409986887264606134616475288964881837755586237401"))
)

func mustDecimal(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("ed25519: invalid decimal literal")
	}
	return v
}

// sqrtP5mod8 computes a square root of a mod p for Curve25519's prime
// (p ≡ 5 mod 8), returning ok=false if a has no square root.
func sqrtP5mod8(a *field.Elem) (*field.Elem, bool) {
	candidate := a.Exp(pPlus3Div8)
	if candidate.Square().Equal(a) {
		return candidate, true
	}
	alt := candidate.Mul(sqrtM1)
	if alt.Square().Equal(a) {
		return alt, true
	}
	return nil, false
}

// toMontgomery maps an Edwards point to its Montgomery (u, v) form.
func toMontgomery(x, y *field.Elem) (u, v *field.Elem) {
	u = Fp.One().Add(y).Mul(Fp.One().Sub(y).Inv())
	v = birationalSqrt.Mul(u).Mul(x.Inv())
	return u, v
}

// toEdwards maps a Montgomery (u, v) point back to Edwards form.
func toEdwards(u, v *field.Elem) (x, y *field.Elem) {
	x = birationalSqrt.Mul(u).Mul(v.Inv())
	y = u.Sub(Fp.One()).Mul(u.Add(Fp.One()).Inv())
	return x, y
}

// mulBase computes k times the Edwards base point, by running the
// Montgomery ladder over Curve25519 and recovering the y-coordinate.
func mulBase(k *big.Int) (x, y *field.Elem) {
	x0, z0, x1, z1 := montgomery.Curve25519.LadderFull(k, 256, baseX)
	u, v := montgomery.Curve25519.RecoverY(baseX, baseY, x0, z0, x1, z1)
	return toEdwards(u, v)
}

// mulEdwards computes k times an arbitrary Edwards point p, by
// converting to Montgomery form, running the ladder, and converting
// back.
func mulEdwards(k *big.Int, px, py *field.Elem) (x, y *field.Elem) {
	u, v := toMontgomery(px, py)
	x0, z0, x1, z1 := montgomery.Curve25519.LadderFull(k, 256, u)
	u2, v2 := montgomery.Curve25519.RecoverY(u, v, x0, z0, x1, z1)
	return toEdwards(u2, v2)
}

// addEdwards adds two points on the twisted Edwards curve using the
// unified addition formula. It is not constant-time; verification
// does not need it to be, since neither operand is secret.
func addEdwards(x1, y1, x2, y2 *field.Elem) (x, y *field.Elem) {
	y1y2 := y1.Mul(y2)
	x1x2 := x1.Mul(x2)
	dx1x2y1y2 := edD.Mul(x1x2).Mul(y1y2)

	x = x1.Mul(y2).Add(x2.Mul(y1)).Mul(Fp.One().Add(dx1x2y1y2).Inv())
	y = y1y2.Add(x1x2).Mul(Fp.One().Sub(dx1x2y1y2).Inv())
	return x, y
}

// EncodePoint compresses an Edwards point to its 32-byte RFC 8032
// form: y little-endian with x's parity in the top bit.
func EncodePoint(x, y *field.Elem) [32]byte {
	var out [32]byte
	copy(out[:], y.LEBytes())
	if x.IsOdd() {
		out[31] |= 0x80
	}
	return out
}

// DecodePoint recovers an Edwards point from its 32-byte compressed
// form, or reports ok=false if the encoding is invalid.
func DecodePoint(data [32]byte) (x, y *field.Elem, ok bool) {
	signBit := data[31]&0x80 != 0
	data[31] &= 0x7f
	y = Fp.FromLEBytes(data[:])

	y2 := y.Square()
	u := y2.Sub(Fp.One())
	v := edD.Mul(y2).Add(Fp.One())

	ratio := u.Mul(v.Inv())
	x, ok = sqrtP5mod8(ratio)
	if !ok {
		return nil, nil, false
	}

	vx2 := v.Mul(x.Square())
	switch {
	case vx2.Equal(u):
	case vx2.Equal(u.Neg()):
		x = x.Mul(sqrtM1)
	default:
		return nil, nil, false
	}

	if x.IsZero() && signBit {
		return nil, nil, false
	}
	if x.IsOdd() != signBit {
		x = x.Neg()
	}
	return x, y, true
}
