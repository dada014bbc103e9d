// Package field implements generic prime-field arithmetic over an
// arbitrary modulus, the shared base Curve25519, Curve448, the
// Ed25519 group order, and the toy test curves build their arithmetic
// on. It follows the teacher's fpAdd/fpSub/fpMul/fpInv/fpExp style
// (bn254_fp.go), generalized from one fixed field to a modulus chosen
// at runtime.
package field

import "math/big"

// Modulus bundles a prime p with its fixed byte length, so elements
// can be serialized to and from a canonical fixed-size encoding
// regardless of which field they belong to (Curve25519's 255-bit p,
// Curve448's 448-bit p, or a tiny test prime).
type Modulus struct {
	p       *big.Int
	byteLen int
}

// NewModulus returns a Modulus for p, encoding elements in byteLen
// bytes (must be large enough to hold p).
func NewModulus(p *big.Int, byteLen int) *Modulus {
	return &Modulus{p: new(big.Int).Set(p), byteLen: byteLen}
}

// P returns the field's modulus.
func (m *Modulus) P() *big.Int { return m.p }

// ByteLen returns the fixed-size encoding length for this field.
func (m *Modulus) ByteLen() int { return m.byteLen }

// Elem is an element of the field defined by a Modulus. The zero
// value is not usable; construct elements with Modulus.Elem or the
// arithmetic methods below.
type Elem struct {
	m *Modulus
	v *big.Int
}

// Elem reduces v modulo m.p and returns the resulting field element.
func (m *Modulus) Elem(v *big.Int) *Elem {
	return &Elem{m: m, v: new(big.Int).Mod(v, m.p)}
}

// Zero returns the additive identity of the field.
func (m *Modulus) Zero() *Elem { return m.Elem(big.NewInt(0)) }

// One returns the multiplicative identity of the field.
func (m *Modulus) One() *Elem { return m.Elem(big.NewInt(1)) }

// FromBytes interprets b as a big-endian integer and reduces it
// modulo p.
func (m *Modulus) FromBytes(b []byte) *Elem {
	return m.Elem(new(big.Int).SetBytes(b))
}

// FromLEBytes interprets b as a little-endian integer and reduces it
// modulo p, the encoding X25519/X448/Ed25519 use on the wire.
func (m *Modulus) FromLEBytes(b []byte) *Elem {
	rev := make([]byte, len(b))
	for i, c := range b {
		rev[len(b)-1-i] = c
	}
	return m.FromBytes(rev)
}

// FromCanonicalLEBytes decodes b as a little-endian integer, rejecting
// it with ok=false if the raw value is not already less than p. This
// matters for signature scalar decoding, where silently reducing an
// out-of-range encoding would make two different byte strings verify
// as the same signature.
func (m *Modulus) FromCanonicalLEBytes(b []byte) (*Elem, bool) {
	rev := make([]byte, len(b))
	for i, c := range b {
		rev[len(b)-1-i] = c
	}
	v := new(big.Int).SetBytes(rev)
	if v.Cmp(m.p) >= 0 {
		return nil, false
	}
	return m.Elem(v), true
}

// Int returns the element's canonical representative in [0, p).
func (e *Elem) Int() *big.Int { return new(big.Int).Set(e.v) }

// Bytes encodes the element as big-endian, zero-padded to the field's
// byte length.
func (e *Elem) Bytes() []byte {
	out := make([]byte, e.m.byteLen)
	e.v.FillBytes(out)
	return out
}

// LEBytes encodes the element as little-endian, zero-padded to the
// field's byte length.
func (e *Elem) LEBytes() []byte {
	b := e.Bytes()
	out := make([]byte, len(b))
	for i, c := range b {
		out[len(b)-1-i] = c
	}
	return out
}

// Add returns a + b.
func (e *Elem) Add(o *Elem) *Elem {
	r := new(big.Int).Add(e.v, o.v)
	return e.m.Elem(r)
}

// Sub returns a - b.
func (e *Elem) Sub(o *Elem) *Elem {
	r := new(big.Int).Sub(e.v, o.v)
	return e.m.Elem(r)
}

// Neg returns -a.
func (e *Elem) Neg() *Elem {
	if e.v.Sign() == 0 {
		return e.m.Zero()
	}
	return e.m.Elem(new(big.Int).Sub(e.m.p, e.v))
}

// Mul returns a * b.
func (e *Elem) Mul(o *Elem) *Elem {
	r := new(big.Int).Mul(e.v, o.v)
	return e.m.Elem(r)
}

// Square returns a^2.
func (e *Elem) Square() *Elem { return e.Mul(e) }

// Mul64 multiplies by a small constant, useful for curve coefficients
// like Curve25519's (A+2)/4.
func (e *Elem) Mul64(c int64) *Elem {
	r := new(big.Int).Mul(e.v, big.NewInt(c))
	return e.m.Elem(r)
}

// Inv returns a^-1, computed via Fermat's little theorem (a^(p-2)).
// Panics if a is zero, matching the undefined mathematical inverse.
func (e *Elem) Inv() *Elem {
	if e.v.Sign() == 0 {
		panic("field: inverse of zero")
	}
	exp := new(big.Int).Sub(e.m.p, big.NewInt(2))
	return e.m.Elem(new(big.Int).Exp(e.v, exp, e.m.p))
}

// Exp returns a^k for a non-negative exponent k.
func (e *Elem) Exp(k *big.Int) *Elem {
	return e.m.Elem(new(big.Int).Exp(e.v, k, e.m.p))
}

// IsZero reports whether the element is the additive identity.
func (e *Elem) IsZero() bool { return e.v.Sign() == 0 }

// IsOdd reports whether the element's canonical representative is an
// odd integer, the sign bit Ed25519 point compression relies on.
func (e *Elem) IsOdd() bool { return e.v.Bit(0) == 1 }

// Equal reports whether two elements of the same field are equal.
// It is not constant-time: callers needing constant-time comparison
// (e.g. KEM ciphertext checks) should compare encoded bytes with
// crypto/subtle instead.
func (e *Elem) Equal(o *Elem) bool { return e.v.Cmp(o.v) == 0 }

// Select returns a if cond is true, b otherwise — a plain branch, not
// constant-time; used only where the caller has already established
// this choice is not secret-dependent.
func Select(cond bool, a, b *Elem) *Elem {
	if cond {
		return a
	}
	return b
}

// Cswap conditionally swaps a and b, masking on their fixed-size
// byte encodings rather than branching on swap, the same bitmask-XOR
// shape the ladder's reference implementation uses for its
// constant-time conditional swap. swap must be 0 or 1; callers derive
// it with bit arithmetic (XOR of scalar bits, not a == comparison) so
// the optimization barrier holds from the secret scalar bit all the
// way through the mask.
func Cswap(swap uint, a, b *Elem) (*Elem, *Elem) {
	mask := byte(0) - byte(swap&1)
	ab := a.Bytes()
	bb := b.Bytes()
	for i := range ab {
		t := mask & (ab[i] ^ bb[i])
		ab[i] ^= t
		bb[i] ^= t
	}
	return a.m.FromBytes(ab), a.m.FromBytes(bb)
}
