// Package montgomery implements the generic x-only Montgomery ladder
// shared by X25519, X448, and the toy test curves over tiny primes
// (p = 101, p = 1009): projective xdbl/xadd, a constant-time
// conditional swap, and Okeya-Sakurai y-coordinate recovery, all
// parameterized by a field.Modulus and a curve coefficient A.
package montgomery

import (
	"math/big"

	"github.com/AldanTanneo/cryptography-class/field"
)

// Curve is a Montgomery curve y^2 = x^3 + A*x^2 + x over the field F,
// identified by its coefficient A (B is always 1, as for X25519/X448).
type Curve struct {
	F   *field.Modulus
	A   int64
	a24 int64 // (A + 2) / 4
}

// NewCurve returns a Curve over F with the given A coefficient.
func NewCurve(f *field.Modulus, a int64) *Curve {
	return &Curve{F: f, A: a, a24: (a + 2) / 4}
}

// point is a projective (X : Z) representation of an x-only point.
type point struct {
	x, z *field.Elem
}

// xdbl doubles p.
func (c *Curve) xdbl(p point) point {
	a24 := c.F.Elem(big.NewInt(c.a24))

	v1 := p.x.Add(p.z).Square()
	v2 := p.x.Sub(p.z).Square()
	x2p := v1.Mul(v2)

	v1m := v1.Sub(v2)
	v3 := a24.Mul(v1m)
	v3 = v3.Add(v2)
	z2p := v1m.Mul(v3)

	return point{x: x2p, z: z2p}
}

// xadd computes p+q given their difference pMinusQ, the differential
// addition formula the Montgomery ladder relies on.
func (c *Curve) xadd(p, q, pMinusQ point) point {
	v0 := p.x.Add(p.z)
	v1 := q.x.Sub(q.z).Mul(v0)

	v0b := p.x.Sub(p.z)
	v2 := q.x.Add(q.z).Mul(v0b)

	v3 := v1.Add(v2).Square()
	v4 := v1.Sub(v2).Square()

	xPlus := pMinusQ.z.Mul(v3)
	zPlus := pMinusQ.x.Mul(v4)

	return point{x: xPlus, z: zPlus}
}

// cswap conditionally swaps p and q in a way that masks on their
// encoded bytes rather than branching on swap. swap must be 0 or 1.
func cswap(swap uint, p, q point) (point, point) {
	x0, x1 := field.Cswap(swap, p.x, q.x)
	z0, z1 := field.Cswap(swap, p.z, q.z)
	return point{x0, z0}, point{x1, z1}
}

// ladder runs the Montgomery ladder for numBits bits of scalar over
// base point p, returning the two projective points the classic
// ladder produces: (k*P, (k+1)*P) in the (x0, x1) slots. The swap bit
// is the XOR of two consecutive scalar bits (big.Int.Bit already
// returns 0 or 1), never a boolean comparison, so nothing here gives
// the compiler a branch to fold on a secret bit.
func (c *Curve) ladder(scalar *big.Int, numBits int, p point) (x0, x1 point) {
	x0 = point{x: c.F.One(), z: c.F.Zero()}
	x1 = p

	var ki1 uint
	for i := numBits - 1; i >= 0; i-- {
		ki := scalar.Bit(i)
		x0, x1 = cswap(ki1^ki, x0, x1)
		ki1 = ki

		x0, x1 = c.xdbl(x0), c.xadd(x0, x1, p)
	}
	x0, x1 = cswap(ki1, x0, x1)
	return x0, x1
}

// Ladder computes the affine x-coordinate of scalar*P.
func (c *Curve) Ladder(scalar *big.Int, numBits int, px *field.Elem) *field.Elem {
	p := point{x: px, z: c.F.One()}
	x0, _ := c.ladder(scalar, numBits, p)
	return x0.x.Mul(x0.z.Inv())
}

// LadderFull exposes both projective ladder outputs (k*P and (k+1)*P),
// needed by callers that recover the y-coordinate afterwards instead
// of only reading the affine x-coordinate.
func (c *Curve) LadderFull(scalar *big.Int, numBits int, px *field.Elem) (x0, z0, x1, z1 *field.Elem) {
	p := point{x: px, z: c.F.One()}
	a, b := c.ladder(scalar, numBits, p)
	return a.x, a.z, b.x, b.z
}

// RecoverY recovers the y-coordinate of k*P given P = (xP, yP), and
// the ladder's two outputs Q = k*P (projective) and Q+P (projective),
// using the Okeya-Sakurai formula. It is needed by Ed25519's
// birational map from the Montgomery curve back to Edwards form.
func (c *Curve) RecoverY(xP, yP *field.Elem, xQ, zQ, xPQ, zPQ *field.Elem) (x, y *field.Elem) {
	v1 := xP.Mul(zQ)
	v2 := xQ.Add(v1)
	v3 := xQ.Sub(v1).Square().Mul(xPQ)

	twoA := c.F.Elem(big.NewInt(c.A * 2)).Mul(zQ)

	v2 = v2.Add(twoA)
	v4 := xP.Mul(xQ).Add(zQ)
	v2 = v2.Mul(v4)
	v1 = twoA.Mul(zQ)
	v2 = v2.Sub(v1)
	v2 = v2.Mul(zPQ)

	yNum := v2.Sub(v3)

	v1 = yP.Add(yP).Mul(zQ).Mul(zPQ)

	xNum := v1.Mul(xQ)
	zDen := v1.Mul(zQ)

	return xNum.Mul(zDen.Inv()), yNum.Mul(zDen.Inv())
}
