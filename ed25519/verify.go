package ed25519

import (
	"crypto/sha512"
	"io"
)

// Verify reports whether sig is a valid Ed25519 signature by
// publicKey over data. Decoding failures (malformed point, or a
// signature scalar not already reduced mod the group order) are
// treated as verification failures rather than errors, matching
// RFC 8032's single pass/fail outcome.
func Verify(publicKey [32]byte, sig [64]byte, data io.Reader) bool {
	var rEncoded [32]byte
	copy(rEncoded[:], sig[:32])

	ax, ay, ok := DecodePoint(publicKey)
	if !ok {
		return false
	}
	rx, ry, ok := DecodePoint(rEncoded)
	if !ok {
		return false
	}
	s, ok := frModulus.FromCanonicalLEBytes(sig[32:])
	if !ok {
		return false
	}

	h := sha512.New()
	h.Write(rEncoded[:])
	h.Write(publicKey[:])
	if _, err := io.Copy(h, data); err != nil {
		return false
	}
	k := frModulus.FromLEBytes(h.Sum(nil))

	sbx, sby := mulBase(s.Int())
	negK := k.Neg()
	nkax, nkay := mulEdwards(negK.Int(), ax, ay)
	expX, expY := addEdwards(sbx, sby, nkax, nkay)

	return rx.Equal(expX) && ry.Equal(expY)
}
