package ed25519

import (
	"crypto/sha512"
	"fmt"
	"io"

	"github.com/AldanTanneo/cryptography-class/montgomery"
)

// Sign produces a 64-byte Ed25519 signature over data, read twice:
// once to derive the per-message nonce from the private key's hash
// prefix, and once (after seeking back to the start) to fold the
// commitment R into the challenge hash. Buffering the whole message
// is avoided in favor of requiring a Seek back to the origin.
func Sign(keys Keys, data io.ReadSeeker) ([64]byte, error) {
	h := sha512.Sum512(keys.Private[:])
	var scalarSeed [32]byte
	copy(scalarSeed[:], h[:32])
	sBytes := montgomery.ClampX25519(scalarSeed)
	prefix := h[32:64]

	nonceHash := sha512.New()
	nonceHash.Write(prefix)
	if _, err := io.Copy(nonceHash, data); err != nil {
		return [64]byte{}, fmt.Errorf("ed25519: hashing message for nonce: %w", err)
	}
	r := frModulus.FromLEBytes(nonceHash.Sum(nil))

	rx, ry := mulBase(r.Int())
	rEncoded := EncodePoint(rx, ry)

	if _, err := data.Seek(0, io.SeekStart); err != nil {
		return [64]byte{}, fmt.Errorf("ed25519: seeking back to sign: %w", err)
	}

	challengeHash := sha512.New()
	challengeHash.Write(rEncoded[:])
	challengeHash.Write(keys.Public[:])
	if _, err := io.Copy(challengeHash, data); err != nil {
		return [64]byte{}, fmt.Errorf("ed25519: hashing message for challenge: %w", err)
	}
	k := frModulus.FromLEBytes(challengeHash.Sum(nil))

	s := frModulus.FromLEBytes(sBytes[:])
	sOut := r.Add(s.Mul(k))

	var sig [64]byte
	copy(sig[:32], rEncoded[:])
	copy(sig[32:], sOut.LEBytes())
	return sig, nil
}
