package ed25519

import (
	"crypto/rand"
	"crypto/sha512"
	"fmt"

	"github.com/AldanTanneo/cryptography-class/montgomery"
)

// Verbose controls whether a Keys value's private scalar is rendered
// by String/GoString. It mirrors the reference implementation's
// debug-build-only private key display: off by default so that
// logging a Keys value never leaks key material by accident.
var Verbose = false

// Keys is an Ed25519 keypair: a 32-byte private seed and its derived
// 32-byte compressed public point.
type Keys struct {
	Private [32]byte
	Public  [32]byte
}

// String renders the public key, and the private key only if Verbose
// is set.
func (k Keys) String() string {
	if Verbose {
		return fmt.Sprintf("Keys{private: %x, public: %x}", k.Private, k.Public)
	}
	return fmt.Sprintf("Keys{public: %x}", k.Public)
}

// GoString makes %#v render the same text as String, so the private
// key is shown there only if Verbose is set.
func (k Keys) GoString() string { return k.String() }

// DeriveKey expands a 32-byte private seed into a full keypair: the
// seed is hashed with SHA-512, the first half clamped into a scalar
// and multiplied by the base point to get the public key.
func DeriveKey(private [32]byte) Keys {
	h := sha512.Sum512(private[:])
	var scalarSeed [32]byte
	copy(scalarSeed[:], h[:32])
	scalarBytes := montgomery.ClampX25519(scalarSeed)
	scalar := Fp.FromLEBytes(scalarBytes[:]).Int()

	x, y := mulBase(scalar)
	return Keys{Private: private, Public: EncodePoint(x, y)}
}

// KeyGen generates a fresh keypair from crypto/rand.
func KeyGen() (Keys, error) {
	var private [32]byte
	if _, err := rand.Read(private[:]); err != nil {
		return Keys{}, fmt.Errorf("ed25519: generating private seed: %w", err)
	}
	return DeriveKey(private), nil
}
