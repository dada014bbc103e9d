// Package kem implements Hashed-ElGamal public-key encryption over
// Curve25519, wrapped in a Fujisaki-Okamoto-style transform into a
// key encapsulation mechanism with constant-time implicit rejection
// on decapsulation failure.
package kem

import (
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/AldanTanneo/cryptography-class/chacha20"
	"github.com/AldanTanneo/cryptography-class/keccak"
	"github.com/AldanTanneo/cryptography-class/montgomery"
)

// basePoint is the Curve25519 u-coordinate of the standard base
// point.
var basePoint = [32]byte{9}

var zeroNonce = chacha20.Nonce{0, 0, 0}

// ErrSmallOrder reports that an X25519 computation produced the
// all-zero shared secret, the small-order-point guard Hashed-ElGamal
// relies on to avoid leaking information to a malicious public key or
// ciphertext.
var ErrSmallOrder = errors.New("kem: x25519 produced an all-zero shared secret")

// PkeKeyGen generates a fresh Hashed-ElGamal keypair: a random
// 32-byte secret and its derived Curve25519 public point.
func PkeKeyGen() (sk, pk [32]byte, err error) {
	if _, err := rand.Read(sk[:]); err != nil {
		return sk, pk, fmt.Errorf("kem: generating secret key: %w", err)
	}
	pk = montgomery.X25519(sk, basePoint)
	return sk, pk, nil
}

// PkeEnc encrypts a 16-byte message under pk using randomness r,
// returning the 48-byte ciphertext c1‖c2.
func PkeEnc(m [16]byte, pk, r [32]byte) ([48]byte, error) {
	var zero32 [32]byte
	var y [32]byte
	chacha20.XORKeyStream(y[:], zero32[:], r, zeroNonce, 0)

	shared := montgomery.X25519(y, pk)
	if isZero(shared[:]) {
		return [48]byte{}, ErrSmallOrder
	}
	c1 := montgomery.X25519(y, basePoint)

	kEnc := deriveEncKey(shared)
	var c2 [16]byte
	chacha20.XORKeyStream(c2[:], m[:], kEnc, zeroNonce, 0)

	var c [48]byte
	copy(c[:32], c1[:])
	copy(c[32:], c2[:])
	return c, nil
}

// PkeDec decrypts a 48-byte ciphertext under sk, recovering the
// 16-byte message.
func PkeDec(c [48]byte, sk [32]byte) ([16]byte, error) {
	var c1 [32]byte
	copy(c1[:], c[:32])
	var c2 [16]byte
	copy(c2[:], c[32:])

	shared := montgomery.X25519(sk, c1)
	if isZero(shared[:]) {
		return [16]byte{}, ErrSmallOrder
	}
	kEnc := deriveEncKey(shared)

	var m [16]byte
	chacha20.XORKeyStream(m[:], c2[:], kEnc, zeroNonce, 0)
	return m, nil
}

func deriveEncKey(shared [32]byte) [32]byte {
	digest := keccak.Shake128(shared[:], 32)
	var k [32]byte
	copy(k[:], digest)
	return k
}

func isZero(b []byte) bool {
	var acc byte
	for _, c := range b {
		acc |= c
	}
	return acc == 0
}
