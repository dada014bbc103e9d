package kem

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"

	"github.com/AldanTanneo/cryptography-class/keccak"
)

// SecretKey is a full KEM private key: the underlying Hashed-ElGamal
// secret, an implicit-rejection seed, the matching public key, and a
// hash of the public key folded into every derivation so a given
// secret key can't be replayed against a different keypair's
// ciphertexts.
type SecretKey struct {
	Sk  [32]byte
	S   [16]byte
	Pk  [32]byte
	Pkh [16]byte
}

// KeyGen generates a fresh KEM keypair.
func KeyGen() (SecretKey, error) {
	sk, pk, err := PkeKeyGen()
	if err != nil {
		return SecretKey{}, err
	}
	var s [16]byte
	if _, err := rand.Read(s[:]); err != nil {
		return SecretKey{}, fmt.Errorf("kem: generating rejection seed: %w", err)
	}
	return SecretKey{Sk: sk, S: s, Pk: pk, Pkh: publicKeyHash(pk)}, nil
}

func publicKeyHash(pk [32]byte) [16]byte {
	var tagged []byte
	tagged = append(tagged, pk[:]...)
	tagged = append(tagged, 'g', '1')
	digest := keccak.Shake128(tagged, 16)
	var out [16]byte
	copy(out[:], digest)
	return out
}

func deriveNonceAndSeed(pkh [16]byte, m [16]byte) (r, kSeed [32]byte) {
	var tagged []byte
	tagged = append(tagged, pkh[:]...)
	tagged = append(tagged, m[:]...)
	tagged = append(tagged, 'g', '2')
	digest := keccak.Shake128(tagged, 64)
	copy(r[:], digest[:32])
	copy(kSeed[:], digest[32:64])
	return r, kSeed
}

// deriveSessionKey computes K = SHAKE128(c ‖ seed ‖ "kdf")[0..16],
// used both for the real session key (seed = k_seed) and the
// implicit-rejection fallback (seed = the keypair's rejection seed).
func deriveSessionKey(c [48]byte, seed []byte) [16]byte {
	var tagged []byte
	tagged = append(tagged, c[:]...)
	tagged = append(tagged, seed...)
	tagged = append(tagged, 'k', 'd', 'f')
	digest := keccak.Shake128(tagged, 16)
	var out [16]byte
	copy(out[:], digest)
	return out
}

// Encaps generates a fresh 16-byte session key and its 48-byte
// encapsulation under pk.
func Encaps(pk [32]byte) (c [48]byte, key [16]byte, err error) {
	var m [16]byte
	if _, err := rand.Read(m[:]); err != nil {
		return c, key, fmt.Errorf("kem: generating message: %w", err)
	}
	pkh := publicKeyHash(pk)
	r, kSeed32 := deriveNonceAndSeed(pkh, m)

	c, err = PkeEnc(m, pk, r)
	if err != nil {
		return [48]byte{}, [16]byte{}, fmt.Errorf("kem: encapsulating: %w", err)
	}

	key = deriveSessionKey(c, kSeed32[:])
	return c, key, nil
}

// Decaps recovers the session key encapsulated in c under secret. On
// any decryption failure (small-order shared secret, or a
// re-encryption mismatch indicating a tampered ciphertext), it
// returns a pseudo-random key derived from the implicit-rejection
// seed instead of an error, so a decapsulation oracle can't be used
// to distinguish valid from invalid ciphertexts by timing or error
// behavior.
func Decaps(c [48]byte, secret SecretKey) [16]byte {
	m, decErr := PkeDec(c, secret.Sk)
	if decErr != nil {
		m = [16]byte{}
	}

	r, kSeed := deriveNonceAndSeed(secret.Pkh, m)
	k0 := deriveSessionKey(c, kSeed[:])
	k1 := deriveSessionKey(c, secret.S[:])

	cPrime, encErr := PkeEnc(m, secret.Pk, r)

	// Combine the three pass/fail signals with bitwise AND over 0/1
	// ints rather than a boolean &&, so nothing here short-circuits
	// on a secret-dependent condition before reaching
	// ConstantTimeSelect. errFlag's nil check is the one unavoidable
	// branch: Go gives no branch-free way to read an interface's
	// nilness, unlike the byte masks below it feeds into.
	equal := subtle.ConstantTimeCompare(c[:], cPrime[:]) & errFlag(decErr) & errFlag(encErr)

	return selectKey(equal, k0, k1)
}

// errFlag reports err == nil as 1 or 0.
func errFlag(err error) int {
	if err == nil {
		return 1
	}
	return 0
}

// selectKey chooses between k0 and k1 with a per-byte constant-time
// selection. equal must be 0 or 1, already produced by
// crypto/subtle/errFlag rather than a bare boolean, so there is no
// bitmask-from-bool conversion left for the compiler to branch on.
func selectKey(equal int, k0, k1 [16]byte) [16]byte {
	var out [16]byte
	for i := range out {
		out[i] = byte(subtle.ConstantTimeSelect(equal, int(k0[i]), int(k1[i])))
	}
	return out
}
