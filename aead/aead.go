// Package aead implements the ChaCha20-Poly1305 AEAD construction
// (RFC 8439 §2.8): a one-time Poly1305 key derived from block counter
// 0, a ChaCha20 keystream starting at counter 1, and a MAC computed
// over aad‖pad16(aad)‖ciphertext‖pad16(ciphertext)‖lengths.
package aead

import (
	"crypto/subtle"
	"errors"
	"io"

	"github.com/AldanTanneo/cryptography-class/chacha20"
	"github.com/AldanTanneo/cryptography-class/poly1305"
	"github.com/AldanTanneo/cryptography-class/streamio"
)

// ErrAuthenticationFailed is returned by Open when the computed tag
// does not match the one supplied by the caller.
var ErrAuthenticationFailed = errors.New("aead: authentication failed")

func oneTimeKey(key [32]byte, nonce chacha20.Nonce) [32]byte {
	block := chacha20.Block(key, 0, nonce)
	var otk [32]byte
	copy(otk[:], block[:32])
	return otk
}

// Seal streams plaintext through the ChaCha20 keystream (starting at
// block counter 1) into output, while simultaneously authenticating
// the resulting ciphertext and aad, and returns the 16-byte tag.
func Seal(key [32]byte, nonce chacha20.Nonce, aad, plaintext io.Reader, output io.Writer) ([16]byte, error) {
	otk := oneTimeKey(key, nonce)

	cipher := chacha20.NewCipher(key, nonce, plaintext)
	teed := streamio.NewTee(cipher, output)

	macData := newConcatLen(newPad16(aad), newPad16(teed))
	return poly1305.Sum(macData, otk)
}

// computeTag authenticates aad and an already-produced ciphertext
// stream, without writing anywhere, the shape Open uses for its
// verify pass before touching plaintext.
func computeTag(key [32]byte, nonce chacha20.Nonce, aad, ciphertext io.Reader) ([16]byte, error) {
	otk := oneTimeKey(key, nonce)
	macData := newConcatLen(newPad16(aad), newPad16(ciphertext))
	return poly1305.Sum(macData, otk)
}

// Open verifies the tag over aad and ciphertext first; only if it
// matches does it make a second pass over reopen (a fresh Reader
// positioned at the start of the same ciphertext bytes) to produce
// plaintext into output. Rejecting before decrypting means a caller
// never sees unauthenticated plaintext, matching RFC 8439's
// verify-then-decrypt requirement.
func Open(key [32]byte, nonce chacha20.Nonce, aad, ciphertext io.Reader, tag [16]byte, reopen io.Reader, output io.Writer) error {
	got, err := computeTag(key, nonce, aad, ciphertext)
	if err != nil {
		return err
	}
	if subtle.ConstantTimeCompare(got[:], tag[:]) != 1 {
		return ErrAuthenticationFailed
	}

	decipher := chacha20.NewCipher(key, nonce, reopen)
	_, err = io.Copy(output, decipher)
	return err
}
