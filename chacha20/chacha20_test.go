package chacha20

import (
	"bytes"
	"io"
	"testing"

	xchacha "golang.org/x/crypto/chacha20"
)

func TestBlockRFC7539Vector(t *testing.T) {
	var key [32]byte
	for i := range key {
		key[i] = byte(i)
	}
	nonce := Nonce{0x09000000, 0x4a000000, 0x00000000}

	want := []byte{
		0x10, 0xf1, 0xe7, 0xe4, 0xd1, 0x3b, 0x59, 0x15, 0x50, 0x0f, 0xdd, 0x1f, 0xa3, 0x20, 0x71,
		0xc4, 0xc7, 0xd1, 0xf4, 0xc7, 0x33, 0xc0, 0x68, 0x03, 0x04, 0x22, 0xaa, 0x9a, 0xc3, 0xd4,
		0x6c, 0x4e, 0xd2, 0x82, 0x64, 0x46, 0x07, 0x9f, 0xaa, 0x09, 0x14, 0xc2, 0xd7, 0x05, 0xd9,
		0x8b, 0x02, 0xa2, 0xb5, 0x12, 0x9c, 0xd1, 0xde, 0x16, 0x4e, 0xb9, 0xcb, 0xd0, 0x83, 0xe8,
		0xa2, 0x50, 0x3c, 0x4e,
	}

	got := Block(key, 1, nonce)
	if !bytes.Equal(got[:], want) {
		t.Fatalf("block = %x, want %x", got, want)
	}
}

func TestCipherMatchesReferenceKeystream(t *testing.T) {
	var key [32]byte
	for i := range key {
		key[i] = byte(i * 3)
	}
	nonceBytes := [12]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	nonce := NonceFromBytes(nonceBytes)

	plaintext := bytes.Repeat([]byte("attack at dawn, "), 20)
	zero := bytes.NewReader(make([]byte, len(plaintext)))
	cipher := NewCipher(key, nonce, zero)

	// feeding an all-zero reader into Cipher yields the raw keystream,
	// since XOR with zero is the identity.
	ours := make([]byte, len(plaintext))
	if _, err := io.ReadFull(cipher, ours); err != nil {
		t.Fatalf("read: %v", err)
	}

	ref, err := xchacha.NewUnauthenticatedCipher(key[:], nonceBytes[:])
	if err != nil {
		t.Fatalf("reference cipher: %v", err)
	}
	// x/crypto's ChaCha20 starts its internal counter at 0 for the
	// first block; our Cipher reserves block 0 and starts streaming
	// at block 1, so advance the reference by one block to align.
	ref.SetCounter(1)
	want := make([]byte, len(plaintext))
	ref.XORKeyStream(want, make([]byte, len(plaintext)))

	if !bytes.Equal(ours, want) {
		t.Fatalf("keystream mismatch")
	}
}

func TestCipherHandlesPartialFinalBlock(t *testing.T) {
	var key [32]byte
	for i := range key {
		key[i] = byte(i * 5)
	}
	nonceBytes := [12]byte{9, 8, 7, 6, 5, 4, 3, 2, 1, 0, 1, 2}
	nonce := NonceFromBytes(nonceBytes)

	// 114 bytes: one full 64-byte block plus a 50-byte partial block,
	// the same shape as the RFC 8439 §2.8.2 worked example, chosen to
	// exercise the partial-block tail of Cipher.Read.
	plaintext := bytes.Repeat([]byte("0123456789"), 12)[:114]
	zero := bytes.NewReader(make([]byte, len(plaintext)))
	cipher := NewCipher(key, nonce, zero)

	ours, err := io.ReadAll(cipher)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(ours) != len(plaintext) {
		t.Fatalf("read %d bytes, want %d", len(ours), len(plaintext))
	}

	ref, err := xchacha.NewUnauthenticatedCipher(key[:], nonceBytes[:])
	if err != nil {
		t.Fatalf("reference cipher: %v", err)
	}
	ref.SetCounter(1)
	want := make([]byte, len(plaintext))
	ref.XORKeyStream(want, make([]byte, len(plaintext)))

	if !bytes.Equal(ours, want) {
		t.Fatalf("partial-block keystream mismatch:\n got  %x\n want %x", ours, want)
	}
}

func TestCipherReturnsEOFAtEndOfStream(t *testing.T) {
	var key [32]byte
	nonce := Nonce{1, 1, 1}
	cipher := NewCipher(key, nonce, bytes.NewReader(make([]byte, 10)))

	buf := make([]byte, 10)
	n, err := cipher.Read(buf)
	if err != nil || n != 10 {
		t.Fatalf("first read = (%d, %v), want (10, nil)", n, err)
	}

	n, err = cipher.Read(buf)
	if n != 0 || err != io.EOF {
		t.Fatalf("read at end of stream = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestXORKeyStreamRoundTrips(t *testing.T) {
	var key [32]byte
	for i := range key {
		key[i] = byte(255 - i)
	}
	nonce := Nonce{1, 2, 3}
	plaintext := []byte("a message that spans more than one 64-byte block of keystream output")

	ciphertext := make([]byte, len(plaintext))
	XORKeyStream(ciphertext, plaintext, key, nonce, 1)

	recovered := make([]byte, len(plaintext))
	XORKeyStream(recovered, ciphertext, key, nonce, 1)

	if !bytes.Equal(recovered, plaintext) {
		t.Fatalf("round trip failed: got %q", recovered)
	}
}
