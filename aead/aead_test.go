package aead

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"testing"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/AldanTanneo/cryptography-class/chacha20"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex fixture: %v", err)
	}
	return b
}

func TestSealRFC8439Vector(t *testing.T) {
	keyBytes := mustHex(t, "808182838485868788898a8b8c8d8e8f909192939495969798999a9b9c9d9e9f")
	nonceBytes := mustHex(t, "070000004041424344454647")
	aad := mustHex(t, "50515253c0c1c2c3c4c5c6c7")
	plaintext := []byte("Ladies and Gentlemen of the class of '99: If I could offer you only one tip for the future, sunscreen would be it.")

	wantCiphertext := mustHex(t, "d31a8d34648e60db7b86afbc53ef7ec2"+
		"a4aded51296e08fea9e2b5a736ee62d6"+
		"3dbea45e8ca9671282fafb69da92728b"+
		"1a71de0a9e060b2905d6a5b67ecd3b36"+
		"92ddbd7f2d778b8c9803aee328091b58"+
		"fab324e4fad675945585808b4831d7bc"+
		"3ff4def08e4b7a9de576d26586cec64b"+
		"6116")
	wantTag := mustHex(t, "1ae10b594f09e26a7e902ecbd0600691")

	var key [32]byte
	copy(key[:], keyBytes)
	var nonceArr [12]byte
	copy(nonceArr[:], nonceBytes)
	nonce := chacha20.NonceFromBytes(nonceArr)

	var ciphertext bytes.Buffer
	tag, err := Seal(key, nonce, bytes.NewReader(aad), bytes.NewReader(plaintext), &ciphertext)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(ciphertext.Bytes(), wantCiphertext) {
		t.Fatalf("ciphertext = %x, want %x", ciphertext.Bytes(), wantCiphertext)
	}
	if !bytes.Equal(tag[:], wantTag) {
		t.Fatalf("tag = %x, want %x", tag, wantTag)
	}
}

func TestSealMatchesReference(t *testing.T) {
	var key [32]byte
	_, _ = rand.Read(key[:])
	var nonceArr [12]byte
	_, _ = rand.Read(nonceArr[:])
	nonce := chacha20.NonceFromBytes(nonceArr)

	aad := []byte("header metadata")
	plaintext := bytes.Repeat([]byte("secret payload chunk "), 50)

	var ciphertext bytes.Buffer
	tag, err := Seal(key, nonce, bytes.NewReader(aad), bytes.NewReader(plaintext), &ciphertext)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ref, err := chacha20poly1305.New(key[:])
	if err != nil {
		t.Fatalf("reference cipher: %v", err)
	}
	sealed := ref.Seal(nil, nonceArr[:], plaintext, aad)
	refCiphertext, refTag := sealed[:len(sealed)-16], sealed[len(sealed)-16:]

	if !bytes.Equal(ciphertext.Bytes(), refCiphertext) {
		t.Fatalf("ciphertext mismatch against reference")
	}
	if !bytes.Equal(tag[:], refTag) {
		t.Fatalf("tag mismatch against reference")
	}
}

func TestOpenRoundTrip(t *testing.T) {
	var key [32]byte
	_, _ = rand.Read(key[:])
	var nonceArr [12]byte
	_, _ = rand.Read(nonceArr[:])
	nonce := chacha20.NonceFromBytes(nonceArr)

	aad := []byte("associated data")
	plaintext := []byte("round trip this message through seal and open")

	var ciphertext bytes.Buffer
	tag, err := Seal(key, nonce, bytes.NewReader(aad), bytes.NewReader(plaintext), &ciphertext)
	if err != nil {
		t.Fatalf("seal: %v", err)
	}

	var output bytes.Buffer
	ciphertextBytes := ciphertext.Bytes()
	err = Open(key, nonce, bytes.NewReader(aad), bytes.NewReader(ciphertextBytes), tag,
		bytes.NewReader(ciphertextBytes), &output)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if !bytes.Equal(output.Bytes(), plaintext) {
		t.Fatalf("got %q, want %q", output.Bytes(), plaintext)
	}
}

func TestOpenRejectsTamperedCiphertext(t *testing.T) {
	var key [32]byte
	_, _ = rand.Read(key[:])
	var nonceArr [12]byte
	_, _ = rand.Read(nonceArr[:])
	nonce := chacha20.NonceFromBytes(nonceArr)

	aad := []byte("aad")
	plaintext := []byte("a message that must stay intact")

	var ciphertext bytes.Buffer
	tag, err := Seal(key, nonce, bytes.NewReader(aad), bytes.NewReader(plaintext), &ciphertext)
	if err != nil {
		t.Fatalf("seal: %v", err)
	}

	tampered := append([]byte(nil), ciphertext.Bytes()...)
	tampered[0] ^= 1

	var output bytes.Buffer
	err = Open(key, nonce, bytes.NewReader(aad), bytes.NewReader(tampered), tag,
		bytes.NewReader(tampered), &output)
	if err == nil {
		t.Fatal("expected authentication failure")
	}
	if output.Len() != 0 {
		t.Fatal("plaintext must not be emitted before authentication succeeds")
	}
}
