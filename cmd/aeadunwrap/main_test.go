package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/AldanTanneo/cryptography-class/aead"
	"github.com/AldanTanneo/cryptography-class/chacha20"
	"github.com/AldanTanneo/cryptography-class/streamio"
)

func sealFixture(t *testing.T, dir string) (keyPath, nonceHex, aadPath, cipherPath, tagHex string) {
	t.Helper()

	keyPath = filepath.Join(dir, "key")
	if err := os.WriteFile(keyPath, make([]byte, 32), 0o600); err != nil {
		t.Fatalf("writing key file: %v", err)
	}

	aadPath = filepath.Join(dir, "aad")
	if err := os.WriteFile(aadPath, []byte("header"), 0o600); err != nil {
		t.Fatalf("writing aad file: %v", err)
	}

	nonceHex = "000102030405060708090a0b"
	var key [32]byte
	nonce := chacha20.NonceFromBytes([12]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11})

	var cipherBuf bytes.Buffer
	tag, err := aead.Seal(key, nonce, bytes.NewReader([]byte("header")), bytes.NewReader([]byte("secret message")), &cipherBuf)
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}

	cipherPath = filepath.Join(dir, "cipher")
	if err := os.WriteFile(cipherPath, cipherBuf.Bytes(), 0o600); err != nil {
		t.Fatalf("writing ciphertext file: %v", err)
	}

	return keyPath, nonceHex, aadPath, cipherPath, streamio.FormatHex(tag[:])
}

func TestRunAcceptsValidTag(t *testing.T) {
	dir := t.TempDir()
	keyPath, nonceHex, aadPath, cipherPath, tagHex := sealFixture(t, dir)

	plainOut := filepath.Join(dir, "plain.out")
	if code := run([]string{keyPath, nonceHex, aadPath, cipherPath, tagHex, plainOut}); code != 0 {
		t.Fatalf("run() = %d, want 0 for a valid tag", code)
	}

	got, err := os.ReadFile(plainOut)
	if err != nil {
		t.Fatalf("reading recovered plaintext: %v", err)
	}
	if string(got) != "secret message" {
		t.Fatalf("recovered plaintext = %q", got)
	}
}

func TestRunRejectsTamperedTag(t *testing.T) {
	dir := t.TempDir()
	keyPath, nonceHex, aadPath, cipherPath, tagHex := sealFixture(t, dir)

	tampered := tagHex[:len(tagHex)-1] + flipHexNibble(tagHex[len(tagHex)-1])

	if code := run([]string{keyPath, nonceHex, aadPath, cipherPath, tampered}); code == 0 {
		t.Fatal("expected a nonzero exit code for a tampered tag")
	}
}

func flipHexNibble(c byte) string {
	if c == '0' {
		return "1"
	}
	return "0"
}
