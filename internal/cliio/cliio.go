// Package cliio provides the small file/hex-argument parsing helpers
// shared by every cmd/* front-end, so each binary's main.go stays
// focused on wiring its crypto package rather than re-deriving
// "read an N-byte key file" boilerplate.
package cliio

import (
	"fmt"
	"os"

	"github.com/AldanTanneo/cryptography-class/chacha20"
	"github.com/AldanTanneo/cryptography-class/streamio"
)

// ReadFixedFile reads path and requires it to be exactly n bytes.
func ReadFixedFile(path string, n int) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(b) != n {
		return nil, fmt.Errorf("%s is %d bytes, want %d", path, len(b), n)
	}
	return b, nil
}

// ParseNonce parses a 24-hex-character CLI nonce argument into a
// chacha20.Nonce.
func ParseNonce(s string) (chacha20.Nonce, error) {
	b, err := streamio.ParseHex(s, 12)
	if err != nil {
		return chacha20.Nonce{}, err
	}
	var arr [12]byte
	copy(arr[:], b)
	return chacha20.NonceFromBytes(arr), nil
}
