// Command chacha20 XORs a file against a raw ChaCha20 keystream.
//
// Usage:
//
//	chacha20 keyfile nonce input [output]
//
// keyfile holds the raw 32-byte key; nonce is 24 hex characters
// (12 bytes, little-endian); output defaults to stdout.
package main

import (
	"fmt"
	"os"

	"github.com/AldanTanneo/cryptography-class/chacha20"
	"github.com/AldanTanneo/cryptography-class/internal/cliio"
	"github.com/AldanTanneo/cryptography-class/internal/clilog"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	log := clilog.Default().Command("chacha20")

	if len(args) < 3 || len(args) > 4 {
		fmt.Fprintln(os.Stderr, "usage: chacha20 keyfile nonce input [output]")
		return 2
	}

	keyBytes, err := cliio.ReadFixedFile(args[0], 32)
	if err != nil {
		log.Error("reading key file", "error", err)
		return 1
	}
	var key [32]byte
	copy(key[:], keyBytes)

	nonce, err := cliio.ParseNonce(args[1])
	if err != nil {
		log.Error("parsing nonce", "error", err)
		return 1
	}

	plaintext, err := os.ReadFile(args[2])
	if err != nil {
		log.Error("reading input file", "error", err)
		return 1
	}

	out := make([]byte, len(plaintext))
	chacha20.XORKeyStream(out, plaintext, key, nonce, 0)

	if len(args) == 4 {
		if err := os.WriteFile(args[3], out, 0o600); err != nil {
			log.Error("writing output file", "error", err)
			return 1
		}
		return 0
	}

	if _, err := os.Stdout.Write(out); err != nil {
		log.Error("writing to stdout", "error", err)
		return 1
	}
	return 0
}
