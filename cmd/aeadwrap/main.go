// Command aead_wrap seals a file under ChaCha20-Poly1305, printing the
// hex-encoded tag on stdout.
//
// Usage:
//
//	aead_wrap key nonce aad plain cipher
//
// key is a 32-byte raw key file; nonce is 24 hex characters; aad and
// plain are raw input files; cipher is the output file path.
package main

import (
	"fmt"
	"os"

	"github.com/AldanTanneo/cryptography-class/aead"
	"github.com/AldanTanneo/cryptography-class/internal/cliio"
	"github.com/AldanTanneo/cryptography-class/internal/clilog"
	"github.com/AldanTanneo/cryptography-class/streamio"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	log := clilog.Default().Command("aead_wrap")

	if len(args) != 5 {
		fmt.Fprintln(os.Stderr, "usage: aead_wrap key nonce aad plain cipher")
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

	aadFile, err := os.Open(args[2])
	if err != nil {
		log.Error("opening aad file", "error", err)
		return 1
	}
	defer aadFile.Close()

	plainFile, err := os.Open(args[3])
	if err != nil {
		log.Error("opening plaintext file", "error", err)
		return 1
	}
	defer plainFile.Close()

	cipherFile, err := os.Create(args[4])
	if err != nil {
		log.Error("creating ciphertext file", "error", err)
		return 1
	}
	defer cipherFile.Close()

	tag, err := aead.Seal(key, nonce, aadFile, plainFile, cipherFile)
	if err != nil {
		log.Error("sealing", "error", err)
		return 1
	}

	fmt.Println(streamio.FormatHex(tag[:]))
	return 0
}
