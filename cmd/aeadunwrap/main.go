// Command aead_unwrap opens a ChaCha20-Poly1305 ciphertext, verifying
// its tag before releasing any plaintext. Exit code 0 means the tag
// was accepted; nonzero means it was rejected or an I/O error
// occurred.
//
// Usage:
//
//	aead_unwrap key nonce aad cipher tag [plain]
//
// tag is 32 hex characters (16 bytes); plain defaults to stdout.
package main

import (
	"fmt"
	"io"
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
	log := clilog.Default().Command("aead_unwrap")

	if len(args) < 5 || len(args) > 6 {
		fmt.Fprintln(os.Stderr, "usage: aead_unwrap key nonce aad cipher tag [plain]")
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

	cipherPath := args[3]
	cipherFile, err := os.Open(cipherPath)
	if err != nil {
		log.Error("opening ciphertext file", "error", err)
		return 1
	}
	defer cipherFile.Close()

	tagBytes, err := streamio.ParseHex(args[4], 16)
	if err != nil {
		log.Error("parsing tag", "error", err)
		return 1
	}
	var tag [16]byte
	copy(tag[:], tagBytes)

	reopen, err := os.Open(cipherPath)
	if err != nil {
		log.Error("reopening ciphertext file", "error", err)
		return 1
	}
	defer reopen.Close()

	var output io.Writer = os.Stdout
	if len(args) == 6 {
		f, err := os.Create(args[5])
		if err != nil {
			log.Error("creating plaintext file", "error", err)
			return 1
		}
		defer f.Close()
		output = f
	}

	if err := aead.Open(key, nonce, aadFile, cipherFile, tag, reopen, output); err != nil {
		fmt.Println("REJECT")
		log.Error("unwrap rejected", "error", err)
		return 1
	}

	fmt.Println("ACCEPT")
	return 0
}
