// Command ed25519_verify checks an Ed25519 signature, printing
// ACCEPT or REJECT and exiting 0 or 1 to match.
//
// Usage:
//
//	ed25519_verify pk data sig
package main

import (
	"fmt"
	"os"

	"github.com/AldanTanneo/cryptography-class/ed25519"
	"github.com/AldanTanneo/cryptography-class/internal/cliio"
	"github.com/AldanTanneo/cryptography-class/internal/clilog"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	log := clilog.Default().Command("ed25519_verify")

	if len(args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: ed25519_verify pk data sig")
		return 2
	}

	pkBytes, err := cliio.ReadFixedFile(args[0], 32)
	if err != nil {
		log.Error("reading public key file", "error", err)
		return 1
	}
	var pk [32]byte
	copy(pk[:], pkBytes)

	sigBytes, err := cliio.ReadFixedFile(args[2], 64)
	if err != nil {
		log.Error("reading signature file", "error", err)
		return 1
	}
	var sig [64]byte
	copy(sig[:], sigBytes)

	data, err := os.Open(args[1])
	if err != nil {
		log.Error("opening data file", "error", err)
		return 1
	}
	defer data.Close()

	if !ed25519.Verify(pk, sig, data) {
		fmt.Println("REJECT")
		return 1
	}

	fmt.Println("ACCEPT")
	return 0
}
