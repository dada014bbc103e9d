// Command ed25519_sign signs a file with an Ed25519 private key,
// writing the 64-byte signature.
//
// Usage:
//
//	ed25519_sign prefix data [sig]
//
// prefix.sk holds the 32-byte raw private seed; sig defaults to
// data+".sig".
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
	log := clilog.Default().Command("ed25519_sign")

	if len(args) < 2 || len(args) > 3 {
		fmt.Fprintln(os.Stderr, "usage: ed25519_sign prefix data [sig]")
		return 2
	}

	skBytes, err := cliio.ReadFixedFile(args[0]+".sk", 32)
	if err != nil {
		log.Error("reading private key file", "error", err)
		return 1
	}
	var sk [32]byte
	copy(sk[:], skBytes)
	keys := ed25519.DeriveKey(sk)

	data, err := os.Open(args[1])
	if err != nil {
		log.Error("opening data file", "error", err)
		return 1
	}
	defer data.Close()

	sig, err := ed25519.Sign(keys, data)
	if err != nil {
		log.Error("signing", "error", err)
		return 1
	}

	sigPath := args[1] + ".sig"
	if len(args) == 3 {
		sigPath = args[2]
	}
	if err := os.WriteFile(sigPath, sig[:], 0o644); err != nil {
		log.Error("writing signature file", "error", err)
		return 1
	}
	return 0
}
