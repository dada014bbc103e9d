// Command ed25519_keygen generates an Ed25519 keypair, writing
// prefix.sk (32-byte raw private seed) and prefix.pk (32-byte raw
// compressed public key).
//
// Usage:
//
//	ed25519_keygen prefix
package main

import (
	"fmt"
	"os"

	"github.com/AldanTanneo/cryptography-class/ed25519"
	"github.com/AldanTanneo/cryptography-class/internal/clilog"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	log := clilog.Default().Command("ed25519_keygen")

	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: ed25519_keygen prefix")
		return 2
	}
	prefix := args[0]

	keys, err := ed25519.KeyGen()
	if err != nil {
		log.Error("generating keypair", "error", err)
		return 1
	}

	if err := os.WriteFile(prefix+".sk", keys.Private[:], 0o600); err != nil {
		log.Error("writing private key file", "error", err)
		return 1
	}
	if err := os.WriteFile(prefix+".pk", keys.Public[:], 0o644); err != nil {
		log.Error("writing public key file", "error", err)
		return 1
	}
	return 0
}
