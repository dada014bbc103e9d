// Command kem_keygen generates a KEM keypair, writing the 96-byte
// secret key to kem.sk and printing the 32-byte public key as hex.
//
// Usage:
//
//	kem_keygen
package main

import (
	"fmt"
	"os"

	"github.com/AldanTanneo/cryptography-class/internal/clilog"
	"github.com/AldanTanneo/cryptography-class/kem"
	"github.com/AldanTanneo/cryptography-class/streamio"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	log := clilog.Default().Command("kem_keygen")

	if len(args) != 0 {
		fmt.Fprintln(os.Stderr, "usage: kem_keygen")
		return 2
	}

	secret, err := kem.KeyGen()
	if err != nil {
		log.Error("generating keypair", "error", err)
		return 1
	}

	serialized := secret.Serialize()
	if err := os.WriteFile("kem.sk", serialized[:], 0o600); err != nil {
		log.Error("writing secret key file", "error", err)
		return 1
	}

	fmt.Println(streamio.FormatHex(secret.Pk[:]))
	return 0
}
