// Command kem_encaps encapsulates a fresh session key under a public
// key, printing the 48-byte ciphertext and the 16-byte session key,
// both as hex, one per line.
//
// Usage:
//
//	kem_encaps pk
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
	log := clilog.Default().Command("kem_encaps")

	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: kem_encaps pk")
		return 2
	}

	pkBytes, err := streamio.ParseHex(args[0], 32)
	if err != nil {
		log.Error("parsing public key", "error", err)
		return 1
	}
	var pk [32]byte
	copy(pk[:], pkBytes)

	c, key, err := kem.Encaps(pk)
	if err != nil {
		log.Error("encapsulating", "error", err)
		return 1
	}

	fmt.Println(streamio.FormatHex(c[:]))
	fmt.Println(streamio.FormatHex(key[:]))
	return 0
}
