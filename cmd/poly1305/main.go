// Command poly1305 computes the one-time Poly1305 tag of a file.
//
// Usage:
//
//	poly1305 keyfile file
package main

import (
	"fmt"
	"os"

	"github.com/AldanTanneo/cryptography-class/internal/clilog"
	"github.com/AldanTanneo/cryptography-class/poly1305"
	"github.com/AldanTanneo/cryptography-class/streamio"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	log := clilog.Default().Command("poly1305")

	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: poly1305 keyfile file")
		return 2
	}

	keyBytes, err := os.ReadFile(args[0])
	if err != nil {
		log.Error("reading key file", "error", err)
		return 1
	}
	if len(keyBytes) != 32 {
		log.Error("key file has wrong length", "length", len(keyBytes), "want", 32)
		return 1
	}
	var key [32]byte
	copy(key[:], keyBytes)

	f, err := os.Open(args[1])
	if err != nil {
		log.Error("opening input file", "error", err)
		return 1
	}
	defer f.Close()

	tag, err := poly1305.Sum(f, key)
	if err != nil {
		log.Error("computing tag", "error", err)
		return 1
	}

	fmt.Println(streamio.FormatHex(tag[:]))
	return 0
}
