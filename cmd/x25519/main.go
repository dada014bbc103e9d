// Command x25519 computes the RFC 7748 X25519 scalar multiplication,
// printing the 32-byte result as hex.
//
// Usage:
//
//	x25519 m [u]
//
// m and u are 64 hex characters (32 bytes, little-endian); u defaults
// to the Curve25519 base point.
package main

import (
	"fmt"
	"os"

	"github.com/AldanTanneo/cryptography-class/internal/clilog"
	"github.com/AldanTanneo/cryptography-class/montgomery"
	"github.com/AldanTanneo/cryptography-class/streamio"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	log := clilog.Default().Command("x25519")

	if len(args) < 1 || len(args) > 2 {
		fmt.Fprintln(os.Stderr, "usage: x25519 m [u]")
		return 2
	}

	mBytes, err := streamio.ParseHex(args[0], 32)
	if err != nil {
		log.Error("parsing scalar", "error", err)
		return 1
	}
	var m [32]byte
	copy(m[:], mBytes)

	u := [32]byte{9}
	if len(args) == 2 {
		uBytes, err := streamio.ParseHex(args[1], 32)
		if err != nil {
			log.Error("parsing u-coordinate", "error", err)
			return 1
		}
		copy(u[:], uBytes)
	}

	result := montgomery.X25519(m, u)
	fmt.Println(streamio.FormatHex(result[:]))
	return 0
}
