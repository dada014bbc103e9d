// Command shake128 reads stdin and prints its n-byte SHAKE128 digest
// as hex.
//
// Usage:
//
//	shake128 n
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/AldanTanneo/cryptography-class/internal/clilog"
	"github.com/AldanTanneo/cryptography-class/keccak"
	"github.com/AldanTanneo/cryptography-class/streamio"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin))
}

func run(args []string, stdin io.Reader) int {
	log := clilog.Default().Command("shake128")

	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: shake128 n")
		return 2
	}

	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		log.Error("parsing output length", "error", err)
		return 1
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		log.Error("reading stdin", "error", err)
		return 1
	}

	digest := keccak.Shake128(data, n)
	fmt.Println(streamio.FormatHex(digest))
	return 0
}
