// Command kem_decaps recovers the session key from a ciphertext,
// printing it as hex. Decapsulation never fails outright — on a
// malformed or tampered ciphertext it returns the implicit-rejection
// key instead, so this command's hex-length check on ctext_hex is the
// only place a wrong-length ciphertext is actually rejected.
//
// Usage:
//
//	kem_decaps sk ctext_hex
//
// sk is the 96-byte secret key file written by kem_keygen.
package main

import (
	"fmt"
	"os"

	"github.com/AldanTanneo/cryptography-class/internal/cliio"
	"github.com/AldanTanneo/cryptography-class/internal/clilog"
	"github.com/AldanTanneo/cryptography-class/kem"
	"github.com/AldanTanneo/cryptography-class/streamio"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	log := clilog.Default().Command("kem_decaps")

	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: kem_decaps sk ctext_hex")
		return 2
	}

	skBytes, err := cliio.ReadFixedFile(args[0], kem.SerializedSecretKeyLen)
	if err != nil {
		log.Error("reading secret key file", "error", err)
		return 1
	}
	secret, err := kem.DeserializeSecretKey(skBytes)
	if err != nil {
		log.Error("parsing secret key", "error", err)
		return 1
	}

	cBytes, err := streamio.ParseHex(args[1], 48)
	if err != nil {
		log.Error("parsing ciphertext", "error", err)
		return 1
	}
	var c [48]byte
	copy(c[:], cBytes)

	key := kem.Decaps(c, secret)
	fmt.Println(streamio.FormatHex(key[:]))
	return 0
}
