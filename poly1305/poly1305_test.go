package poly1305

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"testing"

	xpoly1305 "golang.org/x/crypto/poly1305"
)

func TestSumRFC7539Vector(t *testing.T) {
	key, err := hex.DecodeString("85d6be7857556d337f4452fe42d506a80103808afb0db2fd4abff6af4149f51b")
	if err != nil {
		t.Fatalf("bad key fixture: %v", err)
	}
	var keyArr [32]byte
	copy(keyArr[:], key)

	want, err := hex.DecodeString("a8061dc1305136c6c22b8baf0c0127a9")
	if err != nil {
		t.Fatalf("bad tag fixture: %v", err)
	}

	tag, err := Sum(bytes.NewReader([]byte("Cryptographic Forum Research Group")), keyArr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(tag[:], want) {
		t.Fatalf("tag = %x, want %x", tag, want)
	}
}

func TestSumMatchesReferenceAcrossLengths(t *testing.T) {
	var key [32]byte
	_, _ = rand.Read(key[:])

	for _, n := range []int{0, 1, 15, 16, 17, 31, 32, 33, 100, 256} {
		msg := make([]byte, n)
		_, _ = rand.Read(msg)

		got, err := Sum(bytes.NewReader(msg), key)
		if err != nil {
			t.Fatalf("len=%d: unexpected error: %v", n, err)
		}

		var want [16]byte
		xpoly1305.Sum(&want, msg, &key)

		if got != want {
			t.Fatalf("len=%d: tag = %x, want %x", n, got, want)
		}
	}
}

func TestSumDiffersOnTamperedMessage(t *testing.T) {
	var key [32]byte
	_, _ = rand.Read(key[:])

	msg := []byte("authenticate this message please")
	tag1, _ := Sum(bytes.NewReader(msg), key)

	tampered := append([]byte(nil), msg...)
	tampered[0] ^= 1
	tag2, _ := Sum(bytes.NewReader(tampered), key)

	if tag1 == tag2 {
		t.Fatal("tags collided after tampering with message")
	}
}
