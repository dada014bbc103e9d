package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/AldanTanneo/cryptography-class/keccak"
	"github.com/AldanTanneo/cryptography-class/streamio"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("creating pipe: %v", err)
	}
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()

	w.Close()
	var buf [256]byte
	n, _ := r.Read(buf[:])
	return string(buf[:n])
}

func TestRunMatchesLibrary(t *testing.T) {
	input := []byte("hello shake")
	want := keccak.Shake128(input, 16)

	var code int
	out := captureStdout(t, func() { code = run([]string{"16"}, bytes.NewReader(input)) })
	if code != 0 {
		t.Fatalf("run() = %d, want 0", code)
	}
	if got := strings.TrimSpace(out); got != streamio.FormatHex(want) {
		t.Fatalf("run() printed %q, want %q", got, streamio.FormatHex(want))
	}
}

func TestRunRejectsNegativeLength(t *testing.T) {
	if code := run([]string{"-1"}, bytes.NewReader(nil)); code == 0 {
		t.Fatal("expected a nonzero exit code for a negative length")
	}
}
