package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AldanTanneo/cryptography-class/poly1305"
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
	var buf [4096]byte
	n, _ := r.Read(buf[:])
	return string(buf[:n])
}

func TestRunMatchesLibrary(t *testing.T) {
	dir := t.TempDir()

	var key [32]byte
	key[0] = 7
	keyPath := filepath.Join(dir, "key")
	if err := os.WriteFile(keyPath, key[:], 0o600); err != nil {
		t.Fatalf("writing key file: %v", err)
	}

	msg := []byte("the quick brown fox jumps over the lazy dog")
	msgPath := filepath.Join(dir, "msg")
	if err := os.WriteFile(msgPath, msg, 0o600); err != nil {
		t.Fatalf("writing message file: %v", err)
	}

	f, err := os.Open(msgPath)
	if err != nil {
		t.Fatalf("opening message file: %v", err)
	}
	defer f.Close()
	want, err := poly1305.Sum(f, key)
	if err != nil {
		t.Fatalf("poly1305.Sum: %v", err)
	}

	var code int
	out := captureStdout(t, func() { code = run([]string{keyPath, msgPath}) })
	if code != 0 {
		t.Fatalf("run() = %d, want 0", code)
	}
	if got := strings.TrimSpace(out); got != streamio.FormatHex(want[:]) {
		t.Fatalf("run() printed %q, want %q", got, streamio.FormatHex(want[:]))
	}
}

func TestRunRejectsWrongKeyLength(t *testing.T) {
	dir := t.TempDir()
	keyPath := filepath.Join(dir, "badkey")
	os.WriteFile(keyPath, make([]byte, 10), 0o600)
	msgPath := filepath.Join(dir, "msg")
	os.WriteFile(msgPath, []byte("x"), 0o600)

	if code := run([]string{keyPath, msgPath}); code == 0 {
		t.Fatal("expected a nonzero exit code for a bad key length")
	}
}
