package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.sgf")
	if err := os.WriteFile(path, []byte("(;FF[4])"), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := ResolveSource(path, nil)
	if err != nil || got != "(;FF[4])" {
		t.Errorf("path: %q, %v", got, err)
	}

	got, err = ResolveSource("-", strings.NewReader("(;GM[1])"))
	if err != nil || got != "(;GM[1])" {
		t.Errorf("stdin: %q, %v", got, err)
	}

	got, err = ResolveSource("(;PB[x])", nil)
	if err != nil || got != "(;PB[x])" {
		t.Errorf("text: %q, %v", got, err)
	}

	if _, err = ResolveSource(dir, nil); err == nil {
		t.Error("directory accepted")
	}

	long := "(;C[" + strings.Repeat("x", 300) + "])"
	got, err = ResolveSource(long, nil)
	if err != nil || got != long {
		t.Errorf("long text: %d bytes, %v", len(got), err)
	}

	got, err = ResolveSource("(;C[a/b])", nil)
	if err != nil || got != "(;C[a/b])" {
		t.Errorf("text with slash: %q, %v", got, err)
	}
}

func TestResolveSourceStatError(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}
	dir := filepath.Join(t.TempDir(), "locked")
	if err := os.Mkdir(dir, 0o700); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "game.sgf")
	if err := os.WriteFile(path, []byte("(;FF[4])"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.Chmod(dir, 0); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(dir, 0o700) })

	got, err := ResolveSource(path, nil)
	if err == nil {
		t.Errorf("unreadable path resolved as text %q", got)
	}
}
