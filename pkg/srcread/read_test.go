package srcread

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadFileSmall(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "small.ts")
	want := "export const x = 1;\n"
	if err := os.WriteFile(path, []byte(want), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadFile(path, 0)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestReadFileLargeViaMmap(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "large.ts")
	content := strings.Repeat("x", MmapThreshold+1024)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadFile(path, 0)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(got) != len(content) {
		t.Fatalf("got %d bytes want %d", len(got), len(content))
	}
}

func TestReadFileExceedsLimit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "over.ts")
	if err := os.WriteFile(path, []byte(strings.Repeat("a", 100)), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := ReadFile(path, 10); err == nil {
		t.Fatal("expected size-limit error")
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "present.ts")
	os.WriteFile(path, []byte("x"), 0o644)

	if !Exists(path) {
		t.Fatal("expected Exists to return true for present file")
	}
	if Exists(filepath.Join(dir, "absent.ts")) {
		t.Fatal("expected Exists to return false for absent file")
	}
	if Exists(dir) {
		t.Fatal("expected Exists to return false for a directory")
	}
}
