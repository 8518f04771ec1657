// Package testsupport provides shared helpers for package tests.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// ModsDir creates a temporary mods folder populated with fake mod
// archives carrying the given filenames. Contents differ per file so
// verified copies have real bytes to hash.
func ModsDir(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		WriteMod(t, dir, name)
	}
	return dir
}

// WriteMod creates one fake mod archive inside dir and returns its path.
func WriteMod(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("PK\x03\x04 fake mod "+name), 0o644); err != nil {
		t.Fatalf("write mod fixture %s: %v", name, err)
	}
	return path
}
