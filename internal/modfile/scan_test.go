package modfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("jar"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestScanFiltersByExtension(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "create-forge-0.5.1.jar"))
	writeFile(t, filepath.Join(dir, "sodium.JAR"))
	writeFile(t, filepath.Join(dir, "readme.txt"))
	writeFile(t, filepath.Join(dir, "config.toml"))

	entries, err := Scan(dir, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2 (case-insensitive .jar only)", len(entries))
	}
	for _, e := range entries {
		if !filepath.IsAbs(e.Path) {
			t.Errorf("path not absolute: %s", e.Path)
		}
	}
}

func TestScanSkipsSubdirectoriesByDefault(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "top.jar"))
	sub := filepath.Join(dir, "disabled")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(sub, "nested.jar"))

	entries, err := Scan(dir, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1 (no recursion by default)", len(entries))
	}

	entries, err = Scan(dir, Options{Recursive: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2 with recursion", len(entries))
	}
}

func TestScanPathNotFound(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "missing"), Options{})
	if !errors.Is(err, ErrPathNotFound) {
		t.Fatalf("err = %v, want ErrPathNotFound", err)
	}

	dir := t.TempDir()
	file := filepath.Join(dir, "plain.jar")
	writeFile(t, file)
	_, err = Scan(file, Options{})
	if !errors.Is(err, ErrPathNotFound) {
		t.Fatalf("err = %v, want ErrPathNotFound for non-directory root", err)
	}
}

func TestScanSymlinks(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "real.jar")
	writeFile(t, target)

	link := filepath.Join(dir, "link.jar")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	broken := filepath.Join(dir, "broken.jar")
	if err := os.Symlink(filepath.Join(dir, "gone.jar"), broken); err != nil {
		t.Fatal(err)
	}

	entries, err := Scan(dir, Options{FollowSymlinks: true})
	if err != nil {
		t.Fatal(err)
	}
	// real.jar plus the working symlink; the broken one is skipped.
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}

	entries, err = Scan(dir, Options{FollowSymlinks: false})
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1 with symlinks ignored", len(entries))
	}
}

func TestScanEmptyDirectory(t *testing.T) {
	entries, err := Scan(t.TempDir(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Fatalf("entries = %d, want 0", len(entries))
	}
}
