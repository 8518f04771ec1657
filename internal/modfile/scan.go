package modfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
)

// ErrPathNotFound marks a scan root that does not exist or is not a
// directory. It aborts the run before any other work happens.
var ErrPathNotFound = errors.New("mods path not found")

// Options controls which files a scan yields.
type Options struct {
	// Extensions lists accepted file extensions including the leading
	// dot, compared case-insensitively. Empty means ".jar" only.
	Extensions []string

	// Recursive descends into subdirectories. Off by default: a mods
	// folder is flat by convention.
	Recursive bool

	// FollowSymlinks resolves symlinked entries once. Broken symlinks
	// are skipped either way.
	FollowSymlinks bool
}

// Entry is one candidate mod file.
type Entry struct {
	Path string
	Size int64
}

// Scan lists the regular mod-archive files under root, sorted by path.
// Returns ErrPathNotFound when root is missing or not a directory.
func Scan(root string, opts Options) ([]Entry, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve scan root: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrPathNotFound, abs)
		}
		return nil, fmt.Errorf("stat scan root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrPathNotFound, abs)
	}

	extensions := opts.Extensions
	if len(extensions) == 0 {
		extensions = []string{".jar"}
	}

	var entries []Entry
	if err := collect(abs, extensions, opts, &entries); err != nil {
		return nil, err
	}
	sort.Slice(entries, func(a, b int) bool { return entries[a].Path < entries[b].Path })
	return entries, nil
}

func collect(dir string, extensions []string, opts Options, out *[]Entry) error {
	listing, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read directory %s: %w", dir, err)
	}

	for _, item := range listing {
		path := filepath.Join(dir, item.Name())

		mode := item.Type()
		var info fs.FileInfo
		switch {
		case mode&fs.ModeSymlink != 0:
			if !opts.FollowSymlinks {
				continue
			}
			// Resolve the link once; skip broken targets quietly.
			resolved, statErr := os.Stat(path)
			if statErr != nil {
				continue
			}
			info = resolved
		case mode.IsRegular() || mode.IsDir():
			resolved, statErr := item.Info()
			if statErr != nil {
				continue
			}
			info = resolved
		default:
			continue
		}

		if info.IsDir() {
			if opts.Recursive {
				if err := collect(path, extensions, opts, out); err != nil {
					return err
				}
			}
			continue
		}
		if matchesExtension(item.Name(), extensions) {
			*out = append(*out, Entry{Path: path, Size: info.Size()})
		}
	}
	return nil
}

func matchesExtension(name string, extensions []string) bool {
	ext := filepath.Ext(name)
	for _, want := range extensions {
		if strings.EqualFold(ext, want) {
			return true
		}
	}
	return false
}

// DefaultModsDir resolves the platform-standard .minecraft/mods
// location. The second return value reports whether the directory
// actually exists.
func DefaultModsDir() (string, bool) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}

	var dir string
	switch runtime.GOOS {
	case "windows":
		base := os.Getenv("APPDATA")
		if base == "" {
			base = filepath.Join(home, "AppData", "Roaming")
		}
		dir = filepath.Join(base, ".minecraft", "mods")
	case "darwin":
		dir = filepath.Join(home, "Library", "Application Support", "minecraft", "mods")
	default:
		dir = filepath.Join(home, ".minecraft", "mods")
	}

	info, err := os.Stat(dir)
	return dir, err == nil && info.IsDir()
}
