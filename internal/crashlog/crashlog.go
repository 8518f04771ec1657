package crashlog

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Entry is one extracted crash cause.
type Entry struct {
	Exception string
	Message   string
}

func (e Entry) String() string {
	return "Caused by: " + e.Exception + ": " + e.Message
}

// DefaultLimit bounds how many recent entries Scan returns.
const DefaultLimit = 5

var causePattern = regexp.MustCompile(`Caused by: ([\w.$]+): (.+)`)

// Scan looks for Java crash causes in the log directories next to the
// mods folder (crash-reports and logs in the parent directory). It is
// advisory output: missing directories and unreadable files are skipped
// silently, and at most limit entries are returned, oldest first among
// the most recent. A limit of zero or less means DefaultLimit.
func Scan(modsDir string, limit int) []Entry {
	if limit <= 0 {
		limit = DefaultLimit
	}

	parent := filepath.Dir(modsDir)
	var entries []Entry
	for _, sub := range []string{"crash-reports", "logs"} {
		entries = append(entries, scanDir(filepath.Join(parent, sub))...)
	}
	if len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	return entries
}

func scanDir(dir string) []Entry {
	var entries []Entry
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".log" && ext != ".txt" {
			return nil
		}
		data, readErr := os.ReadFile(path)
		if readErr != nil {
			return nil
		}
		for _, match := range causePattern.FindAllStringSubmatch(string(data), -1) {
			entries = append(entries, Entry{
				Exception: match[1],
				Message:   strings.TrimSpace(match[2]),
			})
		}
		return nil
	})
	return entries
}
