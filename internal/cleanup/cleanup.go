package cleanup

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"modcheck/internal/classify"
	"modcheck/internal/fileutil"
	"modcheck/internal/logging"
)

// ErrBackupDir marks a backup directory that could not be created. It is
// fatal for the cleanup stage only; the scan report has already been
// shown by the time cleanup runs.
var ErrBackupDir = errors.New("create backup directory")

// DefaultBackupPrefix names backup subdirectories when no prefix is
// configured.
const DefaultBackupPrefix = "modcheck-backup-"

const backupTimestampLayout = "20060102-150405"

// Failure records one file that could not be moved.
type Failure struct {
	Path string
	Err  error
}

// Report summarizes a cleanup run.
type Report struct {
	// BackupDir is the timestamped directory the originals were copied
	// into. Empty when nothing was selected.
	BackupDir string
	Moved     []string
	Failed    []Failure
}

// Execute backs up and removes the selected mod files. Every selected
// file is first copied into a fresh timestamped subdirectory of
// backupRoot and verified; only then is the original deleted. Per-file
// failures are recorded and the remaining files still processed.
//
// Core-library records are dropped from the selection unconditionally.
// That filter is a hard safety invariant, not a default the caller can
// override.
func Execute(logger *slog.Logger, selection []classify.Record, backupRoot, prefix string) (Report, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	if prefix == "" {
		prefix = DefaultBackupPrefix
	}

	eligible := selection[:0:0]
	for _, rec := range selection {
		if rec.IsCoreLibrary {
			logger.Warn("refusing to remove core library", "file", rec.FileName)
			continue
		}
		eligible = append(eligible, rec)
	}
	if len(eligible) == 0 {
		return Report{}, nil
	}

	backupDir := filepath.Join(backupRoot, prefix+time.Now().Format(backupTimestampLayout))
	if err := os.MkdirAll(backupDir, 0o755); err != nil {
		return Report{}, fmt.Errorf("%w: %s: %s", ErrBackupDir, backupDir, err)
	}

	report := Report{BackupDir: backupDir}
	for _, rec := range eligible {
		dst := fileutil.UniquePath(backupDir, rec.FileName)
		if err := fileutil.CopyVerified(rec.FilePath, dst); err != nil {
			logger.Error("backup copy failed, original kept", "file", rec.FileName, "error", err)
			report.Failed = append(report.Failed, Failure{Path: rec.FilePath, Err: err})
			continue
		}
		if err := os.Remove(rec.FilePath); err != nil {
			logger.Error("delete failed after backup", "file", rec.FileName, "error", err)
			report.Failed = append(report.Failed, Failure{Path: rec.FilePath, Err: err})
			continue
		}
		logger.Info("moved to backup", "file", rec.FileName, "backup", dst)
		report.Moved = append(report.Moved, rec.FilePath)
	}
	return report, nil
}
