package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"modcheck/internal/classify"
	"modcheck/internal/cleanup"
	"modcheck/internal/config"
	"modcheck/internal/conflict"
	"modcheck/internal/crashlog"
	"modcheck/internal/modfile"
	"modcheck/internal/report"
)

// scanOutcome bundles everything one scan produced.
type scanOutcome struct {
	ModsDir string
	Records []classify.Record
	Summary conflict.Summary
}

type checkOptions struct {
	// ReportOnly suppresses the confirmation prompt and cleanup stage.
	ReportOnly bool
	// AssumeYes skips the prompt and proceeds straight to cleanup.
	AssumeYes bool
}

// runCheck is the shared scan → classify → analyze → render →
// (confirm) → cleanup pipeline behind the root, scan, and clean
// commands.
func runCheck(cmd *cobra.Command, ctx *commandContext, pathArg string, opts checkOptions) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := ctx.ensureLogger()
	if err != nil {
		return err
	}

	outcome, err := performScan(cfg, pathArg, logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	report.Render(out, outcome.Records, outcome.Summary)
	renderCrashLogs(out, outcome.ModsDir)

	selection := conflict.Selection(outcome.Records)
	if len(selection) == 0 {
		fmt.Fprintln(out, "No conflicting mods to remove.")
		return nil
	}

	if opts.ReportOnly {
		fmt.Fprintf(out, "%d conflicting %s eligible for removal (run without 'scan' to clean up).\n",
			len(selection), plural(len(selection), "mod", "mods"))
		return nil
	}

	fmt.Fprintf(out, "Found %d conflicting %s.\n", len(selection), plural(len(selection), "mod", "mods"))
	if !opts.AssumeYes {
		confirmed, err := confirmDeletion(cmd.InOrStdin(), out)
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Fprintln(out, "Skipping deletion.")
			return nil
		}
	}

	backupRoot := cfg.Paths.BackupDir
	if backupRoot == "" {
		backupRoot = outcome.ModsDir
	}
	rep, err := cleanup.Execute(logger, selection, backupRoot, cfg.Cleanup.BackupPrefix)
	if err != nil {
		return err
	}
	renderCleanupReport(out, rep)
	return nil
}

func performScan(cfg *config.Config, pathArg string, logger *slog.Logger) (*scanOutcome, error) {
	dir, err := resolveModsDir(pathArg, cfg)
	if err != nil {
		return nil, err
	}

	entries, err := modfile.Scan(dir, modfile.Options{
		Extensions:     cfg.Scan.Extensions,
		Recursive:      cfg.Scan.Recursive,
		FollowSymlinks: cfg.Scan.FollowSymlinks,
	})
	if err != nil {
		return nil, err
	}

	rules := classify.DefaultRules().Extend(cfg.Classify.CoreLibraries, cfg.Classify.Dependencies)
	records := make([]classify.Record, 0, len(entries))
	for _, entry := range entries {
		records = append(records, classify.Classify(entry.Path, rules))
	}
	summary := conflict.Analyze(records, rules)

	logger.Info("scan complete",
		"dir", dir,
		"mods", len(records),
		"dominant", summary.Dominant.String(),
		"minority", len(summary.MinorityPaths),
		"duplicate_groups", len(summary.DuplicateGroups))

	return &scanOutcome{ModsDir: dir, Records: records, Summary: summary}, nil
}

// resolveModsDir picks the folder to scan: explicit argument, then the
// configured mods_dir, then the platform default.
func resolveModsDir(pathArg string, cfg *config.Config) (string, error) {
	if pathArg != "" {
		return config.ExpandPath(pathArg)
	}
	if cfg.Paths.ModsDir != "" {
		return cfg.Paths.ModsDir, nil
	}
	dir, _ := modfile.DefaultModsDir()
	if dir == "" {
		return "", fmt.Errorf("%w: no path given and no default mods folder for this platform", modfile.ErrPathNotFound)
	}
	return dir, nil
}

func renderCrashLogs(out io.Writer, modsDir string) {
	entries := crashlog.Scan(modsDir, 0)
	if len(entries) == 0 {
		return
	}
	fmt.Fprintln(out, "Recent crash log entries:")
	for _, entry := range entries {
		fmt.Fprintf(out, "  • %s\n", entry)
	}
}

func renderCleanupReport(out io.Writer, rep cleanup.Report) {
	fmt.Fprintf(out, "%d moved, %d failed\n", len(rep.Moved), len(rep.Failed))
	if rep.BackupDir != "" && len(rep.Moved) > 0 {
		fmt.Fprintf(out, "Backups written to %s\n", rep.BackupDir)
	}
	for _, failure := range rep.Failed {
		fmt.Fprintf(out, "  failed: %s (%v)\n", failure.Path, failure.Err)
	}
}

func plural(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
