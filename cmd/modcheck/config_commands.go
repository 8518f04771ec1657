package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"modcheck/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigShowCommand(ctx))

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a sample configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
				target = defaultPath
			} else {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve config path: %w", err)
				}
				target = expanded
			}

			if dir := filepath.Dir(target); dir != "" {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("create config directory %q: %w", dir, err)
				}
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
				} else if !os.IsNotExist(err) {
					return fmt.Errorf("check config path: %w", err)
				}
			}

			if err := config.CreateSample(target); err != nil {
				return fmt.Errorf("create sample config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample configuration to %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the resolved configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "mods_dir:        %s\n", orAuto(cfg.Paths.ModsDir))
			fmt.Fprintf(out, "backup_dir:      %s\n", orDefault(cfg.Paths.BackupDir, "(inside scanned folder)"))
			fmt.Fprintf(out, "log_dir:         %s\n", orDefault(cfg.Paths.LogDir, "(console only)"))
			fmt.Fprintf(out, "extensions:      %s\n", strings.Join(cfg.Scan.Extensions, ", "))
			fmt.Fprintf(out, "recursive:       %v\n", cfg.Scan.Recursive)
			fmt.Fprintf(out, "follow_symlinks: %v\n", cfg.Scan.FollowSymlinks)
			fmt.Fprintf(out, "backup_prefix:   %s\n", cfg.Cleanup.BackupPrefix)
			fmt.Fprintf(out, "log format:      %s\n", cfg.Logging.Format)
			fmt.Fprintf(out, "log level:       %s\n", cfg.Logging.Level)
			if len(cfg.Classify.CoreLibraries) > 0 {
				fmt.Fprintf(out, "extra core libraries: %s\n", strings.Join(cfg.Classify.CoreLibraries, ", "))
			}
			return nil
		},
	}
}

func orAuto(value string) string {
	return orDefault(value, "(auto-detect)")
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
