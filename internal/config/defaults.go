package config

const (
	defaultExtension    = ".jar"
	defaultBackupPrefix = "modcheck-backup-"
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Scan: Scan{
			Extensions:     []string{defaultExtension},
			Recursive:      false,
			FollowSymlinks: true,
		},
		Cleanup: Cleanup{
			BackupPrefix: defaultBackupPrefix,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
