package config

import (
	"flag"
	"fmt"
	"time"
)

// ParseFlags parses the command-line flags in args into a partial
// [StructuredConfig]. Positional arguments are returned in Args.
//
// Flags:
//
//	-u user id
//	-k key alias
//	-device-secret keystore device secret
//	-d database DSN (SQLite path or postgres:// URL)
//	-b backup directory
//	-keystore keystore directory
//	-log-file client log file
//	-timeout operation timeout (e.g. "30s", "2m")
//	-c/-config config file path (JSON or YAML)
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("shiftbackup", flag.ContinueOnError)

	var (
		userID         int64
		keyAlias       string
		deviceSecret   string
		databaseDSN    string
		backupDir      string
		keystoreDir    string
		logFile        string
		timeout        time.Duration
		configFilePath string
	)

	fs.Int64Var(&userID, "u", 0, "User ID")
	fs.StringVar(&keyAlias, "k", "", "Backup key alias")
	fs.StringVar(&deviceSecret, "device-secret", "", "Keystore device secret")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&backupDir, "b", "", "Backup directory")
	fs.StringVar(&keystoreDir, "keystore", "", "Keystore directory")
	fs.StringVar(&logFile, "log-file", "", "Client log file")
	fs.DurationVar(&timeout, "timeout", 0, "Operation timeout (e.g., 30s, 2m)")
	fs.StringVar(&configFilePath, "c", "", "Config file path")
	fs.StringVar(&configFilePath, "config", "", "Config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			UserID:       userID,
			KeyAlias:     keyAlias,
			DeviceSecret: deviceSecret,
			LogFile:      logFile,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
			Files: Files{
				BackupDir:   backupDir,
				KeystoreDir: keystoreDir,
			},
		},
		Workers:        Workers{OperationTimeout: timeout},
		ConfigFilePath: configFilePath,
		Args:           fs.Args(),
	}, nil
}
