package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig is the on-disk layout of the config file. The same
// layout is accepted as JSON and as YAML.
type StructuredFileConfig struct {
	App struct {
		UserID       int64  `json:"user_id" yaml:"user_id"`
		KeyAlias     string `json:"key_alias" yaml:"key_alias"`
		DeviceSecret string `json:"device_secret" yaml:"device_secret"`
		LogFile      string `json:"log_file" yaml:"log_file"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db,omitempty" yaml:"db,omitempty"`

		Files struct {
			BackupDir   string `json:"backup_dir" yaml:"backup_dir"`
			KeystoreDir string `json:"keystore_dir" yaml:"keystore_dir"`
		} `json:"files,omitempty" yaml:"files,omitempty"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Workers struct {
		OperationTimeout Duration `json:"operation_timeout" yaml:"operation_timeout"`
	} `json:"workers,omitempty" yaml:"workers,omitempty"`
}

// parseFile reads the config file at path. Files ending in .yaml or .yml are
// decoded as YAML, anything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}
	defer file.Close()

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.NewDecoder(file).Decode(&fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err := json.NewDecoder(file).Decode(&fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return &StructuredConfig{
		App: App{
			UserID:       fileCfg.App.UserID,
			KeyAlias:     fileCfg.App.KeyAlias,
			DeviceSecret: fileCfg.App.DeviceSecret,
			LogFile:      fileCfg.App.LogFile,
		},
		Storage: Storage{
			DB: DB{DSN: fileCfg.Storage.DB.DSN},
			Files: Files{
				BackupDir:   fileCfg.Storage.Files.BackupDir,
				KeystoreDir: fileCfg.Storage.Files.KeystoreDir,
			},
		},
		Workers: Workers{
			OperationTimeout: time.Duration(fileCfg.Workers.OperationTimeout),
		},
	}, nil
}

// Duration is a wrapper around time.Duration that supports decoding from
// strings like "1h", "30s" as well as from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	tmp, err := time.ParseDuration(s)
	if err != nil {
		var n int64
		if numErr := node.Decode(&n); numErr != nil {
			return err
		}
		tmp = time.Duration(n)
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
