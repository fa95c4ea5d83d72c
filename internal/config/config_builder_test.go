package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{UserID: 1, KeyAlias: "alias", DeviceSecret: "secret"},
		Storage: Storage{
			DB:    DB{DSN: "test.db"},
			Files: Files{BackupDir: "/b", KeystoreDir: "/k"},
		},
	}
}

func writeTempConfig(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestBuild_LaterLayersOverride(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.file = &StructuredConfig{App: App{UserID: 1, KeyAlias: "file-alias", DeviceSecret: "file-secret"}}
	b.env = &StructuredConfig{App: App{KeyAlias: "env-alias"}}
	b.flags = &StructuredConfig{App: App{UserID: 99}, Args: []string{"list"}}

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, int64(99), cfg.App.UserID)
	assert.Equal(t, "env-alias", cfg.App.KeyAlias)
	assert.Equal(t, "file-secret", cfg.App.DeviceSecret)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultBackupDir, cfg.Storage.Files.BackupDir)
	assert.Equal(t, []string{"list"}, cfg.Args)
}

func TestBuild_ZeroValuesDoNotOverride(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.env = &StructuredConfig{App: App{UserID: 4, DeviceSecret: "s"}}
	b.flags = &StructuredConfig{}

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, DefaultKeyAlias, cfg.App.KeyAlias)
	assert.Equal(t, int64(4), cfg.App.UserID)
}

// ── withEnv / withFlags / withFile ────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_KEY_ALIAS": "env-alias"})

	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
	require.NotNil(t, b.env)
	assert.Equal(t, "env-alias", b.env.App.KeyAlias)
	assert.NoError(t, b.err)
}

func TestWithFlags_SetsError_OnBadFlag(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-bogus"})
	assert.Error(t, b.err)
	assert.Nil(t, b.flags)
}

func TestWithFile_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.env = &StructuredConfig{}
	b.withFile()

	assert.Nil(t, b.file)
	assert.NoError(t, b.err)
}

func TestWithFile_FlagPathWins(t *testing.T) {
	envPath := writeTempConfig(t, "env.json", `{"app": {"key_alias": "from-env-file"}}`)
	flagPath := writeTempConfig(t, "flag.yaml", "app:\n  key_alias: from-flag-file\n")

	b := newConfigBuilder()
	b.env = &StructuredConfig{ConfigFilePath: envPath}
	b.flags = &StructuredConfig{ConfigFilePath: flagPath}
	b.withFile()

	require.NoError(t, b.err)
	require.NotNil(t, b.file)
	assert.Equal(t, "from-flag-file", b.file.App.KeyAlias)
}

func TestWithFile_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.env = &StructuredConfig{ConfigFilePath: "/nonexistent/config.json"}
	b.withFile()

	assert.Error(t, b.err)
}

// ── GetStructuredConfig ──────────────────────────────────────────────────────

func TestGetStructuredConfig_AllSources(t *testing.T) {
	path := writeTempConfig(t, "config.json", `{
		"app": {"user_id": 1, "device_secret": "file-secret"},
		"workers": {"operation_timeout": "10s"}
	}`)
	setEnvVars(t, map[string]string{
		"CONFIG":                  path,
		"STORAGE_DB_DATABASE_URI": "env.db",
	})

	cfg, err := GetStructuredConfig([]string{"-u", "12", "create"})
	require.NoError(t, err)

	assert.Equal(t, int64(12), cfg.App.UserID)
	assert.Equal(t, "file-secret", cfg.App.DeviceSecret)
	assert.Equal(t, DefaultKeyAlias, cfg.App.KeyAlias)
	assert.Equal(t, "env.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 10*time.Second, cfg.Workers.OperationTimeout)
	assert.Equal(t, []string{"create"}, cfg.Args)
}

func TestGetStructuredConfig_ValidationError(t *testing.T) {
	clearEnvVars(t)

	_, err := GetStructuredConfig([]string{"list"})
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

// ── validate ─────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "zero user", mutate: func(c *StructuredConfig) { c.App.UserID = 0 }, wantErr: ErrInvalidAppConfigs},
		{name: "empty alias", mutate: func(c *StructuredConfig) { c.App.KeyAlias = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "empty device secret", mutate: func(c *StructuredConfig) { c.App.DeviceSecret = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "empty dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "empty backup dir", mutate: func(c *StructuredConfig) { c.Storage.Files.BackupDir = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "shared dirs", mutate: func(c *StructuredConfig) { c.Storage.Files.KeystoreDir = "/b" }, wantErr: ErrInvalidStorageConfigs},
		{name: "negative timeout", mutate: func(c *StructuredConfig) { c.Workers.OperationTimeout = -time.Second }, wantErr: ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
