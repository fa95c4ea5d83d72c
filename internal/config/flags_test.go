package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-u", "9",
		"-k", "flag-alias",
		"-device-secret", "flag-secret",
		"-d", "file.db",
		"-b", "/b",
		"-keystore", "/k",
		"-log-file", "/l",
		"-timeout", "45s",
		"-config", "/c.yaml",
		"restore", "/b/backup-1.bak",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(9), cfg.App.UserID)
	assert.Equal(t, "flag-alias", cfg.App.KeyAlias)
	assert.Equal(t, "flag-secret", cfg.App.DeviceSecret)
	assert.Equal(t, "/l", cfg.App.LogFile)
	assert.Equal(t, "file.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/b", cfg.Storage.Files.BackupDir)
	assert.Equal(t, "/k", cfg.Storage.Files.KeystoreDir)
	assert.Equal(t, 45*time.Second, cfg.Workers.OperationTimeout)
	assert.Equal(t, "/c.yaml", cfg.ConfigFilePath)
	assert.Equal(t, []string{"restore", "/b/backup-1.bak"}, cfg.Args)
}

func TestParseFlags_NoFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{"list"})
	require.NoError(t, err)

	assert.Zero(t, cfg.App.UserID)
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Equal(t, []string{"list"}, cfg.Args)
}

func TestParseFlags_ShortConfigAlias(t *testing.T) {
	cfg, err := ParseFlags([]string{"-c", "/etc/shift.json"})
	require.NoError(t, err)
	assert.Equal(t, "/etc/shift.json", cfg.ConfigFilePath)
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := ParseFlags([]string{"-nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing flags")
}

func TestParseFlags_InvalidDuration(t *testing.T) {
	_, err := ParseFlags([]string{"-timeout", "soon"})
	require.Error(t, err)
}
