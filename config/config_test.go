package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.NotNil(t, cfg)
	assert.Equal(t, "./tradeweek.sqlite", cfg.Storage.DBPath)
	assert.Equal(t, "./Weekend-Saved", cfg.Storage.ArchiveDir)
	assert.Equal(t, 100.0, cfg.Week.DefaultInitialCapital)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid config",
			config:  Default(),
			wantErr: false,
		},
		{
			name: "missing db path",
			config: &Config{
				Storage: StorageConfig{ArchiveDir: "./Weekend-Saved"},
			},
			wantErr: true,
			errMsg:  "storage.db_path is required",
		},
		{
			name: "missing archive dir",
			config: &Config{
				Storage: StorageConfig{DBPath: "./tradeweek.sqlite"},
			},
			wantErr: true,
			errMsg:  "storage.archive_dir is required",
		},
		{
			name: "negative default capital",
			config: &Config{
				Storage: StorageConfig{DBPath: "x.db", ArchiveDir: "y"},
				Week:    WeekConfig{DefaultInitialCapital: -1},
			},
			wantErr: true,
			errMsg:  "week.default_initial_capital must not be negative",
		},
		{
			name: "bad log level",
			config: &Config{
				Storage: StorageConfig{DBPath: "x.db", ArchiveDir: "y"},
				Log:     LogConfig{Level: "shouty"},
			},
			wantErr: true,
			errMsg:  "unknown log.level: shouty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSaveLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tradeweek.yaml")

	cfg := Default()
	cfg.Week.DefaultInitialCapital = 250
	cfg.Log.Level = "debug"
	require.NoError(t, cfg.SaveToFile(path))

	got, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 250.0, got.Week.DefaultInitialCapital)
	assert.Equal(t, logrus.DebugLevel, got.LogLevel())
}

func TestSaveLoadJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tradeweek.json")

	require.NoError(t, Default().SaveToFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"db_path"`)

	got, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, Default().Storage.DBPath, got.Storage.DBPath)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLogLevelDefaultsToInfo(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, logrus.InfoLevel, cfg.LogLevel())
}
