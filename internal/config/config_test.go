package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func validConfig() Config {
	return Config{
		Source: SourceConfig{
			Path: "reference/dung_mud_source.txt",
		},
		Output: OutputConfig{
			Dir:    "data",
			Format: "json",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

func TestValidConfig(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestValidate_EmptySourcePath(t *testing.T) {
	cfg := validConfig()
	cfg.Source.Path = ""
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "source.path")
}

func TestValidate_EmptyOutputDir(t *testing.T) {
	cfg := validConfig()
	cfg.Output.Dir = ""
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output.dir")
}

func TestValidate_BadOutputFormat(t *testing.T) {
	cfg := validConfig()
	cfg.Output.Format = "xml"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output.format")
}

func TestValidate_BadLogLevel(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Level = "trace"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
}

func TestValidate_BadLogFormat(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Format = "xml"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.format")
}

func TestValidate_CollectsAllViolations(t *testing.T) {
	cfg := Config{}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "source.path")
	assert.Contains(t, err.Error(), "output.dir")
	assert.Contains(t, err.Error(), "output.format")
	assert.Contains(t, err.Error(), "logging.level")
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
source:
  path: /tmp/dung.mud
output:
  dir: /tmp/content
  format: yaml
logging:
  level: debug
  format: console
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/dung.mud", cfg.Source.Path)
	assert.Equal(t, "/tmp/content", cfg.Output.Dir)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_AppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("source:\n  path: /tmp/dung.mud\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "data", cfg.Output.Dir)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadFromViper_Defaults(t *testing.T) {
	cfg, err := LoadFromViper(Defaults())
	require.NoError(t, err)
	assert.NoError(t, cfg.Validate())
}

func TestValidate_LogLevelProperty(t *testing.T) {
	valid := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	rapid.Check(t, func(t *rapid.T) {
		level := rapid.StringMatching(`[a-z]{1,8}`).Draw(t, "level")
		cfg := validConfig()
		cfg.Logging.Level = level
		err := cfg.Validate()
		if valid[level] {
			assert.NoError(t, err)
		} else {
			assert.Error(t, err)
		}
	})
}
