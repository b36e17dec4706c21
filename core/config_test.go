package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromValidFile(t *testing.T) {
	tmp := t.TempDir()

	configYAML := `
env: prod
host: 0.0.0.0
port: 8080
debugHeaders: true
logLevel: warn
logEncoding: json
storyFile: stories/dragon.yml
gzip: false
`
	configPath := filepath.Join(tmp, DefaultConfigFile)
	require.NoError(t, os.WriteFile(configPath, []byte(configYAML), 0644))

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
	assert.True(t, cfg.DebugHeaders)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogEncoding)
	assert.Equal(t, "stories/dragon.yml", cfg.StoryFile)
	assert.False(t, cfg.Gzip)
	assert.True(t, cfg.Metrics, "unset keys keep their defaults")
}

func TestLoadConfigDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := LoadConfig("nonexistent.yml")
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
	assert.True(t, cfg.IsDev())
	assert.Equal(t, "127.0.0.1:5000", cfg.Addr())
}

func TestLoadConfigEnvironmentOverrides(t *testing.T) {
	t.Setenv("EXERCISES_PORT", "9090")
	t.Setenv("EXERCISES_DEBUG", "true")
	t.Setenv("EXERCISES_TEMPLATE_DIR", "/tmp/templates")

	cfg, err := LoadConfig("nonexistent.yml")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "/tmp/templates", cfg.TemplateDir)
}

func TestLoadConfigRejectsBadEnvironmentValue(t *testing.T) {
	t.Setenv("EXERCISES_PORT", "not-a-port")

	_, err := LoadConfig("nonexistent.yml")
	assert.Error(t, err)
}

func TestLoadConfigRejectsInvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), DefaultConfigFile)
	require.NoError(t, os.WriteFile(configPath, []byte("port: [1, 2"), 0644))

	_, err := LoadConfig(configPath)
	assert.Error(t, err)
}

func TestLoadConfigRejectsUnknownEnv(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), DefaultConfigFile)
	require.NoError(t, os.WriteFile(configPath, []byte("env: staging\n"), 0644))

	_, err := LoadConfig(configPath)
	assert.ErrorContains(t, err, "env must be dev or prod")
}
