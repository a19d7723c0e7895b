package commons

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_OmittedEngineSectionKeepsDefaults(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: 9090
database:
  host: db.internal
  name: smartmart
log:
  level: debug
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "debug", cfg.Log.Level)

	// The file says nothing about the engine; the tunables must not
	// collapse to zero values.
	assert.Equal(t, 5*time.Second, cfg.Engine.TxTimeout)
	assert.Equal(t, 100, cfg.Engine.DisplayMaxQuantity)
	assert.Equal(t, 5, cfg.Engine.LowStockThreshold)
	assert.Equal(t, 10, cfg.Engine.RefillThreshold)
	assert.Equal(t, 10, cfg.Engine.NearExpiryDays)
}

func TestLoadConfig_PartialEngineSectionOverridesOnlyGivenKeys(t *testing.T) {
	path := writeConfigFile(t, `
engine:
  displayMaxQuantity: 40
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 40, cfg.Engine.DisplayMaxQuantity)
	assert.Equal(t, 5*time.Second, cfg.Engine.TxTimeout)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
