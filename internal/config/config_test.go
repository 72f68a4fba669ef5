package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartbooker/internal/config"
	"smartbooker/internal/testutil"
)

func writeConfig(t *testing.T, tmpDir, content string) string {
	t.Helper()
	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0644))
	return cfgPath
}

func TestConfigLoader_Load(t *testing.T) {
	t.Run("loads a config file and fills defaults", func(t *testing.T) {
		cfgPath := testutil.SetupTestConfig(t, t.TempDir())

		loader, err := config.NewConfigLoader(cfgPath)
		require.NoError(t, err)
		cfg, err := loader.Load()
		require.NoError(t, err)

		assert.Equal(t, "https://platform.test", cfg.Platform.BaseURL)
		assert.Equal(t, "INGA1C1", cfg.Platform.CourseCode)
		assert.Equal(t, 1, cfg.Platform.WaitTimeoutSeconds)

		// Untouched keys keep their defaults.
		assert.Equal(t, 26, cfg.Platform.MaxTablePages)
		assert.Equal(t, 180, cfg.Platform.ScriptTimeoutSeconds)
		assert.Equal(t, "#vUSUCOD", cfg.Platform.Selectors.LoginUsername)
		assert.Equal(t, "#vUSUNOMBRE", cfg.Platform.Selectors.DashboardName)
		assert.Equal(t, 1, cfg.Platform.Columns.Number)
		assert.Equal(t, 26, cfg.Booking.MaxDialogPages)
	})

	t.Run("credentials come from the environment", func(t *testing.T) {
		cfgPath := testutil.SetupTestConfig(t, t.TempDir())
		t.Setenv("PLATFORM_USERNAME", "student-1")
		t.Setenv("PLATFORM_PASSWORD", "secret")
		t.Setenv("DB_PASSWORD", "db-secret")

		loader, err := config.NewConfigLoader(cfgPath)
		require.NoError(t, err)
		cfg, err := loader.Load()
		require.NoError(t, err)

		assert.Equal(t, "student-1", cfg.Platform.Username)
		assert.Equal(t, "secret", cfg.Platform.Password)
		assert.Equal(t, "db-secret", cfg.Database.Password)
	})

	t.Run("errors on a missing explicit config file", func(t *testing.T) {
		loader, err := config.NewConfigLoader(t.TempDir() + "/nope.yml")
		require.NoError(t, err)
		_, err = loader.Load()
		// An explicitly named file must exist.
		require.Error(t, err)
	})

	t.Run("rejects an out-of-range wait timeout", func(t *testing.T) {
		tmpDir := t.TempDir()
		cfgPath := writeConfig(t, tmpDir, `platform:
  base_url: https://platform.test
  login_path: /alumnos.aspx
  course_code: INGA1C1
  wait_timeout_seconds: 600
`)

		loader, err := config.NewConfigLoader(cfgPath)
		require.NoError(t, err)
		_, err = loader.Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid configuration")
	})

	t.Run("rejects a base URL that is not a URL", func(t *testing.T) {
		tmpDir := t.TempDir()
		cfgPath := writeConfig(t, tmpDir, `platform:
  base_url: not-a-url
  login_path: /alumnos.aspx
  course_code: INGA1C1
`)

		loader, err := config.NewConfigLoader(cfgPath)
		require.NoError(t, err)
		_, err = loader.Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid configuration")
	})
}
