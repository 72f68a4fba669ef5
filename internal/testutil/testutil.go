// Package testutil provides shared test helpers for creating config file fixtures.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// SetupTestConfig creates a minimal config file for testing.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	configContent := `platform:
  base_url: https://platform.test
  login_path: /alumnos.aspx
  course_code: INGA1C1
  headless: true
  wait_timeout_seconds: 1
  settle_delay_ms: 0
database:
  host: localhost
  port: 3306
  database: smartbooker_test
  username: test
booking:
  delay_ms: 0
`

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}
