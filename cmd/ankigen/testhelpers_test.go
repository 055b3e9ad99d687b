package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// setConfigFile sets the global configFile variable and registers a cleanup to restore it.
func setConfigFile(t *testing.T, cfgPath string) {
	t.Helper()
	oldConfigFile := configFile
	configFile = cfgPath
	t.Cleanup(func() { configFile = oldConfigFile })
}

// writeConfigFile writes content into a config.yml under a temporary directory.
func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0644))
	return cfgPath
}

// clearEnv unsets the variables the configuration reads, restoring them after the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"GOOGLE_API_KEY", "OPENAI_API_KEY", "ANKIGEN_MODEL", "ANKI_CONNECT_URL"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	// Keep a .env file in the working directory from leaking into the test.
	t.Chdir(t.TempDir())
}
