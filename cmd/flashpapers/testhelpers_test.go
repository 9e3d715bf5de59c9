package main

import (
	"testing"

	"github.com/at-ishikawa/flashpapers/internal/testutil"
)

// setConfigFile sets the global configFile variable and registers a cleanup to restore it.
func setConfigFile(t *testing.T, cfgPath string) {
	t.Helper()
	oldConfigFile := configFile
	configFile = cfgPath
	t.Cleanup(func() { configFile = oldConfigFile })
}

// setupTestConfig creates a test config and points the global configFile at it.
func setupTestConfig(t *testing.T) {
	t.Helper()
	setConfigFile(t, testutil.SetupTestConfig(t, t.TempDir()))
}
