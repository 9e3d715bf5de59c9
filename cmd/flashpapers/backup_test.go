package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBackupCommand(t *testing.T) {
	cmd := newBackupCommand()

	assert.Equal(t, "backup", cmd.Use)
	assert.True(t, cmd.HasSubCommands())
}

func TestNewBackupCreateCommand_RunE(t *testing.T) {
	setupTestConfig(t)

	addCmd := newPaperAddCommand()
	addCmd.SetArgs([]string{"--title", "Backed up", "--authors", "Anon"})
	require.NoError(t, addCmd.Execute())

	cmd := newBackupCreateCommand()
	cmd.SetArgs([]string{})
	assert.NoError(t, cmd.Execute())
}

func TestNewBackupPruneCommand_RunE(t *testing.T) {
	setupTestConfig(t)

	createCmd := newBackupCreateCommand()
	createCmd.SetArgs([]string{})
	require.NoError(t, createCmd.Execute())

	cmd := newBackupPruneCommand()
	cmd.SetArgs([]string{"--keep", "1"})
	assert.NoError(t, cmd.Execute())
}

func TestNewBackupRestoreCommand_MissingFile(t *testing.T) {
	setupTestConfig(t)

	cmd := newBackupRestoreCommand()
	cmd.SetArgs([]string{"/does/not/exist.json"})
	assert.Error(t, cmd.Execute())
}
