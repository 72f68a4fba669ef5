package main

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncCommand_RejectsUnknownLevelBeforeDoingAnything(t *testing.T) {
	cmd := newSyncCommand()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--user", "1", "--level", "Z9"})

	// Fails on the flag alone: no config, database, or browser is touched.
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown level "Z9"`)
}
