package main

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCommand_PDFRequiresOutput(t *testing.T) {
	cmd := newStatusCommand()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--user", "1", "--pdf"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--pdf requires --output")
}
