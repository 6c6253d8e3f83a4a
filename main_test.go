package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "Version: "+Version+"\n", out)
}

func TestShowCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sel.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"version: 1\nsaved_at: 2026-10-17T09:00:00Z\nformat: HH:mm\nrange: [\"09:00\", \"17:30\"]\n",
	), 0o600))

	out, err := execute(t, "show", path)
	require.NoError(t, err)
	assert.Contains(t, out, "format: HH:mm")
	assert.Contains(t, out, "time:   (none)")
	assert.Contains(t, out, "range:  09:00 - 17:30")
	assert.Contains(t, out, "saved:  2026-10-17 09:00:00Z")
}

func TestRootRejectsBadConfig(t *testing.T) {
	_, err := execute(t, "--format", "YYYY")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "format")
}
