package logging

import (
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreLog(t *testing.T) {
	t.Helper()
	out, flags, prefix := log.Writer(), log.Flags(), log.Prefix()
	t.Cleanup(func() {
		log.SetOutput(out)
		log.SetFlags(flags)
		log.SetPrefix(prefix)
	})
}

func TestSetupLoggingToFile(t *testing.T) {
	restoreLog(t)
	path := filepath.Join(t.TempDir(), "debug.log")

	cleanup, err := SetupLogging(path)
	require.NoError(t, err)
	Debugf("opened %s", "panel")
	Warnf("dropped %d", 3)
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "DEBUG opened panel")
	assert.Contains(t, string(data), "WARN dropped 3")
	assert.Contains(t, string(data), "logging_test.go:", "lines point at the caller")
}

func TestSetupLoggingDisabled(t *testing.T) {
	restoreLog(t)

	cleanup, err := SetupLogging("")
	require.NoError(t, err)
	defer cleanup()

	Infof("not written anywhere")
	assert.NotNil(t, log.Writer())
}

func TestSetupLoggingBadPath(t *testing.T) {
	restoreLog(t)

	_, err := SetupLogging(filepath.Join(t.TempDir(), "missing", "debug.log"))
	assert.Error(t, err)
}
