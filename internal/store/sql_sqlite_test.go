package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPath(t *testing.T) {
	assert.Equal(t,
		filepath.Join("/opt/omero", "etc", "grid", "config.db"),
		Path("/opt/omero"))
}

func TestCreateLocalDBFileIfNotExists_CreatesFileAndParents(t *testing.T) {
	dbFile := filepath.Join(t.TempDir(), "etc", "grid", "config.db")

	require.NoError(t, createLocalDBFileIfNotExists(dbFile))

	info, err := os.Stat(dbFile)
	require.NoError(t, err)
	assert.False(t, info.IsDir())
}

func TestCreateLocalDBFileIfNotExists_ExistingFileUntouched(t *testing.T) {
	dbFile := filepath.Join(t.TempDir(), "config.db")
	require.NoError(t, os.WriteFile(dbFile, []byte("payload"), 0o600))

	require.NoError(t, createLocalDBFileIfNotExists(dbFile))

	data, err := os.ReadFile(dbFile)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
}
