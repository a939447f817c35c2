package fileutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flowdsl/schemagen/internal/fileutil"
)

func TestUpdateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.json")

	wrote, err := fileutil.UpdateFile(path, []byte("v1"))
	require.NoError(t, err)
	require.True(t, wrote)

	// identical content: no write
	wrote, err = fileutil.UpdateFile(path, []byte("v1"))
	require.NoError(t, err)
	require.False(t, wrote)

	// changed content: written
	wrote, err = fileutil.UpdateFile(path, []byte("v2"))
	require.NoError(t, err)
	require.True(t, wrote)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "v2", string(data))
}

func TestUpdateFile_MissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "schema.json")
	_, err := fileutil.UpdateFile(path, []byte("v1"))
	require.Error(t, err)
}

func TestMkParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "schema.json")
	require.NoError(t, fileutil.MkParents(path))

	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	require.True(t, info.IsDir())

	require.NoError(t, fileutil.MkParents("schema.json"))
}
