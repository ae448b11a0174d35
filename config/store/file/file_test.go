package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Read_Success(t *testing.T) {
	t.Parallel()

	content := []byte(`
name: test-app
version: "1.0"
`)

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	err := os.WriteFile(configPath, content, 0o600)
	require.NoError(t, err)

	data, err := NewStore(configPath).Read()

	require.NoError(t, err)
	assert.Equal(t, content, data)
}

func TestStore_Read_FileNotFound(t *testing.T) {
	t.Parallel()

	data, err := NewStore("/nonexistent/path/config.yaml").Read()

	require.Error(t, err)
	assert.Nil(t, data)
	assert.Contains(t, err.Error(), "stat file")
	assert.Contains(t, err.Error(), "nonexistent")
}

func TestStore_Read_DirectoryPath(t *testing.T) {
	t.Parallel()

	data, err := NewStore(t.TempDir()).Read()

	require.Error(t, err)
	assert.Nil(t, data)
	require.ErrorIs(t, err, ErrPathIsDirectory)
	assert.Contains(t, err.Error(), "is a directory")
}

func TestStore_Read_NotCached(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	err := os.WriteFile(configPath, []byte(`version: "1.0"`), 0o600)
	require.NoError(t, err)

	store := NewStore(configPath)

	_, err = store.Read()
	require.NoError(t, err)

	err = os.WriteFile(configPath, []byte(`version: "2.0"`), 0o600)
	require.NoError(t, err)

	data, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, []byte(`version: "2.0"`), data, "Read should return current file content")
}

func TestStore_Exists(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	exists, err := NewStore(configPath).Exists()
	require.NoError(t, err)
	assert.False(t, exists)

	err = os.WriteFile(configPath, []byte("a: 1"), 0o600)
	require.NoError(t, err)

	exists, err = NewStore(configPath).Exists()
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = NewStore(tmpDir).Exists()
	require.ErrorIs(t, err, ErrPathIsDirectory)
}

func TestStore_Create_NestedDirectories(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "settings", "nested", "deep.yml")

	store := NewStore(configPath)

	err := store.Create()
	require.NoError(t, err)

	data, err := store.Read()
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestStore_Write_ReplacesContent(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	store := NewStore(filepath.Join(tmpDir, "config.yaml"))

	require.NoError(t, store.Write([]byte("first: 1\nsecond: 2\n")))
	require.NoError(t, store.Write([]byte("third: 3\n")))

	data, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, "third: 3\n", string(data))
}

func TestNewStore_CleansPath(t *testing.T) {
	t.Parallel()

	store := NewStore("/tmp/a/../b//config.yml")

	assert.Equal(t, filepath.Clean("/tmp/b/config.yml"), store.Path())
}

func TestList_Recursive(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	paths := []string{
		filepath.Join(tmpDir, "config.yml"),
		filepath.Join(tmpDir, "a", "a.yml"),
		filepath.Join(tmpDir, "a", "b", "c", "deep.yml"),
	}

	for _, p := range paths {
		require.NoError(t, NewStore(p).Create())
	}

	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "empty"), 0o755))

	files, err := List(tmpDir)
	require.NoError(t, err)
	assert.ElementsMatch(t, paths, files)
}

func TestList_MissingDirectory(t *testing.T) {
	t.Parallel()

	files, err := List(filepath.Join(t.TempDir(), "missing"))

	require.Error(t, err)
	assert.Nil(t, files)
	assert.Contains(t, err.Error(), "listing directory")
}
