package fsdirect

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestTree builds:
//
//	root/
//	  a.txt
//	  b.txt
//	  sub/
//	    c.txt
//	    nested/
func newTestTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.txt"), []byte("b"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub", "nested"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "c.txt"), []byte("c"), 0o644))

	return root
}

func TestFileExists(t *testing.T) {
	root := newTestTree(t)
	osfs := NewOSFS()

	assert.True(t, osfs.FileExists(filepath.Join(root, "a.txt")))
	assert.False(t, osfs.FileExists(filepath.Join(root, "missing.txt")))
	// A directory is not a file
	assert.False(t, osfs.FileExists(filepath.Join(root, "sub")))
}

func TestDirExists(t *testing.T) {
	root := newTestTree(t)
	osfs := NewOSFS()

	assert.True(t, osfs.DirExists(filepath.Join(root, "sub")))
	assert.False(t, osfs.DirExists(filepath.Join(root, "missing")))
	// A file is not a directory
	assert.False(t, osfs.DirExists(filepath.Join(root, "a.txt")))
}

func TestListFiles_TopLevel(t *testing.T) {
	root := newTestTree(t)
	osfs := NewOSFS()

	files, err := osfs.ListFiles(root, false)

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(root, "a.txt"),
		filepath.Join(root, "b.txt"),
	}, files)
}

func TestListFiles_Recursive(t *testing.T) {
	root := newTestTree(t)
	osfs := NewOSFS()

	files, err := osfs.ListFiles(root, true)

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(root, "a.txt"),
		filepath.Join(root, "b.txt"),
		filepath.Join(root, "sub", "c.txt"),
	}, files)
}

func TestListDirs_Recursive_ExcludesAnchor(t *testing.T) {
	root := newTestTree(t)
	osfs := NewOSFS()

	dirs, err := osfs.ListDirs(root, true)

	require.NoError(t, err)
	assert.NotContains(t, dirs, root)
	assert.ElementsMatch(t, []string{
		filepath.Join(root, "sub"),
		filepath.Join(root, "sub", "nested"),
	}, dirs)
}

func TestListFiles_MissingDir(t *testing.T) {
	osfs := NewOSFS()

	_, err := osfs.ListFiles(filepath.Join(t.TempDir(), "missing"), false)
	assert.Error(t, err)

	_, err = osfs.ListFiles(filepath.Join(t.TempDir(), "missing"), true)
	assert.Error(t, err)
}

func TestFileCreationTime(t *testing.T) {
	root := newTestTree(t)
	osfs := NewOSFS()

	ts, err := osfs.FileCreationTime(filepath.Join(root, "a.txt"))
	require.NoError(t, err)
	assert.False(t, ts.IsZero())

	// Directories are rejected
	_, err = osfs.FileCreationTime(filepath.Join(root, "sub"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = osfs.FileCreationTime(filepath.Join(root, "missing.txt"))
	assert.Error(t, err)
}

func TestDirCreationTime(t *testing.T) {
	root := newTestTree(t)
	osfs := NewOSFS()

	ts, err := osfs.DirCreationTime(filepath.Join(root, "sub"))
	require.NoError(t, err)
	assert.False(t, ts.IsZero())

	// Files are rejected
	_, err = osfs.DirCreationTime(filepath.Join(root, "a.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
