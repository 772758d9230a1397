package cmd

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCtimeCmd_File_RFC3339(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0o644))

	out, err := executeCommand(t, "ctime", path)

	require.NoError(t, err)
	ts, perr := time.Parse(time.RFC3339Nano, strings.TrimSpace(out))
	require.NoError(t, perr)
	assert.WithinDuration(t, time.Now(), ts, time.Minute)
}

func TestCtimeCmd_Filetime(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0o644))

	out, err := executeCommand(t, "ctime", "--filetime", path)

	require.NoError(t, err)
	raw, perr := strconv.ParseUint(strings.TrimSpace(out), 10, 64)
	require.NoError(t, perr)
	// 2001-01-01 in FILETIME ticks; any real timestamp is later
	assert.Greater(t, raw, uint64(126227808000000000))
}

func TestCtimeCmd_Directory(t *testing.T) {
	root := t.TempDir()

	out, err := executeCommand(t, "ctime", "--dir", root)

	require.NoError(t, err)
	_, perr := time.Parse(time.RFC3339Nano, strings.TrimSpace(out))
	assert.NoError(t, perr)
}

func TestCtimeCmd_Missing_NotFound(t *testing.T) {
	_, err := executeCommand(t, "ctime", filepath.Join(t.TempDir(), "ghost.txt"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ERR_201")
}
