// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package batch

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathList(t *testing.T) {
	files, err := PathList{"a.txt", "", "  ", "b.txt"}.Files()
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.txt"}, files)

	files, err = PathList(nil).Files()
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestListFile(t *testing.T) {
	dir := t.TempDir()
	list := filepath.Join(dir, "files.lst")
	require.NoError(t, os.WriteFile(list, []byte("# 오늘 원고\n/tmp/a.txt\n\n  /tmp/b.txt  \n"), 0o644))

	files, err := ListFile{Path: list}.Files()
	require.NoError(t, err)
	assert.Equal(t, []string{"/tmp/a.txt", "/tmp/b.txt"}, files)
}

func TestListFileStdin(t *testing.T) {
	files, err := ListFile{Path: "-", Stdin: strings.NewReader("x.txt\ny.txt\n")}.Files()
	require.NoError(t, err)
	assert.Equal(t, []string{"x.txt", "y.txt"}, files)
}

func TestListFileMissing(t *testing.T) {
	_, err := ListFile{Path: filepath.Join(t.TempDir(), "nope")}.Files()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening file list")
}
