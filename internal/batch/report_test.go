// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package batch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/manuscript/pkg/types"
)

func TestWriteReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yaml")
	result := types.BatchResult{
		Files: []types.FileResult{
			{Input: "a.txt", Output: "a_1.txt", Photos: 3},
			{Input: "b.txt", Error: "opening b.txt: no such file or directory"},
		},
		Processed: 1,
		Failed:    1,
	}

	require.NoError(t, WriteReport(path, result))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "generated_at:")
	assert.Contains(t, string(data), "processed: 1")

	got, err := ReadReport(path)
	require.NoError(t, err)
	assert.NotEmpty(t, got.GeneratedAt)
	assert.Equal(t, result, got.BatchResult)
}

func TestReadReportInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":::bad\n"), 0o644))

	_, err := ReadReport(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing report")
}
