// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/korean"

	"github.com/pdiddy/manuscript/internal/reformat"
	"github.com/pdiddy/manuscript/internal/textio"
	"github.com/pdiddy/manuscript/pkg/types"
)

// recordingNotifier captures notifications for assertions.
type recordingNotifier struct {
	infos  []string
	errors []string
}

func (r *recordingNotifier) Info(title, message string)  { r.infos = append(r.infos, message) }
func (r *recordingNotifier) Error(title, message string) { r.errors = append(r.errors, message) }

const sample = "#제목\n\"오늘\" 소식\n#본문\n첫 문장. 둘째 문장.\n사진: a.jpg\n#태그\n#뉴스\n"

const sampleOut = "#제목\n 오늘  소식\n#본문\n첫 문장.\n둘째 문장.\n(사진1)\n#태그\n#뉴스\n"

func newDriver(t *testing.T, sel Selection, cfg types.BatchConfig) (*Driver, *recordingNotifier) {
	t.Helper()
	f, err := reformat.New(types.DefaultReformatConfig())
	require.NoError(t, err)
	n := &recordingNotifier{}
	return &Driver{Formatter: f, Config: cfg, Selection: sel, Notifier: n}, n
}

func writeInputs(t *testing.T, dir string, count int) []string {
	t.Helper()
	paths := make([]string, count)
	for i := range paths {
		paths[i] = filepath.Join(dir, fmt.Sprintf("원고%02d.txt", i))
		require.NoError(t, os.WriteFile(paths[i], []byte(sample), 0o644))
	}
	return paths
}

func TestRun_EmptySelection(t *testing.T) {
	dir := t.TempDir()
	d, n := newDriver(t, PathList{""}, types.BatchConfig{})

	result, err := d.Run()
	require.ErrorIs(t, err, ErrEmptySelection)
	assert.Equal(t, 0, result.Total())
	assert.Equal(t, []string{"파일을 선택해주세요."}, n.errors)
	assert.Empty(t, n.infos)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "nothing should be written")
}

func TestRun_WritesNextToInput(t *testing.T) {
	dir := t.TempDir()
	paths := writeInputs(t, dir, 1)
	d, n := newDriver(t, PathList(paths), types.BatchConfig{})

	result, err := d.Run()
	require.NoError(t, err)
	require.Len(t, result.Files, 1)

	out := filepath.Join(dir, "원고00_1.txt")
	assert.Equal(t, out, result.Files[0].Output)
	assert.Equal(t, 1, result.Files[0].Photos)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, sampleOut, string(data))

	original, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	assert.Equal(t, sample, string(original), "input must not change")

	require.Len(t, n.infos, 1)
	assert.Contains(t, n.infos[0], "(총 1개 중 1개 처리)")
	assert.Contains(t, n.infos[0], out)
}

func TestRun_SecondRunPicksNextName(t *testing.T) {
	dir := t.TempDir()
	paths := writeInputs(t, dir, 1)

	for _, want := range []string{"원고00_1.txt", "원고00_2.txt"} {
		d, _ := newDriver(t, PathList(paths), types.BatchConfig{})
		result, err := d.Run()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, want), result.Files[0].Output)
	}
}

func TestRun_ProgressBatches(t *testing.T) {
	dir := t.TempDir()
	paths := writeInputs(t, dir, 45)
	d, n := newDriver(t, PathList(paths), types.BatchConfig{ProgressEvery: 20})

	result, err := d.Run()
	require.NoError(t, err)
	assert.Equal(t, 45, result.Processed)

	require.Len(t, n.infos, 3)
	assert.True(t, strings.HasPrefix(n.infos[0], "파일 처리 완료! (총 45개 중 20개 처리)\n저장된 파일들:\n"))
	assert.Contains(t, n.infos[1], "(총 45개 중 40개 처리)")
	assert.Contains(t, n.infos[2], "(총 45개 중 45개 처리)")
	assert.Equal(t, 20, strings.Count(n.infos[0], ".txt\n"))
	assert.Equal(t, 5, strings.Count(n.infos[2], ".txt\n"))
}

func TestRun_ExactMultipleHasNoExtraNotification(t *testing.T) {
	dir := t.TempDir()
	paths := writeInputs(t, dir, 4)
	d, n := newDriver(t, PathList(paths), types.BatchConfig{ProgressEvery: 2})

	_, err := d.Run()
	require.NoError(t, err)
	assert.Len(t, n.infos, 2)
}

func TestRun_FailureAbortsBatch(t *testing.T) {
	dir := t.TempDir()
	paths := writeInputs(t, dir, 2)
	missing := filepath.Join(dir, "없음.txt")
	sel := PathList{paths[0], missing, paths[1]}
	d, _ := newDriver(t, sel, types.BatchConfig{})

	_, err := d.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "없음.txt")

	assert.FileExists(t, filepath.Join(dir, "원고00_1.txt"))
	assert.NoFileExists(t, filepath.Join(dir, "원고01_1.txt"))
}

func TestRun_ContinueOnError(t *testing.T) {
	dir := t.TempDir()
	paths := writeInputs(t, dir, 2)
	missing := filepath.Join(dir, "없음.txt")
	sel := PathList{paths[0], missing, paths[1]}
	d, n := newDriver(t, sel, types.BatchConfig{ContinueOnError: true})

	result, err := d.Run()
	require.NoError(t, err)
	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, 1, result.Failed)
	assert.True(t, result.Files[1].Failed())
	require.Len(t, n.errors, 1)
	assert.Contains(t, n.errors[0], "없음.txt")
	assert.FileExists(t, filepath.Join(dir, "원고01_1.txt"))
}

func TestRun_OutputDir(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	paths := writeInputs(t, in, 1)
	d, _ := newDriver(t, PathList(paths), types.BatchConfig{OutputDir: out})

	result, err := d.Run()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(out, "원고00.txt"), result.Files[0].Output)
}

func TestRun_EUCKRInput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "old.txt")
	encoded, err := korean.EUCKR.NewEncoder().String(sample)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte(encoded), 0o644))
	d, _ := newDriver(t, PathList{path}, types.BatchConfig{Encoding: "euc-kr"})

	result, err := d.Run()
	require.NoError(t, err)
	data, err := os.ReadFile(result.Files[0].Output)
	require.NoError(t, err)
	assert.Equal(t, sampleOut, string(data), "output is always UTF-8")
}

func TestRun_TagsKeepInputBytes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tags.txt")
	tagLine := "#\u1100\u1161 \uF900 \u212B"
	require.NoError(t, os.WriteFile(path, []byte("#제목\nT\n#태그\n"+tagLine+"\n"), 0o644))
	d, _ := newDriver(t, PathList{path}, types.BatchConfig{})

	result, err := d.Run()
	require.NoError(t, err)
	data, err := os.ReadFile(result.Files[0].Output)
	require.NoError(t, err)
	assert.Equal(t, []byte("#제목\nT\n#태그\n"+tagLine+"\n"), data)
}

func TestRun_InvalidUTF8AbortsBatch(t *testing.T) {
	dir := t.TempDir()
	paths := writeInputs(t, dir, 2)
	bad := filepath.Join(dir, "깨짐.txt")
	require.NoError(t, os.WriteFile(bad, []byte("#제목\nT\n#태그\n\xff\xfe bad\n"), 0o644))
	d, _ := newDriver(t, PathList{paths[0], bad, paths[1]}, types.BatchConfig{})

	_, err := d.Run()
	require.ErrorIs(t, err, textio.ErrInvalidText)
	assert.Contains(t, err.Error(), "깨짐.txt")
	assert.NoFileExists(t, filepath.Join(dir, "깨짐_1.txt"))
	assert.NoFileExists(t, filepath.Join(dir, "원고01_1.txt"))
}

func TestRun_InvalidUTF8ContinueOnError(t *testing.T) {
	dir := t.TempDir()
	paths := writeInputs(t, dir, 1)
	bad := filepath.Join(dir, "깨짐.txt")
	require.NoError(t, os.WriteFile(bad, []byte("#제목\n\xff\xfe\n"), 0o644))
	d, n := newDriver(t, PathList{bad, paths[0]}, types.BatchConfig{ContinueOnError: true})

	result, err := d.Run()
	require.NoError(t, err)
	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 1, result.Failed)
	assert.True(t, result.Files[0].Failed())
	assert.Contains(t, result.Files[0].Error, "깨짐.txt")
	require.Len(t, n.errors, 1)
	assert.Contains(t, n.errors[0], "invalid text")
	assert.NoFileExists(t, filepath.Join(dir, "깨짐_1.txt"))
}
