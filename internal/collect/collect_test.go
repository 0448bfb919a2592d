package collect

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beru3/historycal-sub001/internal/csvio"
)

const entrypointCSV = "No,通貨ペア,Entry,Exit,方向,実用スコア\n" +
	"1,USDJPY,09:00:00,09:05:00,Long,3.5\n"

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLatestScored(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "analyzed_high_scores_20250504_090000.csv", "x")
	writeFile(t, dir, "analyzed_high_scores_20250506_120000.csv", "x")
	writeFile(t, dir, "analyzed_high_scores_20250506_090000.csv", "x")
	writeFile(t, dir, "unrelated.csv", "x")

	f, err := LatestScored(dir)
	require.NoError(t, err)
	assert.Equal(t, "analyzed_high_scores_20250506_120000.csv", filepath.Base(f.Path))
	assert.Equal(t, time.Date(2025, 5, 6, 12, 0, 0, 0, time.UTC), f.Date)
}

func TestLatestScored_NoFiles(t *testing.T) {
	_, err := LatestScored(t.TempDir())
	assert.ErrorIs(t, err, ErrNoFiles)
}

func TestRecentEntrypoints_LookbackFilter(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "entrypoints_20250506.csv", "x")
	writeFile(t, dir, "entrypoints_20250501.csv", "x")
	writeFile(t, dir, "entrypoints_20250420.csv", "x") // too old
	writeFile(t, dir, "entrypoints_notadate.csv", "x") // malformed, skipped

	now := time.Date(2025, 5, 6, 15, 0, 0, 0, time.UTC)
	files, err := RecentEntrypoints(dir, now, 7*24*time.Hour, nil)
	require.NoError(t, err)

	require.Len(t, files, 2)
	assert.Equal(t, "entrypoints_20250506.csv", filepath.Base(files[0].Path), "newest first")
	assert.Equal(t, "entrypoints_20250501.csv", filepath.Base(files[1].Path))
}

func TestRecentEntrypoints_Empty(t *testing.T) {
	_, err := RecentEntrypoints(t.TempDir(), time.Now(), 24*time.Hour, nil)
	assert.ErrorIs(t, err, ErrNoFiles)
}

func TestLoadAll_TagsRowsWithFileDate(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "entrypoints_20250506.csv", entrypointCSV)
	writeFile(t, dir, "entrypoints_20250505.csv", entrypointCSV)

	now := time.Date(2025, 5, 6, 15, 0, 0, 0, time.UTC)
	files, err := RecentEntrypoints(dir, now, 7*24*time.Hour, nil)
	require.NoError(t, err)

	rows, err := LoadAll(files, csvio.EntrypointColumns(), nil)
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, "2025/05/06", rows[0].Date)
	assert.Equal(t, "2025/05/05", rows[1].Date)
}

func TestLoadAll_SkipsBadSchemaFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "entrypoints_20250506.csv", entrypointCSV)
	writeFile(t, dir, "entrypoints_20250505.csv", "foo,bar\n1,2\n")

	now := time.Date(2025, 5, 6, 15, 0, 0, 0, time.UTC)
	files, err := RecentEntrypoints(dir, now, 7*24*time.Hour, nil)
	require.NoError(t, err)

	rows, err := LoadAll(files, csvio.EntrypointColumns(), nil)
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, "entrypoints_20250506.csv", rows[0].Source)
}

func TestBackup(t *testing.T) {
	src := t.TempDir()
	writeFile(t, src, "entrypoints_20250506.csv", entrypointCSV)

	dst := t.TempDir()
	files := []File{{Path: filepath.Join(src, "entrypoints_20250506.csv")}}
	require.NoError(t, Backup(files, dst))

	copied, err := os.ReadFile(filepath.Join(dst, "originals", "entrypoints_20250506.csv"))
	require.NoError(t, err)
	assert.Equal(t, entrypointCSV, string(copied))
}
