package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tokuhyocli/internal/config"
	"tokuhyocli/internal/dataprocessing"
	"tokuhyocli/internal/exporter"
	"tokuhyocli/internal/files"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeFeedFile(t *testing.T, dir, name, content string) files.FileInfo {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return files.FileInfo{Path: path, Name: name}
}

func TestProcessDocument_Success(t *testing.T) {
	dir := t.TempDir()
	feed := writeFeedFile(t, dir, "kekka.xml", `<HeadLine>参議院比例代表候補者得票順</HeadLine>
<CsvData>
順位,,政党名／候補者名,当落マーク,党派コード,党派名,身分,合 計
1,00012345,山田太郎,当,01,テスト党,現,1200
2,00067890,佐藤花子,,01,テスト党,新,500
</CsvData>`)

	proc := dataprocessing.NewProcessor(config.Default().Processing, exporter.NewExcelWriter())

	ok := processDocument(proc, nil, feed, discardLogger())
	assert.True(t, ok)

	// A ranking headline yields the full report plus winner and loser
	// spreadsheets next to the source file.
	for _, name := range []string{
		"参議院比例代表候補者得票順.xlsx",
		"参議院比例代表候補者得票順当.xlsx",
		"参議院比例代表候補者得票順落.xlsx",
	} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}

func TestProcessDocument_BadDocumentSkipped(t *testing.T) {
	dir := t.TempDir()
	feed := writeFeedFile(t, dir, "broken.xml", "no tags here")

	proc := dataprocessing.NewProcessor(config.Default().Processing, exporter.NewExcelWriter())

	assert.False(t, processDocument(proc, nil, feed, discardLogger()))
}

func TestProcessDocument_MissingFileSkipped(t *testing.T) {
	feed := files.FileInfo{Path: filepath.Join(t.TempDir(), "gone.xml"), Name: "gone.xml"}
	proc := dataprocessing.NewProcessor(config.Default().Processing, exporter.NewExcelWriter())

	assert.False(t, processDocument(proc, nil, feed, discardLogger()))
}
