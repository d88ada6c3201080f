package dataprocessing

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/japanese"

	"tokuhyocli/internal/config"
	apperrors "tokuhyocli/internal/errors"
	"tokuhyocli/pkg/contracts/domain"
)

// recordingRenderer captures rendered reports instead of writing files.
type recordingRenderer struct {
	reports []domain.Report
	paths   []string
	fail    bool
}

func (r *recordingRenderer) Render(_ context.Context, report domain.Report, path string) error {
	if r.fail {
		return errors.New("disk full")
	}
	r.reports = append(r.reports, report)
	r.paths = append(r.paths, path)
	return nil
}

const rankingFeed = `<?xml version="1.0"?>
<Document>
<InHeadLine>参議院比例代表候補者得票順(全国)</InHeadLine>
<CsvData>
順位,,政党名／候補者名,当落マーク,党派コード,党派名,身分,合 計
1,00012345,山田太郎,当,01,テスト党,現,1,234
2,00067890,佐藤花子,,01,テスト党,新,500
,,テスト党 合計,,01,テスト党,,1734
</CsvData>
</Document>
`

func writeFeed(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func newTestProcessor(r Renderer) *Processor {
	return NewProcessor(config.ProcessingConfig{
		Encodings:    []string{"utf-8", "shift_jis", "utf-16"},
		LoserColumns: config.DefaultLoserColumns,
	}, r)
}

func TestProcessor_RankingDocument(t *testing.T) {
	renderer := &recordingRenderer{}
	proc := newTestProcessor(renderer)

	path := writeFeed(t, "kekka.xml", rankingFeed)
	result, err := proc.ProcessDocument(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "参議院比例代表候補者得票順(全国)", result.Headline)
	assert.Equal(t, "utf-8", result.Encoding)
	assert.Equal(t, 2, result.Candidates)
	require.Len(t, renderer.reports, 3)

	full := renderer.reports[0].Records
	require.Len(t, full.Rows, 2)

	winners := renderer.reports[1].Records
	require.Len(t, winners.Rows, 1)
	totalIdx := winners.ColumnIndex(domain.TotalColumn)
	assert.Equal(t, int64(1234), winners.Rows[0][totalIdx].Number)

	losers := renderer.reports[2].Records
	require.Len(t, losers.Rows, 1)
	assert.Equal(t, "佐藤花子", losers.Rows[0][1].Text)
	assert.Equal(t, int64(500), losers.Rows[0][2].Number)

	// Reports land next to the source, named from the headline with
	// the winner/loser suffixes.
	dir := filepath.Dir(path)
	assert.Equal(t, filepath.Join(dir, "参議院比例代表候補者得票順(全国).xlsx"), renderer.paths[0])
	assert.Equal(t, filepath.Join(dir, "参議院比例代表候補者得票順(全国)当.xlsx"), renderer.paths[1])
	assert.Equal(t, filepath.Join(dir, "参議院比例代表候補者得票順(全国)落.xlsx"), renderer.paths[2])

	assert.Equal(t, renderer.paths, result.OutputPaths)
}

func TestProcessor_NonRankingDocumentFullOnly(t *testing.T) {
	feed := `<HeadLine>小選挙区開票結果</HeadLine>
<CsvData>
順位,,政党名／候補者名,当落マーク,党派コード,党派名,身分,合 計
1,00012345,山田太郎,当,01,テスト党,現,100
</CsvData>`

	renderer := &recordingRenderer{}
	proc := newTestProcessor(renderer)

	result, err := proc.ProcessDocument(context.Background(), writeFeed(t, "kaihyo.xml", feed))
	require.NoError(t, err)
	require.Len(t, renderer.reports, 1)
	assert.Equal(t, domain.ReportFull, renderer.reports[0].Kind)
	assert.Len(t, result.OutputPaths, 1)
}

func TestProcessor_ShiftJISDocument(t *testing.T) {
	raw, err := japanese.ShiftJIS.NewEncoder().Bytes([]byte(rankingFeed))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "sjis.xml")
	require.NoError(t, os.WriteFile(path, raw, 0644))

	renderer := &recordingRenderer{}
	proc := NewProcessor(config.ProcessingConfig{
		Encodings:    []string{"shift_jis", "utf-8"},
		LoserColumns: config.DefaultLoserColumns,
	}, renderer)

	result, err := proc.ProcessDocument(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "shift_jis", result.Encoding)
	assert.Equal(t, "参議院比例代表候補者得票順(全国)", result.Headline)
}

func TestProcessor_HeadlineSanitizedForFilenames(t *testing.T) {
	feed := `<HeadLine>開票結果: 第1区/速報?</HeadLine>
<CsvData>
順位,,政党名／候補者名,当落マーク,党派コード,党派名,身分,合 計
1,00012345,山田太郎,当,01,テスト党,現,100
</CsvData>`

	renderer := &recordingRenderer{}
	proc := newTestProcessor(renderer)

	result, err := proc.ProcessDocument(context.Background(), writeFeed(t, "feed.xml", feed))
	require.NoError(t, err)
	assert.Equal(t, "開票結果_ 第1区_速報_.xlsx", filepath.Base(result.OutputPaths[0]))
}

func TestProcessor_FailureKinds(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		sentinel error
	}{
		{"no tags at all", "plain text, no markup", apperrors.ErrEncodingUnresolved},
		{
			"no header row",
			"<HeadLine>h</HeadLine><CsvData>a,b,c\n1,2,3</CsvData>",
			apperrors.ErrHeaderNotFound,
		},
		{
			"no candidates",
			"<HeadLine>h</HeadLine><CsvData>順位,,政党名／候補者名,当落マーク,党派コード,党派名,身分,合 計\n,,党 合計,,01,党,,99</CsvData>",
			apperrors.ErrNoCandidateData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			renderer := &recordingRenderer{}
			proc := newTestProcessor(renderer)

			_, err := proc.ProcessDocument(context.Background(), writeFeed(t, "bad.xml", tt.content))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.sentinel))
			assert.Empty(t, renderer.reports)
		})
	}
}

func TestProcessor_RenderFailure(t *testing.T) {
	renderer := &recordingRenderer{fail: true}
	proc := newTestProcessor(renderer)

	_, err := proc.ProcessDocument(context.Background(), writeFeed(t, "kekka.xml", rankingFeed))
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrRenderFailure))
}

func TestProcessor_FullWidthDigitsNormalized(t *testing.T) {
	feed := `<HeadLine>比例代表候補者得票順</HeadLine>
<CsvData>
順位,,政党名／候補者名,当落マーク,党派コード,党派名,身分,合 計
１,０００１２３４５,山田太郎,当,01,テスト党,現,１２３４
</CsvData>`

	renderer := &recordingRenderer{}
	proc := newTestProcessor(renderer)

	_, err := proc.ProcessDocument(context.Background(), writeFeed(t, "zen.xml", feed))
	require.NoError(t, err)

	full := renderer.reports[0].Records
	require.Len(t, full.Rows, 1)
	assert.Equal(t, int64(1), full.Rows[0][0].Number)
	totalIdx := full.ColumnIndex(domain.TotalColumn)
	assert.Equal(t, int64(1234), full.Rows[0][totalIdx].Number)
}
