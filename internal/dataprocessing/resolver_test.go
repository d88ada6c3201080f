package dataprocessing

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"

	apperrors "tokuhyocli/internal/errors"
)

const sampleDocument = "<InHeadLine>比例代表候補者得票順</InHeadLine>\n<CsvData>順位,データ</CsvData>\n"

func TestResolver_UTF8(t *testing.T) {
	r := NewResolver([]string{"utf-8", "shift_jis"})

	text, enc, err := r.Resolve([]byte(sampleDocument))
	require.NoError(t, err)
	assert.Equal(t, "utf-8", enc)
	assert.Contains(t, text, "比例代表候補者得票順")
}

func TestResolver_ShiftJIS(t *testing.T) {
	raw, err := japanese.ShiftJIS.NewEncoder().Bytes([]byte(sampleDocument))
	require.NoError(t, err)

	// Legacy-first order, as the older tool revisions configured it.
	r := NewResolver([]string{"shift_jis", "utf-8"})
	text, enc, err := r.Resolve(raw)
	require.NoError(t, err)
	assert.Equal(t, "shift_jis", enc)
	assert.Contains(t, text, "比例代表候補者得票順")
}

func TestResolver_ShiftJIS_UTF8FirstOrderStillResolves(t *testing.T) {
	// With the UTF-8-first order, a Shift_JIS document is accepted on
	// the utf-8 attempt: the ASCII tags survive permissive decoding
	// even though the Japanese payload degrades to replacement runes.
	// Both candidate orders have shipped; which one wins is a config
	// decision, not a correctness guarantee.
	raw, err := japanese.ShiftJIS.NewEncoder().Bytes([]byte(sampleDocument))
	require.NoError(t, err)

	r := NewResolver([]string{"utf-8", "shift_jis"})
	_, enc, err := r.Resolve(raw)
	require.NoError(t, err)
	assert.Equal(t, "utf-8", enc)
}

func TestResolver_UTF16(t *testing.T) {
	raw, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).
		NewEncoder().Bytes([]byte(sampleDocument))
	require.NoError(t, err)

	r := NewResolver([]string{"utf-8", "shift_jis", "utf-16"})
	text, enc, err := r.Resolve(raw)
	require.NoError(t, err)
	assert.Equal(t, "utf-16", enc)
	assert.Contains(t, text, "比例代表候補者得票順")
}

func TestResolver_NoTags(t *testing.T) {
	r := NewResolver([]string{"utf-8", "shift_jis", "utf-16"})

	_, _, err := r.Resolve([]byte("just some text with no markup at all"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrEncodingUnresolved))
}

func TestResolver_HeadlineTagAloneIsNotEnough(t *testing.T) {
	r := NewResolver([]string{"utf-8"})

	_, _, err := r.Resolve([]byte("<HeadLine>見出しのみ</HeadLine>"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrEncodingUnresolved))
}

func TestResolver_UnknownEncodingSkipped(t *testing.T) {
	r := NewResolver([]string{"latin-9", "utf-8"})

	_, enc, err := r.Resolve([]byte(sampleDocument))
	require.NoError(t, err)
	assert.Equal(t, "utf-8", enc)
}

func TestResolver_ResolveFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "feed.xml")
	require.NoError(t, os.WriteFile(path, []byte(sampleDocument), 0644))

	r := NewResolver([]string{"utf-8"})
	text, enc, err := r.ResolveFile(path)
	require.NoError(t, err)
	assert.Equal(t, "utf-8", enc)
	assert.NotEmpty(t, text)

	_, _, err = r.ResolveFile(filepath.Join(dir, "missing.xml"))
	assert.Error(t, err)
}
