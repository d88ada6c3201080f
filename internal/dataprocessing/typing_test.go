package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tokuhyocli/pkg/contracts/domain"
)

func TestParseCount(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"1,234", 1234},
		{"1234", 1234},
		{"", 0},
		{"   ", 0},
		{"garbage", 0},
		{"12.7", 12},
		{"1,234,567", 1234567},
		{" 500 ", 500},
		{"-10", -10},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, parseCount(tt.input), "input %q", tt.input)
	}
}

func TestCoerceColumns(t *testing.T) {
	rs := &domain.RecordSet{
		Header:  []string{"順位", "政党コード／人物番号", "政党名／候補者名", "当落マーク", "党派コード", "党派名", "身分", "合 計"},
		Numeric: make([]bool, 8),
		Rows: [][]domain.Cell{
			{
				domain.TextCell("1"), domain.TextCell("00012345"), domain.TextCell("山田太郎"),
				domain.TextCell("当"), domain.TextCell("01"), domain.TextCell("テスト党"),
				domain.TextCell("現"), domain.TextCell("1,234"),
			},
			{
				domain.TextCell("2"), domain.TextCell("00067890"), domain.TextCell("佐藤花子"),
				domain.TextCell(""), domain.TextCell("01"), domain.TextCell("テスト党"),
				domain.TextCell("新"), domain.TextCell(""),
			},
		},
	}

	typed := CoerceColumns(rs)

	// Rank and total are numeric; identity columns stay text.
	assert.True(t, typed.Numeric[0])
	assert.False(t, typed.Numeric[1])
	assert.False(t, typed.Numeric[2])
	assert.False(t, typed.Numeric[3])
	assert.True(t, typed.Numeric[7])

	assert.Equal(t, domain.NumberCell(1), typed.Rows[0][0])
	assert.Equal(t, domain.NumberCell(1234), typed.Rows[0][7])
	assert.Equal(t, "山田太郎", typed.Rows[0][2].Text)
	// Blank totals degrade to zero, never to an error.
	assert.Equal(t, domain.NumberCell(0), typed.Rows[1][7])
}

func TestCoerceColumns_UnknownColumnIsNumeric(t *testing.T) {
	// Any column outside the fixed text list is a vote-count column.
	rs := &domain.RecordSet{
		Header:  []string{"順位", "政党名／候補者名", "北海道"},
		Numeric: make([]bool, 3),
		Rows: [][]domain.Cell{
			{domain.TextCell("1"), domain.TextCell("山田太郎"), domain.TextCell("9,876")},
		},
	}

	typed := CoerceColumns(rs)
	assert.True(t, typed.Numeric[2])
	assert.Equal(t, int64(9876), typed.Rows[0][2].Number)
}

func TestCoerceColumns_DoesNotMutateInput(t *testing.T) {
	rs := &domain.RecordSet{
		Header:  []string{"順位", "政党名／候補者名"},
		Numeric: make([]bool, 2),
		Rows: [][]domain.Cell{
			{domain.TextCell("1"), domain.TextCell("山田太郎")},
		},
	}

	_ = CoerceColumns(rs)

	require.False(t, rs.Numeric[0])
	assert.False(t, rs.Rows[0][0].IsNum)
	assert.Equal(t, "1", rs.Rows[0][0].Text)
}
