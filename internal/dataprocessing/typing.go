package dataprocessing

import (
	"strconv"
	"strings"

	"tokuhyocli/pkg/contracts/domain"
)

// textColumns are never coerced to numbers. Every other column present
// in a header is a vote-count column. The rank column is the one
// exception going the other way: it appears here because it is an
// identity column in the feeds, but it is coerced anyway.
var textColumns = map[string]bool{
	domain.SentinelLabel:    true,
	domain.PersonCodeColumn: true,
	domain.NameColumn:       true,
	domain.StatusColumn:     true,
	domain.PartyCodeColumn:  true,
	domain.PartyNameColumn:  true,
	domain.IncumbencyColumn: true,
	"候補者氏名":                 true,
	"特定枠":                   true,
}

// CoerceColumns returns a copy of the record set with every numeric
// column's cells coerced to integers. Coercion never fails a document:
// blank or unparseable values degrade to zero per cell.
func CoerceColumns(rs *domain.RecordSet) *domain.RecordSet {
	out := rs.Clone()
	for i, col := range out.Header {
		out.Numeric[i] = col == domain.SentinelLabel || !textColumns[col]
	}
	for _, row := range out.Rows {
		for i := range row {
			if i < len(out.Numeric) && out.Numeric[i] {
				row[i] = domain.NumberCell(parseCount(row[i].Text))
			}
		}
	}
	return out
}

// parseCount parses a vote count, tolerating thousands separators and
// surrounding whitespace. Fractional values truncate toward zero.
func parseCount(s string) int64 {
	cleaned := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if cleaned == "" {
		return 0
	}
	if n, err := strconv.ParseInt(cleaned, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(cleaned, 64); err == nil {
		return int64(f)
	}
	return 0
}
