package domain

// ExtractedContent is the payload pulled out of a single feed document:
// the headline identifying the election result and the raw delimited body.
// Extraction either yields both fields or nothing; a headline without a
// body (or vice versa) is treated as a failed extraction upstream.
type ExtractedContent struct {
	Headline string `json:"headline" validate:"required"`
	Body     string `json:"body" validate:"required"`
}

// Cell is a single field of a classified record. Numeric vote-count
// columns carry the coerced integer alongside the original text; text
// columns carry only the text.
type Cell struct {
	Text   string `json:"text"`
	Number int64  `json:"number,omitempty"`
	IsNum  bool   `json:"is_num,omitempty"`
}

// TextCell returns a Cell holding an uncoerced text value.
func TextCell(s string) Cell {
	return Cell{Text: s}
}

// NumberCell returns a Cell holding a coerced vote count.
func NumberCell(n int64) Cell {
	return Cell{Number: n, IsNum: true}
}

// RecordSet is an ordered set of candidate records together with the
// header that defines its column semantics. Numeric flags are parallel
// to Header. Derived sets (winners, losers, projections) are deep
// copies; mutating one never affects another.
type RecordSet struct {
	Header  []string `json:"header" validate:"required,min=1"`
	Numeric []bool   `json:"numeric"`
	Rows    [][]Cell `json:"rows"`
}

// ColumnIndex returns the position of the named column in the header,
// or -1 when the header does not carry it.
func (rs *RecordSet) ColumnIndex(name string) int {
	for i, h := range rs.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the record set.
func (rs *RecordSet) Clone() *RecordSet {
	out := &RecordSet{
		Header:  append([]string(nil), rs.Header...),
		Numeric: append([]bool(nil), rs.Numeric...),
		Rows:    make([][]Cell, len(rs.Rows)),
	}
	for i, row := range rs.Rows {
		out.Rows[i] = append([]Cell(nil), row...)
	}
	return out
}

// Project returns a copy of the record set restricted to the named
// columns, in the given order. Columns absent from the header are
// skipped rather than erroring, since feed revisions disagree on the
// exact column inventory.
func (rs *RecordSet) Project(columns []string) *RecordSet {
	var indices []int
	out := &RecordSet{}
	for _, name := range columns {
		if idx := rs.ColumnIndex(name); idx >= 0 {
			indices = append(indices, idx)
			out.Header = append(out.Header, rs.Header[idx])
			out.Numeric = append(out.Numeric, rs.Numeric[idx])
		}
	}
	for _, row := range rs.Rows {
		projected := make([]Cell, 0, len(indices))
		for _, idx := range indices {
			if idx < len(row) {
				projected = append(projected, row[idx])
			} else {
				projected = append(projected, TextCell(""))
			}
		}
		out.Rows = append(out.Rows, projected)
	}
	return out
}

// Drop returns a copy of the record set without the named columns.
func (rs *RecordSet) Drop(columns []string) *RecordSet {
	dropped := make(map[string]bool, len(columns))
	for _, name := range columns {
		dropped[name] = true
	}
	var keep []string
	for _, h := range rs.Header {
		if !dropped[h] {
			keep = append(keep, h)
		}
	}
	return rs.Project(keep)
}
