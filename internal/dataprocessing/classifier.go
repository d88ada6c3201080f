package dataprocessing

import (
	"encoding/csv"
	"errors"
	"io"
	"regexp"
	"strings"

	apperrors "tokuhyocli/internal/errors"
	"tokuhyocli/pkg/contracts/domain"
)

// candidateCodeRe is the discriminator separating candidate rows from
// party-aggregate rows: the field at position 1 must start with a run
// of at least four decimal digits. Aggregate and blank rows carry
// shorter codes or none.
var candidateCodeRe = regexp.MustCompile(`^[0-9]{4,}`)

// codeFieldIndex is the fixed position of the person-code field checked
// by the discriminator.
const codeFieldIndex = 1

// Classifier parses normalized body text as delimited rows and keeps
// only candidate records.
type Classifier struct{}

// NewClassifier creates a new row classifier.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify parses the body, locates the header row by the sentinel
// label, and classifies every later row. All cells of the returned set
// are text; numeric coercion is a separate stage.
func (c *Classifier) Classify(body string) (*domain.RecordSet, error) {
	rows := parseRows(body)

	header, headerIdx := findHeader(rows)
	if header == nil {
		return nil, apperrors.New(apperrors.KindHeaderNotFound, "classify",
			"no row with first field "+domain.SentinelLabel)
	}

	nameIdx := -1
	for i, col := range header {
		if col == domain.NameColumn {
			nameIdx = i
			break
		}
	}
	if nameIdx < 0 {
		return nil, apperrors.New(apperrors.KindHeaderNotFound, "classify",
			"header lacks the "+domain.NameColumn+" column")
	}

	rs := &domain.RecordSet{Header: header, Numeric: make([]bool, len(header))}
	for _, row := range rows[headerIdx+1:] {
		if !isCandidateRow(row, nameIdx) {
			continue
		}
		row = rejoinOverflow(row, len(header))
		cells := make([]domain.Cell, len(header))
		for i := range header {
			if i < len(row) {
				cells[i] = domain.TextCell(row[i])
			} else {
				cells[i] = domain.TextCell("")
			}
		}
		rs.Rows = append(rs.Rows, cells)
	}

	if len(rs.Rows) == 0 {
		return nil, apperrors.New(apperrors.KindNoCandidateData, "classify",
			"no rows passed candidate classification")
	}
	return rs, nil
}

// isCandidateRow applies the three-part candidate test: enough fields
// to reach the name column, a non-blank name, and a person code
// starting with four or more digits. Short rows are excluded silently;
// malformed trailing rows are expected in real feeds.
func isCandidateRow(row []string, nameIdx int) bool {
	if len(row) <= nameIdx || len(row) <= codeFieldIndex {
		return false
	}
	if strings.TrimSpace(row[nameIdx]) == "" {
		return false
	}
	return candidateCodeRe.MatchString(strings.TrimSpace(row[codeFieldIndex]))
}

// rejoinOverflow folds fields beyond the header arity back into the
// last column. Feeds write vote totals with unquoted thousands
// separators, so a trailing "1,234" arrives split into two fields; the
// rejoin restores it for numeric coercion.
func rejoinOverflow(row []string, arity int) []string {
	if len(row) <= arity {
		return row
	}
	folded := append([]string(nil), row[:arity-1]...)
	return append(folded, strings.Join(row[arity-1:], ","))
}

// findHeader returns the trimmed first row whose first field equals the
// sentinel label, and its index. First occurrence wins; the scan stops
// there even if a later row coincidentally matches.
func findHeader(rows [][]string) ([]string, int) {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		if strings.TrimSpace(row[0]) == domain.SentinelLabel {
			header := make([]string, len(row))
			for j, col := range row {
				header[j] = strings.TrimSpace(col)
			}
			return header, i
		}
	}
	return nil, -1
}

// parseRows reads the body as quote-aware comma-separated rows with no
// arity requirement. Individual malformed lines are skipped rather than
// failing the document.
func parseRows(body string) [][]string {
	reader := csv.NewReader(strings.NewReader(body))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var rows [][]string
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}
