package exporter

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"tokuhyocli/internal/infrastructure"
	"tokuhyocli/pkg/contracts/domain"
)

const (
	defaultSheetName = "Sheet1"
	zebraFillColor   = "F0F0F0"
	numberFormat     = "#,##0"
	nameCellFont     = "MS Gothic"
	// columnPadding is added to the widest cell when sizing a column.
	columnPadding = 3
)

// foldedColumns are hidden from output when a report folds identity
// columns into the name cell.
var foldedColumns = map[string]bool{
	domain.PartyNameColumn:  true,
	domain.IncumbencyColumn: true,
}

// ExcelWriter renders reports as formatted spreadsheets: bold bordered
// header, zebra-striped data rows, thousands-separated right-aligned
// numbers, and a rich-text name cell when the report folds identity
// columns.
type ExcelWriter struct{}

// NewExcelWriter creates a new spreadsheet renderer.
func NewExcelWriter() *ExcelWriter {
	return &ExcelWriter{}
}

// cellStyles holds the style IDs built once per workbook.
type cellStyles struct {
	header     int
	text       int
	textShaded int
	num        int
	numShaded  int
}

// Render writes one report to the given path.
func (w *ExcelWriter) Render(ctx context.Context, report domain.Report, path string) error {
	logger := infrastructure.LoggerFromContext(ctx)

	f := excelize.NewFile()
	defer f.Close()

	sheet := report.SheetName
	if sheet == "" {
		sheet = defaultSheetName
	}
	if sheet != defaultSheetName {
		if err := f.SetSheetName(defaultSheetName, sheet); err != nil {
			return fmt.Errorf("failed to name sheet %q: %w", sheet, err)
		}
	}

	styles, err := buildStyles(f)
	if err != nil {
		return fmt.Errorf("failed to build styles: %w", err)
	}

	rs := report.Records
	visible := visibleColumns(report)

	// Header row.
	for pos, srcIdx := range visible {
		cell, err := excelize.CoordinatesToCellName(pos+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, rs.Header[srcIdx]); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, styles.header); err != nil {
			return err
		}
	}

	nameIdx := rs.ColumnIndex(domain.NameColumn)
	partyIdx := rs.ColumnIndex(domain.PartyNameColumn)
	incumbIdx := rs.ColumnIndex(domain.IncumbencyColumn)

	for i, row := range rs.Rows {
		shaded := i%2 == 1
		for pos, srcIdx := range visible {
			cell, err := excelize.CoordinatesToCellName(pos+1, i+2)
			if err != nil {
				return err
			}

			switch {
			case report.FoldNameCell && srcIdx == nameIdx:
				text := NameCellText(
					cellText(row, srcIdx),
					cellText(row, partyIdx),
					cellText(row, incumbIdx),
				)
				if err := writeRichCell(f, sheet, cell, text, shaded); err != nil {
					return err
				}
				if err := f.SetCellStyle(sheet, cell, cell, pick(shaded, styles.textShaded, styles.text)); err != nil {
					return err
				}
			case srcIdx < len(rs.Numeric) && rs.Numeric[srcIdx]:
				var n int64
				if srcIdx < len(row) {
					n = row[srcIdx].Number
				}
				if err := f.SetCellValue(sheet, cell, n); err != nil {
					return err
				}
				if err := f.SetCellStyle(sheet, cell, cell, pick(shaded, styles.numShaded, styles.num)); err != nil {
					return err
				}
			default:
				if err := f.SetCellValue(sheet, cell, cellText(row, srcIdx)); err != nil {
					return err
				}
				if err := f.SetCellStyle(sheet, cell, cell, pick(shaded, styles.textShaded, styles.text)); err != nil {
					return err
				}
			}
		}
	}

	if err := w.sizeColumns(f, sheet, report, visible); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	logger.Debug("workbook saved",
		slog.String("path", path),
		slog.String("sheet", sheet),
		slog.Int("rows", len(rs.Rows)))
	return nil
}

// visibleColumns returns the source indices of the columns the report
// displays, in source order. Folding hides the party-name and status
// columns; their values surface inside the name cell instead.
func visibleColumns(report domain.Report) []int {
	var visible []int
	for i, name := range report.Records.Header {
		if report.FoldNameCell && foldedColumns[name] {
			continue
		}
		visible = append(visible, i)
	}
	return visible
}

// sizeColumns sets each visible column to the display width of its
// widest content plus padding. Widths are measured on what is actually
// rendered, including the folded name segments and the thousands
// separators of numeric cells.
func (w *ExcelWriter) sizeColumns(f *excelize.File, sheet string, report domain.Report, visible []int) error {
	rs := report.Records
	nameIdx := rs.ColumnIndex(domain.NameColumn)
	partyIdx := rs.ColumnIndex(domain.PartyNameColumn)
	incumbIdx := rs.ColumnIndex(domain.IncumbencyColumn)

	for pos, srcIdx := range visible {
		maxWidth := displayWidth(rs.Header[srcIdx])
		for _, row := range rs.Rows {
			var cw int
			switch {
			case report.FoldNameCell && srcIdx == nameIdx:
				cw = styledTextWidth(NameCellText(
					cellText(row, srcIdx),
					cellText(row, partyIdx),
					cellText(row, incumbIdx),
				))
			case srcIdx < len(rs.Numeric) && rs.Numeric[srcIdx] && srcIdx < len(row):
				cw = displayWidth(groupDigits(row[srcIdx].Number))
			default:
				cw = displayWidth(cellText(row, srcIdx))
			}
			if cw > maxWidth {
				maxWidth = cw
			}
		}

		col, err := excelize.ColumnNumberToName(pos + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, float64(maxWidth+columnPadding)); err != nil {
			return err
		}
	}
	return nil
}

// writeRichCell writes the folded name cell as rich text: bold name run
// followed by regular party/status runs.
func writeRichCell(f *excelize.File, sheet, cell string, text domain.StyledText, shaded bool) error {
	runs := make([]excelize.RichTextRun, 0, len(text.Segments))
	for _, seg := range text.Segments {
		runs = append(runs, excelize.RichTextRun{
			Text: seg.Text,
			Font: &excelize.Font{Bold: seg.Bold, Family: nameCellFont},
		})
	}
	return f.SetCellRichText(sheet, cell, runs)
}

// buildStyles creates the workbook's shared cell styles.
func buildStyles(f *excelize.File) (cellStyles, error) {
	var s cellStyles
	var err error

	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
	shadedFill := excelize.Fill{Type: "pattern", Color: []string{zebraFillColor}, Pattern: 1}
	numFmt := numberFormat

	if s.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	}); err != nil {
		return s, err
	}

	if s.text, err = f.NewStyle(&excelize.Style{}); err != nil {
		return s, err
	}
	if s.textShaded, err = f.NewStyle(&excelize.Style{Fill: shadedFill}); err != nil {
		return s, err
	}

	if s.num, err = f.NewStyle(&excelize.Style{
		CustomNumFmt: &numFmt,
		Alignment:    &excelize.Alignment{Horizontal: "right"},
	}); err != nil {
		return s, err
	}
	if s.numShaded, err = f.NewStyle(&excelize.Style{
		CustomNumFmt: &numFmt,
		Alignment:    &excelize.Alignment{Horizontal: "right"},
		Fill:         shadedFill,
	}); err != nil {
		return s, err
	}

	return s, nil
}

// cellText returns the trimmed text of the indexed cell, or "" when the
// index is out of range or negative.
func cellText(row []domain.Cell, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx].Text)
}

// groupDigits renders n with thousands separators, mirroring the #,##0
// cell format for width measurement.
func groupDigits(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		s = "-" + s
	}
	return s
}

// pick returns a when cond is true, otherwise b.
func pick(cond bool, a, b int) int {
	if cond {
		return a
	}
	return b
}
