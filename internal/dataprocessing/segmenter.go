package dataprocessing

import (
	"strings"

	"tokuhyocli/pkg/contracts/domain"
)

// RankingMarker is the headline substring identifying a
// proportional-representation candidate vote-ranking result. Winner and
// loser reports are derived only for documents carrying it.
const RankingMarker = "比例代表候補者得票順"

// Sheet names for the derived reports. The full report's sheet is the
// headline itself, truncated to the spreadsheet limit.
const (
	winnersSheetName = "当選者リスト"
	losersSheetName  = "落選者リスト"
	maxSheetNameLen  = 31
)

// winnerDroppedColumns are the identity/admin columns removed from the
// winner projection.
var winnerDroppedColumns = []string{domain.PersonCodeColumn, domain.StatusColumn, domain.PartyCodeColumn}

// Segmenter derives the report variants from a typed record set. Each
// derived set is an independent copy; mutating one report never affects
// another.
type Segmenter struct {
	loserColumns []string
}

// NewSegmenter creates a segmenter using the given loser-report
// projection. Revisions of the feed tooling disagree on the exact
// column set, so it comes from configuration.
func NewSegmenter(loserColumns []string) *Segmenter {
	return &Segmenter{loserColumns: loserColumns}
}

// Segment produces the full report and, when the headline carries the
// ranking marker, the winner and loser reports.
func (s *Segmenter) Segment(full *domain.RecordSet, headline string) []domain.Report {
	reports := []domain.Report{{
		Kind:         domain.ReportFull,
		SheetName:    truncateSheetName(headline),
		FoldNameCell: true,
		Records:      full.Clone(),
	}}

	if !strings.Contains(headline, RankingMarker) {
		return reports
	}

	statusIdx := full.ColumnIndex(domain.StatusColumn)
	partyCodeIdx := full.ColumnIndex(domain.PartyCodeColumn)
	if statusIdx < 0 || partyCodeIdx < 0 {
		// A ranking headline over a body without the mark columns:
		// nothing to segment on, only the full report is usable.
		return reports
	}

	winners := filterRows(full, func(row []domain.Cell) bool {
		return strings.TrimSpace(row[statusIdx].Text) != ""
	}).Drop(winnerDroppedColumns)
	reports = append(reports, domain.Report{
		Kind:         domain.ReportWinners,
		SheetName:    winnersSheetName,
		FoldNameCell: true,
		Records:      winners,
	})

	losers := filterRows(full, func(row []domain.Cell) bool {
		return strings.TrimSpace(row[statusIdx].Text) == "" &&
			strings.TrimSpace(row[partyCodeIdx].Text) != ""
	}).Project(s.loserColumns)
	reports = append(reports, domain.Report{
		Kind:         domain.ReportLosers,
		SheetName:    losersSheetName,
		FoldNameCell: false,
		Records:      losers,
	})

	return reports
}

// filterRows copies the record set keeping only rows the predicate
// accepts. Row ordering restarts from zero in the copy.
func filterRows(rs *domain.RecordSet, keep func(row []domain.Cell) bool) *domain.RecordSet {
	out := &domain.RecordSet{
		Header:  append([]string(nil), rs.Header...),
		Numeric: append([]bool(nil), rs.Numeric...),
	}
	for _, row := range rs.Rows {
		if keep(row) {
			out.Rows = append(out.Rows, append([]domain.Cell(nil), row...))
		}
	}
	return out
}

// truncateSheetName clips a headline to the 31-character sheet name
// limit, counting runes.
func truncateSheetName(name string) string {
	runes := []rune(name)
	if len(runes) <= maxSheetNameLen {
		return name
	}
	return string(runes[:maxSheetNameLen])
}
