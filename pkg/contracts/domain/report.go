package domain

// ReportKind identifies which report variant a segmented record set
// belongs to.
type ReportKind string

const (
	ReportFull    ReportKind = "full"
	ReportWinners ReportKind = "winners"
	ReportLosers  ReportKind = "losers"
)

// Report is one renderable report: a record set plus the presentation
// hints the renderer needs. FoldNameCell asks the renderer to hide the
// party-name and status columns and fold their values into the
// candidate-name cell as styled segments; the segmenter keeps the
// underlying columns in the record set because the fold needs them.
type Report struct {
	Kind         ReportKind `json:"kind"`
	SheetName    string     `json:"sheet_name"`
	FoldNameCell bool       `json:"fold_name_cell"`
	Records      *RecordSet `json:"records" validate:"required"`
}

// StyledSegment is one run of a mixed-style cell value.
type StyledSegment struct {
	Text string `json:"text"`
	Bold bool   `json:"bold"`
}

// StyledText is a cell value made of ordered styled runs. It keeps the
// segmenter and renderer decoupled from any spreadsheet library's
// rich-text representation.
type StyledText struct {
	Segments []StyledSegment `json:"segments"`
}

// ProcessResult summarizes one successfully processed document.
type ProcessResult struct {
	SourcePath  string   `json:"source_path"`
	Headline    string   `json:"headline"`
	Encoding    string   `json:"encoding"`
	Candidates  int      `json:"candidates"`
	OutputPaths []string `json:"output_paths"`
}
