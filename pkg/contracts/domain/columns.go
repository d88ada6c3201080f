package domain

// Column vocabulary of the vote-ranking feeds. The header row carries
// these exact localized labels; classification and rendering both
// resolve columns by them.
const (
	// SentinelLabel is the rank column name; the header row is the
	// first row whose first trimmed field equals it.
	SentinelLabel = "順位"
	// NameColumn holds the party or candidate name and anchors
	// classification.
	NameColumn = "政党名／候補者名"
	// StatusColumn is the elected mark; any non-blank value means the
	// candidate won. The mark's literal content is not interpreted.
	StatusColumn = "当落マーク"
	// PartyCodeColumn distinguishes party-affiliated candidates from
	// independents.
	PartyCodeColumn = "党派コード"
	// PartyNameColumn and IncumbencyColumn are folded into the name
	// cell by reports that merge identity columns.
	PartyNameColumn  = "党派名"
	IncumbencyColumn = "身分"
	// PersonCodeColumn is the party-code/person-number column at a
	// fixed position in every revision of the feed.
	PersonCodeColumn = "政党コード／人物番号"
	// TotalColumn is the vote total. The embedded space is how the
	// feeds spell it.
	TotalColumn = "合 計"
)
