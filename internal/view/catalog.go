package view

import "github.com/mmcdole/astrogator/internal/domain"

// StyleID names a column style. The skin provider maps it to a concrete style.
type StyleID string

const (
	StyleLeft   StyleID = "left"
	StyleCenter StyleID = "center"
	StyleRight  StyleID = "right"
)

// ColumnContent identifies what a data row renders in a column
type ColumnContent int

const (
	ContentPosition ColumnContent = iota
	ContentMarker
	ContentName
	ContentYears
	ContentDays
	ContentHours
	ContentMinutes
	ContentSeconds
	ContentDeltaV
	ContentManeuver
	ContentWarp
)

// ColumnDescriptor describes one column of the transfer table.
//
// A column with HeaderColumnSpan > 1 starts a group: its header covers the
// next HeaderColumnSpan catalog entries (itself included) and the headers of
// the following members are never rendered.
type ColumnDescriptor struct {
	Header           string
	Width            int // Cells
	HeaderColumnSpan int
	SortKey          domain.SortKey
	Sortable         bool // SortKey is meaningful
	VesselSpecific   bool // Only shown with an active vessel
	Style            StyleID
	Content          ColumnContent
}

// Columns is the transfer table catalog, in display order
var Columns = []ColumnDescriptor{
	{Header: "#", Width: 3, HeaderColumnSpan: 1, SortKey: domain.SortPosition, Sortable: true, Style: StyleRight, Content: ContentPosition},
	{Header: "Transfer", Width: 2, HeaderColumnSpan: 2, SortKey: domain.SortName, Sortable: true, Style: StyleLeft, Content: ContentMarker},
	{Width: 10, HeaderColumnSpan: 1, Style: StyleLeft, Content: ContentName},
	{Header: "Time Till Burn", Width: 4, HeaderColumnSpan: 5, SortKey: domain.SortTime, Sortable: true, Style: StyleCenter, Content: ContentYears},
	{Width: 4, HeaderColumnSpan: 1, Style: StyleRight, Content: ContentDays},
	{Width: 3, HeaderColumnSpan: 1, Style: StyleRight, Content: ContentHours},
	{Width: 3, HeaderColumnSpan: 1, Style: StyleRight, Content: ContentMinutes},
	{Width: 3, HeaderColumnSpan: 1, Style: StyleRight, Content: ContentSeconds},
	{Header: "Δv", Width: 9, HeaderColumnSpan: 1, SortKey: domain.SortDeltaV, Sortable: true, Style: StyleRight, Content: ContentDeltaV},
	{Width: 3, HeaderColumnSpan: 1, VesselSpecific: true, Style: StyleCenter, Content: ContentManeuver},
	{Width: 3, HeaderColumnSpan: 1, VesselSpecific: true, Style: StyleCenter, Content: ContentWarp},
}
