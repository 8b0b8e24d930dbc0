package components

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mmcdole/astrogator/internal/domain"
	"github.com/mmcdole/astrogator/internal/tui/styles"
	"github.com/mmcdole/astrogator/internal/view"
)

// Kerbin calendar
const (
	SecondsPerMinute = 60
	SecondsPerHour   = 60 * SecondsPerMinute
	SecondsPerDay    = 6 * SecondsPerHour
	SecondsPerYear   = 426 * SecondsPerDay
)

// Row glyphs
const (
	MarkerGlyph   = "•"
	ManeuverGlyph = "[+]"
	WarpGlyph     = "[»]"
)

// Countdown is a duration split into Kerbin calendar units
type Countdown struct {
	Years, Days, Hours, Minutes, Seconds int
}

// NewCountdown splits the time from now until at. Past times count as zero.
func NewCountdown(at, now float64) Countdown {
	left := int(math.Max(0, math.Floor(at-now)))

	var c Countdown
	c.Years, left = left/SecondsPerYear, left%SecondsPerYear
	c.Days, left = left/SecondsPerDay, left%SecondsPerDay
	c.Hours, left = left/SecondsPerHour, left%SecondsPerHour
	c.Minutes, c.Seconds = left/SecondsPerMinute, left%SecondsPerMinute
	return c
}

// Fields returns the unit labels, one per countdown column. Leading zero
// units are blank; seconds are always shown.
func (c Countdown) Fields() [5]string {
	values := [5]int{c.Years, c.Days, c.Hours, c.Minutes, c.Seconds}
	suffixes := [5]string{"y", "d", "h", "m", "s"}

	var fields [5]string
	leading := true
	for i, v := range values {
		if leading && v == 0 && i < len(values)-1 {
			continue
		}
		leading = false
		fields[i] = strconv.Itoa(v) + suffixes[i]
	}
	return fields
}

// String joins the non-blank fields
func (c Countdown) String() string {
	var parts []string
	for _, f := range c.Fields() {
		if f != "" {
			parts = append(parts, f)
		}
	}
	return strings.Join(parts, " ")
}

// FormatDeltaV renders a velocity change in m/s
func FormatDeltaV(dv float64) string {
	return fmt.Sprintf("%.0f m/s", dv)
}

// TransferRow renders transfer table rows with a skin
type TransferRow struct {
	Skin styles.Skin
}

// NewTransferRow creates a row renderer for the given skin
func NewTransferRow(skin styles.Skin) *TransferRow {
	return &TransferRow{Skin: skin}
}

// RenderRow renders one transfer across the visible columns
func (r *TransferRow) RenderRow(t *domain.Transfer, ctx view.RowContext) string {
	var countdown [5]string
	if t.HasBurn() {
		countdown = NewCountdown(t.BurnTime(), ctx.Now).Fields()
	}

	parts := make([]string, 0, len(ctx.Columns))
	for _, col := range ctx.Columns {
		var text string
		switch col.Content {
		case view.ContentPosition:
			if pos := ctx.Position(t); pos > 0 {
				text = strconv.Itoa(pos)
			}
		case view.ContentMarker:
			text = MarkerGlyph
		case view.ContentName:
			text = t.DestinationName()
			if text == "" {
				text = "?"
			}
		case view.ContentYears:
			text = countdown[0]
		case view.ContentDays:
			text = countdown[1]
		case view.ContentHours:
			text = countdown[2]
		case view.ContentMinutes:
			text = countdown[3]
		case view.ContentSeconds:
			text = countdown[4]
		case view.ContentDeltaV:
			if t.HasBurn() {
				text = FormatDeltaV(t.DeltaV())
			}
		case view.ContentManeuver:
			if t.HasBurn() {
				text = ManeuverGlyph
			}
		case view.ContentWarp:
			if t.HasBurn() {
				text = WarpGlyph
			}
		}
		parts = append(parts, styles.Fit(text, col.Width, styles.Align(col.Style)))
	}

	row := strings.Join(parts, styles.Spaces(ctx.Spacing))
	if !t.HasBurn() {
		return r.Skin.RowDim.Render(row)
	}
	return r.Skin.Row.Render(row)
}

var _ view.RowRenderer = (*TransferRow)(nil)
