package components

import (
	"fmt"
	"strings"

	"github.com/mmcdole/astrogator/internal/domain"
	"github.com/mmcdole/astrogator/internal/tui/styles"
	"github.com/mmcdole/astrogator/internal/view"
)

// sortLabels are the names the settings panel uses for sort keys
var sortLabels = map[domain.SortKey]string{
	domain.SortName:     "Destination",
	domain.SortPosition: "Model order",
	domain.SortTime:     "Time till burn",
	domain.SortDeltaV:   "Δv",
}

// SortLabel returns a readable name for a sort key
func SortLabel(k domain.SortKey) string {
	if label, ok := sortLabels[k]; ok {
		return label
	}
	return k.String()
}

// SettingsPanel renders the persisted view settings below the table
func SettingsPanel(layout view.Layout, skin styles.Skin, width int) string {
	direction := "ascending"
	if layout.Sort.Descending {
		direction = "descending"
	}

	lines := []string{
		fmt.Sprintf("Sort      %s, %s", SortLabel(layout.Sort.Key), direction),
		fmt.Sprintf("Position  x %.2f  y %.2f", layout.Geometry.X, layout.Geometry.Y),
		fmt.Sprintf("Spacing   %d", layout.Spacing),
	}
	if layout.Filter != "" {
		lines = append(lines, fmt.Sprintf("Filter    %q (%d of %d)", layout.Filter, layout.Matched, layout.Total))
	}

	for i, line := range lines {
		lines[i] = styles.Truncate(line, width)
	}
	return skin.Settings.Width(width).Render(strings.Join(lines, "\n"))
}
