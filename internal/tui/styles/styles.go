package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/astrogator/internal/view"
	"github.com/muesli/termenv"
)

// Color palette
var (
	Amber      = lipgloss.Color("#E5A00D")
	SlateDark  = lipgloss.Color("#1F2937")
	SlateLight = lipgloss.Color("#374151")
	DimGray    = lipgloss.Color("#6B7280")
	LightGray  = lipgloss.Color("#9CA3AF")
	White      = lipgloss.Color("#F9FAFB")
	Green      = lipgloss.Color("#10B981")
	Red        = lipgloss.Color("#EF4444")
	Blue       = lipgloss.Color("#3B82F6")
)

// Skin is the full set of styles for one popup appearance
type Skin struct {
	Window   lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style

	Header        lipgloss.Style // Static header label
	HeaderButton  lipgloss.Style // Sortable header
	HeaderFocused lipgloss.Style // Sortable header under the keyboard cursor
	HeaderActive  lipgloss.Style // Sortable header of the active sort

	Row      lipgloss.Style
	RowDim   lipgloss.Style
	Footer   lipgloss.Style
	Settings lipgloss.Style
}

// NormalSkin is used while the transfer table is shown
var NormalSkin = Skin{
	Window: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Amber).
		Padding(0, 1),

	Title: lipgloss.NewStyle().
		Foreground(White).
		Bold(true),

	Subtitle: lipgloss.NewStyle().
		Foreground(LightGray),

	Header: lipgloss.NewStyle().
		Foreground(DimGray),

	HeaderButton: lipgloss.NewStyle().
		Foreground(LightGray).
		Underline(true),

	HeaderFocused: lipgloss.NewStyle().
		Foreground(White).
		Background(SlateLight).
		Underline(true),

	HeaderActive: lipgloss.NewStyle().
		Foreground(Amber).
		Bold(true).
		Underline(true),

	Row: lipgloss.NewStyle().
		Foreground(LightGray),

	RowDim: lipgloss.NewStyle().
		Foreground(DimGray),

	Footer: lipgloss.NewStyle().
		Foreground(DimGray),

	Settings: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), true, false, false, false).
		BorderForeground(DimGray).
		Foreground(LightGray),
}

// ErrorSkin is used for every placeholder state
var ErrorSkin = Skin{
	Window: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Red).
		Padding(0, 1),

	Title: lipgloss.NewStyle().
		Foreground(White).
		Bold(true),

	Subtitle: lipgloss.NewStyle().
		Foreground(Red),

	Header:        NormalSkin.Header,
	HeaderButton:  NormalSkin.HeaderButton,
	HeaderFocused: NormalSkin.HeaderFocused,
	HeaderActive:  NormalSkin.HeaderActive,
	Row:           NormalSkin.Row,
	RowDim:        NormalSkin.RowDim,
	Footer:        NormalSkin.Footer,
	Settings:      NormalSkin.Settings,
}

// ForSkin returns the styles for a named skin
func ForSkin(name view.SkinName) Skin {
	if name == view.SkinNormal {
		return NormalSkin
	}
	return ErrorSkin
}

// Align maps a column style to a horizontal alignment
func Align(id view.StyleID) lipgloss.Position {
	switch id {
	case view.StyleCenter:
		return lipgloss.Center
	case view.StyleRight:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}

// Modal styles
var (
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Amber).
			Padding(0, 1).
			Background(SlateDark)

	ModalTitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true).
			MarginBottom(1)
)

// Help styles
var (
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(Amber)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(DimGray)
)

// Status styles
var (
	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	AccentStyle = lipgloss.NewStyle().
			Foreground(Amber)
)

// Filter styles
var (
	FilterStyle = lipgloss.NewStyle().
			Foreground(Amber)

	FilterPromptStyle = lipgloss.NewStyle().
				Foreground(Amber).
				Bold(true)
)

// Themes accepted by ApplyTheme
const (
	ThemeDefault = "default"
	ThemeMono    = "mono"
)

// ApplyTheme switches the color profile for a configured theme name
func ApplyTheme(name string) error {
	switch name {
	case "", ThemeDefault:
		return nil
	case ThemeMono:
		SetNoColor()
		return nil
	default:
		return fmt.Errorf("unknown theme %q", name)
	}
}

// SetNoColor disables all colors
func SetNoColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// Helper functions

// Truncate shortens s to at most width cells, ending in an ellipsis when cut
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

// Fit truncates or pads s to exactly width cells
func Fit(s string, width int, align lipgloss.Position) string {
	if width <= 0 {
		return ""
	}
	return lipgloss.PlaceHorizontal(width, align, Truncate(s, width))
}

// Spaces returns n blanks
func Spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
