package view

// Fixed popup size, in cells
const (
	PopupMinWidth  = 60
	PopupMinHeight = 8
)

// ToAbsolute converts a screen fraction into an offset from the screen
// centre along one axis, in cells.
func ToAbsolute(fraction float64, screenDim int) float64 {
	return (fraction - 0.5) * float64(screenDim)
}

// ToFraction is the inverse of ToAbsolute
func ToFraction(absolute float64, screenDim int) float64 {
	if screenDim <= 0 {
		return 0.5
	}
	return absolute/float64(screenDim) + 0.5
}
