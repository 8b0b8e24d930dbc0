package domain

// ModelSource supplies the current transfer model. A nil model means the
// model could not be found.
type ModelSource interface {
	Model() *Model
}

// ModelFunc adapts a function to ModelSource
type ModelFunc func() *Model

// Model implements ModelSource
func (f ModelFunc) Model() *Model {
	return f()
}
