package state

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	SaveChooser(state ChooserState)
	GetChooser() (*ChooserState, error)
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
