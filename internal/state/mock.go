package state

// Mock is a test double for Manager.
type Mock struct {
	chooser *ChooserState
	saves   int
	closed  bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) SaveChooser(state ChooserState) {
	m.saves++
	m.chooser = &state
}

func (m *Mock) GetChooser() (*ChooserState, error) {
	return m.chooser, nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Saves returns how many times SaveChooser was called.
func (m *Mock) Saves() int { return m.saves }

// Closed reports whether Close was called.
func (m *Mock) Closed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
