package player

import "time"

// Mock is a test double for Player. It follows the same state rules as the
// real engine and records every call.
type Mock struct {
	state      State
	loaded     string
	position   time.Duration
	duration   time.Duration
	durations  map[string]time.Duration
	openErrs   map[string]error
	openCalls  []string
	playCalls  int
	pauseCalls int
	stopCalls  int
	seekCalls  []time.Duration
	volume     float64
	muted      bool
	finishedCh chan struct{}
}

// NewMock creates a new mock engine for testing.
func NewMock() *Mock {
	return &Mock{
		state:      Stopped,
		volume:     1,
		durations:  make(map[string]time.Duration),
		openErrs:   make(map[string]error),
		finishedCh: make(chan struct{}, 1),
	}
}

func (m *Mock) Open(path string) error {
	m.openCalls = append(m.openCalls, path)
	if err := m.openErrs[path]; err != nil {
		return err
	}
	m.loaded = path
	m.state = Stopped
	m.position = 0
	m.duration = m.durations[path]
	return nil
}

func (m *Mock) Play() {
	m.playCalls++
	if m.loaded == "" {
		return
	}
	if m.state != Paused {
		m.position = 0
	}
	m.state = Playing
}

func (m *Mock) Pause() {
	m.pauseCalls++
	if m.state == Playing {
		m.state = Paused
	}
}

func (m *Mock) Stop() {
	m.stopCalls++
	m.state = Stopped
	m.position = 0
}

func (m *Mock) State() State { return m.state }

func (m *Mock) Position() time.Duration { return m.position }

func (m *Mock) Duration() time.Duration { return m.duration }

func (m *Mock) SetPosition(pos time.Duration) {
	m.seekCalls = append(m.seekCalls, pos)
	if m.loaded != "" {
		m.position = pos
	}
}

func (m *Mock) SetVolume(level float64) { m.volume = ClampVolume(level) }

func (m *Mock) Volume() float64 { return m.volume }

func (m *Mock) SetMuted(muted bool) { m.muted = muted }

func (m *Mock) Muted() bool { return m.muted }

func (m *Mock) TrackInfo() *TrackInfo {
	if m.loaded == "" {
		return nil
	}
	return &TrackInfo{Path: m.loaded, Duration: m.duration}
}

func (m *Mock) FinishedChan() <-chan struct{} { return m.finishedCh }

func (m *Mock) Close() error { return nil }

// Test helpers

func (m *Mock) SetState(s State) { m.state = s }

// SetPlayhead moves the reported position without recording a seek.
func (m *Mock) SetPlayhead(d time.Duration) { m.position = d }

// SetOpenError makes Open fail for path.
func (m *Mock) SetOpenError(path string, err error) { m.openErrs[path] = err }

// SetTrackDuration sets the duration reported once path is opened.
func (m *Mock) SetTrackDuration(path string, d time.Duration) { m.durations[path] = d }

func (m *Mock) Loaded() string { return m.loaded }

func (m *Mock) OpenCalls() []string { return m.openCalls }

func (m *Mock) PlayCalls() int { return m.playCalls }

func (m *Mock) PauseCalls() int { return m.pauseCalls }

func (m *Mock) StopCalls() int { return m.stopCalls }

func (m *Mock) SeekCalls() []time.Duration { return m.seekCalls }

// Calls returns the total number of engine commands issued.
func (m *Mock) Calls() int {
	return len(m.openCalls) + m.playCalls + m.pauseCalls + m.stopCalls + len(m.seekCalls)
}

// SimulateFinished simulates a track playing to its end.
func (m *Mock) SimulateFinished() {
	m.state = Stopped
	m.position = m.duration
	select {
	case m.finishedCh <- struct{}{}:
	default:
	}
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
