// Package state keeps the little the player remembers between runs in a
// SQLite database under the XDG data directory.
package state

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	dbRelPath    = "lagu/lagu.db"
	saveDebounce = 500 * time.Millisecond
)

// Manager owns the state database. Chooser saves are debounced so that
// browsing through directories does not hit the disk on every step.
type Manager struct {
	db     *sql.DB
	logger *slog.Logger

	mu      sync.Mutex
	timer   *time.Timer
	pending *ChooserState
}

// Open opens the state database in the XDG data directory.
func Open(logger *slog.Logger) (*Manager, error) {
	path, err := xdg.DataFile(dbRelPath)
	if err != nil {
		return nil, fmt.Errorf("locating state database: %w", err)
	}
	return OpenAt(path, logger)
}

// OpenAt opens, creating if needed, the state database at path.
// A nil logger discards save failures.
func OpenAt(path string, logger *slog.Logger) (*Manager, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating state directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	if err := initSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return &Manager{db: db, logger: logger}, nil
}

// Close writes any pending save and closes the database.
func (m *Manager) Close() error {
	m.mu.Lock()
	if m.timer != nil {
		m.timer.Stop()
	}
	m.mu.Unlock()

	m.flush()
	return m.db.Close()
}

func (m *Manager) GetChooser() (*ChooserState, error) {
	return getChooser(m.db)
}

// SaveChooser schedules a write of the chooser state. Only the latest state
// within the debounce window reaches the database.
func (m *Manager) SaveChooser(state ChooserState) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.pending = &state
	if m.timer != nil {
		m.timer.Stop()
	}
	m.timer = time.AfterFunc(saveDebounce, m.flush)
}

func (m *Manager) flush() {
	m.mu.Lock()
	pending := m.pending
	m.pending = nil
	m.mu.Unlock()

	if pending == nil {
		return
	}
	if err := saveChooser(m.db, *pending); err != nil {
		m.logger.Error("saving chooser state", "directory", pending.Directory, "error", err)
	}
}
