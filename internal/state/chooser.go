package state

import (
	"database/sql"
	"errors"
	"time"
)

// ChooserState is what the file chooser remembers between runs.
// The playlist itself is never stored.
type ChooserState struct {
	Directory string
	LastFile  string
}

func getChooser(db *sql.DB) (*ChooserState, error) {
	row := db.QueryRow(`
		SELECT directory, last_file FROM chooser_state WHERE id = 1
	`)

	var state ChooserState
	var lastFile sql.NullString

	err := row.Scan(&state.Directory, &lastFile)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	}
	if err != nil {
		return nil, err
	}
	if lastFile.Valid {
		state.LastFile = lastFile.String
	}

	return &state, nil
}

func saveChooser(db *sql.DB, state ChooserState) error {
	var lastFile sql.NullString
	if state.LastFile != "" {
		lastFile = sql.NullString{String: state.LastFile, Valid: true}
	}

	_, err := db.Exec(`
		INSERT INTO chooser_state (id, directory, last_file, updated_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			directory = excluded.directory,
			last_file = excluded.last_file,
			updated_at = excluded.updated_at
	`, state.Directory, lastFile, time.Now().Unix())

	return err
}
