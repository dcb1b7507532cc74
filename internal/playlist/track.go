package playlist

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dhowden/tag"
)

// DefaultExtensions lists the file types offered by the file chooser.
var DefaultExtensions = []string{".mp3", ".flac", ".ogg", ".wav"}

// IsMusicFile reports whether path has one of the given extensions.
// A nil extension list means DefaultExtensions.
func IsMusicFile(path string, extensions []string) bool {
	if extensions == nil {
		extensions = DefaultExtensions
	}
	ext := strings.ToLower(filepath.Ext(path))
	return slices.Contains(extensions, ext)
}

// FromPath creates a track from a file path, reading its tags when possible.
func FromPath(path string) Track {
	fallback := Track{
		Path:  path,
		Title: filepath.Base(path),
	}

	f, err := os.Open(path)
	if err != nil {
		return fallback
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return fallback
	}

	title := strings.TrimSpace(m.Title())
	if title == "" {
		title = fallback.Title
	}

	return Track{
		Path:   path,
		Title:  title,
		Artist: m.Artist(),
		Album:  m.Album(),
	}
}

// DisplayName returns "Artist - Title" when the artist is known,
// otherwise the title or, failing that, the file name.
func (t Track) DisplayName() string {
	title := t.Title
	if title == "" {
		title = filepath.Base(t.Path)
	}
	if t.Artist == "" {
		return title
	}
	return t.Artist + " - " + title
}
