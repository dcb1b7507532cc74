package playlist

import (
	"os"
	"path/filepath"
	"strings"
)

var (
	coverStems = []string{"cover", "folder", "album", "front"}
	coverExts  = []string{".jpg", ".jpeg", ".png"}
)

// CoverArt returns the image next to a track that is most likely its cover,
// or "" when the directory has none. Names match case-insensitively.
func CoverArt(trackPath string) string {
	dir := filepath.Dir(trackPath)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}

	found := make(map[string]string, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		found[strings.ToLower(e.Name())] = e.Name()
	}

	for _, stem := range coverStems {
		for _, ext := range coverExts {
			if name, ok := found[stem+ext]; ok {
				return filepath.Join(dir, name)
			}
		}
	}
	return ""
}
