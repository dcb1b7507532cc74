package app

import (
	"os"
	"path/filepath"

	"github.com/lagu-player/lagu/internal/state"
)

// saveChooserDir remembers where the last files were picked.
func (m *Model) saveChooserDir(dir string, paths []string) {
	if dir == "" {
		return
	}
	last := ""
	if len(paths) > 0 {
		last = filepath.Base(paths[len(paths)-1])
	}
	m.stateMgr.SaveChooser(state.ChooserState{Directory: dir, LastFile: last})
}

// totalSize sums the sizes of paths, skipping unreadable files.
func totalSize(paths []string) uint64 {
	var total uint64
	for _, p := range paths {
		if info, err := os.Stat(p); err == nil && info.Mode().IsRegular() {
			total += uint64(info.Size()) //nolint:gosec // regular file sizes are non-negative
		}
	}
	return total
}
