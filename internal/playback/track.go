package playback

import "github.com/lagu-player/lagu/internal/playlist"

// Track is a playlist entry as seen by the transport.
type Track = playlist.Track
