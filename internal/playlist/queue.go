package playlist

// NoCursor is the cursor value when no track has been selected yet.
const NoCursor = -1

// PlayingQueue wraps a Playlist with a cursor on the current track.
//
// The cursor is either NoCursor or a valid index into the playlist.
// Moves that would leave the playlist are ignored: there is no wraparound.
type PlayingQueue struct {
	playlist     *Playlist
	currentIndex int
}

// NewQueue creates a new empty playing queue.
func NewQueue() *PlayingQueue {
	return &PlayingQueue{
		playlist:     NewPlaylist(),
		currentIndex: NoCursor,
	}
}

// Current returns the track under the cursor, or nil if none.
func (q *PlayingQueue) Current() *Track {
	return q.playlist.Track(q.currentIndex)
}

// CurrentIndex returns the cursor (NoCursor if none).
func (q *PlayingQueue) CurrentIndex() int {
	return q.currentIndex
}

// HasCursor reports whether a track is selected.
func (q *PlayingQueue) HasCursor() bool {
	return q.currentIndex != NoCursor
}

// Append adds tracks to the end of the queue.
// If nothing was selected before, the cursor moves to the first track and
// that track is returned so the caller can start it. Otherwise returns nil.
func (q *PlayingQueue) Append(tracks ...Track) *Track {
	if len(tracks) == 0 {
		return nil
	}
	q.playlist.Add(tracks...)
	if q.currentIndex != NoCursor {
		return nil
	}
	q.currentIndex = 0
	return q.Current()
}

// Next advances to the next track and returns it.
// Returns nil and leaves the cursor alone at the end of the queue.
func (q *PlayingQueue) Next() *Track {
	if !q.HasNext() {
		return nil
	}
	q.currentIndex++
	return q.Current()
}

// Previous moves back one track and returns it.
// Returns nil and leaves the cursor alone at the start of the queue.
func (q *PlayingQueue) Previous() *Track {
	if !q.HasPrevious() {
		return nil
	}
	q.currentIndex--
	return q.Current()
}

// HasNext returns true if there's a track after the current one.
func (q *PlayingQueue) HasNext() bool {
	return q.currentIndex != NoCursor && q.currentIndex+1 < q.playlist.Len()
}

// HasPrevious returns true if there's a track before the current one.
func (q *PlayingQueue) HasPrevious() bool {
	return q.currentIndex-1 >= 0
}

// JumpTo sets the cursor to index and returns the track there.
// Returns nil and leaves the cursor alone if index is invalid.
func (q *PlayingQueue) JumpTo(index int) *Track {
	if index < 0 || index >= q.playlist.Len() {
		return nil
	}
	q.currentIndex = index
	return q.Current()
}

// Restore puts the cursor back to a previously observed value.
// Used to undo a move whose track failed to load.
func (q *PlayingQueue) Restore(index int) {
	if index == NoCursor || (index >= 0 && index < q.playlist.Len()) {
		q.currentIndex = index
	}
}

// Track returns the track at index, or nil if out of bounds.
func (q *PlayingQueue) Track(index int) *Track {
	return q.playlist.Track(index)
}

// Tracks returns all tracks in the queue.
func (q *PlayingQueue) Tracks() []Track {
	return q.playlist.Tracks()
}

// Len returns the number of tracks in the queue.
func (q *PlayingQueue) Len() int {
	return q.playlist.Len()
}

// IsEmpty returns true if the queue has no tracks.
func (q *PlayingQueue) IsEmpty() bool {
	return q.playlist.Len() == 0
}
