package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testBindings = []Binding{
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionPlayPause, []string{" "}, "Play/pause", "playback"},
	{ActionMoveUp, []string{"k", "up"}, "Move up", "tracklist"},
	{ActionCancel, []string{"esc", "q"}, "Cancel", "chooser"},
	{ActionPause, []string{"P", "P"}, "Pause", "playback"},
}

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver(testBindings)

	tests := []struct {
		key  string
		want Action
	}{
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{" ", ActionPlayPause},
		{"up", ActionMoveUp},
		{"esc", ActionCancel},
		{"unknown", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Resolve(tt.key))
		})
	}
}

func TestResolver_Contexts(t *testing.T) {
	r := NewResolver(testBindings, "chooser")

	assert.Equal(t, ActionCancel, r.Resolve("q"))
	assert.Equal(t, ActionCancel, r.Resolve("esc"))
	assert.Empty(t, r.Resolve(" "))

	r = NewResolver(testBindings, "playback", "tracklist")
	assert.Equal(t, ActionPlayPause, r.Resolve(" "))
	assert.Equal(t, ActionMoveUp, r.Resolve("k"))
	assert.Empty(t, r.Resolve("q"))
}

func TestResolver_Lookup(t *testing.T) {
	r := NewResolver(testBindings)

	b, ok := r.Lookup("k")
	assert.True(t, ok)
	assert.Equal(t, "tracklist", b.Context)
	assert.Equal(t, "Move up", b.Description)

	_, ok = r.Lookup("x")
	assert.False(t, ok)
}

func TestResolver_KeysFor(t *testing.T) {
	r := NewResolver(testBindings)

	assert.Equal(t, []string{"q", "ctrl+c"}, r.KeysFor(ActionQuit))
	assert.Equal(t, []string{"P"}, r.KeysFor(ActionPause))
	assert.Nil(t, r.KeysFor(ActionStop))
}
