//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"testing"
)

func TestByContext(t *testing.T) {
	tests := []struct {
		name            string
		context         string
		expectNonEmpty  bool
		expectMinLength int
	}{
		{"global context", "global", true, 3},
		{"playback context", "playback", true, 6},
		{"tracklist context", "tracklist", true, 5},
		{"chooser context", "chooser", true, 1},
		{"unknown context returns empty", "unknown", false, 0},
		{"empty context returns empty", "", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ByContext(tt.context)

			if tt.expectNonEmpty && len(result) == 0 {
				t.Errorf("ByContext(%q) returned empty, expected non-empty", tt.context)
			}

			if !tt.expectNonEmpty && len(result) != 0 {
				t.Errorf("ByContext(%q) returned %d items, expected empty", tt.context, len(result))
			}

			if len(result) < tt.expectMinLength {
				t.Errorf("ByContext(%q) returned %d items, expected at least %d", tt.context, len(result), tt.expectMinLength)
			}

			for _, binding := range result {
				if binding.Context != tt.context {
					t.Errorf("binding context = %q, want %q", binding.Context, tt.context)
				}
			}
		})
	}
}

func TestTransportButtonsBound(t *testing.T) {
	r := NewResolver(All)

	// One key per transport button of the player window, plus volume.
	expected := map[string]Action{
		"o": ActionOpen,
		"p": ActionPlay,
		" ": ActionPlayPause,
		"s": ActionStop,
		"n": ActionNextTrack,
		"b": ActionPrevTrack,
		"+": ActionVolumeUp,
		"=": ActionVolumeUp,
		"-": ActionVolumeDown,
		"m": ActionMute,
	}

	for key, want := range expected {
		if got := r.Resolve(key); got != want {
			t.Errorf("Resolve(%q) = %q, want %q", key, got, want)
		}
	}
}

func TestAllBindingsHaveKeysAndDescriptions(t *testing.T) {
	for _, b := range All {
		if b.Action == "" {
			t.Errorf("binding %v has no action", b.Keys)
		}
		if len(b.Keys) == 0 {
			t.Errorf("binding %q has no keys", b.Action)
		}
		if b.Description == "" {
			t.Errorf("binding %q has no description", b.Action)
		}
	}
}

func TestNoDuplicateKeysWithinContext(t *testing.T) {
	seen := make(map[string]Action)
	for _, b := range All {
		for _, k := range b.Keys {
			if prev, ok := seen[k]; ok {
				t.Errorf("key %q bound to both %q and %q", k, prev, b.Action)
			}
			seen[k] = b.Action
		}
	}
}

func TestHelpLine(t *testing.T) {
	bindings := []Binding{
		{ActionPlayPause, []string{" "}, "Play/pause", "playback"},
		{ActionStop, []string{"s"}, "Stop", "playback"},
		{ActionQuit, nil, "Quit", "global"},
	}

	got := HelpLine(bindings)
	want := "space play/pause  s stop"
	if got != want {
		t.Errorf("HelpLine() = %q, want %q", got, want)
	}
}
