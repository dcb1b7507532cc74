package keymap

import "strings"

// Binding maps keys to an action, with a description for help output.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "playback", "tracklist", "chooser"
}

// All contains all key bindings.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionOpen, []string{"o"}, "Open file", "global"},
	{ActionHelp, []string{"?"}, "Toggle help", "global"},

	// Playback
	{ActionPlay, []string{"p"}, "Play", "playback"},
	{ActionPlayPause, []string{" "}, "Play/pause", "playback"},
	{ActionPause, []string{"P"}, "Pause", "playback"},
	{ActionStop, []string{"s"}, "Stop", "playback"},
	{ActionNextTrack, []string{"n", "pgdown"}, "Next track", "playback"},
	{ActionPrevTrack, []string{"b", "pgup"}, "Previous track", "playback"},
	{ActionSeekBack, []string{"left", "h"}, "Seek back", "playback"},
	{ActionSeekForward, []string{"right", "l"}, "Seek forward", "playback"},
	{ActionVolumeUp, []string{"+", "="}, "Volume up", "playback"},
	{ActionVolumeDown, []string{"-"}, "Volume down", "playback"},
	{ActionMute, []string{"m"}, "Mute", "playback"},

	// Track list
	{ActionMoveUp, []string{"k", "up"}, "Move up", "tracklist"},
	{ActionMoveDown, []string{"j", "down"}, "Move down", "tracklist"},
	{ActionJumpStart, []string{"g", "home"}, "First track", "tracklist"},
	{ActionJumpEnd, []string{"G", "end"}, "Last track", "tracklist"},
	{ActionSelect, []string{"enter"}, "Play track", "tracklist"},

	// File chooser
	{ActionCancel, []string{"esc"}, "Cancel", "chooser"},
	{ActionAddFolder, []string{"a"}, "Add all files in folder", "chooser"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// HelpLine renders bindings as "key desc" pairs separated by two spaces,
// using the first key of each binding.
func HelpLine(bindings []Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if len(b.Keys) == 0 {
			continue
		}
		parts = append(parts, displayKey(b.Keys[0])+" "+strings.ToLower(b.Description))
	}
	return strings.Join(parts, "  ")
}

func displayKey(k string) string {
	if k == " " {
		return "space"
	}
	return k
}
