package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickCmd returns a command that sends TickMsg after interval.
func TickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// WatchServiceEvents returns a command that waits for the next playback
// event and converts it to a message. Re-issue it after each event.
func (m Model) WatchServiceEvents() tea.Cmd {
	sub := m.sub
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case e := <-sub.StateChanged:
			return ServiceStateChangedMsg{e}
		case e := <-sub.TrackChanged:
			return ServiceTrackChangedMsg{e}
		case e := <-sub.QueueChanged:
			return ServiceQueueChangedMsg{e}
		case e := <-sub.PositionChanged:
			return ServicePositionMsg{e}
		case e := <-sub.Error:
			return ServiceErrorMsg{e}
		case <-sub.Done:
			return ServiceClosedMsg{}
		}
	}
}

// WatchTrackFinished returns a command that waits for the engine to reach
// the end of the current track. Manual stops do not signal.
func (m Model) WatchTrackFinished() tea.Cmd {
	return waitForChannel(m.session.Service().Player().FinishedChan(), func(_ struct{}, ok bool) tea.Msg {
		if !ok {
			return nil
		}
		return TrackFinishedMsg{}
	})
}

// WatchStderr returns a command that waits for captured stderr output.
func WatchStderr(lines <-chan string) tea.Cmd {
	return waitForChannel(lines, func(line string, ok bool) tea.Msg {
		if !ok {
			return nil
		}
		return StderrMsg{Line: line}
	})
}

// waitForChannel creates a command that waits for a value from ch and
// converts it to a message. ok is false once ch is closed.
func waitForChannel[T any](ch <-chan T, onResult func(T, bool) tea.Msg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		result, ok := <-ch
		return onResult(result, ok)
	}
}
