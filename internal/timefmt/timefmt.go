// Package timefmt renders playback positions as MM:SS strings.
package timefmt

import (
	"fmt"
	"time"
)

// Seconds formats a whole number of seconds as MM:SS.
// There is no hour field: minutes keep growing past 59.
// Negative values are clamped to zero.
func Seconds(n int) string {
	n = max(n, 0)
	return padInt(n/60) + ":" + padInt(n%60)
}

// Duration formats d as MM:SS, truncating to whole seconds.
func Duration(d time.Duration) string {
	return Seconds(int(d / time.Second))
}

// Pair formats the "position / duration" label text.
func Pair(position, duration time.Duration) string {
	return Duration(position) + " / " + Duration(duration)
}

func padInt(n int) string {
	return fmt.Sprintf("%02d", n)
}
