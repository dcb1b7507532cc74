package timefmt

import (
	"testing"
	"time"
)

func TestSeconds(t *testing.T) {
	tests := []struct {
		name  string
		input int
		want  string
	}{
		{"zero", 0, "00:00"},
		{"one minute one second", 61, "01:01"},
		{"last second of the hour", 3599, "59:59"},
		{"no hour field", 3600, "60:00"},
		{"minutes past 99", 6000, "100:00"},
		{"negative clamps", -5, "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Seconds(tt.input); got != tt.want {
				t.Errorf("Seconds(%d) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDuration_Truncates(t *testing.T) {
	if got := Duration(61*time.Second + 999*time.Millisecond); got != "01:01" {
		t.Errorf("Duration() = %q, want 01:01", got)
	}
	if got := Duration(-time.Second); got != "00:00" {
		t.Errorf("Duration(-1s) = %q, want 00:00", got)
	}
}

func TestPair(t *testing.T) {
	got := Pair(50*time.Second, 200*time.Second)
	if got != "00:50 / 03:20" {
		t.Errorf("Pair() = %q, want %q", got, "00:50 / 03:20")
	}
}
