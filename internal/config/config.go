package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/lagu-player/lagu/internal/playlist"
)

// Defaults applied by the getters.
const (
	DefaultPollInterval  = 500 * time.Millisecond
	DefaultSeekStep      = 5 * time.Second
	DefaultSeekTolerance = time.Second
	DefaultSeekSettle    = 2 * time.Second
	DefaultVolumeStep    = 0.05

	minPollInterval = 50 * time.Millisecond
)

type Config struct {
	DefaultFolder string   `koanf:"default_folder"` // file chooser start directory
	Extensions    []string `koanf:"extensions"`     // file types accepted by the chooser

	Playback PlaybackConfig `koanf:"playback"`
	Progress ProgressConfig `koanf:"progress"`
	Seek     SeekConfig     `koanf:"seek"`
	Log      LogConfig      `koanf:"log"`
	Desktop  DesktopConfig  `koanf:"desktop"`
}

// PlaybackConfig holds transport settings.
type PlaybackConfig struct {
	AutoAdvance  *bool    `koanf:"auto_advance"`  // start next track at end of track (default: true)
	PollInterval string   `koanf:"poll_interval"` // progress refresh period, e.g. "500ms"
	SeekStep     string   `koanf:"seek_step"`     // arrow-key seek amount, e.g. "5s"
	Volume       *float64 `koanf:"volume"`        // start-up level, 0.0 to 1.0 (default: 1.0)
	VolumeStep   float64  `koanf:"volume_step"`   // volume key amount (default: 0.05)
}

// ProgressConfig holds progress bar settings.
type ProgressConfig struct {
	GateOnPlaying *bool `koanf:"gate_on_playing"` // freeze the bar unless playing (default: true)
}

// SeekConfig controls how long a seek owns the progress bar.
type SeekConfig struct {
	Settle    string `koanf:"settle"`    // max time to wait for the engine, e.g. "2s"
	Tolerance string `koanf:"tolerance"` // distance at which the engine has caught up, e.g. "1s"
}

// LogConfig holds log file settings.
type LogConfig struct {
	File  string `koanf:"file"`  // default: $XDG_STATE_HOME/lagu/lagu.log
	Level string `koanf:"level"` // debug, info, warn, error (default: info)
}

// DesktopConfig toggles desktop integration.
type DesktopConfig struct {
	Notifications *bool `koanf:"notifications"` // default: true
	MPRIS         *bool `koanf:"mpris"`         // default: true
}

// Load reads the layered config files. A non-empty explicit path is loaded
// last and must exist.
func Load(explicit string) (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		}
	}

	if explicit != "" {
		explicit = expandPath(explicit)
		if err := k.Load(file.Provider(explicit), toml.Parser()); err != nil {
			return nil, fmt.Errorf("%s: %w", explicit, err)
		}
	}

	cfg := &Config{
		DefaultFolder: "", // empty means use cwd
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	// Expand ~ in paths
	if cfg.DefaultFolder != "" {
		cfg.DefaultFolder = expandPath(cfg.DefaultFolder)
	}
	if cfg.Log.File != "" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/lagu/config.toml
		filepath.Join(xdg.ConfigHome, "lagu", "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetExtensions returns the accepted extensions, lowercased and dotted.
func (c *Config) GetExtensions() []string {
	if len(c.Extensions) == 0 {
		return playlist.DefaultExtensions
	}
	exts := make([]string, 0, len(c.Extensions))
	for _, e := range c.Extensions {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		exts = append(exts, e)
	}
	if len(exts) == 0 {
		return playlist.DefaultExtensions
	}
	return exts
}

// AutoAdvance reports whether a finished track starts the next one.
func (c *Config) AutoAdvance() bool {
	return boolOr(c.Playback.AutoAdvance, true)
}

// PollInterval returns the progress refresh period.
func (c *Config) PollInterval() time.Duration {
	d := durationOr(c.Playback.PollInterval, DefaultPollInterval)
	if d < minPollInterval {
		return DefaultPollInterval
	}
	return d
}

// SeekStep returns the arrow-key seek amount.
func (c *Config) SeekStep() time.Duration {
	return durationOr(c.Playback.SeekStep, DefaultSeekStep)
}

// Volume returns the start-up output level, clamped to 0..1.
func (c *Config) Volume() float64 {
	if c.Playback.Volume == nil {
		return 1
	}
	return min(max(*c.Playback.Volume, 0), 1)
}

// VolumeStep returns the volume key amount.
func (c *Config) VolumeStep() float64 {
	if c.Playback.VolumeStep <= 0 || c.Playback.VolumeStep > 1 {
		return DefaultVolumeStep
	}
	return c.Playback.VolumeStep
}

// GateOnPlaying reports whether the progress bar only moves while playing.
func (c *Config) GateOnPlaying() bool {
	return boolOr(c.Progress.GateOnPlaying, true)
}

// SeekTolerance returns how close the engine must get to a seek target.
func (c *Config) SeekTolerance() time.Duration {
	return durationOr(c.Seek.Tolerance, DefaultSeekTolerance)
}

// SeekSettle returns how long a seek may hold the progress bar.
func (c *Config) SeekSettle() time.Duration {
	return durationOr(c.Seek.Settle, DefaultSeekSettle)
}

// LogFile returns the log file path.
func (c *Config) LogFile() string {
	if c.Log.File != "" {
		return c.Log.File
	}
	return filepath.Join(xdg.StateHome, "lagu", "lagu.log")
}

// LogLevel returns the configured level, defaulting to info.
func (c *Config) LogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// NotificationsEnabled reports whether desktop notifications are sent.
func (c *Config) NotificationsEnabled() bool {
	return boolOr(c.Desktop.Notifications, true)
}

// MPRISEnabled reports whether the MPRIS service is started.
func (c *Config) MPRISEnabled() bool {
	return boolOr(c.Desktop.MPRIS, true)
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func durationOr(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
