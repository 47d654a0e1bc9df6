package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Account string `koanf:"account"` // account the previewed files belong to

	// Full-screen player used for the handoff
	Player PlayerConfig `koanf:"player"`

	// Inline preview behaviour
	Preview PreviewConfig `koanf:"preview"`

	// Sync indicator polling
	Progress ProgressConfig `koanf:"progress"`

	UI            UIConfig            `koanf:"ui"`
	Logging       LoggingConfig       `koanf:"logging"`
	Notifications NotificationsConfig `koanf:"notifications"`
}

// PlayerConfig holds the external full-screen player configuration.
type PlayerConfig struct {
	Command       string   `koanf:"command"`         // empty auto-detects mpv, celluloid, haruna or vlc
	Args          []string `koanf:"args"`            // extra arguments placed before the file
	StartFlag     string   `koanf:"start_flag"`      // e.g. "--start=" or "--start-time " for unknown players
	WatchLaterDir string   `koanf:"watch_later_dir"` // parent of per-launch mpv watch-later dirs
}

// PreviewConfig holds inline playback settings.
type PreviewConfig struct {
	Autoplay      *bool  `koanf:"autoplay"`        // start playing when prepared (default: true)
	FFProbe       string `koanf:"ffprobe"`         // ffprobe binary (default: "ffprobe")
	ProbeTimeout  int    `koanf:"probe_timeout"`   // seconds (default: 10)
	RestoreOnOpen *bool  `koanf:"restore_on_open"` // resume from the saved snapshot (default: true)
}

// ProgressConfig holds sync indicator settings.
type ProgressConfig struct {
	PollIntervalMS int `koanf:"poll_interval_ms"` // default: 1000
}

// UIConfig holds terminal display settings.
type UIConfig struct {
	CellWidthDP float64 `koanf:"cell_width_dp"` // dp per terminal column (default: 8)
	Icons       string  `koanf:"icons"`         // "nerd", "unicode" or "none" (default: "unicode")
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	File  string `koanf:"file"`  // default: $XDG_STATE_HOME/vidpeek/vidpeek.log
	Level string `koanf:"level"` // default: "info"
}

// NotificationsConfig holds desktop notification settings.
type NotificationsConfig struct {
	Enabled *bool `koanf:"enabled"` // default: true
}

func Load() (*Config, error) {
	return LoadFrom(getConfigPaths())
}

// LoadFrom loads the given files in order; later files win and missing
// files are skipped.
func LoadFrom(configPaths []string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Account = strings.TrimSpace(cfg.Account)
	cfg.Player.Command = expandPath(cfg.Player.Command)
	cfg.Player.WatchLaterDir = expandPath(cfg.Player.WatchLaterDir)
	cfg.Logging.File = expandPath(cfg.Logging.File)

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/vidpeek/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "vidpeek", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

// Autoplay reports whether a freshly opened preview starts playing.
func (c *Config) Autoplay() bool { return boolOr(c.Preview.Autoplay, true) }

// RestoreOnOpen reports whether a saved snapshot is resumed.
func (c *Config) RestoreOnOpen() bool { return boolOr(c.Preview.RestoreOnOpen, true) }

// NotificationsEnabled reports whether desktop notifications are sent.
func (c *Config) NotificationsEnabled() bool { return boolOr(c.Notifications.Enabled, true) }

// FFProbeBinary returns the ffprobe executable name.
func (c *Config) FFProbeBinary() string {
	if c.Preview.FFProbe == "" {
		return "ffprobe"
	}
	return expandPath(c.Preview.FFProbe)
}

// ProbeTimeout returns the media probe timeout with defaults applied.
func (c *Config) ProbeTimeout() time.Duration {
	if c.Preview.ProbeTimeout <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.Preview.ProbeTimeout) * time.Second
}

// PollInterval returns the sync indicator poll interval with defaults applied.
func (c *Config) PollInterval() time.Duration {
	ms := c.Progress.PollIntervalMS
	if ms <= 0 {
		ms = 1000
	}
	if ms < 100 {
		ms = 100
	}
	return time.Duration(ms) * time.Millisecond
}

// CellWidthDP returns the width of one terminal column in dp.
func (c *Config) CellWidthDP() float64 {
	if c.UI.CellWidthDP <= 0 {
		return 8
	}
	return c.UI.CellWidthDP
}

// LogLevel returns the configured log level, "info" when unset.
func (c *Config) LogLevel() string {
	if c.Logging.Level == "" {
		return "info"
	}
	return c.Logging.Level
}
