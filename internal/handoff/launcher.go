package handoff

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// playerConfig describes how to drive a known full-screen player.
type playerConfig struct {
	startFlag      string // offset flag prefix in seconds, e.g. "--start="
	fullscreenFlag string
	pauseFlag      string // start paused when autoplay is off
	watchLater     bool   // writes its position on quit (mpv)
}

// players registry - single source of truth for all player configuration
var players = map[string]playerConfig{
	"mpv": {
		startFlag:      "--start=",
		fullscreenFlag: "--fs",
		pauseFlag:      "--pause",
		watchLater:     true,
	},
	"celluloid": {
		startFlag:      "--mpv-start=",
		fullscreenFlag: "--mpv-fs",
		pauseFlag:      "--mpv-pause",
	},
	"haruna": {
		startFlag: "--mpv-start=",
	},
	"vlc": {
		startFlag:      "--start-time=",
		fullscreenFlag: "--fullscreen",
		pauseFlag:      "--start-paused",
	},
}

// candidatePlayers is the preferred order when no player is configured.
var candidatePlayers = []string{"mpv", "celluloid", "haruna", "vlc"}

// Launcher is a Viewer that runs an external player and waits for it to
// exit.
type Launcher struct {
	command   string
	args      []string
	startFlag string
	tmpDir    string
	logger    zerolog.Logger

	lookPath func(string) (string, error)
	run      func(ctx context.Context, name string, args ...string) error
	now      func() time.Time
}

// NewLauncher creates a launcher. An empty command auto-detects a player;
// an empty startFlag is resolved from the registry for known players.
func NewLauncher(command string, args []string, startFlag string, logger zerolog.Logger) *Launcher {
	return &Launcher{
		command:   command,
		args:      args,
		startFlag: startFlag,
		logger:    logger,
		lookPath:  exec.LookPath,
		run: func(ctx context.Context, name string, args ...string) error {
			return exec.CommandContext(ctx, name, args...).Run()
		},
		now: time.Now,
	}
}

// SetTempDir sets where per-launch watch-later directories are created.
func (l *Launcher) SetTempDir(dir string) { l.tmpDir = dir }

// Open plays l.Path full screen from the requested position.
func (l *Launcher) Open(ctx context.Context, launch Launch) (Result, error) {
	name, bin, cfg, err := l.resolve()
	if err != nil {
		return Result{}, err
	}

	args := append([]string{}, l.args...)
	if cfg.fullscreenFlag != "" {
		args = append(args, cfg.fullscreenFlag)
	}
	if !launch.Request.Autoplay && cfg.pauseFlag != "" {
		args = append(args, cfg.pauseFlag)
	}
	if launch.Request.PositionMillis > 0 {
		if cfg.startFlag != "" {
			args = append(args, offsetArgs(cfg.startFlag, launch.Request.PositionMillis)...)
		} else {
			l.logger.Warn().Str("player", name).
				Msg("cannot set start offset - unknown player, configure start_flag in config")
		}
	}

	var watchDir string
	if cfg.watchLater {
		watchDir, err = os.MkdirTemp(l.tmpDir, "vidpeek-watch-*")
		if err != nil {
			return Result{}, fmt.Errorf("create watch-later dir: %w", err)
		}
		defer os.RemoveAll(watchDir)
		args = append(args, "--save-position-on-quit", "--watch-later-directory="+watchDir)
	}
	args = append(args, launch.Path)

	l.logger.Info().Str("player", name).Strs("args", args).Str("launch", launch.ID).Msg("launching player")

	started := l.now()
	if err := l.run(ctx, bin, args...); err != nil {
		if ctx.Err() != nil {
			return Result{}, ctx.Err()
		}
		return Result{}, fmt.Errorf("%s: %w", name, err)
	}

	if cfg.watchLater {
		wl, found, err := readWatchLater(watchDir)
		if err != nil {
			return Result{}, err
		}
		if !found {
			// mpv drops its watch-later entry when playback reached the end.
			return Result{PositionMillis: 0, IsPlaying: false}, nil
		}
		return Result{PositionMillis: wl.PositionMillis, IsPlaying: !wl.Paused}, nil
	}

	elapsed := int(l.now().Sub(started).Milliseconds())
	if !launch.Request.Autoplay {
		elapsed = 0
	}
	return Result{
		PositionMillis: launch.Request.PositionMillis + elapsed,
		IsPlaying:      launch.Request.Autoplay,
	}, nil
}

func (l *Launcher) resolve() (name, bin string, cfg playerConfig, err error) {
	if l.command != "" {
		name = playerName(l.command)
		cfg = players[name]
		if l.startFlag != "" {
			cfg.startFlag = l.startFlag
		}
		bin, err = l.lookPath(l.command)
		if err != nil {
			return "", "", playerConfig{}, fmt.Errorf("player %q: %w", l.command, err)
		}
		return name, bin, cfg, nil
	}

	for _, candidate := range candidatePlayers {
		if p, lookErr := l.lookPath(candidate); lookErr == nil {
			l.logger.Debug().Str("player", candidate).Str("path", p).Msg("detected player")
			return candidate, p, players[candidate], nil
		}
	}
	return "", "", playerConfig{}, errors.New("no candidate players found")
}

func playerName(command string) string {
	base := filepath.Base(command)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return strings.ToLower(base)
}

// offsetArgs handles flags that need a separate value ("-ss ") and flags
// that take it inline ("--start=").
func offsetArgs(flag string, positionMillis int) []string {
	secs := strconv.FormatFloat(float64(positionMillis)/1000, 'f', 3, 64)
	if strings.HasSuffix(flag, " ") {
		return []string{strings.TrimSuffix(flag, " "), secs}
	}
	return []string{flag + secs}
}
