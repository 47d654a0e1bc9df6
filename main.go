package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/user"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/llehouerou/vidpeek/internal/app"
	"github.com/llehouerou/vidpeek/internal/config"
	"github.com/llehouerou/vidpeek/internal/fileops"
	"github.com/llehouerou/vidpeek/internal/filewatch"
	"github.com/llehouerou/vidpeek/internal/handoff"
	"github.com/llehouerou/vidpeek/internal/icons"
	vlog "github.com/llehouerou/vidpeek/internal/log"
	"github.com/llehouerou/vidpeek/internal/media"
	"github.com/llehouerou/vidpeek/internal/mpris"
	"github.com/llehouerou/vidpeek/internal/notify"
	"github.com/llehouerou/vidpeek/internal/player"
	"github.com/llehouerou/vidpeek/internal/preview"
	"github.com/llehouerou/vidpeek/internal/progress"
	"github.com/llehouerou/vidpeek/internal/snapshot"
	"github.com/llehouerou/vidpeek/internal/state"
	"github.com/llehouerou/vidpeek/internal/stderr"
	"github.com/llehouerou/vidpeek/internal/transfers"
)

type flags struct {
	path     string
	account  string
	position int
	paused   bool
	fresh    bool
}

func parseFlags() (flags, error) {
	var f flags
	flag.StringVar(&f.account, "account", "", "account owning the file (default: config, then the login name)")
	flag.IntVar(&f.position, "position", -1, "start position in milliseconds")
	flag.BoolVar(&f.paused, "paused", false, "do not start playing once loaded")
	flag.BoolVar(&f.fresh, "fresh", false, "forget the saved position")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: vidpeek [flags] <video>\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		return f, errors.New("expected one video file")
	}
	f.path = flag.Arg(0)
	return f, nil
}

// closers are run in reverse order on exit.
type closers []func()

func (c *closers) add(fn func()) { *c = append(*c, fn) }

func (c closers) run() {
	for i := len(c) - 1; i >= 0; i-- {
		c[i]()
	}
}

func setupLogging(cfg *config.Config) (func(), error) {
	path := cfg.Logging.File
	if path == "" {
		var err error
		if path, err = vlog.DefaultPath(); err != nil {
			return nil, err
		}
	}
	f, err := vlog.OpenFile(path)
	if err != nil {
		return nil, err
	}
	vlog.Configure(vlog.Config{Level: cfg.LogLevel(), Output: f})
	return func() { _ = f.Close() }, nil
}

func run() error {
	f, err := parseFlags()
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var cleanup closers
	defer cleanup.run()

	closeLog, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	cleanup.add(closeLog)
	logger := vlog.Base()
	icons.Init(cfg.UI.Icons)

	if err := stderr.Start(func(line string) {
		logger.Warn().Str(vlog.FieldComponent, "stderr").Msg(line)
	}); err != nil {
		logger.Debug().Err(err).Msg("stderr not captured")
	} else {
		cleanup.add(stderr.Stop)
	}

	db, err := state.Open()
	if err != nil {
		return err
	}
	cleanup.add(func() { _ = db.Close() })

	account := media.Account{Name: accountName(f.account, cfg.Account, user.Current)}

	lookup := func(path string) (media.Item, error) {
		item, err := media.Stat(path)
		if err != nil {
			return item, err
		}
		fav, err := db.IsFavorite(account.Name, item.Path)
		if err != nil {
			logger.Warn().Err(err).Msg("cannot read favorites")
		}
		item.Favorite = fav
		return item, nil
	}
	item, err := lookup(f.path)
	if err != nil {
		return err
	}

	snapshots := snapshot.NewManager(db, lookup)
	args := startArgs(f, cfg.RestoreOnOpen(), cfg.Autoplay(), snapshots, item, account, logger)

	engine := player.NewClock(player.NewFFProbe(cfg.FFProbeBinary(), cfg.ProbeTimeout()), vlog.WithComponent("engine"))

	poller := progress.NewPoller(transfers.New(db.DB()), cfg.PollInterval(), vlog.WithComponent("poller"))
	cleanup.add(func() { _ = poller.Close() })

	launcher := handoff.NewLauncher(cfg.Player.Command, cfg.Player.Args, cfg.Player.StartFlag, vlog.WithComponent("viewer"))
	if cfg.Player.WatchLaterDir != "" {
		launcher.SetTempDir(cfg.Player.WatchLaterDir)
	}

	notifier := notify.Disabled()
	if cfg.NotificationsEnabled() {
		if n, err := notify.New(); err == nil {
			notifier = n
		} else {
			logger.Debug().Err(err).Msg("desktop notifications unavailable")
		}
	}

	host := app.NewHost()
	ops := fileops.New(fileops.Options{
		Favorites: db,
		Transfers: transfers.New(db.DB()),
		ShowText:  host.ShowText,
		Logger:    vlog.WithComponent("fileops"),
	})

	p, err := preview.New(args, preview.Deps{
		Engine:    engine,
		Controls:  host,
		Source:    poller,
		Viewer:    launcher,
		Files:     ops,
		Dialogs:   host,
		Host:      host,
		Snapshots: snapshots,
		Audio:     mpris.NewAudioStopper(vlog.WithComponent("audio")),
		Notifier:  notifier,
		Logger:    vlog.WithComponent("preview"),
	})
	if err != nil {
		return err
	}
	cleanup.add(func() {
		if _, err := p.SaveState(); err != nil {
			logger.Warn().Err(err).Msg("cannot save preview state")
		}
		if err := p.Destroy(); err != nil {
			logger.Warn().Err(err).Msg("release preview")
		}
	})

	opts := app.Options{
		Preview:     p,
		Host:        host,
		Policy:      fileops.MenuFilter{},
		Refresh:     func(old media.Item) (media.Item, error) { return lookupKeepRemote(lookup, old) },
		CellWidthDP: cfg.CellWidthDP(),
		Logger:      vlog.WithComponent("app"),
	}

	if remote, err := mpris.New(p.Controller(), vlog.WithComponent("mpris")); err == nil {
		opts.Remote = remote.Commands()
		cleanup.add(func() { _ = remote.Close() })
	} else {
		logger.Debug().Err(err).Msg("mpris unavailable")
	}

	if w, err := filewatch.New(item.Path, filewatch.DefaultSettle, vlog.WithComponent("filewatch")); err == nil {
		opts.Changes = w.Changes()
		cleanup.add(func() { _ = w.Close() })
	} else {
		logger.Warn().Err(err).Msg("file changes are not watched")
	}

	program := tea.NewProgram(app.New(opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

// restoreArgs resumes from the snapshot saved for the file, if any.
// accountName picks the account from the flag, then the config, then the
// login name of the current user.
func accountName(flagValue, configured string, current func() (*user.User, error)) string {
	if flagValue != "" {
		return flagValue
	}
	if configured != "" {
		return configured
	}
	if u, err := current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}

// startArgs chooses where the preview starts: an explicit -position, the
// saved snapshot, or the configured autoplay at 0. -fresh drops the
// snapshot instead of restoring it.
func startArgs(
	f flags,
	restore, autoplay bool,
	snapshots *snapshot.Manager,
	item media.Item,
	account media.Account,
	logger zerolog.Logger,
) preview.Args {
	args := preview.Args{Item: &item, Account: &account, PositionMillis: max(f.position, 0), Autoplay: autoplay}
	switch {
	case f.fresh:
		if err := snapshots.Discard(snapshot.KeyFor(item, account)); err != nil {
			logger.Warn().Err(err).Msg("cannot discard saved preview state")
		}
	case f.position < 0 && restore:
		args = restoreArgs(snapshots, item, account, args, logger)
	}
	if f.paused {
		args.Autoplay = false
	}
	return args
}

func restoreArgs(snapshots *snapshot.Manager, item media.Item, account media.Account, fallback preview.Args, logger zerolog.Logger) preview.Args {
	snap, err := snapshots.Load(snapshot.KeyFor(item, account))
	switch {
	case errors.Is(err, snapshot.ErrNoSnapshot):
		return fallback
	case err != nil:
		logger.Warn().Err(err).Msg("cannot restore preview state")
		return fallback
	}
	args := preview.ArgsFromSnapshot(snap)
	args.Item = &item
	logger.Info().Int(vlog.FieldPosition, args.PositionMillis).Bool("autoplay", args.Autoplay).Msg("restored preview state")
	return args
}

func lookupKeepRemote(lookup func(string) (media.Item, error), old media.Item) (media.Item, error) {
	item, err := lookup(old.Path)
	if err != nil {
		return old, err
	}
	item.RemotePath = old.RemotePath
	return item, nil
}

func main() {
	if err := run(); err != nil {
		var invalid *media.InvalidStateError
		if errors.As(err, &invalid) {
			stderr.WriteOriginal(fmt.Sprintf("vidpeek: %v\n", err))
			os.Exit(2)
		}
		stderr.WriteOriginal(fmt.Sprintf("Error: %v\n", err))
		os.Exit(1)
	}
}
