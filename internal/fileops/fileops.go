// Package fileops performs the file commands of the preview menu against
// the local copy of a file.
package fileops

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"
	"github.com/rs/zerolog"

	vlog "github.com/llehouerou/vidpeek/internal/log"
	"github.com/llehouerou/vidpeek/internal/media"
	"github.com/llehouerou/vidpeek/internal/transfers"
)

// ErrUnsupportedPlatform is returned when no opener is known for the OS.
var ErrUnsupportedPlatform = errors.New("unsupported platform")

// Favorites stores favorite marks.
type Favorites interface {
	SetFavorite(account, path string, favorite bool) error
}

// Transfers queues sync jobs.
type Transfers interface {
	Create(t transfers.Transfer) (int64, error)
}

// Options configures Ops. ShowText displays the details of a file.
type Options struct {
	Favorites Favorites
	Transfers Transfers
	ShowText  func(title, body string)
	Logger    zerolog.Logger
}

// Ops implements the preview file commands.
type Ops struct {
	favorites Favorites
	transfers Transfers
	showText  func(title, body string)
	logger    zerolog.Logger

	copyText func(string) error
	start    func(name string, args ...string) error
	remove   func(path string) error
	goos     string
}

// New creates Ops.
func New(opts Options) *Ops {
	show := opts.ShowText
	if show == nil {
		show = func(string, string) {}
	}
	return &Ops{
		favorites: opts.Favorites,
		transfers: opts.Transfers,
		showText:  show,
		logger:    opts.Logger,
		copyText:  clipboard.WriteAll,
		start:     startDetached,
		remove:    os.Remove,
		goos:      runtime.GOOS,
	}
}

func startDetached(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

// Share copies the location of the file to the clipboard.
func (o *Ops) Share(item media.Item, _ media.Account) error {
	target := item.Path
	if item.RemotePath != "" {
		target = item.RemotePath
	}
	if err := o.copyText(target); err != nil {
		return err
	}
	o.logger.Info().Str(vlog.FieldPath, item.Path).Msg("location copied to clipboard")
	return nil
}

// Send opens a mail composer with the file attached.
func (o *Ops) Send(item media.Item, _ media.Account) error {
	if o.goos != "linux" {
		return fmt.Errorf("send on %s: %w", o.goos, ErrUnsupportedPlatform)
	}
	return o.start("xdg-email", "--attach", item.Path)
}

// OpenWith hands the file to the desktop's default application.
func (o *Ops) OpenWith(item media.Item, _ media.Account) error {
	switch o.goos {
	case "darwin":
		return o.start("open", item.Path)
	case "linux":
		return o.start("xdg-open", item.Path)
	case "windows":
		return o.start("cmd", "/c", "start", "", item.Path)
	default:
		return fmt.Errorf("open on %s: %w", o.goos, ErrUnsupportedPlatform)
	}
}

// Sync queues a download refreshing the local copy. A sync already queued
// for the file is reused.
func (o *Ops) Sync(item media.Item, account media.Account) error {
	id, err := o.transfers.Create(transfers.Transfer{
		Account:    account.Name,
		Path:       item.Path,
		RemotePath: item.RemotePath,
		Direction:  transfers.DirectionDownload,
		Size:       item.Size,
	})
	if err != nil {
		return err
	}
	o.logger.Info().Int64("transfer", id).Str(vlog.FieldPath, item.Path).Msg("sync queued")
	return nil
}

// SetFavorite marks or unmarks the file.
func (o *Ops) SetFavorite(item media.Item, account media.Account, favorite bool) error {
	return o.favorites.SetFavorite(account.Name, item.Path, favorite)
}

// ShowDetails displays the file details.
func (o *Ops) ShowDetails(item media.Item, account media.Account) error {
	o.showText(item.Name(), Details(item, account))
	return nil
}

// Remove deletes the local copy.
func (o *Ops) Remove(item media.Item, _ media.Account) error {
	if err := o.remove(item.Path); err != nil {
		return err
	}
	o.logger.Info().Str(vlog.FieldPath, item.Path).Msg("file removed")
	return nil
}
