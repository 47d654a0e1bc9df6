// Package media describes the files a preview can be opened on.
package media

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

// Kind classifies an item by its MIME type.
type Kind int

const (
	KindOther Kind = iota
	KindVideo
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindVideo:
		return "video"
	case KindOther:
		return "other"
	default:
		return "unknown"
	}
}

// KindOf returns KindVideo for video/* MIME types.
func KindOf(mimeType string) Kind {
	if strings.HasPrefix(strings.ToLower(mimeType), "video/") {
		return KindVideo
	}
	return KindOther
}

// Item references a file owned by an account. Items are values: a metadata
// change produces a new Item rather than mutating the current one.
type Item struct {
	Path       string // local path, identity of the item
	RemotePath string
	MimeType   string
	Size       int64
	ModTime    time.Time
	Downloaded bool
	Favorite   bool
	Kind       Kind
}

// Name returns the base name of the item.
func (i Item) Name() string {
	if i.RemotePath != "" {
		return filepath.Base(i.RemotePath)
	}
	return filepath.Base(i.Path)
}

// SameFile reports whether both items reference the same file.
func (i Item) SameFile(other Item) bool {
	return i.Path == other.Path
}

// Account is the owner of an item. The zero value means no account.
type Account struct {
	Name string
}

// IsZero reports whether no account is set.
func (a Account) IsZero() bool { return a.Name == "" }

func (a Account) String() string { return a.Name }

// videoTypes covers containers missing from minimal mime.types setups.
var videoTypes = map[string]string{
	".3gp":  "video/3gpp",
	".avi":  "video/x-msvideo",
	".m4v":  "video/x-m4v",
	".mkv":  "video/x-matroska",
	".mov":  "video/quicktime",
	".mp4":  "video/mp4",
	".mpeg": "video/mpeg",
	".mpg":  "video/mpeg",
	".ogv":  "video/ogg",
	".webm": "video/webm",
}

// VideoMimeTypes lists the video MIME types recognised by extension.
func VideoMimeTypes() []string {
	seen := make(map[string]bool, len(videoTypes))
	types := make([]string, 0, len(videoTypes))
	for _, t := range videoTypes {
		if !seen[t] {
			seen[t] = true
			types = append(types, t)
		}
	}
	slices.Sort(types)
	return types
}

// MimeTypeOf guesses the MIME type of path from its extension.
func MimeTypeOf(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if t, ok := videoTypes[ext]; ok {
		return t
	}
	t := mime.TypeByExtension(ext)
	if i := strings.IndexByte(t, ';'); i >= 0 {
		t = t[:i]
	}
	return t
}

// Stat builds an Item from a local file. A missing file yields an item that
// is not downloaded.
func Stat(path string) (Item, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Item{}, fmt.Errorf("resolve %s: %w", path, err)
	}

	mimeType := MimeTypeOf(abs)

	item := Item{
		Path:     abs,
		MimeType: mimeType,
		Kind:     KindOf(mimeType),
	}

	info, err := os.Stat(abs)
	if os.IsNotExist(err) {
		return item, nil
	}
	if err != nil {
		return Item{}, fmt.Errorf("stat %s: %w", abs, err)
	}
	if info.IsDir() {
		return Item{}, fmt.Errorf("%s is a directory", abs)
	}

	item.Size = info.Size()
	item.ModTime = info.ModTime()
	item.Downloaded = true
	return item, nil
}
