package fileops

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/vidpeek/internal/media"
)

// Details renders the properties of item as aligned label/value lines.
func Details(item media.Item, account media.Account) string {
	return details(item, account, time.Now())
}

func details(item media.Item, account media.Account, now time.Time) string {
	rows := [][2]string{
		{"Name", item.Name()},
		{"Folder", filepath.Dir(item.Path)},
		{"Type", orDash(item.MimeType)},
		{"Size", size(item.Size)},
		{"Modified", modified(item.ModTime, now)},
		{"Account", orDash(account.Name)},
		{"Favorite", yesNo(item.Favorite)},
	}
	if item.RemotePath != "" {
		rows = append(rows, [2]string{"Remote", item.RemotePath})
	}

	var b strings.Builder
	for i, r := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%-9s %s", r[0]+":", r[1])
	}
	return b.String()
}

func size(n int64) string {
	if n <= 0 {
		return "-"
	}
	return humanize.Bytes(uint64(n)) //nolint:gosec // n is positive
}

func modified(t, now time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return humanize.RelTime(t, now, "ago", "from now")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
