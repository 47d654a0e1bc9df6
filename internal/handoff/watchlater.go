package handoff

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type watchLater struct {
	PositionMillis int
	Paused         bool
}

// readWatchLater reads the first entry mpv saved in dir.
func readWatchLater(dir string) (watchLater, bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return watchLater{}, false, fmt.Errorf("read watch-later dir: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		f, err := os.Open(filepath.Join(dir, e.Name()))
		if err != nil {
			return watchLater{}, false, err
		}
		wl, ok := parseWatchLater(f)
		f.Close()
		if ok {
			return wl, true, nil
		}
	}
	return watchLater{}, false, nil
}

func parseWatchLater(r io.Reader) (watchLater, bool) {
	var wl watchLater
	found := false

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		key, value, ok := strings.Cut(strings.TrimSpace(sc.Text()), "=")
		if !ok || strings.HasPrefix(key, "#") {
			continue
		}
		switch key {
		case "start":
			secs, err := strconv.ParseFloat(value, 64)
			if err != nil {
				continue
			}
			wl.PositionMillis = int(math.Round(secs * 1000))
			found = true
		case "pause":
			wl.Paused = value == "yes"
		}
	}
	return wl, found
}
