package mpris

import (
	"os"
	"path/filepath"
	"strings"
)

var thumbnailExts = []string{".jpg", ".jpeg", ".png", ".webp"}

// folderArt lists directory-wide poster names in priority order.
var folderArt = []string{"poster.jpg", "poster.png", "folder.jpg", "folder.png", "cover.jpg", "cover.png"}

// FindThumbnail looks for artwork next to a video: "<name>.jpg" and
// friends first, then "<name>-thumb.jpg" as written by media managers,
// then a folder poster. Returns "" when nothing exists.
func FindThumbnail(videoPath string) string {
	dir := filepath.Dir(videoPath)
	stem := strings.TrimSuffix(filepath.Base(videoPath), filepath.Ext(videoPath))

	var candidates []string
	for _, suffix := range []string{"", "-thumb"} {
		for _, ext := range thumbnailExts {
			candidates = append(candidates, stem+suffix+ext)
		}
	}
	candidates = append(candidates, folderArt...)

	for _, name := range candidates {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}
