package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Video    string
	Account  string
	Favorite string
	Sync     string
}

var (
	nerdIcons = Icons{
		Video:    " ", // nf-fa-video_camera
		Account:  " ", // nf-fa-user
		Favorite: "",  // nf-fa-star
		Sync:     "󰓦",       // nf-md-sync
	}

	unicodeIcons = Icons{
		Video:    "🎬 ",
		Account:  "👤 ",
		Favorite: "★",
		Sync:     "⟳",
	}

	noneIcons = Icons{
		Favorite: "*",
		Sync:     "~",
	}

	// current holds the active icon set
	current = unicodeIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value. Unknown styles fall
// back to unicode.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleNone:
		current = noneIcons
	default:
		current = unicodeIcons
	}
}

// FormatVideo formats a video file name with the appropriate icon.
func FormatVideo(name string) string {
	return current.Video + name
}

// FormatAccount formats an account name with the appropriate icon.
func FormatAccount(name string) string {
	if name == "" {
		return ""
	}
	return current.Account + name
}

// Favorite returns the favorite mark.
func Favorite() string {
	return current.Favorite
}

// Sync returns the sync-in-progress mark.
func Sync() string {
	return current.Sync
}
