// Package ui provides shared UI constants and utilities.
package ui

// Layout constants of the preview screen, top to bottom.
const (
	// HeaderHeight is the title line above the video surface.
	HeaderHeight = 1

	// BorderHeight is the vertical space consumed by a standard panel border.
	BorderHeight = 2

	// FooterHeight is the key hints line plus the status line.
	FooterHeight = 2

	// MinSurfaceHeight is the smallest video surface, border included.
	MinSurfaceHeight = BorderHeight + 1
)
