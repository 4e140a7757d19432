package fractalview

import (
	"os"
	"path/filepath"
	"runtime"
)

// Config holds everything needed to start a Viewer.
type Config struct {
	// Title is the window title.
	Title string
	// Width and Height are the window and raster size in pixels.
	Width, Height int
	// MaxIter bounds the Mandelbrot escape-time loop.
	MaxIter int

	// DataDir holds the settings file, click log, and debug PNGs unless the
	// individual paths below are set.
	DataDir      string
	SettingsPath string
	ClickLogPath string
	PNGDir       string

	// FontPaths are TTF candidates for the overlay, tried in order.
	FontPaths []string
	FontSize  float64
	// BuiltinFontFallback uses the embedded Go Regular face when no
	// candidate loads. When false, a failed load disables the overlay.
	BuiltinFontFallback bool

	// ShowFPS draws an FPS/TPS readout in the bottom-left corner.
	ShowFPS bool
	// Debug prints per-render stats and swallowed errors to stderr.
	Debug bool
	// Seed seeds the Sierpinski chaos game.
	Seed uint64
}

// DefaultConfig returns the standard 640×480 viewer configuration with data
// stored under the user config directory.
func DefaultConfig() Config {
	return Config{
		Title:     "Mandelbrot Fractal",
		Width:     ScreenWidth,
		Height:    ScreenHeight,
		MaxIter:   MaxIter,
		DataDir:   defaultDataDir(),
		FontPaths: defaultFontPaths(),
		FontSize:  14,
		Seed:      1,
	}
}

// resolve fills zero fields with defaults and derives file paths from
// DataDir.
func (c Config) resolve() Config {
	if c.Title == "" {
		c.Title = "Mandelbrot Fractal"
	}
	if c.Width <= 1 {
		c.Width = ScreenWidth
	}
	if c.Height <= 1 {
		c.Height = ScreenHeight
	}
	if c.MaxIter <= 0 {
		c.MaxIter = MaxIter
	}
	if c.DataDir == "" {
		c.DataDir = "."
	}
	if c.SettingsPath == "" {
		c.SettingsPath = filepath.Join(c.DataDir, "fractal_settings.txt")
	}
	if c.ClickLogPath == "" {
		c.ClickLogPath = filepath.Join(c.DataDir, "clicks.log")
	}
	if c.PNGDir == "" {
		c.PNGDir = c.DataDir
	}
	if c.FontSize <= 0 {
		c.FontSize = 14
	}
	return c
}

// defaultDataDir is <user config dir>/fractalview, or the working directory
// when the platform has no config directory.
func defaultDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, "fractalview")
}

// defaultFontPaths returns a platform system font followed by a local
// arial.ttf.
func defaultFontPaths() []string {
	var system string
	switch runtime.GOOS {
	case "windows":
		system = "C:/Windows/Fonts/arial.ttf"
	case "darwin":
		system = "/System/Library/Fonts/Supplemental/Arial.ttf"
	default:
		system = "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf"
	}
	return []string{system, "arial.ttf"}
}
