// Command fractalview opens the interactive fractal viewer.
//
// Left click recenters, the wheel zooms about the cursor, held +/- zoom about
// the center, 1-5 select a fractal, and R resets the view. The view is saved
// to the data directory and restored on the next start.
package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/phanxgames/fractalview"
)

func main() {
	cfg := fractalview.DefaultConfig()
	var (
		dataDir  = flag.String("data", cfg.DataDir, "directory for settings, click log, and PNGs")
		settings = flag.String("settings", "", "settings file (default <data>/fractal_settings.txt)")
		fonts    = flag.String("fonts", strings.Join(cfg.FontPaths, ","), "comma-separated overlay font candidates")
		builtin  = flag.Bool("builtin-font", false, "fall back to the embedded Go font when no candidate loads")
		showFPS  = flag.Bool("fps", false, "show FPS/TPS readout")
		debug    = flag.Bool("debug", false, "print render diagnostics to stderr")
		seed     = flag.Uint64("seed", cfg.Seed, "chaos game seed")
		maxIter  = flag.Int("iter", cfg.MaxIter, "Mandelbrot iteration limit")
		script   = flag.String("script", "", "JSON input script to play back")
		render   = flag.String("render", "", "render the saved view to this PNG and exit")
	)
	flag.Parse()

	cfg.DataDir = *dataDir
	cfg.SettingsPath = *settings
	cfg.FontPaths = splitList(*fonts)
	cfg.BuiltinFontFallback = *builtin
	cfg.ShowFPS = *showFPS
	cfg.Debug = *debug
	cfg.Seed = *seed
	cfg.MaxIter = *maxIter

	if *render != "" {
		stats, err := fractalview.RenderPNG(cfg, *render)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("%s saved to %s", stats.Fractal, *render)
		return
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	viewer := fractalview.NewViewer(cfg)
	if *script != "" {
		data, err := os.ReadFile(*script)
		if err != nil {
			log.Fatal(err)
		}
		runner, err := fractalview.LoadTestScript(data)
		if err != nil {
			log.Fatal(err)
		}
		viewer.SetTestRunner(runner)
	}

	if err := viewer.Run(); err != nil {
		log.Fatal(err)
	}
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
