package fractalview

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// DebugPNGPath returns the snapshot path written when fractal f is selected.
func DebugPNGPath(dir string, f Fractal) string {
	return filepath.Join(dir, fmt.Sprintf("debug_fractal_%d.png", int(f)))
}

// SaveDebugPNG writes the raw render buffer to dir/debug_fractal_<N>.png,
// replacing any previous file.
func SaveDebugPNG(dir string, f Fractal, img image.Image) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return writePNG(DebugPNGPath(dir, f), img)
}

// Screenshot queues a labeled capture of the composed frame (fractal plus
// overlay) at the end of the next Draw. The PNG is written to the configured
// PNG directory with a timestamped filename.
func (v *Viewer) Screenshot(label string) {
	v.screenshotQueue = append(v.screenshotQueue, label)
}

// flushScreenshots captures the rendered frame for every queued label and
// writes each as a PNG file. Called at the end of Viewer.Draw.
func (v *Viewer) flushScreenshots(screen *ebiten.Image) {
	if len(v.screenshotQueue) == 0 {
		return
	}
	dir := v.cfg.PNGDir

	if err := os.MkdirAll(dir, 0o755); err != nil {
		debugf(v.cfg.Debug, "screenshot: mkdir %s: %v", dir, err)
		v.screenshotQueue = v.screenshotQueue[:0]
		return
	}

	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	// The frame is fully opaque, so premultiplied and straight alpha agree.
	screen.ReadPixels(img.Pix)

	stamp := time.Now().Format("20060102_150405")

	for _, label := range v.screenshotQueue {
		path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
		if err := writePNG(path, img); err != nil {
			debugf(v.cfg.Debug, "screenshot: %v", err)
		}
	}

	v.screenshotQueue = v.screenshotQueue[:0]
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
