package fractalview

import (
	"fmt"
	"os"
)

// ClickLog appends one line per click to a text file. The file is opened,
// written, and closed for every click. Write failures are dropped.
type ClickLog struct {
	Path string
	// Debug reports write failures to stderr.
	Debug bool
}

// NewClickLog returns a ClickLog writing to path.
func NewClickLog(path string) *ClickLog {
	return &ClickLog{Path: path}
}

// EmitEvent implements EventSink. Only click events are logged.
func (l *ClickLog) EmitEvent(ev ViewEvent) {
	if ev.Type != EventClick {
		return
	}
	if err := l.Append(formatClick(ev)); err != nil {
		debugf(l.Debug, "click log: %v", err)
	}
}

// Append writes line plus a newline to the end of the log file.
func (l *ClickLog) Append(line string) error {
	f, err := os.OpenFile(l.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", l.Path, err)
	}
	if _, err := fmt.Fprintln(f, line); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", l.Path, err)
	}
	return f.Close()
}

// formatClick renders a click as
// "MouseClick px=(X,Y) -> complex=(R,I) bounds=[rMin,rMax,iMin,iMax]".
func formatClick(ev ViewEvent) string {
	b := ev.Bounds
	return fmt.Sprintf("MouseClick px=(%d,%d) -> complex=(%.6g,%.6g) bounds=[%.6g,%.6g,%.6g,%.6g]",
		ev.PixelX, ev.PixelY, ev.Real, ev.Imag, b.RMin, b.RMax, b.IMin, b.IMax)
}
