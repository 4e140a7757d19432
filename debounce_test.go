package fractalview

import (
	"testing"
	"time"
)

func TestDebouncer(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	d := debouncer{delay: saveDebounce}

	if d.due(t0.Add(time.Hour)) {
		t.Error("clean debouncer reported due")
	}

	d.mark(t0)
	if d.due(t0.Add(199 * time.Millisecond)) {
		t.Error("due before quiet period elapsed")
	}
	if !d.due(t0.Add(200 * time.Millisecond)) {
		t.Error("not due after quiet period")
	}

	// A new change restarts the quiet period.
	d.mark(t0.Add(150 * time.Millisecond))
	if d.due(t0.Add(300 * time.Millisecond)) {
		t.Error("due before restarted quiet period elapsed")
	}
	if !d.due(t0.Add(350 * time.Millisecond)) {
		t.Error("not due after restarted quiet period")
	}

	d.clear()
	if d.due(t0.Add(time.Hour)) {
		t.Error("cleared debouncer reported due")
	}
}
