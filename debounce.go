package fractalview

import "time"

// saveDebounce is the quiet period after the last change before a save.
const saveDebounce = 200 * time.Millisecond

// debouncer tracks whether the view changed since the last save and when the
// most recent change happened.
type debouncer struct {
	delay      time.Duration
	dirty      bool
	lastChange time.Time
}

// mark records a change at now and restarts the quiet period.
func (d *debouncer) mark(now time.Time) {
	d.dirty = true
	d.lastChange = now
}

// due reports whether a save should fire at now.
func (d *debouncer) due(now time.Time) bool {
	return d.dirty && now.Sub(d.lastChange) >= d.delay
}

// clear marks the current state as saved.
func (d *debouncer) clear() {
	d.dirty = false
}
