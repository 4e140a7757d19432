package fractalview

// syntheticInput is one injected frame of input: a discrete event, a held
// zoom state, or both.
type syntheticInput struct {
	event *Event
	hold  ZoomHold
}

// InjectClick queues a left click at the given pixel. The event is consumed on
// the next Update.
func (v *Viewer) InjectClick(x, y int) {
	v.injectEvent(Event{Type: EventClick, X: x, Y: y})
}

// InjectWheel queues a vertical wheel scroll of delta at the given pixel.
// Positive delta zooms in.
func (v *Viewer) InjectWheel(x, y int, delta float64) {
	v.injectEvent(Event{Type: EventWheel, X: x, Y: y, Delta: delta})
}

// InjectKey queues a command key press.
func (v *Viewer) InjectKey(k Key) {
	v.injectEvent(Event{Type: EventKey, Key: k})
}

// InjectHold queues frames frames during which the zoom keys in hold are held
// down. Continuous zoom still steps at most once per tick interval, so the
// number of steps depends on elapsed time, not on frames.
func (v *Viewer) InjectHold(hold ZoomHold, frames int) {
	for i := 0; i < frames; i++ {
		v.injectQueue = append(v.injectQueue, syntheticInput{hold: hold})
	}
}

func (v *Viewer) injectEvent(ev Event) {
	v.injectQueue = append(v.injectQueue, syntheticInput{event: &ev})
}

// processInjectedInput pops one entry from the inject queue and converts it to
// a frameInput. Returns false if the queue is empty, in which case real input
// should be polled instead.
func (v *Viewer) processInjectedInput() (frameInput, bool) {
	if len(v.injectQueue) == 0 {
		return frameInput{}, false
	}
	in := v.injectQueue[0]
	copy(v.injectQueue, v.injectQueue[1:])
	v.injectQueue = v.injectQueue[:len(v.injectQueue)-1]

	fi := frameInput{hold: in.hold}
	if in.event != nil {
		fi.events = append(v.eventBuf[:0], *in.event)
	}
	return fi, true
}
