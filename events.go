package fractalview

// EventSink receives a ViewEvent after every input the Controller applies.
// Sinks run synchronously on the frame loop and must not block.
type EventSink interface {
	EmitEvent(event ViewEvent)
}

// ViewEvent describes an applied input and the view it produced.
type ViewEvent struct {
	Type EventType
	// PixelX and PixelY are the input position (click and wheel only).
	PixelX, PixelY int
	// Real and Imag are the complex coordinate under the input position
	// before the change was applied.
	Real, Imag float64
	// Delta is the wheel delta (wheel only).
	Delta float64
	// Key is the command key (key only).
	Key Key
	// Fractal and Bounds are the view after the change.
	Fractal Fractal
	Bounds  Bounds
}

// AddEventSink registers a sink. The click log is registered by
// NewController; additional sinks receive events after it.
func (c *Controller) AddEventSink(sink EventSink) {
	if sink == nil {
		return
	}
	c.sinks = append(c.sinks, sink)
}

// emitEvent forwards ev to every registered sink.
func (c *Controller) emitEvent(ev ViewEvent) {
	for _, s := range c.sinks {
		s.EmitEvent(ev)
	}
}
