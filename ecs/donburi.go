// Package ecs provides ECS adapters for fractalview.
package ecs

import (
	"github.com/phanxgames/fractalview"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ViewEventType is the Donburi event type for fractalview view events.
// Subscribe to this in your ECS systems to receive clicks, zooms, and
// fractal switches.
var ViewEventType = events.NewEventType[fractalview.ViewEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// View events are published to ViewEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) fractalview.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event fractalview.ViewEvent) {
	ViewEventType.Publish(s.world, event)
}

// OnFractalSwitch subscribes fn to number-key fractal selections published to
// world. Clicks, zooms, and resets are filtered out; fn receives the fractal
// now on screen.
func OnFractalSwitch(world donburi.World, fn func(w donburi.World, f fractalview.Fractal)) {
	ViewEventType.Subscribe(world, func(w donburi.World, e fractalview.ViewEvent) {
		if e.Type == fractalview.EventKey && e.Key >= fractalview.Key1 && e.Key <= fractalview.Key5 {
			fn(w, e.Fractal)
		}
	})
}
