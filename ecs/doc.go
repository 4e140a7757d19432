// Package ecs provides ECS adapters for fractalview's view event stream.
//
// The primary adapter is [NewDonburiSink], which bridges fractalview view
// events (click, wheel zoom, command keys) into a [Donburi] world as typed
// events. Subscribe to [ViewEventType] in your ECS systems to receive them,
// or use [OnFractalSwitch] to react only when a number key changes the
// fractal.
//
// Usage:
//
//	world := donburi.NewWorld()
//	viewer := fractalview.NewViewer(cfg)
//	viewer.Controller().AddEventSink(ecs.NewDonburiSink(world))
//
//	ecs.OnFractalSwitch(world, func(w donburi.World, f fractalview.Fractal) {
//		log.Printf("now showing %v", f)
//	})
//
//	// once per frame, from your own systems:
//	ecs.ViewEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
