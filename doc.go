// Package fractalview is an interactive fractal viewer for [Ebitengine].
//
// It renders one of five fractals into a fixed-size RGBA buffer on the CPU,
// presents it in a window, and lets the user pan and zoom the complex-plane
// view. The view (center, width, fractal) is saved to a settings file and
// restored on the next start.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	cfg := fractalview.DefaultConfig()
//	if err := fractalview.Run(cfg); err != nil {
//		log.Fatal(err)
//	}
//
// # Controls
//
//   - Left click recenters the view on the clicked point.
//   - The mouse wheel zooms about the cursor by 0.98 per wheel unit.
//   - Holding + or - zooms about the center, one step every 50 ms.
//   - Keys 1-5 select Mandelbrot, Sierpinski, Koch, Menger, and Dragon.
//   - R resets the view to the initial bounds.
//
// # Fractals
//
// [Mandelbrot] is an escape-time render with a blue ramp. [Sierpinski] plays
// the chaos game with a seeded generator. [Koch] subdivides a single segment
// to depth 6. [Menger] is a 2D carpet that ignores the view. [Dragon] expands
// a 12-generation L-system whose step is fixed in world units, so the curve
// zooms with the view.
//
// # Rendering without a window
//
// [Renderer] draws into any *image.RGBA and [RenderPNG] writes the saved view
// to a file. [Controller] applies events and owns persistence without
// touching Ebitengine, which makes it suitable for tests and tools.
//
// # Scripted input
//
// [LoadTestScript] parses a JSON script of clicks, wheel scrolls, key presses,
// held zoom keys, waits, and screenshots. Attach it with
// [Viewer.SetTestRunner]. Individual events can also be queued with
// [Viewer.InjectClick], [Viewer.InjectWheel], [Viewer.InjectKey], and
// [Viewer.InjectHold].
//
// # Events
//
// Every applied input is reported to registered [EventSink]s as a
// [ViewEvent]. The click log is one such sink; the ecs subpackage publishes
// events into a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package fractalview
