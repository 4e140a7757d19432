package fractalview

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func testConfig(t *testing.T) Config {
	t.Helper()
	cfg := DefaultConfig()
	cfg.DataDir = t.TempDir()
	cfg.Width = 64
	cfg.Height = 48
	cfg.FontPaths = nil
	return cfg
}

func newTestController(t *testing.T, cfg Config) (*Controller, *fakeClock) {
	t.Helper()
	clk := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	return newController(cfg, clk.now), clk
}

type recordingSink struct {
	events []ViewEvent
}

func (s *recordingSink) EmitEvent(ev ViewEvent) { s.events = append(s.events, ev) }

func TestControllerStartupWithoutSettings(t *testing.T) {
	cfg := testConfig(t)
	c, _ := newTestController(t, cfg)

	if c.View().Bounds != InitialBounds {
		t.Errorf("Bounds = %v, want %v", c.View().Bounds, InitialBounds)
	}
	if c.View().Fractal != Mandelbrot {
		t.Errorf("Fractal = %v, want Mandelbrot", c.View().Fractal)
	}
	data, err := os.ReadFile(filepath.Join(cfg.DataDir, "fractal_settings.txt"))
	if err != nil {
		t.Fatalf("settings file not created: %v", err)
	}
	if !strings.Contains(string(data), "width=3.5\n") {
		t.Errorf("settings file = %q, want width=3.5", data)
	}
	if c.Dirty() {
		t.Error("fresh controller is dirty")
	}
	if !c.TakeImageDirty() {
		t.Error("first render not flagged for upload")
	}
	if c.TakeImageDirty() {
		t.Error("image dirty flag not cleared")
	}
}

func TestControllerRestoresSettings(t *testing.T) {
	cfg := testConfig(t)
	s := Settings{CenterReal: -0.5, CenterImag: 0.1, Width: 1, Fractal: Koch}
	if err := SaveSettings(filepath.Join(cfg.DataDir, "fractal_settings.txt"), s); err != nil {
		t.Fatal(err)
	}

	c, _ := newTestController(t, cfg)
	v := c.View()
	if v.Fractal != Koch {
		t.Errorf("Fractal = %v, want Koch", v.Fractal)
	}
	if !approxEqual(v.Width(), 1, 1e-12) || !approxEqual(v.Height(), 0.75, 1e-12) {
		t.Errorf("spans = (%v, %v), want (1, 0.75)", v.Width(), v.Height())
	}
	if cr, ci := v.Center(); !approxEqual(cr, -0.5, epsilon) || !approxEqual(ci, 0.1, epsilon) {
		t.Errorf("Center = (%v, %v), want (-0.5, 0.1)", cr, ci)
	}
	if c.LastStats().Fractal != Koch {
		t.Errorf("first render was %v, want Koch", c.LastStats().Fractal)
	}
}

func TestControllerRejectsBadWidth(t *testing.T) {
	cfg := testConfig(t)
	path := filepath.Join(cfg.DataDir, "fractal_settings.txt")
	if err := os.WriteFile(path, []byte("centerReal=1\ncenterImag=1\nwidth=0\nfractal=5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	c, _ := newTestController(t, cfg)
	if c.View().Bounds != InitialBounds {
		t.Errorf("Bounds = %v, want %v", c.View().Bounds, InitialBounds)
	}
	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "width=3.5\n") {
		t.Errorf("settings not rewritten: %q", data)
	}
}

func TestControllerRejectsNonFiniteCenter(t *testing.T) {
	for _, content := range []string{
		"centerReal=NaN\ncenterImag=0\nwidth=1\nfractal=3\n",
		"centerReal=0\ncenterImag=-Inf\nwidth=1\nfractal=3\n",
	} {
		cfg := testConfig(t)
		path := filepath.Join(cfg.DataDir, "fractal_settings.txt")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}

		c, _ := newTestController(t, cfg)
		if c.View().Bounds != InitialBounds {
			t.Errorf("%q: Bounds = %v, want %v", content, c.View().Bounds, InitialBounds)
		}
		data, _ := os.ReadFile(path)
		if !strings.Contains(string(data), "centerReal=-0.75\ncenterImag=0\nwidth=3.5\n") {
			t.Errorf("%q: settings not rewritten: %q", content, data)
		}
	}
}

func TestControllerKeepsSettingsWithLongLine(t *testing.T) {
	cfg := testConfig(t)
	path := filepath.Join(cfg.DataDir, "fractal_settings.txt")
	content := "centerReal=0.3\ncenterImag=-0.2\nwidth=0.01\nfractal=3\nnote=" + strings.Repeat("x", 70000) + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	c, _ := newTestController(t, cfg)
	v := c.View()
	if v.Fractal != Koch {
		t.Errorf("Fractal = %v, want Koch", v.Fractal)
	}
	if !approxEqual(v.Width(), 0.01, 1e-12) {
		t.Errorf("Width = %v, want 0.01", v.Width())
	}
	data, _ := os.ReadFile(path)
	if string(data) != content {
		t.Error("settings file was rewritten")
	}
}

func TestControllerHeldZoomTicks(t *testing.T) {
	c, clk := newTestController(t, testConfig(t))
	w0 := c.View().Width()
	cr0, ci0 := c.View().Center()

	ticks := 0
	hold := ZoomHold{In: true}
	for i := 0; i < 1000; i++ {
		clk.advance(time.Millisecond)
		if c.Tick(hold) {
			ticks++
		}
	}
	if ticks != 20 {
		t.Errorf("ticks = %d, want 20", ticks)
	}
	if want := w0 * math.Pow(0.98, 20); !approxEqual(c.View().Width(), want, 1e-12) {
		t.Errorf("Width = %v, want %v", c.View().Width(), want)
	}
	if cr, ci := c.View().Center(); !approxEqual(cr, cr0, epsilon) || !approxEqual(ci, ci0, epsilon) {
		t.Errorf("Center moved to (%v, %v)", cr, ci)
	}
	if !c.Dirty() {
		t.Error("zoom did not mark the view dirty")
	}
}

func TestControllerHeldZoomBothKeys(t *testing.T) {
	c, clk := newTestController(t, testConfig(t))
	w0 := c.View().Width()
	c.TakeImageDirty()

	clk.advance(zoomTickInterval)
	if !c.Tick(ZoomHold{In: true, Out: true}) {
		t.Fatal("tick did not fire with both keys held")
	}
	if !approxEqual(c.View().Width(), w0, epsilon) {
		t.Errorf("Width = %v, want %v", c.View().Width(), w0)
	}
	if !c.TakeImageDirty() {
		t.Error("tick did not re-render")
	}
}

func TestControllerTickIdle(t *testing.T) {
	c, clk := newTestController(t, testConfig(t))
	clk.advance(10 * time.Second)
	if c.Tick(ZoomHold{}) {
		t.Error("tick fired with no key held")
	}
	// The interval is measured from the last applied step, so the first
	// held frame after a long idle steps immediately.
	if !c.Tick(ZoomHold{Out: true}) {
		t.Error("tick did not fire after idle")
	}
	if c.Tick(ZoomHold{Out: true}) {
		t.Error("second tick fired without time passing")
	}
}

func TestControllerDebouncedSave(t *testing.T) {
	cfg := testConfig(t)
	c, clk := newTestController(t, cfg)
	path := filepath.Join(cfg.DataDir, "fractal_settings.txt")

	c.Handle(Event{Type: EventClick, X: 10, Y: 10})
	if !c.Dirty() {
		t.Fatal("click did not mark the view dirty")
	}

	clk.advance(100 * time.Millisecond)
	if c.FlushSave() {
		t.Error("saved before the quiet period elapsed")
	}
	clk.advance(100 * time.Millisecond)
	if !c.FlushSave() {
		t.Fatal("did not save after the quiet period")
	}
	if c.Dirty() {
		t.Error("still dirty after save")
	}

	var s Settings
	if err := LoadSettings(path, &s); err != nil {
		t.Fatal(err)
	}
	cr, ci := c.View().Center()
	if !approxEqual(s.CenterReal, cr, 1e-12) || !approxEqual(s.CenterImag, ci, 1e-12) {
		t.Errorf("saved center = (%v, %v), want (%v, %v)", s.CenterReal, s.CenterImag, cr, ci)
	}
}

func TestControllerCloseSavesPending(t *testing.T) {
	cfg := testConfig(t)
	c, _ := newTestController(t, cfg)
	path := filepath.Join(cfg.DataDir, "fractal_settings.txt")

	// Clean: Close must not write.
	os.Remove(path)
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Close wrote settings with no pending change")
	}

	c.Handle(Event{Type: EventKey, Key: Key5})
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}
	var s Settings
	if err := LoadSettings(path, &s); err != nil {
		t.Fatal(err)
	}
	if s.Fractal != Dragon {
		t.Errorf("saved fractal = %v, want Dragon", s.Fractal)
	}
}

func TestControllerClickLog(t *testing.T) {
	cfg := testConfig(t)
	c, _ := newTestController(t, cfg)

	c.Handle(Event{Type: EventClick, X: 10, Y: 20})
	c.Handle(Event{Type: EventWheel, X: 10, Y: 20, Delta: 1})
	c.Handle(Event{Type: EventClick, X: 30, Y: 40})

	data, err := os.ReadFile(filepath.Join(cfg.DataDir, "clicks.log"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("log has %d lines, want 2: %q", len(lines), data)
	}
	if !strings.HasPrefix(lines[0], "MouseClick px=(10,20) -> complex=(") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "MouseClick px=(30,40) -> complex=(") {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestControllerFractalKeys(t *testing.T) {
	cfg := testConfig(t)
	c, _ := newTestController(t, cfg)

	for k := Key1; k <= Key5; k++ {
		c.Handle(Event{Type: EventKey, Key: k})
		want := Fractal(k)
		if c.View().Fractal != want {
			t.Errorf("key %d selected %v, want %v", k, c.View().Fractal, want)
		}
		if c.LastStats().Fractal != want {
			t.Errorf("key %d rendered %v", k, c.LastStats().Fractal)
		}
		if _, err := os.Stat(DebugPNGPath(cfg.DataDir, want)); err != nil {
			t.Errorf("debug PNG for %v: %v", want, err)
		}
	}
}

func TestControllerMengerIgnoresClicks(t *testing.T) {
	c, _ := newTestController(t, testConfig(t))
	c.Handle(Event{Type: EventKey, Key: Key4})
	before := bytes.Clone(c.Image().Pix)

	c.Handle(Event{Type: EventClick, X: 5, Y: 40})
	if !bytes.Equal(before, c.Image().Pix) {
		t.Error("Menger image changed after a click")
	}
	if c.View().Bounds == InitialBounds {
		t.Error("click did not move the view")
	}
}

func TestControllerReset(t *testing.T) {
	c, _ := newTestController(t, testConfig(t))
	c.Handle(Event{Type: EventKey, Key: Key3})
	c.Handle(Event{Type: EventWheel, X: 5, Y: 5, Delta: 4})
	c.Handle(Event{Type: EventKey, Key: KeyReset})
	if c.View().Bounds != InitialBounds {
		t.Errorf("Bounds = %v, want %v", c.View().Bounds, InitialBounds)
	}
	if c.View().Fractal != Koch {
		t.Errorf("Fractal = %v, want Koch", c.View().Fractal)
	}
}

func TestControllerIgnoresNoOps(t *testing.T) {
	c, _ := newTestController(t, testConfig(t))
	sink := &recordingSink{}
	c.AddEventSink(sink)
	c.AddEventSink(nil)
	c.TakeImageDirty()

	c.Handle(Event{Type: EventWheel, X: 5, Y: 5, Delta: 0})
	c.Handle(Event{Type: EventKey, Key: KeyNone})
	if c.Dirty() || c.TakeImageDirty() {
		t.Error("no-op events changed state")
	}
	if len(sink.events) != 0 {
		t.Errorf("sink received %d events, want 0", len(sink.events))
	}
}

func TestControllerEventSink(t *testing.T) {
	c, _ := newTestController(t, testConfig(t))
	sink := &recordingSink{}
	c.AddEventSink(sink)

	r0, i0 := c.View().ScreenToWorld(20, 30)
	c.Handle(Event{Type: EventWheel, X: 20, Y: 30, Delta: 2})
	c.Handle(Event{Type: EventKey, Key: Key2})

	if len(sink.events) != 2 {
		t.Fatalf("sink received %d events, want 2", len(sink.events))
	}
	wheel := sink.events[0]
	if wheel.Type != EventWheel || wheel.Delta != 2 || wheel.PixelX != 20 || wheel.PixelY != 30 {
		t.Errorf("wheel event = %+v", wheel)
	}
	if !approxEqual(wheel.Real, r0, epsilon) || !approxEqual(wheel.Imag, i0, epsilon) {
		t.Errorf("wheel anchor = (%v, %v), want (%v, %v)", wheel.Real, wheel.Imag, r0, i0)
	}
	if wheel.Bounds != c.View().Bounds {
		t.Errorf("wheel event bounds = %v, want %v", wheel.Bounds, c.View().Bounds)
	}
	if key := sink.events[1]; key.Key != Key2 || key.Fractal != Sierpinski {
		t.Errorf("key event = %+v", key)
	}
}
