package fractalview

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFormatClick(t *testing.T) {
	ev := ViewEvent{
		Type:   EventClick,
		PixelX: 10,
		PixelY: 20,
		Real:   -0.75,
		Imag:   0.5,
		Bounds: InitialBounds,
	}
	want := "MouseClick px=(10,20) -> complex=(-0.75,0.5) bounds=[-2.5,1,-1,1]"
	if got := formatClick(ev); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	ev.Real = 0.123456789
	ev.Imag = -1.5e-9
	want = "MouseClick px=(10,20) -> complex=(0.123457,-1.5e-09) bounds=[-2.5,1,-1,1]"
	if got := formatClick(ev); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestClickLogAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clicks.log")
	l := NewClickLog(path)

	l.EmitEvent(ViewEvent{Type: EventClick, PixelX: 1, PixelY: 2, Bounds: InitialBounds})
	l.EmitEvent(ViewEvent{Type: EventWheel, PixelX: 3, PixelY: 4, Bounds: InitialBounds})
	l.EmitEvent(ViewEvent{Type: EventKey, Key: Key1})
	l.EmitEvent(ViewEvent{Type: EventClick, PixelX: 5, PixelY: 6, Bounds: InitialBounds})

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "MouseClick px=(1,2) -> complex=(0,0) bounds=[-2.5,1,-1,1]\n" +
		"MouseClick px=(5,6) -> complex=(0,0) bounds=[-2.5,1,-1,1]\n"
	if string(data) != want {
		t.Errorf("log = %q, want %q", data, want)
	}
}

func TestClickLogWriteFailureIsSilent(t *testing.T) {
	l := NewClickLog(filepath.Join(t.TempDir(), "missing", "clicks.log"))
	if err := l.Append("x"); err == nil {
		t.Error("Append into a missing directory succeeded")
	}
	out := captureStderr(t, func() {
		l.EmitEvent(ViewEvent{Type: EventClick})
	})
	if out != "" {
		t.Errorf("non-debug click log wrote %q", out)
	}
}
