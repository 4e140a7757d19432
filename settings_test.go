package fractalview

import (
	"bytes"
	"errors"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteSettingsFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSettings(&buf, Settings{CenterReal: -0.75, CenterImag: 0, Width: 3.5, Fractal: Mandelbrot}); err != nil {
		t.Fatal(err)
	}
	want := "centerReal=-0.75\ncenterImag=0\nwidth=3.5\nfractal=1\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		s    Settings
	}{
		{"initial", Settings{CenterReal: -0.75, CenterImag: 0, Width: 3.5, Fractal: Mandelbrot}},
		{"fifteen digits", Settings{CenterReal: -0.743643887037151, CenterImag: 0.131825904205330, Width: 1.23456789012345e-5, Fractal: Dragon}},
		{"deep", Settings{CenterReal: 0.25, CenterImag: -1e-3, Width: 1e-10, Fractal: Menger}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteSettings(&buf, tt.s); err != nil {
				t.Fatal(err)
			}
			var got Settings
			if err := ReadSettings(bytes.NewReader(buf.Bytes()), &got); err != nil {
				t.Fatal(err)
			}
			if got != tt.s {
				t.Errorf("got %+v, want %+v", got, tt.s)
			}
		})
	}
}

func TestSettingsByteStable(t *testing.T) {
	// 3.5 * 0.98^20 carries more than 15 significant digits; after one
	// write/read cycle the text no longer changes.
	s := Settings{CenterReal: -0.75 + 1.0/3, CenterImag: math.Pi / 100, Width: 3.5 * math.Pow(0.98, 20), Fractal: Koch}

	var first bytes.Buffer
	WriteSettings(&first, s)
	var loaded Settings
	ReadSettings(bytes.NewReader(first.Bytes()), &loaded)
	var second bytes.Buffer
	WriteSettings(&second, loaded)

	if first.String() != second.String() {
		t.Errorf("rewrite changed text:\n%s\n%s", first.String(), second.String())
	}
	if math.Abs(loaded.Width-s.Width) > 1e-12 {
		t.Errorf("width drifted: %v vs %v", loaded.Width, s.Width)
	}
}

func TestReadSettingsTolerance(t *testing.T) {
	input := strings.Join([]string{
		"# comment without equals",
		"fractal = 3",
		"unknown=42",
		"width=not-a-number",
		"centerImag=0.5",
		"",
		"centerReal = -1.25 ",
		"fractal=9",
	}, "\n")

	s := Settings{Width: 2, Fractal: Mandelbrot}
	if err := ReadSettings(strings.NewReader(input), &s); err != nil {
		t.Fatal(err)
	}
	want := Settings{CenterReal: -1.25, CenterImag: 0.5, Width: 2, Fractal: Koch}
	if s != want {
		t.Errorf("got %+v, want %+v", s, want)
	}
}

func TestReadSettingsLongLine(t *testing.T) {
	input := "centerReal=0.3\ncenterImag=-0.2\nnote=" + strings.Repeat("x", 70000) +
		"\nwidth=0.01\r\nfractal=3"

	var s Settings
	if err := ReadSettings(strings.NewReader(input), &s); err != nil {
		t.Fatalf("ReadSettings: %v", err)
	}
	want := Settings{CenterReal: 0.3, CenterImag: -0.2, Width: 0.01, Fractal: Koch}
	if s != want {
		t.Errorf("got %+v, want %+v", s, want)
	}
}

func TestSaveLoadSettings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "fractal_settings.txt")
	s := Settings{CenterReal: 0.3, CenterImag: -0.2, Width: 0.125, Fractal: Sierpinski}

	if err := SaveSettings(path, s); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}
	var got Settings
	if err := LoadSettings(path, &got); err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if got != s {
		t.Errorf("got %+v, want %+v", got, s)
	}

	// Overwrites in place and leaves no temporary files behind.
	s.Width = 0.0625
	if err := SaveSettings(path, s); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want 1", len(entries))
	}

	v := NewView(ScreenWidth, ScreenHeight)
	LoadSettings(path, &got)
	v.ApplySettings(got)
	if math.Abs(v.Width()-s.Width) >= 1e-12 {
		t.Errorf("reconstructed width = %v, want %v", v.Width(), s.Width)
	}
}

func TestLoadSettingsMissing(t *testing.T) {
	s := Settings{Width: 7}
	err := LoadSettings(filepath.Join(t.TempDir(), "missing.txt"), &s)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("err = %v, want ErrNotExist", err)
	}
	if s.Width != 7 {
		t.Error("settings modified on failed load")
	}
}
