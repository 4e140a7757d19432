package fractalview

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Settings is the persisted view: center, real-axis width, and fractal.
// The imaginary span is not stored; it is rebuilt from the raster aspect.
type Settings struct {
	CenterReal float64
	CenterImag float64
	Width      float64
	Fractal    Fractal
}

// Settings file keys, in write order.
const (
	keyCenterReal = "centerReal"
	keyCenterImag = "centerImag"
	keyWidth      = "width"
	keyFractal    = "fractal"
)

// settingsPrecision is the number of significant digits written per double.
const settingsPrecision = 15

// ReadSettings parses key=value lines from r into s. Unknown keys, lines
// without '=', and values that fail to parse are skipped, leaving the
// corresponding field of s unchanged. Lines have no length limit. Only read
// errors are returned.
func ReadSettings(r io.Reader, s *Settings) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			readSettingsLine(line, s)
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("fractalview: read settings: %w", err)
		}
	}
}

// readSettingsLine applies one key=value line to s.
func readSettingsLine(line string, s *Settings) {
	key, val, ok := strings.Cut(line, "=")
	if !ok {
		return
	}
	key = strings.TrimSpace(key)
	val = strings.TrimSpace(val)

	switch key {
	case keyCenterReal:
		if v, err := strconv.ParseFloat(val, 64); err == nil {
			s.CenterReal = v
		}
	case keyCenterImag:
		if v, err := strconv.ParseFloat(val, 64); err == nil {
			s.CenterImag = v
		}
	case keyWidth:
		if v, err := strconv.ParseFloat(val, 64); err == nil {
			s.Width = v
		}
	case keyFractal:
		if v, err := strconv.Atoi(val); err == nil && v >= int(Mandelbrot) && v <= int(Dragon) {
			s.Fractal = Fractal(v)
		}
	}
}

// WriteSettings writes s as four key=value lines in a fixed order, doubles
// with 15 significant digits.
func WriteSettings(w io.Writer, s Settings) error {
	var b bytes.Buffer
	writeFloat := func(key string, v float64) {
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(strconv.FormatFloat(v, 'g', settingsPrecision, 64))
		b.WriteByte('\n')
	}
	writeFloat(keyCenterReal, s.CenterReal)
	writeFloat(keyCenterImag, s.CenterImag)
	writeFloat(keyWidth, s.Width)
	b.WriteString(keyFractal)
	b.WriteByte('=')
	b.WriteString(strconv.Itoa(int(s.Fractal)))
	b.WriteByte('\n')

	if _, err := w.Write(b.Bytes()); err != nil {
		return fmt.Errorf("fractalview: write settings: %w", err)
	}
	return nil
}

// LoadSettings reads the settings file at path into s. A missing file returns
// an error wrapping os.ErrNotExist and leaves s unchanged.
func LoadSettings(path string, s *Settings) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("fractalview: load settings: %w", err)
	}
	defer f.Close()
	return ReadSettings(f, s)
}

// SaveSettings rewrites the settings file at path in full. The data goes to a
// temporary file in the same directory that is then renamed over path.
func SaveSettings(path string, s Settings) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("fractalview: save settings: mkdir %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("fractalview: save settings: %w", err)
	}
	tmpName := tmp.Name()
	if err := WriteSettings(tmp, s); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("fractalview: save settings: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("fractalview: save settings: %w", err)
	}
	return nil
}
