package fractalview

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      int     `json:"x,omitempty"`
	Y      int     `json:"y,omitempty"`
	Delta  float64 `json:"delta,omitempty"`
	Key    string  `json:"key,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected input and screenshots across frames for
// automated visual testing. Attach to a Viewer via SetTestRunner.
//
// Supported actions: click {x,y}, wheel {x,y,delta}, key {key}, hold
// {key:"+"|"-", frames}, wait {frames}, screenshot {label}, quit.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Viewer via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("parse test script: step %d: %w", i, err)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

func (st testStep) validate() error {
	switch st.Action {
	case "screenshot", "click", "wait", "quit":
		return nil
	case "wheel":
		if st.Delta == 0 {
			return fmt.Errorf("wheel needs a non-zero delta")
		}
		return nil
	case "key":
		if ParseKey(st.Key) == KeyNone {
			return fmt.Errorf("unknown key %q", st.Key)
		}
		return nil
	case "hold":
		if _, ok := parseHold(st.Key); !ok {
			return fmt.Errorf("hold key must be %q or %q, got %q", "+", "-", st.Key)
		}
		return nil
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
}

// parseHold maps "+" and "-" to a held zoom state.
func parseHold(key string) (ZoomHold, bool) {
	switch key {
	case "+":
		return ZoomHold{In: true}, true
	case "-":
		return ZoomHold{Out: true}, true
	default:
		return ZoomHold{}, false
	}
}

// SetTestRunner attaches a TestRunner to the viewer. The runner's step method
// is called from Viewer.Update before input is read each frame.
func (v *Viewer) SetTestRunner(runner *TestRunner) {
	v.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame. Called from Viewer.Update.
func (r *TestRunner) step(v *Viewer) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(v.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		v.Screenshot(st.Label)
	case "click":
		v.InjectClick(st.X, st.Y)
	case "wheel":
		v.InjectWheel(st.X, st.Y, st.Delta)
	case "key":
		v.InjectKey(ParseKey(st.Key))
	case "hold":
		hold, _ := parseHold(st.Key)
		v.InjectHold(hold, max(st.Frames, 1))
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "quit":
		v.quit = true
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(v.injectQueue) == 0 {
		r.done = true
	}
}
