package starrating

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in an input script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// script is the top-level JSON structure of an input script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// pointerActions map the single-sample script actions onto the phase they
// inject. Cancel ignores the step's coordinates.
var pointerActions = map[string]Phase{
	"press":   PhaseDown,
	"move":    PhaseMove,
	"release": PhaseUp,
	"cancel":  PhaseCancel,
}

func validAction(action string) bool {
	if _, ok := pointerActions[action]; ok {
		return true
	}
	switch action {
	case "tap", "drag", "wait", "snapshot":
		return true
	}
	return false
}

// ScriptRunner replays scripted pointer input through a PointerTracker,
// one step per frame, for demos and automated visual checks.
//
// Example script:
//
//	{"steps": [
//	    {"action": "tap", "x": 120, "y": 200},
//	    {"action": "wait", "frames": 10},
//	    {"action": "drag", "fromX": 60, "fromY": 200, "toX": 300, "toY": 200, "frames": 20},
//	    {"action": "snapshot", "label": "five-stars"}
//	]}
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON input script.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("starrating: parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("starrating: parse script: no steps")
	}
	for i, st := range sc.Steps {
		if !validAction(st.Action) {
			return nil, fmt.Errorf("starrating: parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// Done reports whether every step has run and all queued input drained.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step advances the script by one frame. Input steps are queued on t;
// snapshot steps call snap with their label. snap may be nil, in which case
// snapshot steps are skipped with a warning.
func (r *ScriptRunner) Step(t *PointerTracker, snap func(label string)) {
	if r.done || !r.ready(t) {
		return
	}
	if r.cursor < len(r.steps) {
		r.apply(r.steps[r.cursor], t, snap)
		r.cursor++
	}
	r.done = r.cursor == len(r.steps) && r.waitCount == 0 && t.Pending() == 0
}

// ready reports whether the next step may run this frame. Queued input must
// drain and a pending wait must elapse first.
func (r *ScriptRunner) ready(t *PointerTracker) bool {
	if t.Pending() > 0 {
		return false
	}
	if r.waitCount > 0 {
		r.waitCount--
		return false
	}
	return true
}

func (r *ScriptRunner) apply(st scriptStep, t *PointerTracker, snap func(label string)) {
	if p, ok := pointerActions[st.Action]; ok {
		t.inject(p, st.X, st.Y)
		return
	}
	switch st.Action {
	case "tap":
		t.InjectTap(st.X, st.Y)
	case "drag":
		t.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, max(st.Frames, 2))
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "snapshot":
		if snap == nil {
			Logger().Warn("starrating: snapshot step without sink", "label", st.Label)
		} else {
			snap(st.Label)
		}
	}
}
