package render

import (
	"encoding/json"
	"fmt"

	"github.com/phanxgames/platformer"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string   `json:"action"`
	Label  string   `json:"label,omitempty"`
	X      float64  `json:"x,omitempty"`
	Y      float64  `json:"y,omitempty"`
	Keys   []string `json:"keys,omitempty"`
	Frames int      `json:"frames,omitempty"`
}

// inputScript is the top-level JSON structure of a script.
type inputScript struct {
	Steps []scriptStep `json:"steps"`
}

// Script replays input across frames in place of the keyboard and mouse,
// for demos and automated play-throughs. Attach to a Renderer via SetScript.
//
//	{"steps": [
//	  {"action": "click", "x": 640, "y": 360},
//	  {"action": "hold", "keys": ["right", "jump"], "frames": 30},
//	  {"action": "wait", "frames": 60},
//	  {"action": "screenshot", "label": "level-1"},
//	  {"action": "escape"}
//	]}
//
// Click coordinates are screen pixels with the origin at the top-left.
type Script struct {
	steps      []scriptStep
	cursor     int
	held       platformer.Intent
	holdFrames int
	waitCount  int
	done       bool
}

// LoadScript parses a JSON input script.
func LoadScript(jsonData []byte) (*Script, error) {
	var script inputScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "click", "escape", "wait", "screenshot":
		case "hold":
			if _, err := keysIntent(st.Keys); err != nil {
				return nil, fmt.Errorf("parse input script: step %d: %w", i, err)
			}
		default:
			return nil, fmt.Errorf("parse input script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: script.Steps}, nil
}

// Done reports whether all steps of the script have been executed.
func (s *Script) Done() bool {
	return s.done
}

// keysIntent maps key names to the intent they hold down.
func keysIntent(keys []string) (platformer.Intent, error) {
	var in platformer.Intent
	for _, k := range keys {
		switch k {
		case "left":
			in.Left = true
		case "right":
			in.Right = true
		case "jump":
			in.Jump = true
		default:
			return in, fmt.Errorf("unknown key %q", k)
		}
	}
	return in, nil
}

// next advances the script by one frame. It returns the intent of the frame,
// appends the click points to clicks and returns the screenshot labels to
// capture after the frame is drawn.
func (s *Script) next(clicks [][2]int) (platformer.Intent, [][2]int, []string) {
	var (
		in    platformer.Intent
		shots []string
	)
	switch {
	case s.done:
		return in, clicks, nil
	case s.holdFrames > 0:
		s.holdFrames--
		in = s.held
	case s.waitCount > 0:
		s.waitCount--
	case s.cursor >= len(s.steps):
		s.done = true
		return in, clicks, nil
	default:
		st := s.steps[s.cursor]
		s.cursor++

		switch st.Action {
		case "click":
			clicks = append(clicks, [2]int{int(st.X), int(st.Y)})
		case "hold":
			s.held, _ = keysIntent(st.Keys)
			in = s.held
			if st.Frames > 1 {
				s.holdFrames = st.Frames - 1 // this frame counts as one
			}
		case "escape":
			in.Pause = true
		case "wait":
			if st.Frames > 0 {
				s.waitCount = st.Frames - 1
			}
		case "screenshot":
			shots = append(shots, st.Label)
		}
	}

	if s.cursor >= len(s.steps) && s.waitCount == 0 && s.holdFrames == 0 {
		s.done = true
	}
	return in, clicks, shots
}
