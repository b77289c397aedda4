package sprig

import (
	"encoding/json"
	"fmt"
	"log"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

type inputScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences injected input across frames, for headless runs
// and automated checks. Attach it to a Scene via SetScriptRunner.
//
// Actions:
//
//	click      {x, y}    press and release at screen coordinates
//	press      {label}   click the center of the node named label
//	wait       {frames}  idle for the given number of frames
//	dump       {}        log the HUD tree with its layout boxes
//	screenshot {label}   capture the next drawn frame
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON input script.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var script inputScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "click", "press", "wait", "dump", "screenshot":
		default:
			return nil, fmt.Errorf("parse input script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// SetScriptRunner attaches r to the scene. Its step method runs every
// Scene.Update, after HUD layout and before input processing.
func (s *Scene) SetScriptRunner(r *ScriptRunner) {
	s.script = r
}

// Done reports whether all steps have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame.
func (r *ScriptRunner) step(s *Scene) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(s.input.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		if r.waitCount == 0 && r.cursor >= len(r.steps) {
			r.done = true
		}
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "click":
		s.InjectClick(st.X, st.Y)
	case "press":
		n := s.hud.FindByName(st.Label)
		if n == nil {
			n = s.root.FindByName(st.Label)
		}
		if n == nil {
			log.Printf("sprig: script step %d: no node named %q", r.cursor-1, st.Label)
			break
		}
		s.ClickNode(n)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "screenshot":
		s.Screenshot(st.Label)
	case "dump":
		log.Printf("sprig: hud tree\n%s", DumpTree(s.hud))
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.input.injectQueue) == 0 {
		r.done = true
	}
}
