package sprig

import "testing"

func TestLoadScript(t *testing.T) {
	runner, err := LoadScript([]byte(`{
		"steps": [
			{"action": "press", "label": "btn_play"},
			{"action": "click", "x": 100, "y": 200},
			{"action": "wait", "frames": 3},
			{"action": "dump"},
			{"action": "screenshot", "label": "menu"}
		]
	}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 5 {
		t.Fatalf("expected 5 steps, got %d", len(runner.steps))
	}
	if runner.steps[1].X != 100 || runner.steps[1].Y != 200 {
		t.Error("step 1 mismatch")
	}
	if runner.steps[2].Frames != 3 {
		t.Error("step 2 mismatch")
	}
}

func TestLoadScriptErrors(t *testing.T) {
	for name, data := range map[string]string{
		"invalid json":   `not json`,
		"no steps":       `{"steps": []}`,
		"unknown action": `{"steps": [{"action": "drag"}]}`,
	} {
		if _, err := LoadScript([]byte(data)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestScriptPressClicksNamedNode(t *testing.T) {
	s := NewScene()
	s.SetViewport(200, 100)
	btn := hudButton(s, "btn_play", 50, 20)
	var clicks int
	btn.OnClick = func(PointerContext) { clicks++ }

	runner, err := LoadScript([]byte(`{"steps": [{"action": "press", "label": "btn_play"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetScriptRunner(runner)

	for i := 0; i < 5 && !runner.Done(); i++ {
		s.Update(0)
	}
	s.Update(0)
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
	if !runner.Done() {
		t.Error("runner not done")
	}
}

func TestScriptWaitCountsFrames(t *testing.T) {
	s := NewScene()
	runner, err := LoadScript([]byte(`{"steps": [{"action": "wait", "frames": 3}]}`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetScriptRunner(runner)

	frames := 0
	for !runner.Done() {
		s.Update(0)
		frames++
		if frames > 10 {
			t.Fatal("runner never finished")
		}
	}
	if frames != 3 {
		t.Errorf("frames = %d, want 3", frames)
	}
}

func TestScriptScreenshotQueues(t *testing.T) {
	s := NewScene()
	runner, _ := LoadScript([]byte(`{"steps": [{"action": "screenshot", "label": "a b"}]}`))
	s.SetScriptRunner(runner)
	s.Update(0)
	if len(s.shots) != 1 || s.shots[0] != "a b" {
		t.Errorf("shots = %v", s.shots)
	}
}

func TestFileLabel(t *testing.T) {
	for in, want := range map[string]string{
		"":           "unlabeled",
		"  menu  ":   "menu",
		"a b/c":      "a_b_c",
		"ok-name_01": "ok-name_01",
	} {
		if got := fileLabel(in); got != want {
			t.Errorf("fileLabel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestUnpremultiply(t *testing.T) {
	img := unpremultiply([]byte{64, 32, 0, 128, 10, 20, 30, 255}, 2, 1)
	if img.Pix[0] != 127 || img.Pix[1] != 63 || img.Pix[3] != 128 {
		t.Errorf("pixel 0 = %v", img.Pix[:4])
	}
	if img.Pix[4] != 10 || img.Pix[7] != 255 {
		t.Errorf("opaque pixel changed: %v", img.Pix[4:])
	}
}
