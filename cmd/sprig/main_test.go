package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseOptionsDefaults(t *testing.T) {
	t.Setenv("SPRIG_WIDTH", "")
	o, err := parseOptions(nil, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if o.run.Width != 1280 || o.run.Height != 720 {
		t.Errorf("size = %dx%d, want 1280x720", o.run.Width, o.run.Height)
	}
	if o.headless || o.showcase || o.run.Debug {
		t.Errorf("unexpected flags set: %+v", o)
	}
}

func TestParseOptionsEnvAndFlags(t *testing.T) {
	t.Setenv("SPRIG_WIDTH", "800")
	t.Setenv("SPRIG_DEBUG", "true")
	o, err := parseOptions([]string{"-height", "600", "-headless"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if o.run.Width != 800 || o.run.Height != 600 {
		t.Errorf("size = %dx%d, want 800x600", o.run.Width, o.run.Height)
	}
	if !o.run.Debug || !o.headless {
		t.Errorf("debug=%v headless=%v", o.run.Debug, o.headless)
	}
}

func TestParseOptionsRejectsBadSize(t *testing.T) {
	if _, err := parseOptions([]string{"-width", "0"}, io.Discard); err == nil {
		t.Error("expected error for zero width")
	}
}

func TestDumpHUD(t *testing.T) {
	var buf bytes.Buffer
	if err := run(options{headless: true}, &buf); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 11 {
		t.Fatalf("got %d lines:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "root width=100% height=100%") {
		t.Errorf("root line = %q", lines[0])
	}
	if want := "      btn_play width=320px height=64px margin=3px button=Play"; lines[3] != want {
		t.Errorf("line 3 = %q, want %q", lines[3], want)
	}
	if want := "        btn_play_label width=auto"; !strings.HasPrefix(lines[4], want) {
		t.Errorf("line 4 = %q, want prefix %q", lines[4], want)
	}
}

func TestHeadlessScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.json")
	script := `{"steps":[{"action":"wait","frames":1},{"action":"press","label":"btn_play"},{"action":"wait","frames":2}]}`
	if err := os.WriteFile(path, []byte(script), 0o644); err != nil {
		t.Fatal(err)
	}
	o, err := parseOptions([]string{"-headless", "-script", path, "-frames", "10"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if err := run(o, io.Discard); err != nil {
		t.Fatal(err)
	}
}
