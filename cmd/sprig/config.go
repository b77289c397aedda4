package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/phanxgames/sprig"
)

type options struct {
	run      sprig.RunConfig
	headless bool
	showcase bool
	script   string
	frames   int
}

func getenv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	if v, err := strconv.Atoi(getenv(k, "")); err == nil {
		return v
	}
	return def
}

func getenvBool(k string, def bool) bool {
	if v, err := strconv.ParseBool(getenv(k, "")); err == nil {
		return v
	}
	return def
}

// parseOptions reads flags from args, with SPRIG_* environment variables
// as defaults.
func parseOptions(args []string, stderr io.Writer) (options, error) {
	o := options{run: sprig.DefaultRunConfig()}
	fs := flag.NewFlagSet("sprig", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&o.headless, "headless", getenvBool("SPRIG_HEADLESS", false), "emit the HUD into an ECS world and print it instead of opening a window")
	fs.BoolVar(&o.showcase, "showcase", getenvBool("SPRIG_SHOWCASE", false), "add the orbiting showcase scene")
	fs.BoolVar(&o.run.Debug, "debug", getenvBool("SPRIG_DEBUG", false), "enable scene debug diagnostics")
	fs.BoolVar(&o.run.ShowFPS, "fps", getenvBool("SPRIG_FPS", false), "show the FPS widget")
	fs.IntVar(&o.run.Width, "width", getenvInt("SPRIG_WIDTH", o.run.Width), "window width")
	fs.IntVar(&o.run.Height, "height", getenvInt("SPRIG_HEIGHT", o.run.Height), "window height")
	fs.StringVar(&o.script, "script", getenv("SPRIG_SCRIPT", ""), "JSON input script to play")
	fs.IntVar(&o.frames, "frames", getenvInt("SPRIG_FRAMES", 600), "ticks to run a headless script")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.run.Width <= 0 || o.run.Height <= 0 {
		return o, fmt.Errorf("invalid size %dx%d", o.run.Width, o.run.Height)
	}
	return o, nil
}
