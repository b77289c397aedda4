// Command sprig runs the main menu, optionally with the showcase scene.
//
// With -headless it emits the menu into a donburi world and prints the
// resolved styles, or plays a -script against the menu without a window.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/yohamta/donburi"

	"github.com/phanxgames/sprig"
	"github.com/phanxgames/sprig/ecs"
	"github.com/phanxgames/sprig/game"
	"github.com/phanxgames/sprig/hud"
	"github.com/phanxgames/sprig/ui"
)

func main() {
	opts, err := parseOptions(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("sprig: %v", err)
	}
	if err := run(opts, os.Stdout); err != nil {
		log.Fatalf("sprig: %v", err)
	}
}

func run(opts options, out io.Writer) error {
	if opts.headless && opts.script == "" {
		return dumpHUD(out)
	}

	app := sprig.NewApp(opts.run).AddPlugins(game.GamePlugin{}, hud.Plugin{})
	if opts.showcase {
		app.AddPlugins(game.ShowcasePlugin{})
	}

	if opts.script != "" {
		data, err := os.ReadFile(opts.script)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		runner, err := sprig.LoadScript(data)
		if err != nil {
			return fmt.Errorf("load script %s: %w", opts.script, err)
		}
		app.Scene.SetScriptRunner(runner)
	}

	if opts.headless {
		return app.RunFrames(opts.frames, 1.0/60)
	}
	return app.Run()
}

// dumpHUD emits the menu into a fresh donburi world and prints one line per
// entity with its committed sizes.
func dumpHUD(out io.Writer) error {
	world := donburi.NewWorld()
	sess := hud.Attach(ui.Emit(hud.Describe(), ecs.NewSink(world)))
	sess.Commit()

	names := make(map[donburi.Entity]string, sess.Len())
	for _, n := range sess.Nodes() {
		names[n.Handle] = n.Name
	}
	for _, root := range ecs.Roots(world) {
		var err error
		ecs.Walk(world, root, func(e donburi.Entity, depth int) {
			if err != nil {
				return
			}
			st, _ := ecs.Style(world, e)
			line := fmt.Sprintf("%s%s width=%s height=%s margin=%s",
				strings.Repeat("  ", depth), names[e], st.Width, st.Height, st.Margin.Left)
			if id, ok := ecs.Extra[hud.ButtonIdentity](world, e); ok {
				line += " button=" + id.ID.Name()
			}
			_, err = fmt.Fprintln(out, line)
		})
		if err != nil {
			return fmt.Errorf("write: %w", err)
		}
	}
	return nil
}
