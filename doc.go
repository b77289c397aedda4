// Package sprig is a small retained-mode 2D engine for [Ebitengine] that hosts
// declarative UI trees built with package ui.
//
// A [Scene] owns two trees: the world, drawn through the primary [Camera],
// and the HUD, laid out from each node's ui.Style and drawn in screen space
// on top. [App] wires a scene to a donburi world and runs plugins and
// systems around it.
//
// # Quick start
//
//	app := sprig.NewApp(sprig.DefaultRunConfig())
//	app.AddPlugins(hud.Plugin{}, game.GamePlugin{})
//	if err := app.Run(); err != nil {
//		log.Fatal(err)
//	}
//
// # Mounting UI
//
// [Scene.Mount] emits a ui.GuiBuilder into the HUD. Payloads attached
// through the returned session become typed components on the nodes:
//
//	sess := scene.Mount(builder)
//	sess.AttachByTag("btn", sprig.Interactive{}).
//		AttachByTag("btn", sprig.Fill{Color: sprig.Color{0.15, 0.15, 0.15, 1}})
//	sess.Commit()
//
//	if fill, ok := sprig.Component[sprig.Fill](node); ok {
//		// ...
//	}
//
// # Input
//
// Pointer presses are hit-tested against HUD layout boxes first, then
// against world sprites and meshes. Node OnPress and OnClick callbacks fire
// and, when an [EntityStore] is set, every event is forwarded to it. Tests
// and headless runs drive input with [Scene.InjectClick] or a
// [ScriptRunner].
//
// # Debug mode
//
// [Scene.SetDebugMode] panics on use of disposed nodes and prints tree
// warnings and UI emission summaries to stderr.
//
// [Ebitengine]: https://ebitengine.org
package sprig
