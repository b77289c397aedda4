// Package hud builds the main menu overlay and reports button presses.
package hud

import (
	"log"
	"strings"

	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"

	"github.com/phanxgames/sprig"
	"github.com/phanxgames/sprig/ecs"
	"github.com/phanxgames/sprig/ui"
)

// ButtonID identifies one menu button.
type ButtonID uint8

const (
	Play ButtonID = iota
	Options
	Credits
	Quit
)

// Name returns the button's display name.
func (id ButtonID) Name() string {
	switch id {
	case Play:
		return "Play"
	case Options:
		return "Options"
	case Credits:
		return "Credits"
	case Quit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ButtonIdentity marks a HUD node as a menu button.
type ButtonIdentity struct {
	ID ButtonID
}

// buttons lists the menu in display order with the layout node naming each.
var buttons = []struct {
	node string
	id   ButtonID
}{
	{"btn_play", Play},
	{"btn_options", Options},
	{"btn_credits", Credits},
	{"btn_quit", Quit},
}

const labelSuffix = "_label"

var (
	buttonFill  = sprig.Fill{Color: sprig.Color{R: 0.85, G: 0.85, B: 0.88, A: 1}, Border: sprig.Color{R: 0.3, G: 0.3, B: 0.35, A: 1}}
	buttonLabel = sprig.Color{A: 1}
)

// Describe returns the menu layout with its styles. It holds no host state,
// so it can be emitted into any sink.
func Describe() ui.GuiBuilder {
	script := ui.StartLayout().
		Node("root").
		StartChildren().
		Node("menu", "column").
		StartChildren().
		Node("btn_group", "column").
		StartChildren()
	for _, b := range buttons {
		script = script.Node(b.node, "btn").
			StartChildren().
			Node(b.node+labelSuffix, "label").
			EndChildren()
	}

	return ui.NewGuiBuilder(script.Finish()).
		StyleByName("root", ui.Description{
			Width:          ui.Ptr(ui.Percent(100)),
			Height:         ui.Ptr(ui.Percent(100)),
			JustifyContent: ui.Ptr(ui.JustifyContentCenter),
			AlignItems:     ui.Ptr(ui.AlignItemsCenter),
		}).
		StyleByTag("column", ui.Description{
			FlexDirection:  ui.Ptr(ui.FlexColumn),
			AlignItems:     ui.Ptr(ui.AlignItemsCenter),
			JustifyContent: ui.Ptr(ui.JustifyContentCenter),
		}).
		StyleByTag("btn", ui.Description{
			Width:          ui.Ptr(ui.Px(320)),
			Height:         ui.Ptr(ui.Px(64)),
			Margin:         ui.Ptr(ui.EdgesAll(ui.Px(3))),
			Border:         ui.Ptr(ui.EdgesAll(ui.Px(2))),
			JustifyContent: ui.Ptr(ui.JustifyContentCenter),
			AlignItems:     ui.Ptr(ui.AlignItemsCenter),
		})
}

// Attach binds the menu's payloads to an open session: ButtonIdentity by
// name, fill and hit testing by tag, and a label per button.
func Attach[H comparable](sess *ui.Session[H]) *ui.Session[H] {
	for _, b := range buttons {
		sess.AttachByName(b.node, ButtonIdentity{ID: b.id})
	}
	return sess.
		AttachByTag("btn", buttonFill).
		AttachByTag("btn", sprig.Interactive{}).
		AttachByTagFunc("label", func(n ui.EmittedNode[H]) any {
			id, ok := buttonFor(strings.TrimSuffix(n.Name, labelSuffix))
			if !ok {
				return nil
			}
			return sprig.Label{Text: id.Name(), Color: buttonLabel, Scale: 2}
		})
}

func buttonFor(node string) (ButtonID, bool) {
	for _, b := range buttons {
		if b.node == node {
			return b.id, true
		}
	}
	return 0, false
}

// Plugin mounts the menu at startup and logs "<Name> Button was pressed!"
// for every press on a menu button. Pressing Quit requests exit.
type Plugin struct {
	// Logger receives button messages. Nil means the standard logger.
	Logger *log.Logger
	// FadeIn, if positive, fades the menu in over this many seconds.
	FadeIn float32
	// OnPress, if set, runs after the message is logged.
	OnPress func(ButtonID)
}

// Build installs the interaction bridge, the startup system and the
// press handler.
func (p Plugin) Build(app *sprig.App) {
	app.AddPlugins(ecs.BridgePlugin{})
	app.AddStartupSystem(p.create)
	ecs.InteractionEventType.Subscribe(app.World, func(_ donburi.World, e sprig.InteractionEvent) {
		p.handle(app, e)
	})
}

func (p Plugin) create(app *sprig.App) {
	sess := Attach(app.Scene.Mount(Describe()))
	sess.Commit()

	if p.FadeIn > 0 {
		if root, ok := app.Scene.Lookup(sess.Root().Handle); ok {
			root.Alpha = 0
			app.Scene.Animate(sprig.TweenAlpha(root, 1, p.FadeIn, ease.OutQuad))
		}
	}
}

func (p Plugin) handle(app *sprig.App, e sprig.InteractionEvent) {
	if e.Type != sprig.EventPress {
		return
	}
	n, ok := app.Scene.Lookup(e.NodeID)
	if !ok {
		return
	}
	var id ButtonIdentity
	for ; n != nil; n = n.Parent {
		if id, ok = sprig.Component[ButtonIdentity](n); ok {
			break
		}
	}
	if !ok {
		return
	}

	logger := p.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger.Printf("%s Button was pressed!", id.ID.Name())
	if p.OnPress != nil {
		p.OnPress(id.ID)
	}
	if id.ID == Quit {
		app.RequestExit()
	}
}
