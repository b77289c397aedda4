package sprig

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/sprig/ui"
)

// NewFPSWidget creates a HUD node pinned to the top-left corner that shows
// the current FPS and TPS. The label refreshes every ~0.5 seconds.
func NewFPSWidget() *Node {
	n := NewUINode("fps_widget")
	n.Style = ui.Description{
		PositionType: ui.Ptr(ui.PositionAbsolute),
		Left:         ui.Ptr(ui.Px(4)),
		Top:          ui.Ptr(ui.Px(4)),
		Padding:      ui.Ptr(ui.EdgesAll(ui.Px(4))),
	}.Style()
	n.ZIndex = 1 << 20
	n.SetComponent(Fill{Color: Color{0, 0, 0, 0.5}})
	n.SetComponent(Label{Text: "FPS: 0.0\nTPS: 0.0", Align: TextAlignLeft})

	var lastUpdate float64
	n.OnUpdate = func(dt float64) {
		lastUpdate += dt
		if lastUpdate < 0.5 {
			return
		}
		lastUpdate = 0
		n.SetComponent(Label{
			Text:  fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()),
			Align: TextAlignLeft,
		})
	}
	return n
}
