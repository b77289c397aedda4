package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"

	"github.com/phanxgames/sprig"
)

func TestDonburiStoreEmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []sprig.InteractionEvent
	InteractionEventType.Subscribe(world, func(w donburi.World, e sprig.InteractionEvent) {
		received = append(received, e)
	})

	store.EmitEvent(sprig.InteractionEvent{Type: sprig.EventPress, NodeID: 7, GlobalX: 100, GlobalY: 200})
	store.EmitEvent(sprig.InteractionEvent{Type: sprig.EventClick, NodeID: 7, NodeName: "btn"})
	assert.Empty(t, received, "events are queued until processed")

	InteractionEventType.ProcessEvents(world)
	require.Len(t, received, 2)
	assert.Equal(t, sprig.EventPress, received[0].Type)
	assert.Equal(t, 100.0, received[0].GlobalX)
	assert.Equal(t, "btn", received[1].NodeName)
}

func TestDonburiStoreMultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	InteractionEventType.Subscribe(world, func(donburi.World, sprig.InteractionEvent) { count1++ })
	InteractionEventType.Subscribe(world, func(donburi.World, sprig.InteractionEvent) { count2++ })

	store.EmitEvent(sprig.InteractionEvent{Type: sprig.EventClick})
	InteractionEventType.ProcessEvents(world)
	assert.Equal(t, 1, count1)
	assert.Equal(t, 1, count2)
}

func TestBridgePluginDeliversSceneClicks(t *testing.T) {
	cfg := sprig.DefaultRunConfig()
	cfg.Width, cfg.Height = 200, 100
	app := sprig.NewApp(cfg).AddPlugins(BridgePlugin{})

	btn := sprig.NewUINode("btn")
	btn.Interactable = true
	app.Scene.Spawn(btn, app.Scene.HUD())
	btn.SetComponent(sprig.Label{Text: "Go"})

	var clicked []string
	InteractionEventType.Subscribe(app.World, func(_ donburi.World, e sprig.InteractionEvent) {
		if e.Type == sprig.EventClick {
			clicked = append(clicked, e.NodeName)
		}
	})

	require.NoError(t, app.Update(0))
	app.Scene.ClickNode(btn)
	require.NoError(t, app.RunFrames(2, 0))
	assert.Equal(t, []string{"btn"}, clicked)
}
