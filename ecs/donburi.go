package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/phanxgames/sprig"
)

// InteractionEventType is the Donburi event type for sprig interaction events.
// Subscribe to this in your ECS systems to receive press, release and click
// events.
var InteractionEventType = events.NewEventType[sprig.InteractionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Interaction events are published to InteractionEventType and delivered
// when the world's events are processed.
func NewDonburiStore(world donburi.World) sprig.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event sprig.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}

// BridgePlugin forwards an App's scene interaction events into its world.
type BridgePlugin struct{}

// Build sets the scene's entity store.
func (BridgePlugin) Build(app *sprig.App) {
	app.Scene.SetEntityStore(NewDonburiStore(app.World))
}
