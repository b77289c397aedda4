// Package ecs connects sprig to [Donburi].
//
// [NewDonburiStore] bridges scene interaction events (press, release, click)
// into a Donburi world as typed events. Subscribe to [InteractionEventType]
// in your systems to receive them, or add [BridgePlugin] to an App.
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//
// [Sink] materializes a ui tree as entities instead of scene nodes. Each
// entity carries [NodeComponent]; committed styles land in
// [StyleComponent]. Payloads implementing [Bundle] insert their own
// components, anything else is kept in [ExtrasComponent]:
//
//	sess := ui.Emit(builder, ecs.NewSink(world))
//	sess.AttachByTag("btn", ecs.Component(ButtonComponent, Button{}))
//	sess.Commit()
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
