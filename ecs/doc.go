// Package ecs bridges designer changes into a [Donburi] world.
//
// [NewDonburiSink] publishes every design event (creation, removal,
// selection, deselection, move, resize, reparent, reorder, rename, export)
// as a typed Donburi event. [Mirror] subscribes to those events and keeps one
// entity per widget so ECS systems can query the design.
//
// Usage:
//
//	world := donburi.NewWorld()
//	mirror := ecs.NewMirror(world)
//	session.SetEventSink(ecs.NewDonburiSink(world))
//	// once per tick:
//	ecs.DesignEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
