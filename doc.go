// Package derma is a visual designer for Derma, the widget toolkit of a
// Lua-scripted game mod. Widgets are dropped onto a canvas, dragged,
// resized and configured, and the design is exported as Lua source that
// rebuilds the same layout at runtime through vgui.Create.
//
// # Session
//
// All designer state lives in a [Session]: the widget [Registry], the
// ordered scene [Store], the current selection, the resize grip and the
// tick subscribers. A session is driven by a host that forwards pointer,
// paint and timer callbacks to it. The ebitengine host is [Game]:
//
//	reg := derma.NewRegistry()
//	if err := derma.RegisterStandardWidgets(reg, skin); err != nil {
//		log.Fatal(err)
//	}
//	session := derma.NewSession(reg)
//	game := derma.NewGame(session, derma.NewPalette(reg, 120), font, derma.GameConfig{
//		Title: "Derma Designer", Width: 1024, Height: 768,
//	})
//	if err := derma.Run(game); err != nil {
//		log.Fatal(err)
//	}
//
// Sessions are usable headless: create widgets with [Session.New], feed
// [PointerEvent] values to [Session.PointerDown] and friends, and call
// [Session.Generate] to obtain Lua.
//
// # Widgets
//
// Every widget implements [Widget] and embeds [Panel], which carries the
// geometry, flags, variable name and optional per-event handlers. New
// widget kinds are added by registering a constructor and a thumbnail with
// [Registry.Register]; that is the only extension point.
//
// # Ordering
//
// The store keeps the newest widget first. Pointer events are delivered to
// the first matching widget in that order and do not propagate. Painting
// walks the store back to front so the newest widget is drawn on top.
//
// A session is single-threaded: every method must be called from the host
// UI goroutine.
package derma
