// Package editor implements the tag list editor state machine.
//
// An Editor owns an ordered list of distinct tags, an immutable Config
// (min/max counts, disabled flag, placeholder) and an optional selection
// cursor used for keyboard deletion. Hosts feed it DOM-style events:
//
//	ed := editor.New(cfg, "go,rust", editor.WithSink(backing), editor.WithObserver(render))
//	ed.SetEntry("zig")             // input event
//	ed.HandleKey(editor.KeyEnter)  // keydown: adds "zig"
//	ed.SelectIndex(0)              // chip click
//	ed.HandleKey(editor.KeyBackspace)
//
// Every mutation writes the serialized list to the Sink and hands a fresh
// Snapshot to the Observer before returning. Rejections (empty, duplicate,
// capacity, out of range, disabled) are returned as *RejectError values and
// never panic; a minimum count below MinItems is advisory and only shows up as
// Snapshot.Warning.
package editor
