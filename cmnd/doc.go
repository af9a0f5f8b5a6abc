// Package cmnd provides the project-wide undo/redo transaction engine.
//
// Edits are expressed as [Command] values pushed onto a [Stack]. Pushing
// executes the command immediately and records it as one undoable step.
// Related commands can be grouped into a single step with [BeginMacro];
// the macro also owns [Listener] values that fire exactly once when the
// group commits and once per subsequent undo/redo replay.
//
// Continuous gestures (a pointer drag, a slider sweep) coalesce into one
// history entry by mutating the value of an already-pushed command instead
// of pushing a new one. The [Handle] returned by [Stack.Push] gates this:
// [Stack.IsModifiable] reports whether the handle still names the top of
// the stack, and goes stale the moment any other push, undo, or redo
// happens.
//
// The engine is single-threaded by design: every method must be called
// from the event-processing goroutine that owns the project.
package cmnd
