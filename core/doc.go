// Package core holds the editor's document model: the object node tree,
// keyed animation timelines, the project that owns the command stack and
// change-notification hooks, and the 2D affine math shared by every editing
// controller.
//
// Everything in core is single-threaded and runs on the event-processing
// goroutine that owns the project.
package core
