// Package ctrl implements the interactive editing controllers that turn
// pointer gestures into transactional document edits.
//
// The only controller in this slice is [CentroidMode], which drags a node's
// rotation/scale pivot. It demonstrates the pattern the editor's other edit
// modes follow: recompute focus every frame, start a transaction on press,
// coalesce drag ticks into the open command, and fan change notifications
// out to every dependent keyframe through cmnd listeners.
package ctrl
