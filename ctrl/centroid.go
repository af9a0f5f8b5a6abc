package ctrl

import (
	"github.com/ldanpham95/AnimeEffects/cmnd"
	"github.com/ldanpham95/AnimeEffects/core"
)

const (
	// crossRadius is the marker arm length and the pick radius, in screen
	// pixels.
	crossRadius = 30.0
	// crossSub is the gap between the marker center and each arm.
	crossSub = 8.0
	// transRange is the radius of the filled center dot.
	transRange = 3.0
)

// CentroidMode drags a node's rotation/scale pivot. One continuous
// press→drag→release gesture produces exactly one undoable entry on the
// project's command stack: the first drag tick pushes a CentroidMover, and
// every following tick mutates that command in place while the stack still
// reports it modifiable.
type CentroidMode struct {
	project *core.Project
	target  *core.Node

	focusing   bool
	moving     bool
	baseVec    core.Vec2 // world-space offset pivot − pointer, captured at press
	baseCenter core.Vec2 // pivot in local space, captured at press

	// Open-command state. mover is only dereferenced after the stack
	// confirms the handle is still the top of the history.
	handle cmnd.Handle
	mover  *CentroidMover
}

// NewCentroidMode creates the controller for one target node. The target
// must carry a timeline; a node without one is a malformed graph and
// panics here rather than later mid-gesture.
func NewCentroidMode(project *core.Project, target *core.Node) *CentroidMode {
	target.Timeline()
	return &CentroidMode{project: project, target: target}
}

// Target returns the node being edited.
func (m *CentroidMode) Target() *core.Node {
	return m.target
}

// Focusing reports whether the pointer is within the pick radius.
func (m *CentroidMode) Focusing() bool {
	return m.focusing
}

// Moving reports whether a drag gesture is active.
func (m *CentroidMode) Moving() bool {
	return m.moving
}

// UpdateCursor advances the controller by one frame of pointer state and
// reports whether any observable state changed (for repaint scheduling).
// Focus is recomputed every call, before any gesture handling.
//
// When the target's world matrix is not invertible the gesture silently
// does not start or update this frame; only the focus flag may change.
func (m *CentroidMode) UpdateCursor(cam *core.Camera, cursor *core.Cursor) bool {
	frame := m.project.Frame()
	worldMtx := m.target.WorldMatrix(frame)
	worldInv, hasInv := core.InvertAffine(worldMtx)

	curPos := cursor.WorldPos()
	center := m.target.WorldCentroidPos(frame)
	prevFocus := m.focusing
	m.focusing = cam.ToScreenLength(center.Sub(curPos).Len()) <= crossRadius
	mod := prevFocus != m.focusing

	switch {
	case cursor.EmitsLeftPressed():
		if m.focusing && hasInv {
			m.moving = true
			m.baseVec = center.Sub(curPos)
			m.baseCenter = core.TransformPoint(worldInv, center)
			m.handle = cmnd.Handle{}
			m.mover = nil
		}
		mod = true

	case cursor.EmitsLeftDragged():
		if m.moving && hasInv {
			newLocal := core.TransformPoint(worldInv, curPos.Add(m.baseVec))
			m.moveCentroid(newLocal)
		}
		mod = true

	case cursor.EmitsLeftReleased():
		m.handle = cmnd.Handle{}
		m.mover = nil
		m.moving = false
		mod = true
	}

	return mod
}

// moveCentroid commits or coalesces one proposed local pivot value.
//
// While the open command is still the stack top, its value is replaced in
// place and a single-shot change event is dispatched manually: no new
// transaction opens, so no listener machinery is involved. Otherwise a new
// macro is opened whose listeners replay the fan-out on every later
// undo/redo of the group.
func (m *CentroidMode) moveCentroid(newCenter core.Vec2) {
	newCenter = core.ClampTrans(newCenter)
	stack := m.project.CommandStack()

	if m.mover != nil && stack.IsModifiable(m.handle) {
		m.mover.ModifyValue(newCenter)

		event := core.TimelineEvent{Type: core.TimelineEventChangeKeyValue}
		pushEventTargets(m.target, &event)
		m.project.NotifyTimelineModified(&event, false)
		m.project.NotifyNodeAttributeModified(m.target, false)
		return
	}

	// If an earlier command of this gesture went stale under a foreign
	// edit, the new transaction measures from the value that command left
	// behind, not from the press-time base.
	base := m.baseCenter
	if m.mover != nil {
		base = m.mover.Value()
	}

	macro := cmnd.BeginMacro(stack, "move centroid")
	defer macro.Close()

	tln := NewTimelineNotifier(m.project, core.TimelineEventChangeKeyValue)
	pushEventTargets(m.target, tln.Event())
	macro.GrabListener(tln)
	macro.GrabListener(NewAttributeNotifier(m.project, m.target))

	m.mover = NewCentroidMover(m.target, base, newCenter)
	m.handle = stack.Push(m.mover)
}

// pushEventTargets appends every keyed value a centroid move touches: the
// target's own SRT keys, plus each direct child's SRT keys when the target
// can hold children, or the target's image keys (tagged as SRT) when it
// cannot. Grandchildren are deliberately not enumerated.
func pushEventTargets(target *core.Node, event *core.TimelineEvent) {
	tl := target.Timeline()
	for _, f := range tl.Map(core.TrackSRT).Frames() {
		event.PushTarget(target, core.TrackSRT, f)
	}

	if target.CanHoldChild() {
		for _, child := range target.Children() {
			ctl := child.Timeline()
			for _, f := range ctl.Map(core.TrackSRT).Frames() {
				event.PushTarget(child, core.TrackSRT, f)
			}
		}
	} else {
		for _, f := range tl.Map(core.TrackImage).Frames() {
			event.PushTarget(target, core.TrackSRT, f)
		}
	}
}

// CentroidMover shifts a node's centroid by (new − base) across the rest
// posture and every SRT key. The per-key centroids are snapshotted at
// construction so undo restores exact values and ModifyValue can re-derive
// from the original state on every coalesced update.
type CentroidMover struct {
	target *core.Node
	base   core.Vec2
	next   core.Vec2

	oldRest core.Vec2
	oldKeys map[int]core.Vec2
}

// NewCentroidMover creates a mover from the pivot's local value at gesture
// start (base) to next.
func NewCentroidMover(target *core.Node, base, next core.Vec2) *CentroidMover {
	old := make(map[int]core.Vec2)
	track := target.Timeline().Map(core.TrackSRT)
	for _, f := range track.Frames() {
		key, _ := track.KeyAt(f)
		old[f] = key.SRT.Centroid
	}
	return &CentroidMover{
		target:  target,
		base:    base,
		next:    next,
		oldRest: target.Rest.Centroid,
		oldKeys: old,
	}
}

// Name returns the history label.
func (c *CentroidMover) Name() string {
	return "move centroid"
}

// Exec applies the move.
func (c *CentroidMover) Exec() {
	c.apply()
}

// Undo restores the snapshotted centroids.
func (c *CentroidMover) Undo() {
	c.target.Rest.Centroid = c.oldRest
	track := c.target.Timeline().Map(core.TrackSRT)
	for f, old := range c.oldKeys {
		if key, ok := track.KeyAt(f); ok {
			key.SRT.Centroid = old
		}
	}
}

// Redo re-applies the move.
func (c *CentroidMover) Redo() {
	c.apply()
}

// ModifyValue replaces the target value and applies it immediately, without
// growing the history. Valid only while the stack reports this command
// modifiable; callers check that first.
func (c *CentroidMover) ModifyValue(next core.Vec2) {
	c.next = next
	c.apply()
}

// Value returns the current target value.
func (c *CentroidMover) Value() core.Vec2 {
	return c.next
}

func (c *CentroidMover) apply() {
	d := c.next.Sub(c.base)
	c.target.Rest.Centroid = c.oldRest.Add(d)
	track := c.target.Timeline().Map(core.TrackSRT)
	for f, old := range c.oldKeys {
		if key, ok := track.KeyAt(f); ok {
			key.SRT.Centroid = old.Add(d)
		}
	}
}

var _ cmnd.Command = (*CentroidMover)(nil)
