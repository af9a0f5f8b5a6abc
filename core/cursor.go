package core

// Cursor tracks one pointer across frames and derives the press, drag, and
// release edge signals editing controllers consume. Feed it one sample per
// frame with Update (screen space, projected through a camera) or
// UpdateWorld (already in world space).
//
// Exactly one of the Emits* accessors is true per frame: press on the
// frame the button goes down, drag on held frames where the pointer moved,
// release on the frame the button goes up.
type Cursor struct {
	worldPos     Vec2
	prevWorldPos Vec2
	screenPos    Vec2
	pressing     bool

	pressEvent   bool
	dragEvent    bool
	releaseEvent bool
}

// Update advances the cursor with a screen-space sample, projecting it to
// world space through cam.
func (c *Cursor) Update(cam *Camera, screenPos Vec2, buttonDown bool) {
	c.screenPos = screenPos
	c.UpdateWorld(cam.ScreenToWorld(screenPos), buttonDown)
}

// UpdateWorld advances the cursor with an already-projected world position.
func (c *Cursor) UpdateWorld(worldPos Vec2, buttonDown bool) {
	c.prevWorldPos = c.worldPos
	c.worldPos = worldPos

	c.pressEvent = buttonDown && !c.pressing
	c.releaseEvent = !buttonDown && c.pressing
	c.dragEvent = buttonDown && c.pressing && worldPos != c.prevWorldPos

	c.pressing = buttonDown
}

// WorldPos returns the pointer position in world space.
func (c *Cursor) WorldPos() Vec2 {
	return c.worldPos
}

// ScreenPos returns the last screen-space sample passed to Update.
func (c *Cursor) ScreenPos() Vec2 {
	return c.screenPos
}

// IsPressing reports whether the left button is currently held.
func (c *Cursor) IsPressing() bool {
	return c.pressing
}

// EmitsLeftPressed reports a press edge this frame.
func (c *Cursor) EmitsLeftPressed() bool {
	return c.pressEvent
}

// EmitsLeftDragged reports a held-button move this frame.
func (c *Cursor) EmitsLeftDragged() bool {
	return c.dragEvent
}

// EmitsLeftReleased reports a release edge this frame.
func (c *Cursor) EmitsLeftReleased() bool {
	return c.releaseEvent
}
