package core

import "math"

// Vec2 is a 2D vector used for positions, offsets, and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Len returns the euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// NodeType distinguishes the structural role of a Node.
type NodeType uint8

const (
	NodeTypeFolder NodeType = iota // group node, can hold children
	NodeTypeLayer                  // drawable leaf, carries image cells
)

// TrackType identifies a keyed track on a node's timeline.
type TrackType uint8

const (
	TrackSRT   TrackType = iota // scale/rotate/translate posture keys
	TrackImage                  // image cell keys
)

// TimelineEventType identifies the kind of a timeline change event.
type TimelineEventType uint8

const (
	TimelineEventChangeKeyValue TimelineEventType = iota // an existing key's value changed
	TimelineEventPushKey                                 // a key was added
	TimelineEventRemoveKey                               // a key was removed
)

// Valid translation range for any local-space coordinate committed to the
// document. Values outside are clamped, never rejected.
const (
	TransMin = -40000.0
	TransMax = 40000.0
)
