package core

import "github.com/ldanpham95/AnimeEffects/cmnd"

// TimelineEventTarget names one keyed value that a change event covers.
type TimelineEventTarget struct {
	Node  *Node
	Track TrackType
	Frame int
}

// TimelineEvent is the change descriptor dispatched to timeline observers:
// a kind plus the full list of (node, track, frame) targets it affects.
type TimelineEvent struct {
	Type    TimelineEventType
	Targets []TimelineEventTarget
}

// PushTarget appends one target to the event.
func (e *TimelineEvent) PushTarget(node *Node, track TrackType, frame int) {
	e.Targets = append(e.Targets, TimelineEventTarget{Node: node, Track: track, Frame: frame})
}

// Project owns the process-wide command stack, the current frame, and the
// observer hooks every editing controller notifies through. History is
// transient, in-memory state; it does not survive a project reload.
type Project struct {
	stack *cmnd.Stack
	frame int

	timelineObservers []func(*TimelineEvent, bool)
	nodeObservers     []func(*Node, bool)
}

// NewProject creates a project with an empty command stack at frame 0.
func NewProject() *Project {
	return &Project{stack: cmnd.NewStack()}
}

// CommandStack returns the project's command stack.
func (p *Project) CommandStack() *cmnd.Stack {
	return p.stack
}

// Frame returns the current timeline frame.
func (p *Project) Frame() int {
	return p.frame
}

// SetFrame sets the current timeline frame.
func (p *Project) SetFrame(frame int) {
	p.frame = frame
}

// OnTimelineModified registers an observer for timeline change events.
// isUndo is true when the event replays from an undo rather than a forward
// commit or redo.
func (p *Project) OnTimelineModified(fn func(event *TimelineEvent, isUndo bool)) {
	p.timelineObservers = append(p.timelineObservers, fn)
}

// OnNodeAttributeModified registers an observer for node attribute changes.
func (p *Project) OnNodeAttributeModified(fn func(node *Node, isUndo bool)) {
	p.nodeObservers = append(p.nodeObservers, fn)
}

// NotifyTimelineModified dispatches event to every timeline observer in
// registration order.
func (p *Project) NotifyTimelineModified(event *TimelineEvent, isUndo bool) {
	for _, fn := range p.timelineObservers {
		fn(event, isUndo)
	}
}

// NotifyNodeAttributeModified dispatches a node attribute change to every
// node observer in registration order.
func (p *Project) NotifyNodeAttributeModified(node *Node, isUndo bool) {
	for _, fn := range p.nodeObservers {
		fn(node, isUndo)
	}
}
