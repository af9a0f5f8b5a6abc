package ctrl

import (
	"github.com/ldanpham95/AnimeEffects/cmnd"
	"github.com/ldanpham95/AnimeEffects/core"
)

// TimelineNotifier is a cmnd.Listener that dispatches a timeline change
// event through the project's observer hook: once on commit, once per
// undo/redo replay of the owning group. The event's target list is filled
// in by the caller before the owning macro closes.
type TimelineNotifier struct {
	project *core.Project
	event   core.TimelineEvent
}

// NewTimelineNotifier creates a notifier for events of the given type.
func NewTimelineNotifier(project *core.Project, typ core.TimelineEventType) *TimelineNotifier {
	return &TimelineNotifier{
		project: project,
		event:   core.TimelineEvent{Type: typ},
	}
}

// Event returns the mutable event payload for the caller to populate.
func (n *TimelineNotifier) Event() *core.TimelineEvent {
	return &n.event
}

// OnCommitted dispatches the event as a forward change.
func (n *TimelineNotifier) OnCommitted() {
	n.project.NotifyTimelineModified(&n.event, false)
}

// OnUndone dispatches the event with isUndo set.
func (n *TimelineNotifier) OnUndone() {
	n.project.NotifyTimelineModified(&n.event, true)
}

// OnRedone dispatches the event as a forward change.
func (n *TimelineNotifier) OnRedone() {
	n.project.NotifyTimelineModified(&n.event, false)
}

// AttributeNotifier is a cmnd.Listener that marks one node's attribute set
// as modified through the project's observer hook.
type AttributeNotifier struct {
	project *core.Project
	node    *core.Node
}

// NewAttributeNotifier creates a notifier for the given node.
func NewAttributeNotifier(project *core.Project, node *core.Node) *AttributeNotifier {
	return &AttributeNotifier{project: project, node: node}
}

// OnCommitted dispatches the attribute change as a forward change.
func (n *AttributeNotifier) OnCommitted() {
	n.project.NotifyNodeAttributeModified(n.node, false)
}

// OnUndone dispatches the attribute change with isUndo set.
func (n *AttributeNotifier) OnUndone() {
	n.project.NotifyNodeAttributeModified(n.node, true)
}

// OnRedone dispatches the attribute change as a forward change.
func (n *AttributeNotifier) OnRedone() {
	n.project.NotifyNodeAttributeModified(n.node, false)
}

var (
	_ cmnd.Listener = (*TimelineNotifier)(nil)
	_ cmnd.Listener = (*AttributeNotifier)(nil)
)
