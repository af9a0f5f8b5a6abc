package core

// Node is an element of the object tree: a folder that groups children or a
// layer that carries image cells. Every node constructed through NewFolder
// or NewLayer owns a Timeline; a node without one is malformed and trips
// the Timeline accessor.
type Node struct {
	Name string
	Type NodeType

	Parent   *Node
	children []*Node

	// Rest is the posture used when the SRT track has no keys.
	Rest SRTValue

	timeline *Timeline
}

// NewFolder creates a folder node that can hold children.
func NewFolder(name string) *Node {
	return &Node{
		Name:     name,
		Type:     NodeTypeFolder,
		Rest:     DefaultSRT(),
		timeline: NewTimeline(),
	}
}

// NewLayer creates a leaf layer node.
func NewLayer(name string) *Node {
	return &Node{
		Name:     name,
		Type:     NodeTypeLayer,
		Rest:     DefaultSRT(),
		timeline: NewTimeline(),
	}
}

// CanHoldChild reports whether this node may have children.
func (n *Node) CanHoldChild() bool {
	return n.Type == NodeTypeFolder
}

// Timeline returns the node's timeline. Panics if the node has none: that
// is an invariant break in node construction, not a runtime condition.
func (n *Node) Timeline() *Timeline {
	if n.timeline == nil {
		panic("core: node has no timeline")
	}
	return n.timeline
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if this node cannot hold children, child is nil, or child is an
// ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("core: cannot add nil child")
	}
	if !n.CanHoldChild() {
		panic("core: node cannot hold children")
	}
	if isAncestor(child, n) {
		panic("core: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("core: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// Children returns the child list. The returned slice MUST NOT be mutated
// by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing
// child.Parent. Uses copy+nil to avoid retaining a dangling pointer in the
// backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// --- Posture sampling ---

// SRTAt samples the node's posture at frame: the interpolated SRT track
// when it has keys, the rest posture otherwise.
func (n *Node) SRTAt(frame int) SRTValue {
	if n.Timeline().Map(TrackSRT).Count() == 0 {
		return n.Rest
	}
	return n.timeline.srtAt(frame)
}

// LocalMatrix returns the node's local affine matrix at frame, mapping
// local space into the parent's space.
func (n *Node) LocalMatrix(frame int) [6]float64 {
	srt := n.SRTAt(frame)
	return ComposeSRT(srt.Pos, srt.Rotate, srt.Scale)
}

// WorldMatrix returns the accumulated matrix mapping the node's local space
// into world space at frame: parent chain matrix times the node's own
// scale/rotate/translate matrix.
func (n *Node) WorldMatrix(frame int) [6]float64 {
	m := n.LocalMatrix(frame)
	for p := n.Parent; p != nil; p = p.Parent {
		m = MultiplyAffine(p.LocalMatrix(frame), m)
	}
	return m
}

// WorldCentroidPos returns the node's rotation/scale pivot in world space
// at frame.
func (n *Node) WorldCentroidPos(frame int) Vec2 {
	return TransformPoint(n.WorldMatrix(frame), n.SRTAt(frame).Centroid)
}
