package cmnd

// Command is an atomic, reversible state mutation. Commands are validated at
// construction time; Exec, Undo, and Redo are expected to always succeed.
type Command interface {
	// Name returns a short label for history UI.
	Name() string
	// Exec applies the mutation for the first time.
	Exec()
	// Undo reverts the mutation.
	Undo()
	// Redo re-applies the mutation after an Undo.
	Redo()
}

// Listener observes the lifecycle of one committed group. Each callback
// fires exactly once per commit or replay, in listener-registration order.
type Listener interface {
	OnCommitted()
	OnUndone()
	OnRedone()
}

// Handle names a pushed command without owning it. A handle goes stale as
// soon as the stack mutates past it (another push, an undo, or a redo);
// stale handles are harmless and simply report non-modifiable.
//
// The zero Handle is always stale.
type Handle struct {
	serial uint64
}

// group is one committed (or in-flight) undo step: the commands pushed
// during its scope plus the listeners that replay its side effects.
type group struct {
	label     string
	cmds      []Command
	listeners []Listener
}

// Stack is a linear undo/redo history of committed groups. One Stack exists
// per project and all edits flow through it. Not safe for concurrent use.
type Stack struct {
	history []*group
	cursor  int // number of groups currently applied
	working *group

	nextSerial uint64
	modSerial  uint64 // serial of the still-coalescible top command, 0 if none
}

// NewStack creates an empty command stack.
func NewStack() *Stack {
	return &Stack{}
}

// Push executes cmd immediately and records it as the new top of the stack.
// Outside a macro the command forms its own single-entry group; inside a
// macro it joins the group under construction. Any redoable tail is
// discarded. Panics if cmd is nil.
func (s *Stack) Push(cmd Command) Handle {
	if cmd == nil {
		panic("cmnd: cannot push nil command")
	}

	cmd.Exec()

	if s.working != nil {
		s.working.cmds = append(s.working.cmds, cmd)
	} else {
		s.truncateRedoTail()
		s.history = append(s.history, &group{label: cmd.Name(), cmds: []Command{cmd}})
		s.cursor++
	}

	s.nextSerial++
	s.modSerial = s.nextSerial
	return Handle{serial: s.nextSerial}
}

// IsModifiable reports whether h still names the most recently pushed
// command. True only if no other push, undo, or redo happened since h was
// returned.
func (s *Stack) IsModifiable(h Handle) bool {
	return h.serial != 0 && h.serial == s.modSerial
}

// Undo reverts the group below the cursor: commands in reverse push order,
// then the group's listeners in registration order. Returns false if there
// is nothing to undo. Panics if called while a macro is open.
func (s *Stack) Undo() bool {
	if s.working != nil {
		panic("cmnd: undo inside an open macro")
	}
	if s.cursor == 0 {
		return false
	}
	s.cursor--
	g := s.history[s.cursor]
	for i := len(g.cmds) - 1; i >= 0; i-- {
		g.cmds[i].Undo()
	}
	for _, l := range g.listeners {
		l.OnUndone()
	}
	s.modSerial = 0
	return true
}

// Redo re-applies the group at the cursor: commands in push order, then the
// group's listeners in registration order. Returns false if there is
// nothing to redo. Panics if called while a macro is open.
func (s *Stack) Redo() bool {
	if s.working != nil {
		panic("cmnd: redo inside an open macro")
	}
	if s.cursor >= len(s.history) {
		return false
	}
	g := s.history[s.cursor]
	s.cursor++
	for _, c := range g.cmds {
		c.Redo()
	}
	for _, l := range g.listeners {
		l.OnRedone()
	}
	s.modSerial = 0
	return true
}

// CanUndo reports whether at least one group can be undone.
func (s *Stack) CanUndo() bool {
	return s.cursor > 0
}

// CanRedo reports whether at least one group can be redone.
func (s *Stack) CanRedo() bool {
	return s.cursor < len(s.history)
}

// UndoName returns the label of the group Undo would revert, or "".
func (s *Stack) UndoName() string {
	if s.cursor == 0 {
		return ""
	}
	return s.history[s.cursor-1].label
}

// RedoName returns the label of the group Redo would re-apply, or "".
func (s *Stack) RedoName() string {
	if s.cursor >= len(s.history) {
		return ""
	}
	return s.history[s.cursor].label
}

// Count returns the number of committed groups, including undone ones still
// available for redo.
func (s *Stack) Count() int {
	return len(s.history)
}

// truncateRedoTail drops groups above the cursor. Slots are nilled so the
// backing array does not retain dropped groups.
func (s *Stack) truncateRedoTail() {
	if s.cursor == len(s.history) {
		return
	}
	for i := s.cursor; i < len(s.history); i++ {
		s.history[i] = nil
	}
	s.history = s.history[:s.cursor]
}

// ScopedMacro groups every command pushed during its lifetime into a single
// undoable step. Close commits the group; a group that received no commands
// is discarded and fires no listeners.
type ScopedMacro struct {
	stack *Stack
	done  bool
}

// BeginMacro opens a named group on the stack. The caller must Close the
// returned macro (usually via defer) before the next stack operation.
// Panics if a macro is already open: nothing in this codebase nests groups.
func BeginMacro(stack *Stack, label string) *ScopedMacro {
	if stack.working != nil {
		panic("cmnd: macro already open")
	}
	stack.working = &group{label: label}
	return &ScopedMacro{stack: stack}
}

// GrabListener transfers ownership of l to the macro's group. The listener
// fires once when the group commits non-empty, and once per subsequent
// undo/redo replay of the whole group. Panics if l is nil or the macro is
// already closed.
func (m *ScopedMacro) GrabListener(l Listener) {
	if l == nil {
		panic("cmnd: cannot grab nil listener")
	}
	if m.done {
		panic("cmnd: macro already closed")
	}
	m.stack.working.listeners = append(m.stack.working.listeners, l)
}

// Close commits the group. If no commands were pushed during the macro's
// lifetime the group is discarded and no listener fires. Safe to call more
// than once; only the first call has effect.
func (m *ScopedMacro) Close() {
	if m.done {
		return
	}
	m.done = true

	g := m.stack.working
	m.stack.working = nil

	if len(g.cmds) == 0 {
		return
	}

	m.stack.truncateRedoTail()
	m.stack.history = append(m.stack.history, g)
	m.stack.cursor++

	for _, l := range g.listeners {
		l.OnCommitted()
	}
}
