package cmnd

import "testing"

// probe is a Command that records its lifecycle calls into a shared log.
type probe struct {
	name string
	log  *[]string
}

func (p *probe) Name() string { return p.name }
func (p *probe) Exec()        { *p.log = append(*p.log, p.name+".exec") }
func (p *probe) Undo()        { *p.log = append(*p.log, p.name+".undo") }
func (p *probe) Redo()        { *p.log = append(*p.log, p.name+".redo") }

// listenerProbe records listener callbacks into a shared log.
type listenerProbe struct {
	name string
	log  *[]string
}

func (l *listenerProbe) OnCommitted() { *l.log = append(*l.log, l.name+".committed") }
func (l *listenerProbe) OnUndone()    { *l.log = append(*l.log, l.name+".undone") }
func (l *listenerProbe) OnRedone()    { *l.log = append(*l.log, l.name+".redone") }

func assertLog(t *testing.T, got []string, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("log = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("log[%d] = %q, want %q (full: %v)", i, got[i], want[i], got)
		}
	}
}

// --- Push / Undo / Redo ---

func TestPushExecutesImmediately(t *testing.T) {
	var log []string
	s := NewStack()
	s.Push(&probe{name: "a", log: &log})
	assertLog(t, log, "a.exec")
	if s.Count() != 1 {
		t.Errorf("Count = %d, want 1", s.Count())
	}
}

func TestUndoRedoSingleCommand(t *testing.T) {
	var log []string
	s := NewStack()
	s.Push(&probe{name: "a", log: &log})

	if !s.Undo() {
		t.Fatal("Undo returned false")
	}
	if !s.Redo() {
		t.Fatal("Redo returned false")
	}
	assertLog(t, log, "a.exec", "a.undo", "a.redo")
}

func TestUndoRedoEmptyStack(t *testing.T) {
	s := NewStack()
	if s.Undo() {
		t.Error("Undo on empty stack returned true")
	}
	if s.Redo() {
		t.Error("Redo on empty stack returned true")
	}
}

func TestPushTruncatesRedoTail(t *testing.T) {
	var log []string
	s := NewStack()
	s.Push(&probe{name: "a", log: &log})
	s.Push(&probe{name: "b", log: &log})
	s.Undo()

	s.Push(&probe{name: "c", log: &log})
	if s.Count() != 2 {
		t.Errorf("Count = %d, want 2", s.Count())
	}
	if s.CanRedo() {
		t.Error("CanRedo after truncating push")
	}
	if got := s.UndoName(); got != "c" {
		t.Errorf("UndoName = %q, want %q", got, "c")
	}
}

func TestHistoryNames(t *testing.T) {
	var log []string
	s := NewStack()
	if s.UndoName() != "" || s.RedoName() != "" {
		t.Error("names on empty stack should be empty")
	}
	s.Push(&probe{name: "a", log: &log})
	if got := s.UndoName(); got != "a" {
		t.Errorf("UndoName = %q, want %q", got, "a")
	}
	s.Undo()
	if got := s.RedoName(); got != "a" {
		t.Errorf("RedoName = %q, want %q", got, "a")
	}
}

// --- Handle / coalescing gate ---

func TestIsModifiableTopOnly(t *testing.T) {
	var log []string
	s := NewStack()
	ha := s.Push(&probe{name: "a", log: &log})
	if !s.IsModifiable(ha) {
		t.Fatal("fresh top handle should be modifiable")
	}

	hb := s.Push(&probe{name: "b", log: &log})
	if s.IsModifiable(ha) {
		t.Error("handle below top should be stale")
	}
	if !s.IsModifiable(hb) {
		t.Error("new top handle should be modifiable")
	}
}

func TestIsModifiableInvalidatedByUndoRedo(t *testing.T) {
	var log []string
	s := NewStack()
	h := s.Push(&probe{name: "a", log: &log})

	s.Undo()
	if s.IsModifiable(h) {
		t.Error("handle should be stale after undo")
	}
	s.Redo()
	if s.IsModifiable(h) {
		t.Error("handle should be stale after redo")
	}
}

func TestZeroHandleIsStale(t *testing.T) {
	var log []string
	s := NewStack()
	if s.IsModifiable(Handle{}) {
		t.Error("zero handle should never be modifiable")
	}
	s.Push(&probe{name: "a", log: &log})
	if s.IsModifiable(Handle{}) {
		t.Error("zero handle should never be modifiable")
	}
}

// --- Macros ---

func TestMacroGroupsCommands(t *testing.T) {
	var log []string
	s := NewStack()

	m := BeginMacro(s, "edit")
	s.Push(&probe{name: "a", log: &log})
	s.Push(&probe{name: "b", log: &log})
	m.Close()

	if s.Count() != 1 {
		t.Fatalf("Count = %d, want 1", s.Count())
	}
	if got := s.UndoName(); got != "edit" {
		t.Errorf("UndoName = %q, want %q", got, "edit")
	}

	s.Undo()
	s.Redo()
	assertLog(t, log,
		"a.exec", "b.exec",
		"b.undo", "a.undo", // reverse order
		"a.redo", "b.redo",
	)
}

func TestMacroEmptyDiscarded(t *testing.T) {
	var log []string
	s := NewStack()

	m := BeginMacro(s, "noop")
	m.GrabListener(&listenerProbe{name: "l", log: &log})
	m.Close()

	if s.Count() != 0 {
		t.Errorf("Count = %d, want 0", s.Count())
	}
	assertLog(t, log) // no listener fired
}

func TestMacroListenersFireOncePerCommitAndReplay(t *testing.T) {
	var log []string
	s := NewStack()

	m := BeginMacro(s, "edit")
	m.GrabListener(&listenerProbe{name: "l1", log: &log})
	m.GrabListener(&listenerProbe{name: "l2", log: &log})
	s.Push(&probe{name: "a", log: &log})
	m.Close()

	s.Undo()
	s.Redo()
	assertLog(t, log,
		"a.exec",
		"l1.committed", "l2.committed", // registration order, after commit
		"a.undo", "l1.undone", "l2.undone",
		"a.redo", "l1.redone", "l2.redone",
	)
}

func TestMacroCommitTruncatesRedoTail(t *testing.T) {
	var log []string
	s := NewStack()
	s.Push(&probe{name: "a", log: &log})
	s.Undo()

	m := BeginMacro(s, "edit")
	s.Push(&probe{name: "b", log: &log})
	m.Close()

	if s.Count() != 1 {
		t.Errorf("Count = %d, want 1", s.Count())
	}
	if got := s.UndoName(); got != "edit" {
		t.Errorf("UndoName = %q, want %q", got, "edit")
	}
}

func TestMacroCloseIdempotent(t *testing.T) {
	var log []string
	s := NewStack()
	m := BeginMacro(s, "edit")
	s.Push(&probe{name: "a", log: &log})
	m.Close()
	m.Close()
	if s.Count() != 1 {
		t.Errorf("Count = %d, want 1", s.Count())
	}
}

func TestNestedMacroPanics(t *testing.T) {
	s := NewStack()
	BeginMacro(s, "outer")
	defer func() {
		if recover() == nil {
			t.Error("nested BeginMacro should panic")
		}
	}()
	BeginMacro(s, "inner")
}

func TestHandleSurvivesMacroCommit(t *testing.T) {
	// A drag gesture pushes inside a macro and keeps coalescing against the
	// handle on later ticks, after the macro has closed.
	var log []string
	s := NewStack()

	m := BeginMacro(s, "edit")
	h := s.Push(&probe{name: "a", log: &log})
	m.Close()

	if !s.IsModifiable(h) {
		t.Error("handle should stay modifiable across its own macro commit")
	}
}

// --- Benchmarks ---

func BenchmarkPushUndoRedo(b *testing.B) {
	var log []string
	s := NewStack()
	b.ReportAllocs()
	for b.Loop() {
		log = log[:0]
		s.Push(&probe{name: "a", log: &log})
		s.Undo()
		s.Redo()
	}
}
