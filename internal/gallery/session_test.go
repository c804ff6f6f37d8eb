package gallery

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/marcus/lightbox/internal/models"
	"github.com/marcus/lightbox/internal/registry"
)

// fakeLock records scroll lock calls
type fakeLock struct {
	locks, unlocks int
}

func (f *fakeLock) LockScroll()   { f.locks++ }
func (f *fakeLock) UnlockScroll() { f.unlocks++ }

// scenarioRegistry is [A(group=x), B(group=x), C(group=y)]
func scenarioRegistry() *registry.Registry {
	return registry.New([]models.MediaItem{
		{Tag: models.TagImage, Name: "A", Src: "a.jpg", Group: "x"},
		{Tag: models.TagImage, Name: "B", Src: "b.jpg", Group: "x"},
		{Tag: models.TagImage, Name: "C", Src: "c.jpg", Group: "y"},
		{Tag: models.TagImage, Name: "Solo", Src: "s.jpg"},
	})
}

func newTestSession(opts models.Options) (*Session, *fakeLock) {
	lock := &fakeLock{}
	return NewSession(NewIndex(scenarioRegistry()), opts, lock), lock
}

func currentName(t *testing.T, s *Session) string {
	t.Helper()
	item, ok := s.Current()
	if !ok {
		t.Fatal("expected a current item")
	}
	return item.Name
}

func TestSessionInitialState(t *testing.T) {
	s, _ := newTestSession(models.DefaultOptions())

	want := State{Position: -1, ControlsVisible: true}
	if diff := cmp.Diff(want, s.State()); diff != "" {
		t.Errorf("initial state mismatch (-want +got):\n%s", diff)
	}
}

func TestSessionGroupScenario(t *testing.T) {
	s, _ := newTestSession(models.DefaultOptions())

	// Activating B resolves [A, B] with B at position 1
	if !s.ActivateID(1) {
		t.Fatal("ActivateID(1) declined")
	}
	st := s.State()
	if !st.Open || st.Group == nil {
		t.Fatalf("expected open grouped state, got %+v", st)
	}
	if st.Group.Len() != 2 || st.Group.Items[0].Name != "A" || st.Group.Items[1].Name != "B" {
		t.Errorf("group = %+v, want [A B]", st.Group.Items)
	}
	if st.Position != 1 {
		t.Errorf("position = %d, want 1", st.Position)
	}

	// Next wraps from 1 to 0
	s.Navigate(models.Next)
	if s.State().Position != 0 || currentName(t, s) != "A" {
		t.Errorf("after next: position %d (%s), want 0 (A)", s.State().Position, currentName(t, s))
	}

	// Back to B, then prev twice: 0 then wraps to 1
	s.Activate(st.Group.Items[1])
	s.Navigate(models.Prev)
	if s.State().Position != 0 {
		t.Errorf("after first prev: position %d, want 0", s.State().Position)
	}
	s.Navigate(models.Prev)
	if s.State().Position != 1 || currentName(t, s) != "B" {
		t.Errorf("after second prev: position %d, want 1", s.State().Position)
	}
}

func TestSessionSingletonGroup(t *testing.T) {
	s, _ := newTestSession(models.DefaultOptions())
	s.ActivateID(2)

	st := s.State()
	if st.Group == nil || st.Group.Len() != 1 {
		t.Fatalf("expected singleton group, got %+v", st.Group)
	}

	// Navigation still acts (and re-renders) but stays at 0
	for _, dir := range []models.Direction{models.Next, models.Prev} {
		if !s.Navigate(dir) {
			t.Errorf("Navigate(%s) declined on singleton group", dir)
		}
		if s.State().Position != 0 || currentName(t, s) != "C" {
			t.Errorf("after %s: position %d, want 0", dir, s.State().Position)
		}
	}
}

func TestSessionUngroupedNeverResolves(t *testing.T) {
	s, _ := newTestSession(models.DefaultOptions())
	s.ActivateID(3)

	st := s.State()
	if !st.Open {
		t.Fatal("expected open")
	}
	if st.Group != nil {
		t.Errorf("ungrouped item resolved a group: %+v", st.Group)
	}
	if st.Position != -1 {
		t.Errorf("position = %d, want -1", st.Position)
	}
	if _, ok := s.Index().Position(3); ok {
		t.Error("ungrouped activation stamped a position")
	}
	if s.Navigate(models.Next) {
		t.Error("Navigate should decline without a group")
	}
}

func TestSessionActivateReplacesGroup(t *testing.T) {
	s, _ := newTestSession(models.DefaultOptions())
	s.ActivateID(0)
	s.ActivateID(3)

	if s.State().Group != nil {
		t.Error("activating an ungrouped item should drop the previous group")
	}
}

func TestSessionClose(t *testing.T) {
	s, lock := newTestSession(models.DefaultOptions())
	s.ActivateID(1)
	s.ToggleControls()

	if !s.State().ScrollLocked || lock.locks != 1 {
		t.Fatalf("expected scroll locked once, got state %v locks %d", s.State().ScrollLocked, lock.locks)
	}

	if !s.Close() {
		t.Fatal("Close declined while open")
	}

	want := State{Position: -1, ControlsVisible: true}
	if diff := cmp.Diff(want, s.State()); diff != "" {
		t.Errorf("state after close mismatch (-want +got):\n%s", diff)
	}
	if lock.unlocks != 1 {
		t.Errorf("unlocks = %d, want 1", lock.unlocks)
	}
	if _, ok := s.Current(); ok {
		t.Error("Current() should report nothing after close")
	}
}

func TestSessionReopenLocksOnce(t *testing.T) {
	s, lock := newTestSession(models.DefaultOptions())
	s.ActivateID(0)
	s.ActivateID(1) // activation while open does not lock again
	s.Close()
	s.ActivateID(2)

	if lock.locks != 2 {
		t.Errorf("locks = %d, want 2", lock.locks)
	}
	if lock.unlocks != 1 {
		t.Errorf("unlocks = %d, want 1", lock.unlocks)
	}
}

func TestSessionOverflowDisabled(t *testing.T) {
	opts := models.DefaultOptions()
	opts.Overflow = false
	s, lock := newTestSession(opts)

	s.ActivateID(0)
	s.Close()
	if lock.locks != 0 || lock.unlocks != 0 {
		t.Errorf("scroll lock touched with overflow disabled: %+v", lock)
	}
}

func TestSessionNilLock(t *testing.T) {
	s := NewSession(NewIndex(scenarioRegistry()), models.DefaultOptions(), nil)
	s.ActivateID(0)
	if !s.State().ScrollLocked {
		t.Error("scroll lock state should be tracked without a host lock")
	}
	s.Close()
}

func TestSessionEscapeWhileClosed(t *testing.T) {
	s, lock := newTestSession(models.DefaultOptions())
	before := s.State()

	if s.Escape() {
		t.Error("Escape should decline while closed")
	}
	if diff := cmp.Diff(before, s.State()); diff != "" {
		t.Errorf("escape changed closed state (-before +after):\n%s", diff)
	}
	if lock.unlocks != 0 {
		t.Error("escape while closed should not touch the scroll lock")
	}
}

func TestSessionEscapeWhileOpen(t *testing.T) {
	s, _ := newTestSession(models.DefaultOptions())
	s.ActivateID(0)
	if !s.Escape() {
		t.Error("Escape should close an open session")
	}
	if s.IsOpen() {
		t.Error("session still open after escape")
	}
}

func TestSessionToggleControls(t *testing.T) {
	s, _ := newTestSession(models.DefaultOptions())

	if s.ToggleControls() {
		t.Error("ToggleControls should decline while closed")
	}

	s.ActivateID(0)
	s.ToggleControls()
	st := s.State()
	if st.ControlsVisible {
		t.Error("controls should be hidden after toggle")
	}
	if st.Position != 0 || st.Item.Name != "A" {
		t.Errorf("toggle changed the item: %+v", st)
	}
	s.ToggleControls()
	if !s.State().ControlsVisible {
		t.Error("controls should be visible after second toggle")
	}
}

func TestSessionSelect(t *testing.T) {
	s, _ := newTestSession(models.DefaultOptions())

	if s.Select(0) {
		t.Error("Select should decline while closed")
	}

	s.ActivateID(1)
	if s.Select(1) {
		t.Error("selecting the current position should be a no-op")
	}
	if s.Select(5) {
		t.Error("selecting outside the group should decline")
	}
	if !s.Select(0) {
		t.Fatal("Select(0) declined")
	}
	if currentName(t, s) != "A" {
		t.Errorf("current = %s, want A", currentName(t, s))
	}
}

func TestSessionActivateUnknownID(t *testing.T) {
	s, _ := newTestSession(models.DefaultOptions())
	if s.ActivateID(42) {
		t.Error("unknown id should be declined")
	}
	if s.IsOpen() {
		t.Error("session opened for unknown id")
	}
}

func TestSessionNavigateUsesSnapshot(t *testing.T) {
	s, _ := newTestSession(models.DefaultOptions())
	s.ActivateID(0)

	before := s.State().Group
	s.Navigate(models.Next)
	if diff := cmp.Diff(before, s.State().Group); diff != "" {
		t.Errorf("navigate changed the group (-before +after):\n%s", diff)
	}
}

func TestSessionStateGroupIsACopy(t *testing.T) {
	s, _ := newTestSession(models.DefaultOptions())
	s.ActivateID(0)

	st := s.State()
	st.Group.Items[1].Src = "changed.jpg"
	st.Group.Name = "changed"

	s.Navigate(models.Next)
	cur, _ := s.Current()
	if cur.Src != "b.jpg" {
		t.Errorf("current src = %q after editing a snapshot, want b.jpg", cur.Src)
	}
	if got := s.State().Group.Name; got != "x" {
		t.Errorf("group name = %q, want x", got)
	}
}

func TestSessionStateIsACopy(t *testing.T) {
	s, _ := newTestSession(models.DefaultOptions())
	s.ActivateID(0)

	st := s.State()
	st.Item.Name = "changed"
	if currentName(t, s) != "A" {
		t.Error("mutating a snapshot changed the session")
	}
}

func TestSessionSubscribe(t *testing.T) {
	s, _ := newTestSession(models.DefaultOptions())

	var kinds []EventKind
	sub := s.Subscribe(func(ev Event) {
		kinds = append(kinds, ev.Kind)
	})

	s.ActivateID(1)
	s.Navigate(models.Prev)
	s.ToggleControls()
	s.Escape()
	s.Escape() // declined, no event

	want := []EventKind{EventOpened, EventNavigated, EventControlsToggled, EventClosed}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}

	sub.Cancel()
	sub.Cancel()
	s.ActivateID(0)
	if len(kinds) != len(want) {
		t.Errorf("cancelled subscriber still notified: %v", kinds)
	}
}

func TestSessionEventCarriesState(t *testing.T) {
	s, _ := newTestSession(models.DefaultOptions())

	var last Event
	s.Subscribe(func(ev Event) { last = ev })

	s.ActivateID(1)
	s.Navigate(models.Next)
	if last.Direction != models.Next {
		t.Errorf("direction = %s, want next", last.Direction)
	}
	if last.State.Position != 0 || last.State.Item == nil || last.State.Item.Name != "A" {
		t.Errorf("event state = %+v", last.State)
	}
}

func TestSessionSubscriberCancelsDuringNotify(t *testing.T) {
	s, _ := newTestSession(models.DefaultOptions())

	calls := 0
	var sub Subscription
	sub = s.Subscribe(func(Event) {
		calls++
		sub.Cancel()
	})
	other := 0
	s.Subscribe(func(Event) { other++ })

	s.ActivateID(0)
	s.Close()

	if calls != 1 {
		t.Errorf("self-cancelling subscriber called %d times, want 1", calls)
	}
	if other != 2 {
		t.Errorf("other subscriber called %d times, want 2", other)
	}
}

func TestSessionLogsTransitions(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := NewSession(NewIndex(scenarioRegistry()), models.DefaultOptions(), nil, WithLogger(logger))

	s.ActivateID(0)
	s.Navigate(models.Next)
	s.Close()

	out := buf.String()
	for _, want := range []string{"lightbox: opened", "lightbox: navigated", "lightbox: closed"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}

func TestEventKindString(t *testing.T) {
	tests := map[EventKind]string{
		EventOpened:          "opened",
		EventNavigated:       "navigated",
		EventControlsToggled: "controls_toggled",
		EventClosed:          "closed",
		EventKind(99):        "unknown",
	}
	for kind, want := range tests {
		if got := kind.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", kind, got, want)
		}
	}
}
