package gallery

import (
	"io"
	"log/slog"
	"slices"

	"github.com/marcus/lightbox/internal/models"
)

// ScrollLocker is the host surface that stops scrolling behind the overlay
type ScrollLocker interface {
	LockScroll()
	UnlockScroll()
}

// State is a snapshot of the session. Position is only meaningful when
// Group is set and is -1 otherwise.
type State struct {
	Open            bool
	Item            *models.MediaItem
	Group           *Group
	Position        int
	ControlsVisible bool
	ScrollLocked    bool
}

// Grouped reports whether a group is active
func (st State) Grouped() bool {
	return st.Group != nil
}

// Session is the overlay state for one page
type Session struct {
	index  *Index
	opts   models.Options
	lock   ScrollLocker
	logger *slog.Logger

	open            bool
	item            *models.MediaItem
	group           *Group
	position        int
	controlsVisible bool
	scrollLocked    bool

	subs      []subscriber
	nextSubID uint64
}

// SessionOption is a functional option for NewSession
type SessionOption func(*Session)

// WithLogger sets the logger used for transition debug logs
func WithLogger(l *slog.Logger) SessionOption {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSession creates the closed session for a page. lock may be nil when
// the host has nothing to lock.
func NewSession(idx *Index, opts models.Options, lock ScrollLocker, sessOpts ...SessionOption) *Session {
	s := &Session{
		index:           idx,
		opts:            opts,
		lock:            lock,
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		position:        -1,
		controlsVisible: true,
	}
	for _, opt := range sessOpts {
		opt(s)
	}
	return s
}

// Options returns the options the session was built with
func (s *Session) Options() models.Options {
	return s.opts
}

// Index returns the group index the session resolves through
func (s *Session) Index() *Index {
	return s.index
}

// IsOpen returns true while the overlay is shown
func (s *Session) IsOpen() bool {
	return s.open
}

// State returns a snapshot of the session
func (s *Session) State() State {
	st := State{
		Open:            s.open,
		Position:        -1,
		ControlsVisible: s.controlsVisible,
		ScrollLocked:    s.scrollLocked,
	}
	if s.item != nil {
		item := *s.item
		st.Item = &item
	}
	if s.group != nil {
		g := *s.group
		g.Items = slices.Clone(g.Items)
		st.Group = &g
		st.Position = s.position
	}
	return st
}

// Current returns the displayed item
func (s *Session) Current() (models.MediaItem, bool) {
	if !s.open || s.item == nil {
		return models.MediaItem{}, false
	}
	return *s.item, true
}

// Activate opens the overlay on item. A grouped item resolves its group
// afresh and the session starts at the item's position in it; any other
// item opens alone.
func (s *Session) Activate(item models.MediaItem) {
	s.group = nil
	s.position = -1

	if item.Grouped() {
		g := s.index.Resolve(item.Group)
		if pos, ok := g.Position(item.ID); ok {
			s.group = &g
			s.position = pos
		}
	}

	s.item = &item
	s.open = true
	if s.opts.Overflow && !s.scrollLocked {
		s.scrollLocked = true
		if s.lock != nil {
			s.lock.LockScroll()
		}
	}

	s.logger.Debug("lightbox: opened", "item", item.ID, "group", item.Group, "position", s.position)
	s.notify(EventOpened, models.Next)
}

// ActivateID activates the registry item with the given ID. Unknown IDs
// are declined.
func (s *Session) ActivateID(id int) bool {
	item, ok := s.index.Registry().At(id)
	if !ok {
		return false
	}
	s.Activate(item)
	return true
}

// Navigate moves one step inside the active group, wrapping at the ends.
// The group snapshot taken at activation is used as is. Returns false when
// the overlay is closed or shows an ungrouped item.
func (s *Session) Navigate(dir models.Direction) bool {
	if !s.open || s.group == nil || s.group.Len() == 0 {
		return false
	}
	pos := Step(dir, s.group.Len(), s.position)
	s.show(pos)
	s.logger.Debug("lightbox: navigated", "direction", dir.String(), "position", pos)
	s.notify(EventNavigated, dir)
	return true
}

// Select jumps to a position in the active group. Selecting the current
// position or a position outside the group does nothing.
func (s *Session) Select(pos int) bool {
	if !s.open || s.group == nil || pos == s.position {
		return false
	}
	if _, ok := s.group.At(pos); !ok {
		return false
	}
	dir := models.Next
	if pos < s.position {
		dir = models.Prev
	}
	s.show(pos)
	s.logger.Debug("lightbox: selected", "position", pos)
	s.notify(EventNavigated, dir)
	return true
}

func (s *Session) show(pos int) {
	item, _ := s.group.At(pos)
	s.item = &item
	s.position = pos
}

// ToggleControls flips controls visibility while open
func (s *Session) ToggleControls() bool {
	if !s.open {
		return false
	}
	s.controlsVisible = !s.controlsVisible
	s.notify(EventControlsToggled, models.Next)
	return true
}

// Close resets the session to closed: the item, group and position are
// cleared, controls are shown again and page scrolling is restored.
func (s *Session) Close() bool {
	if !s.open {
		return false
	}
	s.open = false
	s.item = nil
	s.group = nil
	s.position = -1
	s.controlsVisible = true
	if s.scrollLocked {
		s.scrollLocked = false
		if s.lock != nil {
			s.lock.UnlockScroll()
		}
	}
	s.logger.Debug("lightbox: closed")
	s.notify(EventClosed, models.Next)
	return true
}

// Escape closes the overlay when it is open and is a no-op otherwise
func (s *Session) Escape() bool {
	if !s.open {
		return false
	}
	return s.Close()
}
