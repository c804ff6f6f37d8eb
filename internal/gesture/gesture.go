// Package gesture turns raw pointer, touch and wheel input over the
// lightbox into navigation calls and preview strip scroll offsets.
//
// All coordinates are pixels. Hosts that work in other units (the terminal
// viewer works in cells) scale before calling in.
//
// Input is scoped to one rendered frame through a Binding. Binding a new
// frame releases the previous binding, and a released binding ignores
// every event, so a gesture that outlives its frame cannot fire twice.
package gesture

import "github.com/marcus/lightbox/internal/models"

// Thresholds
const (
	DragThreshold         = 80 // pointer travel that flips to the next/prev item
	SwipeThreshold        = 100
	TapSlop               = 4 // travel beyond this turns a press into a drag
	PreviewSlack          = 80
	PreviewDragMultiplier = 3
)

// Navigator is the part of the session the controller drives
type Navigator interface {
	Navigate(dir models.Direction) bool
	ToggleControls() bool
}

// Option is a functional option for New
type Option func(*Controller)

// WithDragThreshold overrides the pointer drag threshold
func WithDragThreshold(px int) Option {
	return func(c *Controller) {
		if px > 0 {
			c.dragThreshold = px
		}
	}
}

// WithTapSlop overrides how far a press may travel and still count as a tap
func WithTapSlop(px int) Option {
	return func(c *Controller) {
		if px >= 0 {
			c.tapSlop = px
		}
	}
}

// Controller hands out bindings for rendered frames
type Controller struct {
	nav            Navigator
	dragThreshold  int
	swipeThreshold int
	tapSlop        int

	current *Binding
}

// New creates a controller driving nav
func New(nav Navigator, opts ...Option) *Controller {
	c := &Controller{
		nav:            nav,
		dragThreshold:  DragThreshold,
		swipeThreshold: SwipeThreshold,
		tapSlop:        TapSlop,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TapSlop returns the travel, in pixels, within which a press is a tap
func (c *Controller) TapSlop() int {
	return c.tapSlop
}

// Bind scopes input to the frame with the given generation and releases
// the previous binding. Binding the generation that is already bound
// returns the existing binding unchanged.
func (c *Controller) Bind(generation uint64) *Binding {
	if c.current != nil && !c.current.released && c.current.generation == generation {
		return c.current
	}
	c.Release()
	c.current = &Binding{c: c, generation: generation}
	return c.current
}

// Current returns the live binding, or nil
func (c *Controller) Current() *Binding {
	if c.current == nil || c.current.released {
		return nil
	}
	return c.current
}

// Release ends the current binding, e.g. when the overlay closes
func (c *Controller) Release() {
	if c.current != nil {
		c.current.Release()
		c.current = nil
	}
}

// Binding holds the input state for one rendered frame
type Binding struct {
	c          *Controller
	generation uint64
	released   bool

	// pointer drag over the item
	pressed bool
	armed   bool
	startX  int
	travel  int
	fired   bool

	// touch over the item
	touching    bool
	touchArmed  bool
	touchStart  int
	touchDown   int
	touchTravel int
	swiped      bool

	strip *Strip
}

// Generation returns the frame generation the binding belongs to
func (b *Binding) Generation() uint64 {
	return b.generation
}

// Live reports whether the binding still receives events
func (b *Binding) Live() bool {
	return b != nil && !b.released
}

// Release detaches the binding. Further events are ignored.
func (b *Binding) Release() {
	if b == nil {
		return
	}
	b.released = true
	b.pressed = false
	b.touching = false
	if b.strip != nil {
		b.strip.pressed = false
	}
}

// PointerDown records the press position over the item
func (b *Binding) PointerDown(x int) {
	if !b.Live() {
		return
	}
	b.pressed = true
	b.armed = true
	b.startX = x
	b.travel = 0
	b.fired = false
}

// PointerMove navigates once the press has travelled past the drag
// threshold: left is next, right is prev. Only one navigation fires per
// press. Returns true when it navigated.
func (b *Binding) PointerMove(x int) bool {
	if !b.Live() || !b.pressed {
		return false
	}
	diff := x - b.startX
	b.travel = max(b.travel, abs(diff))
	if !b.armed {
		return false
	}

	var dir models.Direction
	switch {
	case diff < -b.c.dragThreshold:
		dir = models.Next
	case diff > b.c.dragThreshold:
		dir = models.Prev
	default:
		return false
	}

	b.armed = false
	b.fired = true
	return b.c.nav.Navigate(dir)
}

// PointerUp ends the press. A press that neither navigated nor travelled
// past the tap slop is a tap and toggles the controls. Returns true for a
// tap.
func (b *Binding) PointerUp(x int) bool {
	if !b.Live() || !b.pressed {
		return false
	}
	b.travel = max(b.travel, abs(x-b.startX))
	b.pressed = false
	b.armed = false
	if b.fired || b.travel > b.c.tapSlop {
		return false
	}
	return b.c.nav.ToggleControls()
}

// TouchStart records where a touch began
func (b *Binding) TouchStart(x int) {
	if !b.Live() {
		return
	}
	b.touching = true
	b.touchArmed = true
	b.touchStart = x
	b.touchDown = x
	b.touchTravel = 0
	b.swiped = false
}

// TouchMove swipes once the touch has travelled past the swipe threshold
// from its start while moving the same way: left is next, right is prev.
// Returns true when it navigated.
func (b *Binding) TouchMove(x int) bool {
	if !b.Live() || !b.touching {
		return false
	}
	b.touchTravel = max(b.touchTravel, abs(x-b.touchStart))
	if !b.touchArmed {
		return false
	}

	delta := b.touchDown - x
	th := b.c.swipeThreshold

	if x+th < b.touchStart {
		b.touchArmed = false
		if delta > 0 {
			b.swiped = true
			return b.c.nav.Navigate(models.Next)
		}
		return false
	}
	if x-b.touchStart > th {
		b.touchArmed = false
		if delta < 0 {
			b.swiped = true
			return b.c.nav.Navigate(models.Prev)
		}
		return false
	}
	return false
}

// TouchEnd finishes a touch; a touch that stayed put is a tap
func (b *Binding) TouchEnd(x int) bool {
	if !b.Live() || !b.touching {
		return false
	}
	b.touchTravel = max(b.touchTravel, abs(x-b.touchStart))
	b.touching = false
	b.touchArmed = false
	if b.swiped || b.touchTravel > b.c.tapSlop {
		return false
	}
	return b.c.nav.ToggleControls()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
