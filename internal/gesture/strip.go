package gesture

// Strip is the scroll state of the preview strip. ClientWidth is the
// visible width and ScrollWidth the width of all thumbnails together.
type Strip struct {
	ClientWidth int
	ScrollWidth int
	ScrollLeft  int

	pressed     bool
	pressX      int
	pressScroll int
}

// Interactive reports whether the thumbnails overflow the visible width by
// more than the slack. A strip that does not overflow is centered and
// ignores wheel and drag input.
func (s *Strip) Interactive() bool {
	return s.ClientWidth+PreviewSlack < s.ScrollWidth
}

// MaxScroll returns the largest valid ScrollLeft
func (s *Strip) MaxScroll() int {
	return max(0, s.ScrollWidth-s.ClientWidth)
}

func (s *Strip) setScroll(v int) {
	s.ScrollLeft = min(max(v, 0), s.MaxScroll())
}

// Center scrolls so that the span [offset, offset+width) sits in the
// middle of the visible area
func (s *Strip) Center(offset, width int) {
	s.setScroll(offset + width/2 - s.ClientWidth/2)
}

// SetStrip attaches preview strip metrics to the binding and returns the
// strip. The strip shares the binding's lifetime.
func (b *Binding) SetStrip(clientWidth, scrollWidth, scrollLeft int) *Strip {
	if !b.Live() {
		return nil
	}
	b.strip = &Strip{ClientWidth: clientWidth, ScrollWidth: scrollWidth}
	b.strip.setScroll(scrollLeft)
	return b.strip
}

// Strip returns the attached preview strip, or nil
func (b *Binding) Strip() *Strip {
	if !b.Live() {
		return nil
	}
	return b.strip
}

func (b *Binding) interactiveStrip() *Strip {
	s := b.Strip()
	if s == nil || !s.Interactive() {
		return nil
	}
	return s
}

// Wheel maps a vertical wheel delta onto horizontal strip scrolling.
// Returns true when the offset changed.
func (b *Binding) Wheel(dy int) bool {
	s := b.interactiveStrip()
	if s == nil {
		return false
	}
	before := s.ScrollLeft
	s.setScroll(s.ScrollLeft + dy)
	return s.ScrollLeft != before
}

// StripPress starts a drag-to-scroll over the strip
func (b *Binding) StripPress(x int) {
	s := b.interactiveStrip()
	if s == nil {
		return
	}
	s.pressed = true
	s.pressX = x
	s.pressScroll = s.ScrollLeft
}

// StripMove scrolls the strip by three times the pointer travel since the
// press, in the opposite direction. Returns true when the offset changed.
func (b *Binding) StripMove(x int) bool {
	s := b.interactiveStrip()
	if s == nil || !s.pressed {
		return false
	}
	before := s.ScrollLeft
	walk := (x - s.pressX) * PreviewDragMultiplier
	s.setScroll(s.pressScroll - walk)
	return s.ScrollLeft != before
}

// StripRelease ends a strip drag. It also covers the pointer leaving the
// strip.
func (b *Binding) StripRelease() {
	if s := b.Strip(); s != nil {
		s.pressed = false
	}
}
