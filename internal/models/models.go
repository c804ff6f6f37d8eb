package models

import "strings"

// Tag is the element name an item was harvested from. It decides whether
// the overlay renders an image or a video element.
type Tag string

const (
	TagImage Tag = "img"
	TagVideo Tag = "video"
)

// IsValidTag returns true for the tags the overlay knows how to render
func IsValidTag(t Tag) bool {
	return t == TagImage || t == TagVideo
}

// NormalizeTag lowercases an element name into a Tag
func NormalizeTag(name string) Tag {
	return Tag(strings.ToLower(strings.TrimSpace(name)))
}

// Label returns a short display label for the tag
func (t Tag) Label() string {
	switch t {
	case TagImage:
		return "image"
	case TagVideo:
		return "video"
	default:
		if t == "" {
			return "element"
		}
		return string(t)
	}
}

// MediaItem is one activatable element harvested from a page.
// ID is the encounter order in the page and doubles as the item's identity.
type MediaItem struct {
	ID          int    `json:"id"`
	Tag         Tag    `json:"tag"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Src         string `json:"src,omitempty"`
	Group       string `json:"group,omitempty"`
}

// Grouped reports whether activating the item resolves a group.
// Only a non-empty group name counts.
func (i MediaItem) Grouped() bool {
	return i.Group != ""
}

// Title returns the display name, falling back to the source path
func (i MediaItem) Title() string {
	if i.Name != "" {
		return i.Name
	}
	if i.Src != "" {
		return i.Src
	}
	return "(untitled " + i.Tag.Label() + ")"
}

// Direction is a navigation step within a group
type Direction int

const (
	Next Direction = iota
	Prev
)

func (d Direction) String() string {
	if d == Prev {
		return "prev"
	}
	return "next"
}

// ParseDirection accepts "next"/"prev" (and their short forms)
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(s) {
	case "next", "n", "right":
		return Next, true
	case "prev", "previous", "p", "left":
		return Prev, true
	}
	return Next, false
}

// Default arrow glyphs. The left option feeds the "next" control and the
// right option feeds the "prev" control, matching the markup hosts style.
const (
	DefaultArrowLeft  = "\u203a" // ›
	DefaultArrowRight = "\u2039" // ‹
)

// Options configures the lightbox
type Options struct {
	Preview    bool   `json:"preview"`     // render the thumbnail strip
	Preloader  string `json:"preloader"`   // loading indicator content, empty = none
	Overflow   bool   `json:"overflow"`    // lock page scroll while open
	ArrowLeft  string `json:"arrow_left"`  // label for the next control
	ArrowRight string `json:"arrow_right"` // label for the prev control
}

// DefaultOptions returns the options used when nothing is configured
func DefaultOptions() Options {
	return Options{
		Preview:  true,
		Overflow: true,
	}
}

// NextLabel returns the label for the next control
func (o Options) NextLabel() string {
	if o.ArrowLeft == "" {
		return DefaultArrowLeft
	}
	return o.ArrowLeft
}

// PrevLabel returns the label for the prev control
func (o Options) PrevLabel() string {
	if o.ArrowRight == "" {
		return DefaultArrowRight
	}
	return o.ArrowRight
}
