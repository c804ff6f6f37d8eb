// Package render projects a lightbox session into a Frame and renders
// frames as the overlay's HTML fragment.
//
// Rendering holds no state: the same session state always yields the same
// frame. Hosts that need to tell frames apart (to scope gesture input)
// number them themselves.
package render

import (
	"github.com/marcus/lightbox/internal/gallery"
	"github.com/marcus/lightbox/internal/models"
)

// Marker classes an external stylesheet reacts to
const (
	ClassModal  = "modal-lb"
	ClassActive = "active"
	ClassClear  = "clear"
)

// Frame is everything the overlay shows for one session state
type Frame struct {
	Open            bool
	ControlsVisible bool
	Item            *Item
	Description     Description
	Preloader       string
	Nav             *Nav
	Preview         *Preview
}

// Item is the displayed media element
type Item struct {
	Tag      models.Tag
	Src      string
	Name     string
	Position int // -1 when ungrouped
}

// Description is the caption panel
type Description struct {
	Title string
	Text  string
}

// Empty reports whether the panel has nothing to show
func (d Description) Empty() bool {
	return d.Title == "" && d.Text == ""
}

// Nav holds the labels of the navigation arrows
type Nav struct {
	Next string
	Prev string
}

// Preview is the thumbnail strip, one thumb per group member
type Preview struct {
	Group  string
	Thumbs []Thumb
	Active int
}

// Thumb is one preview strip entry
type Thumb struct {
	Position int
	Src      string
	Name     string
	Active   bool
}

// Classes returns the marker classes of the modal root
func (f Frame) Classes() []string {
	classes := []string{ClassModal}
	if f.Open {
		classes = append(classes, ClassActive)
		if !f.ControlsVisible {
			classes = append(classes, ClassClear)
		}
	}
	return classes
}

// Renderer projects session state using the lightbox options
type Renderer struct {
	opts models.Options
}

// New creates a renderer
func New(opts models.Options) *Renderer {
	return &Renderer{opts: opts}
}

// Frame projects st. A closed state yields a frame with no item, no
// arrows and no preview strip. Arrows are present exactly when a group is
// active; the strip additionally requires the preview option.
func (r *Renderer) Frame(st gallery.State) Frame {
	f := Frame{
		Open:            st.Open,
		ControlsVisible: st.ControlsVisible,
	}
	if !st.Open || st.Item == nil {
		return f
	}

	item := *st.Item
	f.Item = &Item{
		Tag:      item.Tag,
		Src:      item.Src,
		Name:     item.Name,
		Position: -1,
	}
	f.Description = Description{Title: item.Name, Text: item.Description}
	f.Preloader = r.opts.Preloader

	if !st.Grouped() {
		return f
	}

	f.Item.Position = st.Position
	f.Nav = &Nav{Next: r.opts.NextLabel(), Prev: r.opts.PrevLabel()}

	if r.opts.Preview {
		p := &Preview{
			Group:  st.Group.Name,
			Thumbs: make([]Thumb, st.Group.Len()),
			Active: st.Position,
		}
		for i, member := range st.Group.Items {
			p.Thumbs[i] = Thumb{
				Position: i,
				Src:      member.Src,
				Name:     member.Name,
				Active:   i == st.Position,
			}
		}
		f.Preview = p
	}
	return f
}
