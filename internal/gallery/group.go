package gallery

import (
	"github.com/marcus/lightbox/internal/models"
	"github.com/marcus/lightbox/internal/registry"
)

// Group is an ordered snapshot of the items sharing a group name.
// The Nth item sits at position N.
type Group struct {
	Name  string
	Items []models.MediaItem
}

// Len returns the number of members
func (g *Group) Len() int {
	if g == nil {
		return 0
	}
	return len(g.Items)
}

// At returns the member at pos
func (g *Group) At(pos int) (models.MediaItem, bool) {
	if g == nil || pos < 0 || pos >= len(g.Items) {
		return models.MediaItem{}, false
	}
	return g.Items[pos], true
}

// Position returns the position of the item with the given ID
func (g *Group) Position(id int) (int, bool) {
	if g == nil {
		return -1, false
	}
	for i, item := range g.Items {
		if item.ID == id {
			return i, true
		}
	}
	return -1, false
}

// Index derives groups from a registry and remembers each grouped item's
// position. Positions live here rather than on the items, which stay
// read-only.
type Index struct {
	reg       *registry.Registry
	positions map[int]int
}

// NewIndex creates an index over reg
func NewIndex(reg *registry.Registry) *Index {
	return &Index{
		reg:       reg,
		positions: make(map[int]int),
	}
}

// Registry returns the registry the index reads from
func (x *Index) Registry() *registry.Registry {
	return x.reg
}

// Resolve filters the registry by group name, preserving encounter order,
// and refreshes the stored positions of the members. An empty name or a
// name nobody carries resolves to an empty group.
func (x *Index) Resolve(name string) Group {
	g := Group{Name: name}
	if name == "" {
		return g
	}
	x.reg.Each(func(item models.MediaItem) {
		if item.Group != name {
			return
		}
		x.positions[item.ID] = len(g.Items)
		g.Items = append(g.Items, item)
	})
	return g
}

// Position returns the last position stamped for an item. Items whose
// group has never been resolved have none.
func (x *Index) Position(id int) (int, bool) {
	pos, ok := x.positions[id]
	return pos, ok
}
