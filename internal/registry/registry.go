// Package registry harvests lightbox items from an HTML page.
//
// A page marks activatable elements with data-lb-item and describes them
// with data-lb-item-* attributes:
//
//	<img data-lb-item
//	     data-lb-item-group="beach"
//	     data-lb-item-name="Sunset"
//	     data-lb-item-desc="Evening at the pier"
//	     data-lb-item-src="/photos/sunset.jpg">
//
// The scan is one-shot: a Registry never changes after construction, and
// elements added to a page later are not seen.
package registry

import (
	"fmt"
	"io"
	"os"

	"github.com/marcus/lightbox/internal/models"
	"golang.org/x/net/html"
)

// Markup attributes read from the page
const (
	AttrItem  = "data-lb-item"
	AttrGroup = "data-lb-item-group"
	AttrName  = "data-lb-item-name"
	AttrDesc  = "data-lb-item-desc"
	AttrSrc   = "data-lb-item-src"
)

// Registry is the ordered, immutable collection of items found on a page
type Registry struct {
	items []models.MediaItem
}

// New builds a registry from already harvested items. IDs are reassigned
// to encounter order so that identity always matches position.
func New(items []models.MediaItem) *Registry {
	r := &Registry{items: make([]models.MediaItem, len(items))}
	for i, item := range items {
		item.ID = i
		r.items[i] = item
	}
	return r
}

// Scan parses an HTML document and collects every tagged element in
// document order. Only a failure to parse the reader is reported; an
// element missing its source simply has an empty Src.
func Scan(r io.Reader) (*Registry, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}

	var items []models.MediaItem
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if item, ok := itemFromNode(n); ok {
				item.ID = len(items)
				items = append(items, item)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return &Registry{items: items}, nil
}

// ScanFile opens and scans a page on disk
func ScanFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open page: %w", err)
	}
	defer f.Close()

	return Scan(f)
}

// itemFromNode reads the markup contract from an element
func itemFromNode(n *html.Node) (models.MediaItem, bool) {
	attrs := make(map[string]string, len(n.Attr))
	for _, a := range n.Attr {
		if a.Namespace != "" {
			continue
		}
		attrs[a.Key] = a.Val
	}
	if _, ok := attrs[AttrItem]; !ok {
		return models.MediaItem{}, false
	}

	return models.MediaItem{
		Tag:         models.NormalizeTag(n.Data),
		Name:        attrs[AttrName],
		Description: attrs[AttrDesc],
		Src:         attrs[AttrSrc],
		Group:       attrs[AttrGroup],
	}, true
}

// Len returns the number of items
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.items)
}

// Items returns a copy of the items in encounter order
func (r *Registry) Items() []models.MediaItem {
	if r == nil {
		return nil
	}
	out := make([]models.MediaItem, len(r.items))
	copy(out, r.items)
	return out
}

// At returns the item with the given ID
func (r *Registry) At(id int) (models.MediaItem, bool) {
	if r == nil || id < 0 || id >= len(r.items) {
		return models.MediaItem{}, false
	}
	return r.items[id], true
}

// Groups returns the distinct non-empty group names in first-encounter order
func (r *Registry) Groups() []string {
	if r == nil {
		return nil
	}
	seen := make(map[string]bool)
	var names []string
	for _, item := range r.items {
		if item.Group == "" || seen[item.Group] {
			continue
		}
		seen[item.Group] = true
		names = append(names, item.Group)
	}
	return names
}

// Each calls fn for every item in encounter order
func (r *Registry) Each(fn func(models.MediaItem)) {
	if r == nil {
		return
	}
	for _, item := range r.items {
		fn(item)
	}
}
