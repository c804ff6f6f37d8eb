package gallery

import (
	"testing"

	"github.com/marcus/lightbox/internal/models"
	"github.com/marcus/lightbox/internal/registry"
)

// sampleRegistry is A(x), B(x), C(y) with a loose item and a later x member
func sampleRegistry() *registry.Registry {
	return registry.New([]models.MediaItem{
		{Tag: models.TagImage, Name: "A", Src: "a.jpg", Group: "x"},
		{Tag: models.TagImage, Name: "B", Src: "b.jpg", Group: "x"},
		{Tag: models.TagVideo, Name: "C", Src: "c.mp4", Group: "y"},
		{Tag: models.TagImage, Name: "Loose", Src: "l.jpg"},
		{Tag: models.TagImage, Name: "D", Src: "d.jpg", Group: "x"},
	})
}

func TestResolvePreservesOrder(t *testing.T) {
	idx := NewIndex(sampleRegistry())

	g := idx.Resolve("x")
	if g.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", g.Len())
	}

	wantNames := []string{"A", "B", "D"}
	lastID := -1
	for i, item := range g.Items {
		if item.Name != wantNames[i] {
			t.Errorf("member %d = %q, want %q", i, item.Name, wantNames[i])
		}
		if item.ID <= lastID {
			t.Errorf("member %d out of registry order (id %d after %d)", i, item.ID, lastID)
		}
		lastID = item.ID
	}
}

func TestResolveAssignsContiguousPositions(t *testing.T) {
	idx := NewIndex(sampleRegistry())

	for _, name := range []string{"x", "y"} {
		g := idx.Resolve(name)
		seen := make(map[int]bool)
		for n, item := range g.Items {
			pos, ok := idx.Position(item.ID)
			if !ok {
				t.Fatalf("group %s: no position for %s", name, item.Name)
			}
			if pos != n {
				t.Errorf("group %s: %s at position %d, want %d", name, item.Name, pos, n)
			}
			if seen[pos] {
				t.Errorf("group %s: position %d repeated", name, pos)
			}
			seen[pos] = true
		}
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	idx := NewIndex(sampleRegistry())
	first := idx.Resolve("x")
	second := idx.Resolve("x")

	if first.Len() != second.Len() {
		t.Fatalf("lengths differ: %d vs %d", first.Len(), second.Len())
	}
	for i := range first.Items {
		if first.Items[i] != second.Items[i] {
			t.Errorf("member %d differs: %+v vs %+v", i, first.Items[i], second.Items[i])
		}
	}
}

func TestResolveEmpty(t *testing.T) {
	idx := NewIndex(sampleRegistry())

	if g := idx.Resolve(""); g.Len() != 0 {
		t.Errorf("Resolve(\"\") returned %d items", g.Len())
	}
	if g := idx.Resolve("nobody"); g.Len() != 0 {
		t.Errorf("Resolve(nobody) returned %d items", g.Len())
	}
	if _, ok := idx.Position(3); ok {
		t.Error("ungrouped item should have no position")
	}
}

func TestResolveDoesNotTouchRegistry(t *testing.T) {
	reg := sampleRegistry()
	before := reg.Items()
	NewIndex(reg).Resolve("x")

	for i, item := range reg.Items() {
		if item != before[i] {
			t.Errorf("registry item %d changed: %+v -> %+v", i, before[i], item)
		}
	}
}

func TestGroupAccessors(t *testing.T) {
	g := NewIndex(sampleRegistry()).Resolve("x")

	if item, ok := g.At(1); !ok || item.Name != "B" {
		t.Errorf("At(1) = %+v, %v", item, ok)
	}
	if _, ok := g.At(3); ok {
		t.Error("At(3) should be out of range")
	}
	if pos, ok := g.Position(4); !ok || pos != 2 {
		t.Errorf("Position(4) = %d, %v; want 2, true", pos, ok)
	}
	if _, ok := g.Position(2); ok {
		t.Error("C is not in group x")
	}

	var nilGroup *Group
	if nilGroup.Len() != 0 {
		t.Error("nil group should be empty")
	}
}
