package modal

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// ListItem is one row of a List section
type ListItem struct {
	ID     string // returned as the action when the row is chosen
	Label  string
	Detail string // muted suffix, e.g. a member count
	Data   any
}

// ListOption is a functional option for List sections
type ListOption func(*listSection)

type listSection struct {
	id           string
	items        []ListItem
	selectedIdx  *int
	maxVisible   int
	scrollOffset int
}

// List creates a scrollable list. selectedIdx is owned by the caller and
// may be nil for a list without selection.
func List(id string, items []ListItem, selectedIdx *int, opts ...ListOption) Section {
	s := &listSection{
		id:          id,
		items:       items,
		selectedIdx: selectedIdx,
		maxVisible:  8,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithMaxVisible sets how many rows show at once
func WithMaxVisible(n int) ListOption {
	return func(s *listSection) {
		if n > 0 {
			s.maxVisible = n
		}
	}
}

func (s *listSection) selected() int {
	if s.selectedIdx == nil {
		return -1
	}
	return *s.selectedIdx
}

func (s *listSection) Render(contentWidth int, focusID, hoverID string) RenderedSection {
	if len(s.items) == 0 {
		return RenderedSection{Content: MutedText.Render("(no items)")}
	}

	visibleCount := min(s.maxVisible, len(s.items))
	selectedIdx := max(0, s.selected())

	// keep the selection in view
	if selectedIdx < s.scrollOffset {
		s.scrollOffset = selectedIdx
	} else if selectedIdx >= s.scrollOffset+visibleCount {
		s.scrollOffset = selectedIdx - visibleCount + 1
	}
	s.scrollOffset = clamp(s.scrollOffset, 0, max(0, len(s.items)-visibleCount))

	listIsFocused := focusID == s.id

	var rows []string
	var hits []FocusableInfo
	if s.scrollOffset > 0 {
		rows = append(rows, MutedText.Render("↑ more above"))
	}

	for i := 0; i < visibleCount; i++ {
		itemIdx := s.scrollOffset + i
		item := s.items[itemIdx]
		isSelected := s.selected() == itemIdx

		style := ListItemNormal
		switch {
		case isSelected && listIsFocused:
			style = ListItemFocused
		case isSelected, item.ID == hoverID:
			style = ListItemSelected
		}

		cursor := "  "
		if isSelected {
			cursor = ListCursor.Render("> ")
		}

		label := item.Label
		if item.Detail != "" {
			label += " " + MutedText.Render(item.Detail)
		}
		label = ansi.Truncate(label, max(1, contentWidth-2), "…")

		hits = append(hits, FocusableInfo{ID: item.ID, OffsetY: len(rows), Width: contentWidth, Height: 1})
		rows = append(rows, cursor+style.Render(label))
	}

	if s.scrollOffset+visibleCount < len(s.items) {
		rows = append(rows, MutedText.Render("↓ more below"))
	}

	// The list is one focus stop; rows are clickable on their own.
	return RenderedSection{
		Content: strings.Join(rows, "\n"),
		Focusables: []FocusableInfo{{
			ID:     s.id,
			Width:  contentWidth,
			Height: len(rows),
		}},
		Hits: hits,
	}
}

func (s *listSection) Update(msg tea.Msg, focusID string) (string, tea.Cmd) {
	if focusID != s.id || s.selectedIdx == nil || len(s.items) == 0 {
		return "", nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return "", nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if *s.selectedIdx > 0 {
			*s.selectedIdx--
		}
	case "down", "j":
		if *s.selectedIdx < len(s.items)-1 {
			*s.selectedIdx++
		}
	case "home", "g":
		*s.selectedIdx = 0
	case "end", "G":
		*s.selectedIdx = len(s.items) - 1
	case "enter":
		if *s.selectedIdx >= 0 && *s.selectedIdx < len(s.items) {
			return s.items[*s.selectedIdx].ID, nil
		}
	}
	return "", nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
