package viewer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/sahilm/fuzzy"
)

const regionRow = "row"

// itemSource adapts the registry to fuzzy matching over item titles
type itemSource []string

func (s itemSource) String(i int) string { return s[i] }
func (s itemSource) Len() int            { return len(s) }

// applyFilter rebuilds the visible rows from the filter query. An empty
// query shows every item in page order; otherwise best matches come first.
func (m *Model) applyFilter() {
	items := m.reg.Items()
	query := strings.TrimSpace(m.filter.Value())

	m.visible = m.visible[:0]
	if query == "" {
		for _, item := range items {
			m.visible = append(m.visible, item.ID)
		}
	} else {
		titles := make(itemSource, len(items))
		for i, item := range items {
			titles[i] = item.Title() + " " + item.Group
		}
		for _, match := range fuzzy.FindFrom(query, titles) {
			m.visible = append(m.visible, items[match.Index].ID)
		}
	}
	m.cursor = 0
	m.offset = 0
}

func (m Model) listHeight() int {
	h := m.height - 2 // header and help line
	if m.filtering || m.filter.Value() != "" {
		h--
	}
	return max(1, h)
}

func (m *Model) clampList() {
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	h := m.listHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	} else if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
	m.offset = min(max(m.offset, 0), max(0, len(m.visible)-h))
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampList()
}

// scrollList moves the window without moving the cursor past it. It is
// what the wheel does to the page behind the overlay, so it honours the
// scroll lock.
func (m *Model) scrollList(delta int) bool {
	if m.scroll.locked {
		return false
	}
	before := m.offset
	m.offset = min(max(m.offset+delta, 0), max(0, len(m.visible)-m.listHeight()))
	if m.cursor < m.offset {
		m.cursor = m.offset
	} else if m.cursor >= m.offset+m.listHeight() {
		m.cursor = m.offset + m.listHeight() - 1
	}
	return m.offset != before
}

func (m *Model) activateRow(row int) {
	if row < 0 || row >= len(m.visible) {
		return
	}
	m.cursor = row
	m.clampList()
	m.session.ActivateID(m.visible[row])
}

func (m Model) renderList() string {
	var lines []string

	header := headerStyle.Render("lightbox")
	if m.cfg.Title != "" {
		header += " " + mutedStyle.Render(m.cfg.Title)
	}
	header += mutedStyle.Render(fmt.Sprintf(" · %d items", m.reg.Len()))
	if groups := len(m.reg.Groups()); groups > 0 {
		header += mutedStyle.Render(fmt.Sprintf(" in %d groups", groups))
	}
	lines = append(lines, ansi.Truncate(header, m.width, "…"))

	if m.filtering || m.filter.Value() != "" {
		lines = append(lines, m.filter.View())
	}

	h := m.listHeight()
	switch {
	case m.reg.Len() == 0:
		lines = append(lines, mutedStyle.Render("  no data-lb-item elements on this page"))
	case len(m.visible) == 0:
		lines = append(lines, mutedStyle.Render("  no matches"))
	}

	for row := m.offset; row < len(m.visible) && row < m.offset+h; row++ {
		item, _ := m.reg.At(m.visible[row])

		line := fmt.Sprintf("%3d  %-6s %s", item.ID, item.Tag.Label(), item.Title())
		if item.Grouped() {
			line += "  " + groupStyle.Render("@"+item.Group)
		}
		line = ansi.Truncate(line, max(1, m.width-2), "…")

		style := rowStyle
		cursor := "  "
		if row == m.cursor {
			style = rowSelectedStyle
			cursor = "> "
		}
		m.mouse.HitMap.AddRect(regionRow, 0, len(lines), m.width, 1, row)
		lines = append(lines, cursor+style.Render(line))
	}

	for len(lines) < m.height-1 {
		lines = append(lines, "")
	}
	if m.status != "" {
		lines = append(lines, statusStyle.Render(ansi.Truncate(m.status, max(1, m.width), "…")))
	} else {
		lines = append(lines, m.help.View(listKeys{keys}))
	}
	return strings.Join(lines, "\n")
}
