package viewer

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/lightbox/internal/models"
	"github.com/marcus/lightbox/pkg/viewer/mouse"
)

// wheelCols is how far one wheel notch scrolls the preview strip
const wheelCols = 4

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	m.status = ""

	if m.modal != nil {
		action, cmd := m.modal.HandleKey(msg)
		m.handleModalAction(action)
		return cmd
	}

	if m.filtering {
		return m.handleFilterKey(msg)
	}

	if m.session.IsOpen() {
		switch {
		case key.Matches(msg, keys.Next):
			m.session.Navigate(models.Next)
		case key.Matches(msg, keys.Prev):
			m.session.Navigate(models.Prev)
		case key.Matches(msg, keys.Toggle):
			m.session.ToggleControls()
		case key.Matches(msg, keys.Close):
			m.session.Escape()
		case key.Matches(msg, keys.Help):
			m.openHelp()
		case key.Matches(msg, keys.Up):
			m.desc.LineUp(1)
		case key.Matches(msg, keys.Down):
			m.desc.LineDown(1)
		case key.Matches(msg, keys.Copy), key.Matches(msg, keys.CopyMarkdown):
			if item, ok := m.session.Current(); ok {
				m.copyItem(item, key.Matches(msg, keys.CopyMarkdown))
			}
		}
		return nil
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return tea.Quit
	case key.Matches(msg, keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, keys.Activate):
		m.activateRow(m.cursor)
	case key.Matches(msg, keys.Filter):
		m.filtering = true
		return m.filter.Focus()
	case key.Matches(msg, keys.Groups):
		m.openGroups()
	case key.Matches(msg, keys.Help):
		m.openHelp()
	case key.Matches(msg, keys.Copy), key.Matches(msg, keys.CopyMarkdown):
		if m.cursor < len(m.visible) {
			item, _ := m.reg.At(m.visible[m.cursor])
			m.copyItem(item, key.Matches(msg, keys.CopyMarkdown))
		}
	case key.Matches(msg, keys.Close):
		if m.filter.Value() != "" {
			m.filter.SetValue("")
			m.applyFilter()
		}
	}
	return nil
}

func (m *Model) handleFilterKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.applyFilter()
		return nil
	case "enter":
		m.filtering = false
		m.filter.Blur()
		m.clampList()
		return nil
	}

	var cmd tea.Cmd
	before := m.filter.Value()
	m.filter, cmd = m.filter.Update(msg)
	if m.filter.Value() != before {
		m.applyFilter()
	}
	return cmd
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.modal != nil {
		action, cmd := m.modal.HandleMouse(msg, m.mouse)
		m.handleModalAction(action)
		return cmd
	}

	action := m.mouse.HandleMouse(msg)
	if m.session.IsOpen() {
		m.handleOverlayMouse(action)
		return nil
	}
	m.handleListMouse(action)
	return nil
}

func (m *Model) handleListMouse(action mouse.MouseAction) {
	switch {
	case action.IsScroll():
		m.scrollList(action.ScrollDelta())
	case action.Type == mouse.ActionClick || action.Type == mouse.ActionDoubleClick:
		if action.Region != nil && action.Region.ID == regionRow {
			if row, ok := action.Region.Data.(int); ok {
				m.activateRow(row)
			}
		}
	}
}

// handleOverlayMouse routes mouse input over the open overlay. Presses on
// the item and the strip start drags that feed the gesture binding of the
// current frame.
func (m *Model) handleOverlayMouse(action mouse.MouseAction) {
	b := m.gestures.Current()

	switch action.Type {
	case mouse.ActionClick, mouse.ActionDoubleClick:
		if action.Region == nil {
			return
		}
		switch action.Region.ID {
		case regionNext:
			m.session.Navigate(models.Next)
		case regionPrev:
			m.session.Navigate(models.Prev)
		case regionClose, regionBackdrop:
			m.session.Close()
		case regionItem:
			m.mouse.StartDrag(action.X, action.Y, regionItem, 0)
			b.PointerDown(m.px(action.X))
		case regionThumb, regionStrip:
			m.thumbPress = -1
			if pos, ok := action.Region.Data.(int); ok {
				m.thumbPress = pos
			}
			m.mouse.StartDrag(action.X, action.Y, regionStrip, 0)
			b.StripPress(m.px(action.X))
		}

	case mouse.ActionDrag:
		switch action.DragRegion {
		case regionItem:
			b.PointerMove(m.px(action.X))
		case regionStrip:
			b.StripMove(m.px(action.X))
		}

	case mouse.ActionDragEnd:
		switch action.DragRegion {
		case regionItem:
			b.PointerUp(m.px(action.X))
		case regionStrip:
			b.StripRelease()
			if m.thumbPress >= 0 && abs(m.px(action.DragDX)) <= m.gestures.TapSlop() {
				m.session.Select(m.thumbPress)
			}
			m.thumbPress = -1
		}

	case mouse.ActionScrollUp, mouse.ActionScrollDown, mouse.ActionScrollLeft, mouse.ActionScrollRight:
		region := ""
		if action.Region != nil {
			region = action.Region.ID
		}
		switch region {
		case regionStrip, regionThumb:
			b.Wheel(action.ScrollDelta() * m.px(wheelCols))
		case regionDesc:
			if action.ScrollDelta() < 0 {
				m.desc.LineUp(1)
			} else {
				m.desc.LineDown(1)
			}
		default:
			m.scrollList(action.ScrollDelta())
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
