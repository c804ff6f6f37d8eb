package modal

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/lightbox/pkg/viewer/mouse"
)

// Region IDs the modal registers around its sections
const (
	RegionBackdrop = "modal-backdrop"
	RegionBody     = "modal-body"
)

// ActionCancel is returned for Esc and, when enabled, backdrop clicks
const ActionCancel = "cancel"

const (
	defaultWidth = 50
	minWidth     = 20
)

// Variant selects the modal's accent color
type Variant int

const (
	VariantDefault Variant = iota
	VariantInfo
)

// FocusableInfo describes a clickable area inside a section, relative to
// the section's top-left corner
type FocusableInfo struct {
	ID      string
	OffsetX int
	OffsetY int
	Width   int
	Height  int
}

// RenderedSection is a section's output for one render. Focusables take
// part in Tab order; Hits are only clickable and report their ID as the
// action.
type RenderedSection struct {
	Content    string
	Focusables []FocusableInfo
	Hits       []FocusableInfo
}

// Section is one block of modal content
type Section interface {
	Render(contentWidth int, focusID, hoverID string) RenderedSection
	Update(msg tea.Msg, focusID string) (string, tea.Cmd)
}

// hitData is stored on registered regions
type hitData struct {
	focusable bool
	action    bool
}

// Option is a functional option for New
type Option func(*Modal)

// WithWidth sets the modal width including its border
func WithWidth(w int) Option {
	return func(m *Modal) {
		if w > 0 {
			m.width = w
		}
	}
}

// WithVariant sets the accent color
func WithVariant(v Variant) Option {
	return func(m *Modal) { m.variant = v }
}

// WithHints shows or hides the keyboard hint line
func WithHints(show bool) Option {
	return func(m *Modal) { m.showHints = show }
}

// WithPrimaryAction sets the action Enter returns when nothing focused
// handles it
func WithPrimaryAction(actionID string) Option {
	return func(m *Modal) { m.primaryAction = actionID }
}

// WithCloseOnBackdropClick makes clicks outside the body return ActionCancel
func WithCloseOnBackdropClick(close bool) Option {
	return func(m *Modal) { m.closeOnBackdrop = close }
}

// Modal is a declarative dialog
type Modal struct {
	title           string
	width           int
	variant         Variant
	showHints       bool
	primaryAction   string
	closeOnBackdrop bool

	sections []Section

	focusIDs    []string
	actionIDs   map[string]bool
	focusIdx    int
	hoverID     string
	focusPinned string // focus requested before the first render
}

// New creates a modal with the given title
func New(title string, opts ...Option) *Modal {
	m := &Modal{
		title:     title,
		width:     defaultWidth,
		showHints: true,
		focusIdx:  -1,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AddSection appends a section and returns the modal for chaining
func (m *Modal) AddSection(s Section) *Modal {
	m.sections = append(m.sections, s)
	return m
}

// Title returns the modal title
func (m *Modal) Title() string { return m.title }

// FocusedID returns the focused element, or ""
func (m *Modal) FocusedID() string {
	if m.focusIdx < 0 || m.focusIdx >= len(m.focusIDs) {
		return m.focusPinned
	}
	return m.focusIDs[m.focusIdx]
}

// SetFocus focuses the element with id. Unknown ids are kept until the
// next render in case the element appears then.
func (m *Modal) SetFocus(id string) {
	for i, fid := range m.focusIDs {
		if fid == id {
			m.focusIdx = i
			m.focusPinned = ""
			return
		}
	}
	m.focusPinned = id
}

func (m *Modal) borderColor() lipgloss.Color {
	if m.variant == VariantInfo {
		return Info
	}
	return Primary
}

// Render draws the modal centered on a screenW x screenH canvas and
// registers its regions on handler. handler may be nil.
func (m *Modal) Render(screenW, screenH int, handler *mouse.Handler) string {
	width := m.width
	if screenW > 0 && width > screenW-4 {
		width = screenW - 4
	}
	if width < minWidth {
		width = minWidth
	}
	contentWidth := width - 4 // border and one cell of padding per side

	focusID := m.FocusedID()

	var lines []string
	lines = append(lines, ModalTitle.Foreground(m.borderColor()).Render(m.title), "")

	type placed struct {
		info      FocusableInfo
		y         int
		focusable bool
	}
	var hits []placed
	var focusIDs []string
	m.actionIDs = make(map[string]bool)

	for _, s := range m.sections {
		rs := s.Render(contentWidth, focusID, m.hoverID)
		y := len(lines)
		for _, f := range rs.Focusables {
			hits = append(hits, placed{info: f, y: y, focusable: true})
			focusIDs = append(focusIDs, f.ID)
		}
		for _, f := range rs.Hits {
			hits = append(hits, placed{info: f, y: y})
			m.actionIDs[f.ID] = true
		}
		if rs.Content != "" {
			lines = append(lines, strings.Split(rs.Content, "\n")...)
		}
	}

	if m.showHints {
		lines = append(lines, "", MutedText.Render("tab focus · enter select · esc close"))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.borderColor()).
		Background(BgSecondary).
		Padding(0, 1).
		Width(width - 2).
		Render(strings.Join(lines, "\n"))

	boxW, boxH := lipgloss.Width(box), lipgloss.Height(box)
	x := max(0, (screenW-boxW)/2)
	y := max(0, (screenH-boxH)/2)

	m.focusIDs = focusIDs
	if m.focusPinned != "" {
		m.SetFocus(m.focusPinned)
	}
	if m.focusIdx >= len(m.focusIDs) {
		m.focusIdx = len(m.focusIDs) - 1
	}

	if handler != nil {
		handler.HitMap.AddRect(RegionBackdrop, 0, 0, screenW, screenH, nil)
		handler.HitMap.AddRect(RegionBody, x, y, boxW, boxH, nil)
		for _, h := range hits {
			handler.HitMap.AddRect(h.info.ID,
				x+2+h.info.OffsetX, y+1+h.y+h.info.OffsetY,
				h.info.Width, h.info.Height,
				hitData{focusable: h.focusable, action: !h.focusable || m.isButton(h.info.ID)})
		}
	}

	return lipgloss.Place(screenW, screenH, lipgloss.Center, lipgloss.Center, box)
}

func (m *Modal) isButton(id string) bool {
	for _, s := range m.sections {
		if b, ok := s.(*buttonSection); ok && b.has(id) {
			return true
		}
	}
	return false
}

// HandleKey processes a key press and returns the triggered action, if any
func (m *Modal) HandleKey(msg tea.KeyMsg) (string, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return ActionCancel, nil
	case "tab":
		m.cycleFocus(1)
		return "", nil
	case "shift+tab":
		m.cycleFocus(-1)
		return "", nil
	}

	focusID := m.FocusedID()
	if msg.String() == "enter" && m.isButton(focusID) {
		return focusID, nil
	}

	for _, s := range m.sections {
		if action, cmd := s.Update(msg, focusID); action != "" || cmd != nil {
			return action, cmd
		}
	}

	if msg.String() == "enter" && m.primaryAction != "" {
		return m.primaryAction, nil
	}
	return "", nil
}

func (m *Modal) cycleFocus(delta int) {
	if len(m.focusIDs) == 0 {
		return
	}
	m.focusPinned = ""
	m.focusIdx = (m.focusIdx + delta + len(m.focusIDs)) % len(m.focusIDs)
}

// HandleMouse processes a mouse event against the regions registered by
// the last Render
func (m *Modal) HandleMouse(msg tea.MouseMsg, handler *mouse.Handler) (string, tea.Cmd) {
	action := handler.HandleMouse(msg)

	switch action.Type {
	case mouse.ActionHover:
		m.hoverID = ""
		if action.Region != nil {
			if _, ok := action.Region.Data.(hitData); ok {
				m.hoverID = action.Region.ID
			}
		}
		return "", nil

	case mouse.ActionClick, mouse.ActionDoubleClick:
		if action.Region == nil {
			return "", nil
		}
		switch action.Region.ID {
		case RegionBackdrop:
			if m.closeOnBackdrop {
				return ActionCancel, nil
			}
			return "", nil
		case RegionBody:
			return "", nil
		}
		data, _ := action.Region.Data.(hitData)
		if data.focusable {
			m.SetFocus(action.Region.ID)
		}
		if data.action {
			return action.Region.ID, nil
		}

	case mouse.ActionScrollUp, mouse.ActionScrollDown:
		key := tea.KeyMsg{Type: tea.KeyUp}
		if action.Type == mouse.ActionScrollDown {
			key = tea.KeyMsg{Type: tea.KeyDown}
		}
		focusID := m.FocusedID()
		for _, s := range m.sections {
			if a, cmd := s.Update(key, focusID); a != "" || cmd != nil {
				return a, cmd
			}
		}
	}
	return "", nil
}
