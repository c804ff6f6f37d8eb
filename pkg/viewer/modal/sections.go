package modal

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"
)

type textSection struct {
	text string
}

// Text creates a static text section wrapped to the modal width
func Text(s string) Section {
	return &textSection{text: s}
}

func (s *textSection) Render(contentWidth int, focusID, hoverID string) RenderedSection {
	return RenderedSection{Content: Body.Render(cellbuf.Wrap(s.text, contentWidth, " -"))}
}

func (s *textSection) Update(tea.Msg, string) (string, tea.Cmd) { return "", nil }

type spacerSection struct{}

// Spacer creates a blank line
func Spacer() Section {
	return spacerSection{}
}

func (spacerSection) Render(int, string, string) RenderedSection {
	return RenderedSection{Content: " "}
}

func (spacerSection) Update(tea.Msg, string) (string, tea.Cmd) { return "", nil }

type whenSection struct {
	cond    func() bool
	section Section
}

// When renders section only while cond returns true
func When(cond func() bool, section Section) Section {
	return &whenSection{cond: cond, section: section}
}

func (s *whenSection) Render(contentWidth int, focusID, hoverID string) RenderedSection {
	if !s.cond() {
		return RenderedSection{}
	}
	return s.section.Render(contentWidth, focusID, hoverID)
}

func (s *whenSection) Update(msg tea.Msg, focusID string) (string, tea.Cmd) {
	if !s.cond() {
		return "", nil
	}
	return s.section.Update(msg, focusID)
}

type customSection struct {
	render func(contentWidth int, focusID, hoverID string) RenderedSection
	update func(msg tea.Msg, focusID string) (string, tea.Cmd)
}

// Custom wraps arbitrary render and update functions. update may be nil.
func Custom(render func(contentWidth int, focusID, hoverID string) RenderedSection,
	update func(msg tea.Msg, focusID string) (string, tea.Cmd)) Section {
	return &customSection{render: render, update: update}
}

func (s *customSection) Render(contentWidth int, focusID, hoverID string) RenderedSection {
	return s.render(contentWidth, focusID, hoverID)
}

func (s *customSection) Update(msg tea.Msg, focusID string) (string, tea.Cmd) {
	if s.update == nil {
		return "", nil
	}
	return s.update(msg, focusID)
}

// ButtonDef is one button in a Buttons row
type ButtonDef struct {
	Label string
	ID    string
}

// Btn creates a button definition
func Btn(label, id string) ButtonDef {
	return ButtonDef{Label: label, ID: id}
}

type buttonSection struct {
	buttons []ButtonDef
}

// Buttons creates a row of focusable buttons. Activating a button
// returns its ID as the action.
func Buttons(btns ...ButtonDef) Section {
	return &buttonSection{buttons: btns}
}

func (s *buttonSection) has(id string) bool {
	for _, b := range s.buttons {
		if b.ID == id {
			return true
		}
	}
	return false
}

func (s *buttonSection) Render(contentWidth int, focusID, hoverID string) RenderedSection {
	var parts []string
	var focusables []FocusableInfo
	x := 0
	for i, b := range s.buttons {
		style := Button
		switch b.ID {
		case focusID:
			style = ButtonFocused
		case hoverID:
			style = ButtonHover
		}
		rendered := style.Render(b.Label)
		w := lipgloss.Width(rendered)
		focusables = append(focusables, FocusableInfo{ID: b.ID, OffsetX: x, Width: w, Height: 1})
		parts = append(parts, rendered)
		x += w
		if i < len(s.buttons)-1 {
			parts = append(parts, " ")
			x++
		}
	}
	return RenderedSection{Content: strings.Join(parts, ""), Focusables: focusables}
}

func (s *buttonSection) Update(tea.Msg, string) (string, tea.Cmd) { return "", nil }
