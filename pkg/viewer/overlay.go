package viewer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/marcus/lightbox/internal/gesture"
	"github.com/marcus/lightbox/internal/render"
)

// Overlay regions, registered bottom to top
const (
	regionBackdrop = "backdrop"
	regionBar      = "bar"
	regionItem     = "item"
	regionDesc     = "desc"
	regionStrip    = "strip"
	regionThumb    = "thumb"
	regionPrev     = "prev"
	regionNext     = "next"
	regionClose    = "close"
)

const (
	navCols     = 5  // width of each arrow column
	thumbCols   = 12 // width of one preview thumb including the gap
	stripMargin = 2
	maxMediaW   = 64
	maxMediaH   = 12
)

func (m Model) px(cols int) int {
	return cols * m.cfg.CellWidth
}

func (m Model) stripCols() int {
	return max(thumbCols, m.width-2*stripMargin)
}

// layoutStrip attaches the preview strip metrics to b and brings the
// active thumb into the middle when the strip overflows
func (m *Model) layoutStrip(b *gesture.Binding) {
	st := m.session.State()
	if !st.Grouped() || !m.cfg.Options.Preview || m.width == 0 {
		return
	}
	thumbPx := m.px(thumbCols)
	s := b.SetStrip(m.px(m.stripCols()), st.Group.Len()*thumbPx, 0)
	if s != nil && s.Interactive() {
		s.Center(st.Position*thumbPx, thumbPx)
	}
}

func (m Model) renderOverlay() string {
	frame := m.renderer.Frame(m.session.State())
	if frame.Item == nil {
		return ""
	}
	m.mouse.HitMap.AddRect(regionBackdrop, 0, 0, m.width, m.height, nil)

	controls := frame.ControlsVisible
	var top, footer []string

	if controls {
		top = append(top, m.renderBar(frame))
		m.mouse.HitMap.AddRect(regionBar, 0, 0, m.width, 1, nil)
		footer = m.renderFooter(frame)
	}

	areaTop := len(top)
	areaH := max(3, m.height-len(top)-len(footer))
	area := m.renderArea(frame, areaTop, areaH, controls)

	footerTop := areaTop + areaH
	m.registerFooter(frame, footerTop)

	if controls {
		closeX := m.width - 3
		m.mouse.HitMap.AddRect(regionClose, closeX, 0, 3, 1, nil)
	}

	out := strings.Join(append(append(top, area), footer...), "\n")
	return backdropStyle.Width(m.width).Height(m.height).Render(out)
}

func (m Model) renderBar(frame render.Frame) string {
	title := titleStyle.Render(frame.Item.Name)
	if frame.Item.Name == "" {
		title = titleStyle.Render(frame.Item.Src)
	}
	if frame.Preview != nil || frame.Nav != nil {
		st := m.session.State()
		title += mutedStyle.Render(fmt.Sprintf("  %d/%d · %s", st.Position+1, st.Group.Len(), st.Group.Name))
	}
	if m.status != "" {
		title += "  " + statusStyle.Render(m.status)
	}
	closeBtn := closeStyle.Render("×")
	room := max(1, m.width-lipgloss.Width(closeBtn)-1)
	title = ansi.Truncate(" "+title, room, "…")
	gap := max(0, m.width-lipgloss.Width(title)-lipgloss.Width(closeBtn))
	return title + strings.Repeat(" ", gap) + closeBtn
}

// renderArea draws the item between the arrows and registers the item and
// arrow regions
func (m Model) renderArea(frame render.Frame, areaTop, areaH int, controls bool) string {
	centerW := max(1, m.width-2*navCols)

	var body []string
	if frame.Preloader != "" {
		body = append(body, mutedStyle.Render(plainText(frame.Preloader)))
	}
	body = append(body,
		headerStyle.Render("["+frame.Item.Tag.Label()+"]"),
		titleStyle.Render(frame.Item.Name),
	)
	if frame.Item.Src != "" {
		body = append(body, mutedStyle.Render(frame.Item.Src))
	} else {
		body = append(body, mutedStyle.Render("(no source)"))
	}

	boxW := min(maxMediaW, centerW)
	boxH := min(maxMediaH, areaH)
	inner := boxW - 6 // border and padding
	for i, line := range body {
		body[i] = ansi.Truncate(line, max(1, inner), "…")
	}
	box := mediaStyle.Width(boxW - 2).Height(max(1, boxH-2)).Render(strings.Join(body, "\n"))
	boxW, boxH = lipgloss.Width(box), lipgloss.Height(box)

	center := lipgloss.Place(centerW, areaH, lipgloss.Center, lipgloss.Center, box)
	m.mouse.HitMap.AddRect(regionItem,
		navCols+max(0, (centerW-boxW)/2), areaTop+max(0, (areaH-boxH)/2), boxW, boxH, nil)

	prev, next := "", ""
	if controls && frame.Nav != nil {
		prev = navStyle.Render(plainText(frame.Nav.Prev))
		next = navStyle.Render(plainText(frame.Nav.Next))
		navY := areaTop + areaH/2
		m.mouse.HitMap.AddRect(regionPrev, 0, navY-1, navCols, 3, nil)
		m.mouse.HitMap.AddRect(regionNext, m.width-navCols, navY-1, navCols, 3, nil)
	}
	left := lipgloss.Place(navCols, areaH, lipgloss.Center, lipgloss.Center, prev)
	right := lipgloss.Place(navCols, areaH, lipgloss.Center, lipgloss.Center, next)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, center, right)
}

// showDesc reports whether the description panel fits on screen
func (m Model) showDesc() bool {
	return m.desc.Height > 0 && m.height > 8+m.desc.Height
}

// renderFooter returns the description panel and the preview strip
func (m Model) renderFooter(frame render.Frame) []string {
	var lines []string
	if m.showDesc() {
		for _, line := range strings.Split(m.desc.View(), "\n") {
			lines = append(lines, strings.Repeat(" ", stripMargin)+line)
		}
	}
	if frame.Preview != nil {
		lines = append(lines, "", strings.Repeat(" ", stripMargin)+m.renderStrip(frame.Preview))
	}
	return lines
}

// stripWindow returns the first visible strip column and the padding used
// to center a strip that fits
func (m Model) stripWindow(thumbs int) (startCol, pad int) {
	full := thumbs * thumbCols
	if s := m.gestures.Current().Strip(); s != nil && s.Interactive() {
		return s.ScrollLeft / m.cfg.CellWidth, 0
	}
	return 0, max(0, (m.stripCols()-full)/2)
}

func (m Model) renderStrip(p *render.Preview) string {
	var sb strings.Builder
	for _, thumb := range p.Thumbs {
		label := thumb.Name
		if label == "" {
			label = thumb.Src
		}
		label = ansi.Truncate(fmt.Sprintf("%d %s", thumb.Position+1, label), thumbCols-3, "…")
		style := thumbStyle
		if thumb.Active {
			style = thumbActiveStyle
		}
		sb.WriteString(style.Width(thumbCols - 1).Render(" " + label))
		sb.WriteString(" ")
	}

	start, pad := m.stripWindow(len(p.Thumbs))
	full := sb.String()
	if pad > 0 {
		return strings.Repeat(" ", pad) + full
	}
	return ansi.Cut(full, start, start+m.stripCols())
}

// registerFooter registers the description and strip regions. It mirrors
// the row layout of renderFooter.
func (m Model) registerFooter(frame render.Frame, footerTop int) {
	if !frame.ControlsVisible {
		return
	}
	y := footerTop
	if m.showDesc() {
		m.mouse.HitMap.AddRect(regionDesc, stripMargin, y, m.width-2*stripMargin, m.desc.Height, nil)
		y += m.desc.Height
	}
	if frame.Preview == nil {
		return
	}
	y++ // blank line above the strip

	m.mouse.HitMap.AddRect(regionStrip, stripMargin, y, m.stripCols(), 1, nil)
	start, pad := m.stripWindow(len(frame.Preview.Thumbs))
	for _, thumb := range frame.Preview.Thumbs {
		from := thumb.Position*thumbCols - start + pad
		to := from + thumbCols - 1
		from, to = max(from, 0), min(to, m.stripCols())
		if from >= to {
			continue
		}
		m.mouse.HitMap.AddRect(regionThumb, stripMargin+from, y, to-from, 1, thumb.Position)
	}
}
