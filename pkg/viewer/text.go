package viewer

import (
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/cellbuf"
	"golang.org/x/net/html"
)

const maxDescLines = 4

type descKey struct {
	id    int
	width int
}

// plainText drops the tags from host supplied markup (preloader, arrow
// labels) so it can be shown in a terminal
func plainText(markup string) string {
	z := html.NewTokenizer(strings.NewReader(markup))
	var sb strings.Builder
	for {
		switch z.Next() {
		case html.ErrorToken:
			if z.Err() == io.EOF {
				return strings.Join(strings.Fields(sb.String()), " ")
			}
			return markup
		case html.TextToken:
			sb.Write(z.Text())
			sb.WriteByte(' ')
		}
	}
}

// renderDescription renders markdown for the description panel. Glamour
// failures fall back to plain wrapped text.
func renderDescription(text string, width int) string {
	if strings.TrimSpace(text) == "" || width <= 0 {
		return ""
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err == nil {
		if out, err := r.Render(text); err == nil {
			return trimBlankLines(out)
		}
	}
	return cellbuf.Wrap(text, width, " -")
}

// trimBlankLines drops the empty margin lines glamour puts around a
// document
func trimBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	blank := func(line string) bool {
		return strings.TrimSpace(ansi.Strip(line)) == ""
	}
	for len(lines) > 0 && blank(lines[0]) {
		lines = lines[1:]
	}
	for len(lines) > 0 && blank(lines[len(lines)-1]) {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

// loadDescription fills the description viewport for the current item
func (m *Model) loadDescription() {
	item, ok := m.session.Current()
	width := max(0, m.width-4)
	if !ok || item.Description == "" {
		m.desc.SetContent("")
		m.desc.Width, m.desc.Height = width, 0
		return
	}

	key := descKey{id: item.ID, width: width}
	content, cached := m.descCache[key]
	if !cached {
		content = renderDescription(item.Description, width)
		m.descCache[key] = content
	}
	m.desc.Width = width
	m.desc.Height = min(maxDescLines, strings.Count(content, "\n")+1)
	m.desc.SetContent(content)
	m.desc.GotoTop()
}
