package viewer

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/marcus/lightbox/internal/models"
)

// copyToClipboard writes text to the system clipboard
func copyToClipboard(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("no clipboard available (install xclip, xsel or wl-clipboard)")
	}
	return clipboard.WriteAll(text)
}

// formatItemAsMarkdown renders an item as a markdown media reference
// followed by its plain text description
func formatItemAsMarkdown(item models.MediaItem) string {
	var sb strings.Builder

	alt := item.Name
	if alt == "" {
		alt = item.Tag.Label()
	}
	if item.Tag == models.TagVideo {
		sb.WriteString(fmt.Sprintf("[%s](%s)\n", alt, item.Src))
	} else {
		sb.WriteString(fmt.Sprintf("![%s](%s)\n", alt, item.Src))
	}

	if item.Group != "" {
		sb.WriteString(fmt.Sprintf("**Group:** %s\n", item.Group))
	}
	if desc := strings.TrimSpace(plainText(item.Description)); desc != "" {
		sb.WriteString("\n")
		sb.WriteString(desc)
		sb.WriteString("\n")
	}
	return sb.String()
}

// copyItem puts the item's source, or its markdown form, on the clipboard
// and reports the outcome in the status line
func (m *Model) copyItem(item models.MediaItem, asMarkdown bool) {
	text, what := item.Src, "source"
	if asMarkdown {
		text, what = formatItemAsMarkdown(item), "markdown"
	}
	if text == "" {
		m.status = "nothing to copy"
		return
	}
	if err := m.copy(text); err != nil {
		m.logger.Warn("viewer: copy failed", "item", item.ID, "err", err)
		m.status = "copy failed: " + err.Error()
		return
	}
	m.status = fmt.Sprintf("copied %s of #%d", what, item.ID)
}
