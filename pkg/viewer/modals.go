package viewer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/marcus/lightbox/pkg/viewer/modal"
)

const (
	actionCloseModal = "close"
	groupActionPref  = "group:"
)

func isGroupAction(action string) bool {
	return strings.HasPrefix(action, groupActionPref)
}

func groupFromAction(action string) string {
	return strings.TrimPrefix(action, groupActionPref)
}

func (m *Model) openHelp() {
	var keyHelp help.KeyMap = listKeys{keys}
	title := "Keys"
	if m.session.IsOpen() {
		keyHelp = overlayKeys{keys}
		title = "Overlay keys"
	}
	h := help.New()
	content := h.FullHelpView(keyHelp.FullHelp())

	mouseHelp := "Mouse: click an item to open it."
	if m.session.IsOpen() {
		mouseHelp = "Mouse: drag the item sideways to change items, click it to hide the controls, " +
			"click a thumbnail to jump, wheel or drag the strip to scroll it."
	}

	m.modal = modal.New(title,
		modal.WithVariant(modal.VariantInfo),
		modal.WithCloseOnBackdropClick(true),
		modal.WithPrimaryAction(actionCloseModal),
		modal.WithWidth(64),
	).
		AddSection(modal.Custom(func(int, string, string) modal.RenderedSection {
			return modal.RenderedSection{Content: content}
		}, nil)).
		AddSection(modal.Spacer()).
		AddSection(modal.Text(mouseHelp)).
		AddSection(modal.Spacer()).
		AddSection(modal.Buttons(modal.Btn(" Close ", actionCloseModal)))
}

func (m *Model) openGroups() {
	names := m.reg.Groups()
	counts := make(map[string]int, len(names))
	for _, item := range m.reg.Items() {
		counts[item.Group]++
	}

	items := make([]modal.ListItem, len(names))
	for i, name := range names {
		items[i] = modal.ListItem{
			ID:     groupActionPref + name,
			Label:  name,
			Detail: fmt.Sprintf("(%d)", counts[name]),
		}
	}

	selected := 0
	m.modal = modal.New("Groups", modal.WithCloseOnBackdropClick(true)).
		AddSection(modal.Text("Open the first item of a group.")).
		AddSection(modal.Spacer()).
		AddSection(modal.List("groups", items, &selected))
	m.modal.SetFocus("groups")
}

// openGroup activates the first member of the named group
func (m *Model) openGroup(name string) {
	group := m.session.Index().Resolve(name)
	if group.Len() == 0 {
		return
	}
	first, _ := group.At(0)
	m.session.Activate(first)
}
