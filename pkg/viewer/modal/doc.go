// Package modal draws declarative dialogs over the viewer and keeps their
// mouse hit regions in step with what was drawn.
//
// A modal is a title plus a stack of sections. Render lays the sections
// out, centers the box on the screen and registers one region per
// clickable element, so hit testing always matches the last frame:
//
//	m := modal.New("Groups", modal.WithCloseOnBackdropClick(true)).
//	    AddSection(modal.Text("Jump to the first item of a group.")).
//	    AddSection(modal.Spacer()).
//	    AddSection(modal.List("groups", items, &selected))
//
//	// View
//	screen := m.Render(width, height, mouseHandler)
//
//	// Update
//	action, cmd := m.HandleKey(keyMsg)
//	action, cmd = m.HandleMouse(mouseMsg, mouseHandler)
//
// Actions are plain strings: a button or list row ID, ActionCancel for
// Esc and backdrop clicks, or "" when nothing was triggered.
//
// Sections: Text, Spacer, Buttons, List, When and Custom.
package modal
