// Package gallery holds the lightbox state machine.
//
// A Session is the single overlay state for one page. It is built once from
// an Index over the page's registry and cycles between closed and open for
// the page's lifetime:
//
//	idx := gallery.NewIndex(reg)
//	s := gallery.NewSession(idx, opts, nil)
//	sub := s.Subscribe(func(ev gallery.Event) { repaint(ev.State) })
//	defer sub.Cancel()
//
//	s.Activate(item)          // open, resolving the item's group
//	s.Navigate(models.Next)   // wraps around inside the group
//	s.Escape()                // closes only when open
//
// The session is not safe for concurrent use. It is meant to be owned by a
// single event loop (the bubbletea Update loop in the viewer) which makes
// every transition atomic with respect to the others.
package gallery
