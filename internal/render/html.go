package render

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/marcus/lightbox/internal/models"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML renders the overlay fragment for a frame. Names and descriptions
// are emitted as text; the preloader and arrow labels are host supplied
// markup and are parsed as such.
func HTML(f Frame) (string, error) {
	root, err := buildModal(f)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, root); err != nil {
		return "", fmt.Errorf("render modal: %w", err)
	}
	return buf.String(), nil
}

func buildModal(f Frame) (*html.Node, error) {
	modal := element(atom.Div, f.Classes()...)

	inner := element(atom.Div, "modal-lb__inner")
	modal.AppendChild(inner)

	wrap := element(atom.Div, "modal-lb__item-wrap")
	inner.AppendChild(wrap)
	if f.Item != nil {
		wrap.AppendChild(mediaNode(*f.Item))
		if f.Preloader != "" {
			pre := element(atom.Div, "modal-lb__preloader")
			if err := appendMarkup(pre, f.Preloader); err != nil {
				return nil, fmt.Errorf("preloader: %w", err)
			}
			wrap.AppendChild(pre)
		}
	}

	footer := element(atom.Div, "modal-lb__footer")
	inner.AppendChild(footer)

	desc := element(atom.Div, "modal-lb__item-desc")
	footer.AppendChild(desc)
	if d := f.Description; !d.Empty() {
		if d.Title != "" {
			desc.AppendChild(textElement("modal-lb__item-desc-title", d.Title))
		}
		if d.Text != "" {
			desc.AppendChild(textElement("modal-lb__item-desc-text", d.Text))
		}
	}

	if f.Preview != nil {
		footer.AppendChild(previewNode(*f.Preview))
	}

	closeBtn := element(atom.Div, "modal-lb__close", "modal-lb__close-btn")
	closeBtn.AppendChild(text("×"))
	modal.AppendChild(closeBtn)
	modal.AppendChild(element(atom.Div, "modal-lb__close", "modal-lb__close-bg"))

	if f.Nav != nil {
		next := element(atom.Div, "modal-lb__nav", "modal-lb__item-next")
		if err := appendMarkup(next, f.Nav.Next); err != nil {
			return nil, fmt.Errorf("next arrow: %w", err)
		}
		modal.AppendChild(next)

		prev := element(atom.Div, "modal-lb__nav", "modal-lb__item-prev")
		if err := appendMarkup(prev, f.Nav.Prev); err != nil {
			return nil, fmt.Errorf("prev arrow: %w", err)
		}
		modal.AppendChild(prev)
	}

	return modal, nil
}

// mediaNode builds the displayed element. The tag decides the element;
// an item without a source gets no src attribute.
func mediaNode(item Item) *html.Node {
	n := tagElement(item.Tag)
	n.Attr = append(n.Attr, html.Attribute{Key: "class", Val: "modal-lb__item"})
	if item.Src != "" {
		n.Attr = append(n.Attr, html.Attribute{Key: "src", Val: item.Src})
	}
	if item.Position >= 0 {
		n.Attr = append(n.Attr, html.Attribute{Key: "data-lb-current-item-index", Val: strconv.Itoa(item.Position)})
	}
	return n
}

func previewNode(p Preview) *html.Node {
	strip := element(atom.Div, "modal-lb__preview")
	for _, thumb := range p.Thumbs {
		classes := []string{"modal-lb__preview-item"}
		if thumb.Active {
			classes = append(classes, ClassActive)
		}
		n := element(atom.Div, classes...)
		n.Attr = append(n.Attr,
			html.Attribute{Key: "data-lb-preview-index", Val: strconv.Itoa(thumb.Position)},
			html.Attribute{Key: "style", Val: "background-image:url('" + thumb.Src + "')"},
		)
		strip.AppendChild(n)
	}
	return strip
}

func tagElement(tag models.Tag) *html.Node {
	name := string(tag)
	if name == "" {
		name = "div"
	}
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Lookup([]byte(name)),
		Data:     name,
	}
}

func element(a atom.Atom, classes ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	if len(classes) > 0 {
		n.Attr = append(n.Attr, html.Attribute{Key: "class", Val: strings.Join(classes, " ")})
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func textElement(class, s string) *html.Node {
	n := element(atom.Div, class)
	n.AppendChild(text(s))
	return n
}

// appendMarkup parses s as a fragment inside parent and appends the result
func appendMarkup(parent *html.Node, s string) error {
	ctx := &html.Node{Type: html.ElementNode, DataAtom: atom.Div, Data: "div"}
	nodes, err := html.ParseFragment(strings.NewReader(s), ctx)
	if err != nil {
		return err
	}
	for _, n := range nodes {
		parent.AppendChild(n)
	}
	return nil
}
