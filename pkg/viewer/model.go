// Package viewer is the terminal lightbox: a list of a page's media items
// and a modal overlay that shows one item at a time with group
// navigation, a preview strip and mouse gestures.
package viewer

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/lightbox/internal/gallery"
	"github.com/marcus/lightbox/internal/gesture"
	"github.com/marcus/lightbox/internal/models"
	"github.com/marcus/lightbox/internal/registry"
	"github.com/marcus/lightbox/internal/render"
	"github.com/marcus/lightbox/pkg/viewer/modal"
	"github.com/marcus/lightbox/pkg/viewer/mouse"
)

// DefaultCellWidth is how many pixels one terminal column stands for when
// mouse travel is compared against the gesture thresholds
const DefaultCellWidth = 8

// Config configures the viewer
type Config struct {
	Title     string // shown in the list header, usually the page path
	Options   models.Options
	CellWidth int
	Logger    *slog.Logger

	// Gesture thresholds in pixels; zero keeps the defaults
	DragThreshold int
	TapSlop       int

	// Clipboard replaces the system clipboard, mainly for tests
	Clipboard func(string) error
}

// pageScroll is the scroll lock for the list behind the overlay
type pageScroll struct {
	locked bool
}

func (p *pageScroll) LockScroll()   { p.locked = true }
func (p *pageScroll) UnlockScroll() { p.locked = false }

// frameCounter numbers overlay frames. Every session event that replaces
// the displayed item starts a new frame.
type frameCounter struct {
	generation uint64
}

func (f *frameCounter) observe(ev gallery.Event) {
	switch ev.Kind {
	case gallery.EventOpened, gallery.EventNavigated, gallery.EventClosed:
		f.generation++
	}
}

// Model is the bubbletea model of the viewer
type Model struct {
	cfg    Config
	logger *slog.Logger

	reg      *registry.Registry
	session  *gallery.Session
	renderer *render.Renderer
	gestures *gesture.Controller
	frames   *frameCounter
	bound    uint64
	scroll   *pageScroll
	mouse    *mouse.Handler

	width  int
	height int

	// page list
	visible   []int // item IDs in display order
	cursor    int
	offset    int
	filter    textinput.Model
	filtering bool

	help  help.Model
	modal *modal.Modal

	desc       viewport.Model
	descCache  map[descKey]string
	thumbPress int // preview position under a strip press, -1 for none

	copy   func(string) error
	status string // one-shot message, cleared by the next key press
}

// New creates the viewer for a scanned page
func New(reg *registry.Registry, cfg Config) Model {
	if cfg.CellWidth <= 0 {
		cfg.CellWidth = DefaultCellWidth
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	copyFn := cfg.Clipboard
	if copyFn == nil {
		copyFn = copyToClipboard
	}

	scroll := &pageScroll{}
	session := gallery.NewSession(gallery.NewIndex(reg), cfg.Options, scroll, gallery.WithLogger(logger))
	frames := &frameCounter{}
	session.Subscribe(frames.observe)

	filter := textinput.New()
	filter.Prompt = "/ "
	filter.Placeholder = "filter items"

	m := Model{
		cfg:        cfg,
		logger:     logger,
		reg:        reg,
		session:    session,
		renderer:   render.New(cfg.Options),
		gestures:   gesture.New(session, gestureOptions(cfg)...),
		frames:     frames,
		scroll:     scroll,
		mouse:      mouse.NewHandler(),
		filter:     filter,
		help:       help.New(),
		desc:       viewport.New(0, 0),
		descCache:  make(map[descKey]string),
		thumbPress: -1,
		copy:       copyFn,
	}
	m.applyFilter()
	return m
}

func gestureOptions(cfg Config) []gesture.Option {
	var opts []gesture.Option
	if cfg.DragThreshold > 0 {
		opts = append(opts, gesture.WithDragThreshold(cfg.DragThreshold))
	}
	if cfg.TapSlop > 0 {
		opts = append(opts, gesture.WithTapSlop(cfg.TapSlop))
	}
	return opts
}

// Session exposes the lightbox session driven by the viewer
func (m Model) Session() *gallery.Session {
	return m.session
}

var _ tea.Model = Model{}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.clampList()
		if b := m.gestures.Current(); b != nil {
			m.layoutStrip(b)
			m.loadDescription()
		}
		return m, nil

	case tea.KeyMsg:
		cmd = m.handleKey(msg)

	case tea.MouseMsg:
		cmd = m.handleMouse(msg)
	}

	m.syncGestures()
	return m, cmd
}

// syncGestures scopes gesture input to the current frame. A frame that
// has been replaced loses its binding, so a gesture still in flight
// cannot act on the new item.
func (m *Model) syncGestures() {
	if !m.session.IsOpen() {
		m.gestures.Release()
		m.bound = 0
		return
	}
	if m.gestures.Current() != nil && m.bound == m.frames.generation {
		return
	}
	b := m.gestures.Bind(m.frames.generation)
	m.bound = m.frames.generation
	m.layoutStrip(b)
	m.loadDescription()
	m.logger.Debug("viewer: frame bound", "generation", m.bound)
}

func (m *Model) handleModalAction(action string) {
	switch {
	case action == "":
		return
	case action == modal.ActionCancel || action == actionCloseModal:
		m.modal = nil
	case isGroupAction(action):
		m.modal = nil
		m.openGroup(groupFromAction(action))
	}
}

// View implements tea.Model. Rendering registers the mouse regions the
// next Update hit-tests against.
func (m Model) View() string {
	m.mouse.Clear()
	if m.width == 0 || m.height == 0 {
		return "loading..."
	}
	if m.modal != nil {
		return m.modal.Render(m.width, m.height, m.mouse)
	}
	if m.session.IsOpen() {
		return m.renderOverlay()
	}
	return m.renderList()
}
