// Package mouse maps terminal mouse events onto named screen regions.
//
// Views register regions while rendering; the Handler turns bubbletea
// mouse messages into clicks, double clicks, wheel scrolls, hovers and
// drags against whatever was registered last.
package mouse

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DoubleClickThreshold is the longest gap between two clicks on the same
// region that still counts as a double click
const DoubleClickThreshold = 400 * time.Millisecond

// Rect is a cell rectangle; W and H are exclusive bounds
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside the rect
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Region is a named hit area with optional payload
type Region struct {
	ID   string
	Rect Rect
	Data any
}

// HitMap holds the regions of the last render. Regions added later sit on
// top of earlier ones.
type HitMap struct {
	regions []Region
}

// NewHitMap creates an empty hit map
func NewHitMap() *HitMap {
	return &HitMap{}
}

// Add registers a region
func (h *HitMap) Add(id string, r Rect, data any) {
	h.regions = append(h.regions, Region{ID: id, Rect: r, Data: data})
}

// AddRect registers a region from its coordinates
func (h *HitMap) AddRect(id string, x, y, w, height int, data any) {
	h.Add(id, Rect{X: x, Y: y, W: w, H: height}, data)
}

// Test returns the topmost region at (x, y), or nil
func (h *HitMap) Test(x, y int) *Region {
	for i := len(h.regions) - 1; i >= 0; i-- {
		if h.regions[i].Rect.Contains(x, y) {
			r := h.regions[i]
			return &r
		}
	}
	return nil
}

// Regions returns the registered regions in insertion order
func (h *HitMap) Regions() []Region {
	return h.regions
}

// Clear drops every region
func (h *HitMap) Clear() {
	h.regions = h.regions[:0]
}

// ActionType classifies a handled mouse event
type ActionType int

const (
	ActionNone ActionType = iota
	ActionClick
	ActionDoubleClick
	ActionScrollUp
	ActionScrollDown
	ActionScrollLeft
	ActionScrollRight
	ActionDrag
	ActionDragEnd
	ActionHover
	ActionRelease
)

func (a ActionType) String() string {
	switch a {
	case ActionClick:
		return "click"
	case ActionDoubleClick:
		return "double_click"
	case ActionScrollUp:
		return "scroll_up"
	case ActionScrollDown:
		return "scroll_down"
	case ActionScrollLeft:
		return "scroll_left"
	case ActionScrollRight:
		return "scroll_right"
	case ActionDrag:
		return "drag"
	case ActionDragEnd:
		return "drag_end"
	case ActionHover:
		return "hover"
	case ActionRelease:
		return "release"
	default:
		return "none"
	}
}

// MouseAction is the outcome of HandleMouse
type MouseAction struct {
	Type   ActionType
	Region *Region
	X, Y   int

	// set for ActionDrag and ActionDragEnd, relative to the drag start
	DragDX, DragDY int
	DragRegion     string
}

// IsScroll reports whether the action came from the wheel
func (a MouseAction) IsScroll() bool {
	switch a.Type {
	case ActionScrollUp, ActionScrollDown, ActionScrollLeft, ActionScrollRight:
		return true
	}
	return false
}

// ScrollDelta returns -1 for up/left, 1 for down/right, 0 otherwise
func (a MouseAction) ScrollDelta() int {
	switch a.Type {
	case ActionScrollUp, ActionScrollLeft:
		return -1
	case ActionScrollDown, ActionScrollRight:
		return 1
	}
	return 0
}

// ClickResult is the outcome of HandleClick
type ClickResult struct {
	Region        *Region
	IsDoubleClick bool
}

// Handler tracks clicks and drags across mouse events
type Handler struct {
	HitMap *HitMap

	now             func() time.Time
	lastClickTime   time.Time
	lastClickRegion string

	dragging       bool
	dragStartX     int
	dragStartY     int
	dragRegion     string
	dragStartValue int
}

// NewHandler creates a handler with an empty hit map
func NewHandler() *Handler {
	return &Handler{HitMap: NewHitMap(), now: time.Now}
}

// HandleClick resolves a click at (x, y). A second click on the same
// region within DoubleClickThreshold is a double click; the click after
// a double click starts over.
func (h *Handler) HandleClick(x, y int) ClickResult {
	region := h.HitMap.Test(x, y)
	now := h.now()

	id := ""
	if region != nil {
		id = region.ID
	}

	result := ClickResult{Region: region}
	if region != nil && !h.lastClickTime.IsZero() &&
		id == h.lastClickRegion && now.Sub(h.lastClickTime) <= DoubleClickThreshold {
		result.IsDoubleClick = true
		h.lastClickTime = time.Time{}
		h.lastClickRegion = ""
		return result
	}

	h.lastClickTime = now
	h.lastClickRegion = id
	return result
}

// StartDrag begins a drag at (x, y) over region. startValue is whatever
// the caller wants back at drag time, e.g. a scroll offset.
func (h *Handler) StartDrag(x, y int, region string, startValue int) {
	h.dragging = true
	h.dragStartX = x
	h.dragStartY = y
	h.dragRegion = region
	h.dragStartValue = startValue
}

// IsDragging reports whether a drag is in progress
func (h *Handler) IsDragging() bool { return h.dragging }

// DragRegion returns the region the drag started on
func (h *Handler) DragRegion() string { return h.dragRegion }

// DragStartValue returns the value passed to StartDrag
func (h *Handler) DragStartValue() int { return h.dragStartValue }

// DragDelta returns the offset of (x, y) from the drag start
func (h *Handler) DragDelta(x, y int) (int, int) {
	return x - h.dragStartX, y - h.dragStartY
}

// EndDrag stops the current drag
func (h *Handler) EndDrag() {
	h.dragging = false
	h.dragRegion = ""
	h.dragStartValue = 0
}

// Clear drops the hit regions, usually at the start of a render
func (h *Handler) Clear() {
	h.HitMap.Clear()
}

// HandleMouse classifies msg against the current hit map
func (h *Handler) HandleMouse(msg tea.MouseMsg) MouseAction {
	action := MouseAction{X: msg.X, Y: msg.Y, Region: h.HitMap.Test(msg.X, msg.Y)}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			action.Type = ActionScrollUp
			if msg.Shift {
				action.Type = ActionScrollLeft
			}
		case tea.MouseButtonWheelDown:
			action.Type = ActionScrollDown
			if msg.Shift {
				action.Type = ActionScrollRight
			}
		case tea.MouseButtonWheelLeft:
			action.Type = ActionScrollLeft
		case tea.MouseButtonWheelRight:
			action.Type = ActionScrollRight
		case tea.MouseButtonLeft:
			click := h.HandleClick(msg.X, msg.Y)
			action.Type = ActionClick
			if click.IsDoubleClick {
				action.Type = ActionDoubleClick
			}
		}

	case tea.MouseActionMotion:
		if h.dragging {
			action.Type = ActionDrag
			action.DragDX, action.DragDY = h.DragDelta(msg.X, msg.Y)
			action.DragRegion = h.dragRegion
			return action
		}
		action.Type = ActionHover

	case tea.MouseActionRelease:
		if h.dragging {
			action.Type = ActionDragEnd
			action.DragDX, action.DragDY = h.DragDelta(msg.X, msg.Y)
			action.DragRegion = h.dragRegion
			h.EndDrag()
			return action
		}
		action.Type = ActionRelease
	}

	return action
}
