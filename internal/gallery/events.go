package gallery

import "github.com/marcus/lightbox/internal/models"

// EventKind identifies a session transition
type EventKind int

const (
	EventOpened EventKind = iota + 1
	EventNavigated
	EventControlsToggled
	EventClosed
)

func (k EventKind) String() string {
	switch k {
	case EventOpened:
		return "opened"
	case EventNavigated:
		return "navigated"
	case EventControlsToggled:
		return "controls_toggled"
	case EventClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Event is delivered to subscribers after every transition
type Event struct {
	Kind      EventKind
	State     State
	Direction models.Direction // set for EventNavigated from Navigate
}

type subscriber struct {
	id uint64
	fn func(Event)
}

// Subscription detaches a subscriber when cancelled
type Subscription struct {
	id uint64
	s  *Session
}

// Cancel stops delivery to the subscriber. Cancelling twice is harmless.
func (sub Subscription) Cancel() {
	if sub.s == nil {
		return
	}
	subs := sub.s.subs
	for i := range subs {
		if subs[i].id == sub.id {
			copy(subs[i:], subs[i+1:])
			subs[len(subs)-1] = subscriber{}
			sub.s.subs = subs[:len(subs)-1]
			return
		}
	}
}

// Subscribe registers fn for every subsequent transition
func (s *Session) Subscribe(fn func(Event)) Subscription {
	s.nextSubID++
	s.subs = append(s.subs, subscriber{id: s.nextSubID, fn: fn})
	return Subscription{id: s.nextSubID, s: s}
}

func (s *Session) notify(kind EventKind, dir models.Direction) {
	if len(s.subs) == 0 {
		return
	}
	ev := Event{Kind: kind, State: s.State(), Direction: dir}
	// Subscribers may cancel themselves while being notified.
	subs := append([]subscriber(nil), s.subs...)
	for _, sub := range subs {
		sub.fn(ev)
	}
}
