package ui

import "fmt"

// EventKind identifies one of the eight click event slots.
type EventKind int

const (
	LeftClick EventKind = iota
	LeftDoubleClick
	LeftHold
	LeftRelease
	RightClick
	RightDoubleClick
	RightHold
	RightRelease

	eventKindCount
)

var eventKindNames = [eventKindCount]string{
	"LeftClick",
	"LeftDoubleClick",
	"LeftHold",
	"LeftRelease",
	"RightClick",
	"RightDoubleClick",
	"RightHold",
	"RightRelease",
}

func (k EventKind) String() string {
	if k < 0 || k >= eventKindCount {
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
	return eventKindNames[k]
}

// ClickHandler receives the element the event was raised on.
type ClickHandler func(Element)

// Handlers is the per-element subscription list for click events.
// The zero value has no subscribers.
type Handlers struct {
	subs [eventKindCount][]ClickHandler
}

// On subscribes fn to kind. Handlers run in subscription order.
func (h *Handlers) On(kind EventKind, fn ClickHandler) {
	if fn == nil || kind < 0 || kind >= eventKindCount {
		return
	}
	h.subs[kind] = append(h.subs[kind], fn)
}

// Clear drops every subscriber of kind.
func (h *Handlers) Clear(kind EventKind) {
	if kind < 0 || kind >= eventKindCount {
		return
	}
	h.subs[kind] = nil
}

// Count returns the number of subscribers of kind.
func (h *Handlers) Count(kind EventKind) int {
	if kind < 0 || kind >= eventKindCount {
		return 0
	}
	return len(h.subs[kind])
}

// emit calls the subscribers of kind with e and returns how many ran.
func (h *Handlers) emit(kind EventKind, e Element) int {
	subs := h.subs[kind]
	for _, fn := range subs {
		fn(e)
	}
	return len(subs)
}
