package ui

import (
	"reflect"
	"testing"
)

func TestHandlers(t *testing.T) {
	var h Handlers
	var calls []string

	h.On(LeftRelease, func(Element) { calls = append(calls, "first") })
	h.On(LeftRelease, func(Element) { calls = append(calls, "second") })
	h.On(RightClick, func(Element) { calls = append(calls, "right") })
	h.On(LeftRelease, nil)
	h.On(eventKindCount, func(Element) { calls = append(calls, "bogus") })

	if got := h.Count(LeftRelease); got != 2 {
		t.Errorf("Count(LeftRelease) = %d; want 2", got)
	}
	if got := h.emit(LeftRelease, nil); got != 2 {
		t.Errorf("emit returned %d; want 2", got)
	}
	if want := []string{"first", "second"}; !reflect.DeepEqual(calls, want) {
		t.Errorf("calls = %v; want %v", calls, want)
	}
	if got := h.emit(LeftDoubleClick, nil); got != 0 {
		t.Errorf("emit on empty slot returned %d", got)
	}

	h.Clear(LeftRelease)
	if got := h.Count(LeftRelease); got != 0 {
		t.Errorf("Count after Clear = %d; want 0", got)
	}
	if got := h.Count(RightClick); got != 1 {
		t.Errorf("Clear touched another slot, Count(RightClick) = %d", got)
	}
}

func TestEventKind_String(t *testing.T) {
	tests := map[EventKind]string{
		LeftClick:        "LeftClick",
		RightDoubleClick: "RightDoubleClick",
		RightRelease:     "RightRelease",
		EventKind(42):    "EventKind(42)",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("EventKind(%d).String() = %q; want %q", int(k), got, want)
		}
	}
}

func TestOutcome_Has(t *testing.T) {
	o := OutcomeRaised | OutcomePressed
	if !o.Has(OutcomeRaised) || !o.Has(OutcomePressed) || !o.Has(OutcomeRaised|OutcomePressed) {
		t.Errorf("%b should contain Raised and Pressed", o)
	}
	if o.Has(OutcomeMoved) || o.Has(OutcomeNone) {
		t.Errorf("%b should not report Moved or None", o)
	}
}
