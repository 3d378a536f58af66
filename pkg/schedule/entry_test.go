package schedule

import (
	"testing"

	"tableflip.dev/shifthope/pkg/clock"
)

func TestNewSlot(t *testing.T) {
	if s := NewSlot(clock.Unspecified, clock.Unspecified); s != nil {
		t.Fatalf("expected nil slot, got %+v", s)
	}
	s := NewSlot(clock.Minutes(540), clock.Unspecified)
	if s == nil || !s.HasContent() {
		t.Fatalf("expected open-ended slot, got %+v", s)
	}
}

func TestSlotLabel(t *testing.T) {
	cases := []struct {
		slot *Slot
		want string
	}{
		{NewSlot(clock.Minutes(540), clock.Minutes(720)), "9:00-12:00"},
		{NewSlot(clock.Minutes(540), clock.Unspecified), "9:00-"},
		{NewSlot(clock.Unspecified, clock.Minutes(720)), "-12:00"},
		{nil, ""},
	}
	for _, tc := range cases {
		if got := tc.slot.Label(); got != tc.want {
			t.Fatalf("Label() = %q, want %q", got, tc.want)
		}
	}
}

func TestHasVisibleContent(t *testing.T) {
	if (&Entry{}).HasVisibleContent() {
		t.Fatalf("empty entry should not be visible")
	}
	if !(&Entry{AllDay: true}).HasVisibleContent() {
		t.Fatalf("all-day entry should be visible")
	}
	if !(&Entry{Notes: "late ok"}).HasVisibleContent() {
		t.Fatalf("notes-only entry should be visible")
	}
	if (&Entry{Notes: "   "}).HasVisibleContent() {
		t.Fatalf("blank notes should not count")
	}
	e := &Entry{Slot1: NewSlot(clock.Unspecified, clock.Minutes(720))}
	if !e.HasVisibleContent() {
		t.Fatalf("open-start slot should be visible")
	}
	if (&Entry{Notes: "memo"}).HasTimeContent() {
		t.Fatalf("notes-only entry has no time content")
	}
}

func TestSummaryLines(t *testing.T) {
	e := &Entry{AllDay: true}
	lines := e.SummaryLines()
	if len(lines) != 1 || lines[0] != "all day" {
		t.Fatalf("all-day lines = %v", lines)
	}

	e = &Entry{
		Slot1: NewSlot(clock.Minutes(540), clock.Minutes(720)),
		Slot2: NewSlot(clock.Minutes(1080), clock.Unspecified),
	}
	lines = e.SummaryLines()
	if len(lines) != 2 || lines[0] != "9:00-12:00" || lines[1] != "18:00-" {
		t.Fatalf("slot lines = %v", lines)
	}

	e = &Entry{Slot2: NewSlot(clock.Minutes(1080), clock.Minutes(1200))}
	lines = e.SummaryLines()
	if len(lines) != 1 || lines[0] != "18:00-20:00" {
		t.Fatalf("slot2-only lines = %v", lines)
	}
}

func TestCloneIndependence(t *testing.T) {
	src := &Entry{
		Slot1: NewSlot(clock.Minutes(540), clock.Minutes(720)),
		Notes: "original",
	}
	cp := src.Clone()
	cp.Notes = "changed"
	cp.Slot1.End = clock.Minutes(780)
	if src.Notes != "original" {
		t.Fatalf("source notes mutated: %q", src.Notes)
	}
	if src.Slot1.End.Minutes() != 720 {
		t.Fatalf("source slot mutated: %v", src.Slot1.End)
	}
}

func TestSetAllDayDropsSlots(t *testing.T) {
	e := &Entry{
		Slot1: NewSlot(clock.Minutes(540), clock.Minutes(720)),
		Slot2: NewSlot(clock.Minutes(1080), clock.Minutes(1200)),
	}
	e.SetAllDay()
	if !e.AllDay || e.Slot1 != nil || e.Slot2 != nil {
		t.Fatalf("SetAllDay left %+v", e)
	}
}

func TestSetSlotsClearsAllDay(t *testing.T) {
	e := &Entry{AllDay: true}
	e.SetSlots(NewSlot(clock.Minutes(540), clock.Minutes(720)), nil)
	if e.AllDay {
		t.Fatalf("SetSlots left AllDay set")
	}
	if !e.Slot1.HasContent() || e.Slot2 != nil {
		t.Fatalf("SetSlots stored %+v %+v", e.Slot1, e.Slot2)
	}

	// Contentless slots normalize to nil.
	e.SetSlots(&Slot{}, &Slot{})
	if e.Slot1 != nil || e.Slot2 != nil {
		t.Fatalf("contentless slots kept: %+v %+v", e.Slot1, e.Slot2)
	}
}
