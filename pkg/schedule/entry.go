package schedule

import (
	"strings"

	"tableflip.dev/shifthope/pkg/clock"
)

// Slot is one availability window. Either bound may be unspecified, which
// reads as "until end" / "from start"; a slot with both bounds unspecified is
// not stored (NewSlot returns nil instead).
type Slot struct {
	Start clock.TimeOfDay `json:"start"`
	End   clock.TimeOfDay `json:"end"`
}

// NewSlot builds a slot from its bounds, or nil when neither is concrete.
func NewSlot(start, end clock.TimeOfDay) *Slot {
	if !start.Known() && !end.Known() {
		return nil
	}
	return &Slot{Start: start, End: end}
}

// HasContent reports whether at least one bound is concrete. Nil-safe.
func (s *Slot) HasContent() bool {
	if s == nil {
		return false
	}
	return s.Start.Known() || s.End.Known()
}

// Label renders the slot as "start-end", "start-" (open end), or "-end"
// (open start). A contentless slot renders empty.
func (s *Slot) Label() string {
	if !s.HasContent() {
		return ""
	}
	return s.Start.String() + "-" + s.End.String()
}

func (s *Slot) clone() *Slot {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

// Entry is the availability record for one date. AllDay and timed slots are
// mutually exclusive; notes are independent of both.
type Entry struct {
	AllDay bool   `json:"allDay"`
	Slot1  *Slot  `json:"slot1"`
	Slot2  *Slot  `json:"slot2"`
	Notes  string `json:"notes"`
}

// HasVisibleContent reports whether the entry marks the day at all: all-day,
// any concrete slot bound, or a non-blank note. An entry without visible
// content is treated as deleted by the store.
func (e *Entry) HasVisibleContent() bool {
	if e == nil {
		return false
	}
	return e.AllDay || e.Slot1.HasContent() || e.Slot2.HasContent() || strings.TrimSpace(e.Notes) != ""
}

// HasTimeContent reports all-day or timed availability, ignoring notes. This
// is what marks a calendar cell and what the submission day count uses.
func (e *Entry) HasTimeContent() bool {
	if e == nil {
		return false
	}
	return e.AllDay || e.Slot1.HasContent() || e.Slot2.HasContent()
}

// SummaryLines renders the entry for a calendar cell: a single "all day" line,
// or one line per populated slot, slot one first.
func (e *Entry) SummaryLines() []string {
	if e == nil {
		return nil
	}
	if e.AllDay {
		return []string{"all day"}
	}
	var lines []string
	if e.Slot1.HasContent() {
		lines = append(lines, e.Slot1.Label())
	}
	if e.Slot2.HasContent() {
		lines = append(lines, e.Slot2.Label())
	}
	return lines
}

// Summary joins the slot lines for one-line contexts.
func (e *Entry) Summary() string {
	return strings.Join(e.SummaryLines(), " / ")
}

// Clone returns a value-independent copy. Mutating the copy never touches the
// source; copy propagation depends on this.
func (e *Entry) Clone() *Entry {
	if e == nil {
		return nil
	}
	return &Entry{
		AllDay: e.AllDay,
		Slot1:  e.Slot1.clone(),
		Slot2:  e.Slot2.clone(),
		Notes:  e.Notes,
	}
}

// SetAllDay switches the entry to all-day availability, dropping both slots
// in the same update so the exclusivity invariant always holds.
func (e *Entry) SetAllDay() {
	e.AllDay = true
	e.Slot1 = nil
	e.Slot2 = nil
}

// SetSlots switches the entry to timed availability. Contentless slots are
// normalized to nil.
func (e *Entry) SetSlots(slot1, slot2 *Slot) {
	e.AllDay = false
	if !slot1.HasContent() {
		slot1 = nil
	}
	if !slot2.HasContent() {
		slot2 = nil
	}
	e.Slot1 = slot1.clone()
	e.Slot2 = slot2.clone()
}

// SetNotes replaces the free-text note.
func (e *Entry) SetNotes(notes string) {
	e.Notes = strings.TrimSpace(notes)
}

// Clear empties the entry. A cleared entry has no visible content and will be
// pruned on save.
func (e *Entry) Clear() {
	*e = Entry{}
}
