// Package state owns the mutable month-availability state and its
// persistence through the key-value store.
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"tableflip.dev/shifthope/pkg/schedule"
	"tableflip.dev/shifthope/pkg/store"
)

// ErrNoSourceEntry reports a copy operation whose source date has nothing to
// copy. No writes happen in that case.
var ErrNoSourceEntry = errors.New("state: source date has no entry")

// MonthState is one person's working availability: the displayed month, the
// sparse day map, a free-text month note, and the submission bookkeeping.
type MonthState struct {
	Year         int
	Month        time.Month
	MonthNotes   string
	Days         map[schedule.DateKey]*schedule.Entry
	Submitted    bool
	EmployeeName string
}

// Service owns a MonthState and keeps the store in sync. All mutation goes
// through its methods; callers get snapshots, never the live map. There is a
// single logical writer, so no locking is needed.
type Service struct {
	Persistence store.Persistence

	// Now is the clock used for the default month; tests override it.
	Now func() time.Time

	st MonthState
}

// New rehydrates a Service from the store. Missing or malformed fields fall
// back to defaults one by one; a corrupt snapshot never aborts startup.
func New(p store.Persistence) *Service {
	s := &Service{Persistence: p, Now: time.Now}
	s.load()
	return s
}

// snapshot is the stored wire form. The month is 0-based and day keys may be
// unpadded, both inherited from the original storage format. Pointer fields
// let each one default independently.
type snapshot struct {
	Year         *int                       `json:"year"`
	Month        *int                       `json:"month"`
	MonthNotes   *string                    `json:"monthNotes"`
	Days         map[string]json.RawMessage `json:"days"`
	Submitted    *bool                      `json:"submitted"`
	EmployeeName *string                    `json:"employeeName"`
}

func (s *Service) load() {
	now := s.Now()
	s.st = MonthState{
		Year:  now.Year(),
		Month: now.Month(),
		Days:  make(map[schedule.DateKey]*schedule.Entry),
	}

	if s.Persistence == nil {
		return
	}
	raw, ok := s.Persistence.Get(store.KeyState)
	if !ok {
		return
	}
	var snap snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		fmt.Fprintf(os.Stderr, "state: ignoring corrupt snapshot: %v\n", err)
		return
	}
	if snap.Year != nil {
		s.st.Year = *snap.Year
	}
	if snap.Month != nil && *snap.Month >= 0 && *snap.Month <= 11 {
		s.st.Month = time.Month(*snap.Month + 1)
	}
	if snap.MonthNotes != nil {
		s.st.MonthNotes = *snap.MonthNotes
	}
	if snap.Submitted != nil {
		s.st.Submitted = *snap.Submitted
	}
	if snap.EmployeeName != nil {
		s.st.EmployeeName = *snap.EmployeeName
	}
	for rawKey, rawEntry := range snap.Days {
		key, err := schedule.ParseDateKey(rawKey)
		if err != nil {
			fmt.Fprintf(os.Stderr, "state: skipping day %q: %v\n", rawKey, err)
			continue
		}
		var e schedule.Entry
		if err := json.Unmarshal(rawEntry, &e); err != nil {
			fmt.Fprintf(os.Stderr, "state: skipping day %q: %v\n", rawKey, err)
			continue
		}
		s.st.Days[key] = &e
	}
}

// persist writes the full state back, best effort. A failed write is reported
// on stderr and otherwise ignored; the in-memory state stays authoritative.
func (s *Service) persist() {
	if s.Persistence == nil {
		return
	}
	month0 := int(s.st.Month) - 1
	snap := snapshot{
		Year:         &s.st.Year,
		Month:        &month0,
		MonthNotes:   &s.st.MonthNotes,
		Days:         make(map[string]json.RawMessage, len(s.st.Days)),
		Submitted:    &s.st.Submitted,
		EmployeeName: &s.st.EmployeeName,
	}
	for key, e := range s.st.Days {
		b, err := json.Marshal(e)
		if err != nil {
			fmt.Fprintf(os.Stderr, "state: persist day %s: %v\n", key, err)
			continue
		}
		snap.Days[key.String()] = b
	}
	b, err := json.Marshal(snap)
	if err != nil {
		fmt.Fprintf(os.Stderr, "state: persist: %v\n", err)
		return
	}
	if err := s.Persistence.Set(store.KeyState, string(b)); err != nil {
		fmt.Fprintf(os.Stderr, "state: persist: %v\n", err)
	}
}

// Reload re-reads the stored snapshot, dropping any in-memory state. Used
// when a watcher reports the db changed underneath us.
func (s *Service) Reload() {
	s.load()
}

// State returns a value-independent snapshot of the current state.
func (s *Service) State() MonthState {
	cp := s.st
	cp.Days = make(map[schedule.DateKey]*schedule.Entry, len(s.st.Days))
	for k, e := range s.st.Days {
		cp.Days[k] = e.Clone()
	}
	return cp
}

// Entry returns a copy of the entry for the key, or nil when absent.
func (s *Service) Entry(key schedule.DateKey) *schedule.Entry {
	return s.st.Days[key].Clone()
}

// SaveDay stores the entry under the key, or deletes it when the entry has no
// visible content.
func (s *Service) SaveDay(key schedule.DateKey, e *schedule.Entry) {
	if !e.HasVisibleContent() {
		delete(s.st.Days, key)
	} else {
		s.st.Days[key] = e.Clone()
	}
	s.persist()
}

// SetAllDay marks the date available all day, dropping any slots while
// keeping its note.
func (s *Service) SetAllDay(key schedule.DateKey) {
	e := s.st.Days[key].Clone()
	if e == nil {
		e = &schedule.Entry{}
	}
	e.SetAllDay()
	s.st.Days[key] = e
	s.persist()
}

// ClearDay removes the entry for one date. Reports whether anything existed.
func (s *Service) ClearDay(key schedule.DateKey) bool {
	if _, ok := s.st.Days[key]; !ok {
		return false
	}
	delete(s.st.Days, key)
	s.persist()
	return true
}

// ClearMonth removes every entry belonging to the displayed month and resets
// the month note. Entries from other months are untouched. Returns the number
// of entries removed.
func (s *Service) ClearMonth() int {
	removed := 0
	for k := range s.st.Days {
		if k.SameMonth(s.st.Year, s.st.Month) {
			delete(s.st.Days, k)
			removed++
		}
	}
	s.st.MonthNotes = ""
	s.persist()
	return removed
}

// SetMonthNotes replaces the month-wide note.
func (s *Service) SetMonthNotes(notes string) {
	s.st.MonthNotes = notes
	s.persist()
}

// SetEmployee records the selected submitter identity.
func (s *Service) SetEmployee(name string) {
	s.st.EmployeeName = name
	s.persist()
}

// SetSubmitted flips the submitted flag.
func (s *Service) SetSubmitted(submitted bool) {
	s.st.Submitted = submitted
	s.persist()
}

// Navigate moves the displayed month by delta months, rolling the year at
// both boundaries.
func (s *Service) Navigate(delta int) (int, time.Month) {
	t := time.Date(s.st.Year, s.st.Month, 1, 0, 0, 0, 0, time.Local).AddDate(0, delta, 0)
	s.st.Year, s.st.Month = t.Year(), t.Month()
	s.persist()
	return s.st.Year, s.st.Month
}

// CopyToDates duplicates the source entry onto the listed days of the
// displayed month. Out-of-range days are skipped, the source day itself is
// skipped, and each target is fully overwritten with an independent copy.
// Returns the number of days written.
func (s *Service) CopyToDates(source schedule.DateKey, dates []int) (int, error) {
	src, ok := s.st.Days[source]
	if !ok {
		return 0, ErrNoSourceEntry
	}
	lastDay := schedule.DaysIn(s.st.Year, s.st.Month)
	count := 0
	for _, date := range dates {
		if date < 1 || date > lastDay {
			continue
		}
		key := schedule.DateKey{Year: s.st.Year, Month: s.st.Month, Day: date}
		if key == source {
			continue
		}
		s.st.Days[key] = src.Clone()
		count++
	}
	if count > 0 {
		s.persist()
	}
	return count, nil
}

// CopyToWeekday duplicates the source entry onto every other date in the
// source's own month that falls on the same weekday.
func (s *Service) CopyToWeekday(source schedule.DateKey) (int, error) {
	src, ok := s.st.Days[source]
	if !ok {
		return 0, ErrNoSourceEntry
	}
	weekday := source.Weekday()
	lastDay := schedule.DaysIn(source.Year, source.Month)
	count := 0
	for date := 1; date <= lastDay; date++ {
		key := schedule.DateKey{Year: source.Year, Month: source.Month, Day: date}
		if key == source || key.Weekday() != weekday {
			continue
		}
		s.st.Days[key] = src.Clone()
		count++
	}
	if count > 0 {
		s.persist()
	}
	return count, nil
}

// ReplaceMonth swaps in a day map fetched from the remote sheet, optionally
// with its month note. The whole map is replaced, matching the original
// reflect-from-submission behavior.
func (s *Service) ReplaceMonth(monthNotes *string, days map[schedule.DateKey]*schedule.Entry) {
	if monthNotes != nil {
		s.st.MonthNotes = *monthNotes
	}
	s.st.Days = make(map[schedule.DateKey]*schedule.Entry, len(days))
	for k, e := range days {
		s.st.Days[k] = e.Clone()
	}
	s.persist()
}

// SortedKeys returns the displayed month's non-empty day keys in calendar
// order.
func (s *Service) SortedKeys() []schedule.DateKey {
	keys := make([]schedule.DateKey, 0, len(s.st.Days))
	for k, e := range s.st.Days {
		if k.SameMonth(s.st.Year, s.st.Month) && e.HasVisibleContent() {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].String() < keys[j].String()
	})
	return keys
}
