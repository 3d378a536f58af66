// Package tui hosts the Bubble Tea month editor.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/shifthope/pkg/clock"
	"tableflip.dev/shifthope/pkg/schedule"
	"tableflip.dev/shifthope/pkg/state"
	"tableflip.dev/shifthope/pkg/store"
)

type mode int

const (
	modeGrid mode = iota
	modeEdit
	modeNotes
	modeHelp
)

// Edit-mode field order: slot one start/end, slot two start/end, day note.
const (
	fieldStart1 = iota
	fieldEnd1
	fieldStart2
	fieldEnd2
	fieldNote
	fieldCount
)

// storeChangedMsg reports that the db changed on disk under another writer.
type storeChangedMsg struct{}

// watchClosedMsg reports that the watch channel is gone; we keep running
// without external refresh.
type watchClosedMsg struct{}

// Model is the whole-program model: a month grid with a per-day editor and a
// month-note editor layered on top.
type Model struct {
	svc   *state.Service
	watch <-chan store.Event

	st     state.MonthState
	cursor int // day of the displayed month

	mode   mode
	focus  int
	inputs [fieldCount]textinput.Model

	monthInput textinput.Model

	width  int
	height int
	status string
}

// New builds the model around a rehydrated state service. The watch channel
// may be nil.
func New(svc *state.Service, watch <-chan store.Event) *Model {
	m := &Model{svc: svc, watch: watch, cursor: 1}

	for i := range m.inputs {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 5
		in.Placeholder = "--:--"
		m.inputs[i] = in
	}
	m.inputs[fieldNote].CharLimit = 120
	m.inputs[fieldNote].Placeholder = ""

	m.monthInput = textinput.New()
	m.monthInput.Prompt = "> "
	m.monthInput.CharLimit = 300

	m.refresh()
	today := schedule.KeyFor(svc.Now())
	if today.SameMonth(m.st.Year, m.st.Month) {
		m.cursor = today.Day
	}
	return m
}

func (m *Model) refresh() {
	m.st = m.svc.State()
	if last := schedule.DaysIn(m.st.Year, m.st.Month); m.cursor > last {
		m.cursor = last
	}
	if m.cursor < 1 {
		m.cursor = 1
	}
}

func (m *Model) cursorKey() schedule.DateKey {
	return schedule.DateKey{Year: m.st.Year, Month: m.st.Month, Day: m.cursor}
}

func (m *Model) Init() tea.Cmd {
	return m.waitForChange()
}

func (m *Model) waitForChange() tea.Cmd {
	if m.watch == nil {
		return nil
	}
	ch := m.watch
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return watchClosedMsg{}
		}
		return storeChangedMsg{}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case storeChangedMsg:
		// Another process wrote the db; stay on the same cell.
		m.svc.Reload()
		m.refresh()
		return m, m.waitForChange()

	case watchClosedMsg:
		m.watch = nil
		return m, nil

	case tea.KeyPressMsg:
		switch m.mode {
		case modeGrid:
			return m.updateGrid(msg)
		case modeEdit:
			return m.updateEdit(msg)
		case modeNotes:
			return m.updateNotes(msg)
		case modeHelp:
			m.mode = modeGrid
			return m, nil
		}
	}
	return m, nil
}

func (m *Model) updateGrid(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	last := schedule.DaysIn(m.st.Year, m.st.Month)

	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit

	case "?":
		m.mode = modeHelp
		return m, nil

	case "left", "h":
		if m.cursor > 1 {
			m.cursor--
		}
	case "right", "l":
		if m.cursor < last {
			m.cursor++
		}
	case "up", "k":
		if m.cursor > 7 {
			m.cursor -= 7
		}
	case "down", "j":
		if m.cursor+7 <= last {
			m.cursor += 7
		}

	case "n":
		m.svc.Navigate(1)
		m.refresh()
		m.status = ""
	case "p":
		m.svc.Navigate(-1)
		m.refresh()
		m.status = ""

	case "enter":
		m.openEditor()
	case "a":
		m.svc.SetAllDay(m.cursorKey())
		m.refresh()
		m.status = ""
	case "x":
		if m.svc.ClearDay(m.cursorKey()) {
			m.refresh()
			m.status = "cleared " + m.cursorKey().String()
		}
	case "w":
		count, err := m.svc.CopyToWeekday(m.cursorKey())
		if err != nil {
			m.status = "nothing to copy"
			return m, nil
		}
		m.refresh()
		m.status = statusCopied(count)
	case "m":
		m.monthInput.SetValue(m.st.MonthNotes)
		m.monthInput.Focus()
		m.mode = modeNotes
	}
	return m, nil
}

func (m *Model) openEditor() {
	e := m.svc.Entry(m.cursorKey())
	if e == nil {
		e = &schedule.Entry{}
	}

	m.inputs[fieldStart1].SetValue(boundValue(e.Slot1, true))
	m.inputs[fieldEnd1].SetValue(boundValue(e.Slot1, false))
	m.inputs[fieldStart2].SetValue(boundValue(e.Slot2, true))
	m.inputs[fieldEnd2].SetValue(boundValue(e.Slot2, false))
	m.inputs[fieldNote].SetValue(e.Notes)

	m.focus = fieldStart1
	m.syncFocus()
	m.mode = modeEdit
	m.status = ""
}

func boundValue(s *schedule.Slot, start bool) string {
	if s == nil {
		return ""
	}
	t := s.End
	if start {
		t = s.Start
	}
	if !t.Known() {
		return ""
	}
	return t.String()
}

func (m *Model) syncFocus() {
	for i := range m.inputs {
		if i == m.focus {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

func (m *Model) updateEdit(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeGrid
		return m, nil

	case "tab", "down":
		m.focus = (m.focus + 1) % fieldCount
		m.syncFocus()
		return m, nil
	case "shift+tab", "up":
		m.focus = (m.focus + fieldCount - 1) % fieldCount
		m.syncFocus()
		return m, nil

	case "enter":
		if err := m.saveEditor(); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.mode = modeGrid
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if m.focus != fieldNote {
		// Mirror the form's typing aids: full-width digits fold to ASCII and
		// a colon appears after two digits.
		raw := m.inputs[m.focus].Value()
		cooked := clock.AutoColon(clock.NormalizeWidth(raw))
		if cooked != raw {
			m.inputs[m.focus].SetValue(cooked)
			m.inputs[m.focus].CursorEnd()
		}
	}
	return m, cmd
}

func (m *Model) saveEditor() error {
	parse := func(field int) (clock.TimeOfDay, error) {
		return clock.Parse(m.inputs[field].Value())
	}

	start1, err := parse(fieldStart1)
	if err != nil {
		return err
	}
	end1, err := parse(fieldEnd1)
	if err != nil {
		return err
	}
	start2, err := parse(fieldStart2)
	if err != nil {
		return err
	}
	end2, err := parse(fieldEnd2)
	if err != nil {
		return err
	}

	key := m.cursorKey()
	e := m.svc.Entry(key)
	if e == nil {
		e = &schedule.Entry{}
	}
	e.SetSlots(schedule.NewSlot(start1, end1), schedule.NewSlot(start2, end2))
	e.SetNotes(m.inputs[fieldNote].Value())
	m.svc.SaveDay(key, e)
	return nil
}

func (m *Model) updateNotes(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeGrid
		return m, nil
	case "enter":
		m.svc.SetMonthNotes(m.monthInput.Value())
		m.refresh()
		m.mode = modeGrid
		return m, nil
	}

	var cmd tea.Cmd
	m.monthInput, cmd = m.monthInput.Update(msg)
	return m, cmd
}

func statusCopied(count int) string {
	if count == 1 {
		return "copied to 1 day"
	}
	return fmt.Sprintf("copied to %d days", count)
}

// Run launches the interactive month editor.
func Run(ctx context.Context, svc *state.Service, p store.Persistence) error {
	var watch <-chan store.Event
	if p != nil {
		if ch, err := p.Watch(ctx); err == nil {
			watch = ch
		}
	}

	prog := tea.NewProgram(New(svc, watch), tea.WithAltScreen())
	_, err := prog.Run()
	return err
}
