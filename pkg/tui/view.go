package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/shifthope/pkg/printers"
	"tableflip.dev/shifthope/pkg/schedule"
	"tableflip.dev/shifthope/pkg/ui/calendar"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	faintStyle    = lipgloss.NewStyle().Faint(true)
	headerStyle   = lipgloss.NewStyle().Faint(true)
	dimStyle      = lipgloss.NewStyle().Faint(true)
	weekendStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	holidayStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	entryStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	todayStyle    = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	labelStyle    = lipgloss.NewStyle().Faint(true).Width(8)
	frameStyle    = lipgloss.NewStyle().Padding(1, 2)
)

func (m *Model) View() string {
	switch m.mode {
	case modeHelp:
		return frameStyle.Render(m.helpView())
	case modeNotes:
		return frameStyle.Render(m.notesView())
	case modeEdit:
		return frameStyle.Render(m.gridView() + "\n\n" + m.editView())
	default:
		return frameStyle.Render(m.gridView() + "\n\n" + m.detailView())
	}
}

func (m *Model) gridView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("%s %d", m.st.Month, m.st.Year)))
	if m.st.EmployeeName != "" {
		b.WriteString(faintStyle.Render("  " + m.st.EmployeeName))
	}
	if m.st.Submitted {
		b.WriteString(faintStyle.Render("  [submitted]"))
	}
	b.WriteString("\n\n")

	today := schedule.KeyFor(m.svc.Now())
	info := map[schedule.DateKey]calendar.DayInfo{}
	for k, e := range m.st.Days {
		lines := e.SummaryLines()
		d := calendar.DayInfo{HasEntry: e.HasTimeContent()}
		if len(lines) > 0 {
			d.Summary = lines[0]
		}
		info[k] = d
	}
	mark := func(k schedule.DateKey, f func(*calendar.DayInfo)) {
		d := info[k]
		f(&d)
		info[k] = d
	}
	if today.SameMonth(m.st.Year, m.st.Month) {
		mark(today, func(d *calendar.DayInfo) { d.IsToday = true })
	}
	mark(m.cursorKey(), func(d *calendar.DayInfo) { d.IsSelected = true })

	b.WriteString(calendar.Render(m.st.Year, m.st.Month, info, calendar.Options{
		HeaderStyle:   headerStyle,
		DimStyle:      dimStyle,
		WeekendStyle:  weekendStyle,
		HolidayStyle:  holidayStyle,
		EntryStyle:    entryStyle,
		TodayStyle:    todayStyle,
		SelectedStyle: selectedStyle,
		ShowHeader:    true,
		ShowSummaries: m.width == 0 || m.width >= 7*13,
	}))
	return b.String()
}

func (m *Model) detailView() string {
	var b strings.Builder
	key := m.cursorKey()
	e := m.st.Days[key]

	b.WriteString(titleStyle.Render(key.String()))
	b.WriteString("\n")

	summary := e.Summary()
	if summary == "" {
		summary = "free"
	}
	b.WriteString(summary)
	b.WriteString("\n")

	if e != nil && !e.AllDay {
		for _, s := range []*schedule.Slot{e.Slot1, e.Slot2} {
			if bar := printers.AxisBar(s, 40); bar != "" {
				b.WriteString(faintStyle.Render(bar))
				b.WriteString("\n")
			}
		}
	}
	if e != nil && e.Notes != "" {
		b.WriteString(faintStyle.Render(wordwrap.String(e.Notes, m.wrapWidth())))
		b.WriteString("\n")
	}
	marked := 0
	for _, wk := range schedule.WeekKeys(key) {
		if m.st.Days[wk].HasTimeContent() {
			marked++
		}
	}
	b.WriteString(faintStyle.Render(fmt.Sprintf("this week: %d of 7 days marked", marked)))
	b.WriteString("\n")

	if m.st.MonthNotes != "" {
		b.WriteString("\n")
		b.WriteString(faintStyle.Render(wordwrap.String("month: "+m.st.MonthNotes, m.wrapWidth())))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(warnStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(faintStyle.Render("enter edit · a all day · x clear · w copy weekday · n/p month · m notes · ? help · q quit"))
	return b.String()
}

func (m *Model) editView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("edit " + m.cursorKey().String()))
	b.WriteString("\n\n")

	row := func(label string, start, end int) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(m.inputs[start].View())
		b.WriteString(" - ")
		b.WriteString(m.inputs[end].View())
		b.WriteString("\n")
	}
	row("slot 1", fieldStart1, fieldEnd1)
	row("slot 2", fieldStart2, fieldEnd2)

	b.WriteString(labelStyle.Render("note"))
	b.WriteString(m.inputs[fieldNote].View())
	b.WriteString("\n\n")

	if m.status != "" {
		b.WriteString(warnStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(faintStyle.Render("tab next field · enter save · esc cancel"))
	return b.String()
}

func (m *Model) notesView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("notes for %s %d", m.st.Month, m.st.Year)))
	b.WriteString("\n\n")
	b.WriteString(m.monthInput.View())
	b.WriteString("\n\n")
	b.WriteString(faintStyle.Render("enter save · esc cancel"))
	return b.String()
}

func (m *Model) wrapWidth() int {
	if m.width > 8 && m.width < 88 {
		return m.width - 8
	}
	return 80
}
