// Package printers renders availability state for the terminal.
package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/shifthope/pkg/schedule"
	"tableflip.dev/shifthope/pkg/ui/calendar"
)

type PrettyPrint struct {
	// ShowAxis adds a time-axis bar under each day in the review listing.
	ShowAxis bool
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(color.Output, "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(color.Output, title)
}

// MonthTitle prints "March 2025" style headers, with the day count faint.
func (pp *PrettyPrint) MonthTitle(year int, month time.Month, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprintf(color.Output, "%s %d", month.String(), year)
	_, _ = c.Fprintf(color.Output, " - %d", count)
	switch count {
	case 1:
		_, _ = c.Fprintln(color.Output, " day")
	default:
		_, _ = c.Fprintln(color.Output, " days")
	}
}

func (pp *PrettyPrint) Text(msg string) {
	_, _ = fmt.Fprintln(color.Output, msg)
}

func (pp *PrettyPrint) Notice(msg string) {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprintln(color.Output, msg)
}

func (pp *PrettyPrint) Warn(msg string) {
	y := color.New(color.FgHiYellow)
	_, _ = y.Fprintln(color.Output, msg)
}

// Month prints the month grid with entry markers and summaries.
func (pp *PrettyPrint) Month(year int, month time.Month, info map[schedule.DateKey]calendar.DayInfo, summaries bool) {
	pp.MonthTitle(year, month, countEntries(info))
	pp.NewLine()

	out := calendar.Render(year, month, info, calendar.Options{
		ShowHeader:    true,
		ShowSummaries: summaries,
		CellWidth:     cellWidthFor(summaries),
	})
	_, _ = fmt.Fprintln(color.Output, out)
	pp.NewLine()
}

func countEntries(info map[schedule.DateKey]calendar.DayInfo) int {
	n := 0
	for _, d := range info {
		if d.HasEntry {
			n++
		}
	}
	return n
}

func cellWidthFor(summaries bool) int {
	if summaries {
		return 12
	}
	return 4
}

// DayLine formats a single listing line, e.g. " 3 Mon  9:00-12:00".
func DayLine(key schedule.DateKey, entry *schedule.Entry) string {
	summary := entry.Summary()
	if summary == "" {
		summary = "-"
	}
	return fmt.Sprintf("%2d %s  %s", key.Day, key.Weekday().String()[:3], summary)
}

// Day prints one date with its availability and notes.
func (pp *PrettyPrint) Day(key schedule.DateKey, entry *schedule.Entry) {
	p := color.New()
	if key.Weekday() == time.Sunday || schedule.IsHoliday(key) {
		p = color.New(color.FgHiRed)
	} else if key.Weekday() == time.Saturday {
		p = color.New(color.FgHiBlue)
	}

	_, _ = p.Fprintln(color.Output, DayLine(key, entry))
	if entry != nil && entry.Notes != "" {
		f := color.New(color.Faint)
		_, _ = f.Fprintf(color.Output, "        %s\n", entry.Notes)
	}
	if pp.ShowAxis && entry != nil && !entry.AllDay {
		for _, s := range []*schedule.Slot{entry.Slot1, entry.Slot2} {
			if bar := AxisBar(s, axisWidth); bar != "" {
				_, _ = fmt.Fprintf(color.Output, "        %s\n", bar)
			}
		}
	}
}

const axisWidth = 40

// AxisBar renders a slot's position on the 7:00-23:00 axis as a fixed-width
// track, empty when the slot does not intersect the window.
func AxisBar(s *schedule.Slot, width int) string {
	p := schedule.Project(s)
	if !p.Visible {
		return ""
	}

	left := int(p.LeftPct * float64(width) / 100)
	span := int(p.WidthPct * float64(width) / 100)
	if span < 1 {
		span = 1
	}
	if left+span > width {
		span = width - left
	}

	var b strings.Builder
	b.WriteString("|")
	b.WriteString(strings.Repeat("·", left))
	b.WriteString(strings.Repeat("█", span))
	b.WriteString(strings.Repeat("·", width-left-span))
	b.WriteString("|")
	return b.String()
}
