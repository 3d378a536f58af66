// Package calendar renders a month of availability as a text grid.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/shifthope/pkg/schedule"
)

// DayInfo carries the per-date metadata the renderer paints.
type DayInfo struct {
	HasEntry   bool
	IsToday    bool
	IsSelected bool
	// Summary is the first availability line, e.g. "9:00-12:00" or "all day".
	Summary string
}

// Options controls the styling of the rendered grid.
type Options struct {
	HeaderStyle   lipgloss.Style
	DayStyle      lipgloss.Style
	DimStyle      lipgloss.Style // adjacent-month cells
	WeekendStyle  lipgloss.Style
	HolidayStyle  lipgloss.Style
	EntryStyle    lipgloss.Style
	TodayStyle    lipgloss.Style
	SelectedStyle lipgloss.Style

	// CellWidth is the column width; values below 4 fall back to the default.
	CellWidth  int
	ShowHeader bool
	// ShowSummaries adds a second row per week with each day's first
	// availability line.
	ShowSummaries bool
}

const defaultCellWidth = 12

var weekdayHeaders = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// Render produces the multi-line grid for a month. Cells from the adjacent
// months fill the leading and trailing positions, dimmed.
func Render(year int, month time.Month, info map[schedule.DateKey]DayInfo, opts Options) string {
	cells := schedule.BuildMonthGrid(year, month)

	width := opts.CellWidth
	if width < 4 {
		width = defaultCellWidth
	}

	var lines []string
	if opts.ShowHeader {
		var hs []string
		for _, h := range weekdayHeaders {
			hs = append(hs, pad(h, width))
		}
		lines = append(lines, opts.HeaderStyle.Render(strings.TrimRight(strings.Join(hs, " "), " ")))
	}

	for row := 0; row*7 < len(cells); row++ {
		var nums []string
		var sums []string
		for col := 0; col < 7; col++ {
			cell := cells[row*7+col]
			meta := info[cell.Key()]
			nums = append(nums, renderDayNumber(cell, meta, width, opts))
			if opts.ShowSummaries {
				sums = append(sums, renderSummary(cell, meta, width, opts))
			}
		}
		lines = append(lines, strings.TrimRight(strings.Join(nums, " "), " "))
		if opts.ShowSummaries {
			lines = append(lines, strings.TrimRight(strings.Join(sums, " "), " "))
		}
	}

	return strings.Join(lines, "\n")
}

func renderDayNumber(cell schedule.Cell, meta DayInfo, width int, opts Options) string {
	label := fmt.Sprintf("%2d", cell.Date)
	if meta.HasEntry {
		label += "*"
	}

	style := cellStyle(cell, meta, opts)
	return style.Render(pad(label, width))
}

func renderSummary(cell schedule.Cell, meta DayInfo, width int, opts Options) string {
	if cell.Belongs != schedule.MonthCurrent || meta.Summary == "" {
		return pad("", width)
	}
	return opts.EntryStyle.Render(pad(truncate(meta.Summary, width), width))
}

func cellStyle(cell schedule.Cell, meta DayInfo, opts Options) lipgloss.Style {
	style := opts.DayStyle
	switch {
	case cell.Belongs != schedule.MonthCurrent:
		style = opts.DimStyle
	case cell.IsHoliday():
		style = opts.HolidayStyle
	case cell.IsWeekend():
		style = opts.WeekendStyle
	}
	if meta.HasEntry && cell.Belongs == schedule.MonthCurrent {
		style = style.Inherit(opts.EntryStyle)
	}
	if meta.IsToday {
		style = style.Inherit(opts.TodayStyle)
	}
	if meta.IsSelected {
		style = style.Inherit(opts.SelectedStyle)
	}
	return style
}

func pad(s string, width int) string {
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 1 {
		return string(r[:width])
	}
	return string(r[:width-1]) + "…"
}
