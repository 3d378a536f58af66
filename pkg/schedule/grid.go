package schedule

import "time"

// CellMonth says which month a grid cell's date belongs to.
type CellMonth string

const (
	MonthCurrent  CellMonth = "current"
	MonthPrevious CellMonth = "previous"
	MonthNext     CellMonth = "next"
)

// Cell is one square of the rendered month grid. Cells are derived on demand
// from (year, month) and never stored.
type Cell struct {
	Date    int
	Belongs CellMonth
	Year    int
	Month   time.Month
}

// Key returns the DateKey the cell stands for.
func (c Cell) Key() DateKey {
	return DateKey{Year: c.Year, Month: c.Month, Day: c.Date}
}

// Weekday returns the cell's day of week, Sunday == 0.
func (c Cell) Weekday() time.Weekday {
	return c.Key().Weekday()
}

// IsWeekend reports Saturday or Sunday.
func (c Cell) IsWeekend() bool {
	wd := c.Weekday()
	return wd == time.Sunday || wd == time.Saturday
}

// IsHoliday reports membership in the fixed national holiday set.
func (c Cell) IsHoliday() bool {
	return IsHoliday(c.Key())
}

// DaysIn returns the number of days in the month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()
}

// BuildMonthGrid lays out the Sunday-first display grid for a month. Cells
// before the 1st count backward from the last day of the previous month and
// cells after the last day count forward from 1, with year rollover at both
// boundaries. The result length is always a multiple of seven.
func BuildMonthGrid(year int, month time.Month) []Cell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	startPad := int(first.Weekday())
	daysInMonth := DaysIn(year, month)

	prevYear, prevMonth := year, month-1
	if month == time.January {
		prevYear, prevMonth = year-1, time.December
	}
	nextYear, nextMonth := year, month+1
	if month == time.December {
		nextYear, nextMonth = year+1, time.January
	}
	prevDays := DaysIn(prevYear, prevMonth)

	rows := (startPad + daysInMonth + 6) / 7
	cells := make([]Cell, 0, rows*7)
	for i := 0; i < rows*7; i++ {
		seq := i - startPad + 1
		switch {
		case seq < 1:
			cells = append(cells, Cell{
				Date:    prevDays + seq,
				Belongs: MonthPrevious,
				Year:    prevYear,
				Month:   prevMonth,
			})
		case seq > daysInMonth:
			cells = append(cells, Cell{
				Date:    seq - daysInMonth,
				Belongs: MonthNext,
				Year:    nextYear,
				Month:   nextMonth,
			})
		default:
			cells = append(cells, Cell{
				Date:    seq,
				Belongs: MonthCurrent,
				Year:    year,
				Month:   month,
			})
		}
	}
	return cells
}
