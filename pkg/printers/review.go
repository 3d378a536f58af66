package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/shifthope/pkg/schedule"
	"tableflip.dev/shifthope/pkg/state"
)

// Review renders the month's filled-in days as a table, followed by the
// month notes and submission status.
func (pp *PrettyPrint) Review(st state.MonthState, keys []schedule.DateKey) {
	pp.MonthTitle(st.Year, st.Month, len(keys))
	pp.NewLine()

	if len(keys) == 0 {
		pp.Notice(" none")
		pp.NewLine()
		return
	}

	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 40
	tbl.AddRow(bold.Sprint("Date"), bold.Sprint("Day"), bold.Sprint("Availability"), bold.Sprint("Notes"))
	for _, k := range keys {
		e := st.Days[k]
		summary := e.Summary()
		if summary == "" {
			summary = "-"
		}
		notes := ""
		if e != nil {
			notes = e.Notes
		}
		tbl.AddRow(fmt.Sprintf("%2d", k.Day), k.Weekday().String()[:3], summary, notes)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(color.Output, tbl)
	pp.NewLine()

	if st.MonthNotes != "" {
		pp.Title("Notes")
		_, _ = fmt.Fprintln(color.Output, st.MonthNotes)
		pp.NewLine()
	}

	if st.Submitted {
		pp.Notice("submitted")
	} else {
		pp.Notice("not submitted")
	}
}

// Employees renders the roster with the active name marked.
func (pp *PrettyPrint) Employees(names []string, active string) {
	pp.Title("Employees")
	pp.NewLine()

	if len(names) == 0 {
		pp.Notice(" none")
		return
	}

	p := color.New()
	b := color.New(color.Bold, color.FgHiGreen)
	for _, n := range names {
		if n == active {
			_, _ = b.Fprintf(color.Output, "* %s\n", n)
		} else {
			_, _ = p.Fprintf(color.Output, "  %s\n", n)
		}
	}
}
