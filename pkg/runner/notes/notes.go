// Package notes reads or replaces the month-wide free text note.
package notes

import (
	"context"
	"errors"

	"tableflip.dev/shifthope/pkg/printers"
	"tableflip.dev/shifthope/pkg/state"
	"tableflip.dev/shifthope/pkg/store"
)

type Notes struct {
	Persistence store.Persistence

	// Text replaces the note when Replace is set; otherwise the current note
	// is printed.
	Text    string
	Replace bool
}

func (n *Notes) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("notes: no persistence")
	}

	svc := state.New(n.Persistence)
	if n.Replace {
		svc.SetMonthNotes(n.Text)
	}

	st := svc.State()
	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title("Notes")
	if st.MonthNotes == "" {
		pp.Notice(" none")
	} else {
		pp.Text(st.MonthNotes)
	}
	pp.NewLine()
	return nil
}
