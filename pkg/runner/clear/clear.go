// Package clear removes availability, for one day or the whole month.
package clear

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/shifthope/pkg/printers"
	"tableflip.dev/shifthope/pkg/schedule"
	"tableflip.dev/shifthope/pkg/state"
	"tableflip.dev/shifthope/pkg/store"
)

// Clear wipes one date when Date is set, otherwise the entire current month
// including its notes.
type Clear struct {
	Persistence store.Persistence

	Date string
}

func (c *Clear) Do(ctx context.Context) error {
	if c.Persistence == nil {
		return errors.New("clear: no persistence")
	}

	svc := state.New(c.Persistence)
	st := svc.State()
	pp := printers.PrettyPrint{}

	if c.Date != "" {
		key, err := schedule.ResolveDay(st.Year, st.Month, c.Date)
		if err != nil {
			return err
		}
		if svc.ClearDay(key) {
			pp.Notice(fmt.Sprintf("cleared %s", key))
		} else {
			pp.Notice(fmt.Sprintf("nothing on %s", key))
		}
		return nil
	}

	removed := svc.ClearMonth()
	pp.Notice(fmt.Sprintf("cleared %d days in %s %d", removed, st.Month, st.Year))
	return nil
}
