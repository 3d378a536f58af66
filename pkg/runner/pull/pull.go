// Package pull replaces local state with the sheet's copy of a month.
package pull

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/shifthope/pkg/printers"
	"tableflip.dev/shifthope/pkg/remote"
	"tableflip.dev/shifthope/pkg/state"
	"tableflip.dev/shifthope/pkg/store"
)

// Pull fetches the displayed month for an employee and overwrites the local
// day map and month note with what the sheet holds. A month the sheet has no
// submission for leaves local state untouched.
type Pull struct {
	Persistence store.Persistence
	Client      *remote.Client

	// Employee defaults to the stored submitter name, then to the config
	// file identity.
	Employee string

	Fallback string
}

func (p *Pull) Do(ctx context.Context) error {
	if p.Persistence == nil {
		return errors.New("pull: no persistence")
	}
	if p.Client == nil || !p.Client.Configured() {
		return remote.ErrNotConfigured
	}

	svc := state.New(p.Persistence)
	st := svc.State()

	employee := p.Employee
	if employee == "" {
		employee = st.EmployeeName
	}
	if employee == "" {
		employee = p.Fallback
	}
	if employee == "" {
		return errors.New("pull: no employee name set")
	}

	sub, err := p.Client.Fetch(ctx, employee, st.Year, st.Month)
	if err != nil {
		return fmt.Errorf("pull: %w", err)
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()

	// A response without a days field means the sheet holds nothing for
	// this month; the local entries stay as they are.
	if sub.Days == nil {
		pp.Notice(fmt.Sprintf("no submission found for %s, %s %d", employee, st.Month, st.Year))
		return nil
	}

	svc.SetEmployee(employee)
	svc.ReplaceMonth(sub.MonthNotes, sub.Days)

	pp.Notice(fmt.Sprintf("pulled %d days for %s, %s %d", len(sub.Days), employee, st.Month, st.Year))
	return nil
}
