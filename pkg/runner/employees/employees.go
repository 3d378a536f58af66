// Package employees lists the sheet's roster and picks the active name.
package employees

import (
	"context"
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"

	"tableflip.dev/shifthope/pkg/printers"
	"tableflip.dev/shifthope/pkg/remote"
	"tableflip.dev/shifthope/pkg/state"
	"tableflip.dev/shifthope/pkg/store"
)

// Employees fetches the roster from the sheet. With Select set it prompts
// for a name and stores it as the submitter identity.
type Employees struct {
	Persistence store.Persistence
	Client      *remote.Client

	Select bool
}

func (e *Employees) Do(ctx context.Context) error {
	if e.Persistence == nil {
		return errors.New("employees: no persistence")
	}
	if e.Client == nil || !e.Client.Configured() {
		return remote.ErrNotConfigured
	}

	names, err := e.Client.Employees(ctx)
	if err != nil {
		return fmt.Errorf("employees: %w", err)
	}

	svc := state.New(e.Persistence)
	st := svc.State()
	pp := printers.PrettyPrint{}

	// A stored identity that fell off the roster is stale; drop it.
	if st.EmployeeName != "" && !contains(names, st.EmployeeName) {
		svc.SetEmployee("")
		pp.NewLine()
		pp.Warn(fmt.Sprintf("%s is no longer on the sheet; cleared", st.EmployeeName))
		st = svc.State()
	}

	if !e.Select {
		pp.NewLine()
		pp.Employees(names, st.EmployeeName)
		return nil
	}

	if len(names) == 0 {
		return errors.New("employees: sheet has no employees")
	}

	prompt := promptui.Select{
		Label:    "Submit as",
		Items:    names,
		HideHelp: true,
		Size:     10,
	}
	i, _, err := prompt.Run()
	if err != nil {
		return fmt.Errorf("employees: %w", err)
	}

	svc.SetEmployee(names[i])
	pp.NewLine()
	pp.Notice(fmt.Sprintf("submitting as %s", names[i]))
	return nil
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
