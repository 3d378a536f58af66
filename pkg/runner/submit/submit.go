// Package submit sends the month's availability to the sheet endpoint.
package submit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/shifthope/pkg/printers"
	"tableflip.dev/shifthope/pkg/remote"
	"tableflip.dev/shifthope/pkg/schedule"
	"tableflip.dev/shifthope/pkg/state"
	"tableflip.dev/shifthope/pkg/store"
)

// Submit marks the month submitted and, when an endpoint is configured,
// posts the payload. The local mark is not rolled back on a wire failure;
// the outcome reports what actually happened.
type Submit struct {
	Persistence store.Persistence
	Client      *remote.Client

	// Employee overrides the stored submitter name for this submission.
	Employee string

	// Fallback is the config file identity, used when nothing is stored.
	Fallback string
}

func (s *Submit) Do(ctx context.Context) error {
	res, err := s.Run(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	switch res.Outcome {
	case remote.SubmittedRemotely:
		pp.Notice(fmt.Sprintf("submitted %d days", res.DayCount))
	case remote.SubmittedLocallyOnly:
		pp.Notice(fmt.Sprintf("marked %d days submitted (no endpoint configured)", res.DayCount))
	case remote.Failed:
		pp.Warn(fmt.Sprintf("marked submitted locally, send failed: %v", res.Reason))
	}
	return nil
}

// Run performs the submission and returns the outcome.
func (s *Submit) Run(ctx context.Context) (remote.Result, error) {
	if s.Persistence == nil {
		return remote.Result{Outcome: remote.Failed}, errors.New("submit: no persistence")
	}

	svc := state.New(s.Persistence)
	if s.Employee != "" {
		svc.SetEmployee(s.Employee)
	}
	st := svc.State()
	name := st.EmployeeName
	if name == "" {
		name = s.Fallback
	}
	if name == "" {
		return remote.Result{Outcome: remote.Failed},
			errors.New("submit: no employee name set; run 'shifthope employees --select' or pass --employee")
	}

	days := make(map[schedule.DateKey]*schedule.Entry)
	count := 0
	for k, e := range st.Days {
		if !k.SameMonth(st.Year, st.Month) {
			continue
		}
		days[k] = e
		if e.HasTimeContent() {
			count++
		}
	}

	svc.SetSubmitted(true)

	if s.Client == nil || !s.Client.Configured() {
		return remote.Result{Outcome: remote.SubmittedLocallyOnly, DayCount: count}, nil
	}

	err := s.Client.Submit(ctx, remote.Payload{
		EmployeeName: name,
		Year:         st.Year,
		Month:        int(st.Month),
		MonthNotes:   st.MonthNotes,
		Days:         days,
		SubmittedAt:  time.Now(),
	})
	if err != nil {
		return remote.Result{Outcome: remote.Failed, Reason: err, DayCount: count}, nil
	}
	return remote.Result{Outcome: remote.SubmittedRemotely, DayCount: count}, nil
}
