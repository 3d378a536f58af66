// Package nav moves the displayed month forward or back.
package nav

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/shifthope/pkg/printers"
	"tableflip.dev/shifthope/pkg/state"
	"tableflip.dev/shifthope/pkg/store"
)

type Nav struct {
	Persistence store.Persistence

	// Delta is months to move; +1 for next, -1 for prev.
	Delta int
}

func (n *Nav) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("nav: no persistence")
	}

	svc := state.New(n.Persistence)
	year, month := svc.Navigate(n.Delta)

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Notice(fmt.Sprintf("now on %s %d", month, year))
	return nil
}
