// Package ui launches the interactive month editor.
package ui

import (
	"context"
	"errors"

	"tableflip.dev/shifthope/pkg/state"
	"tableflip.dev/shifthope/pkg/store"
	"tableflip.dev/shifthope/pkg/tui"
)

type UI struct {
	Persistence store.Persistence
}

func (u *UI) Do(ctx context.Context) error {
	if u.Persistence == nil {
		return errors.New("ui: no persistence")
	}
	return tui.Run(ctx, state.New(u.Persistence), u.Persistence)
}
