// Package config shows and adjusts the tool's effective configuration.
package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/shifthope/pkg/printers"
	"tableflip.dev/shifthope/pkg/state"
	"tableflip.dev/shifthope/pkg/store"
)

// Config prints the effective settings. With Endpoint set it stores an
// endpoint override in the db, which wins over the config file; Employee
// replaces the stored submitter identity.
type Config struct {
	Persistence store.Persistence
	Cfg         store.Config

	Endpoint    string
	SetEndpoint bool

	Employee    string
	SetEmployee bool
}

func (c *Config) Do(ctx context.Context) error {
	if c.Persistence == nil {
		return errors.New("config: no persistence")
	}

	if c.SetEndpoint {
		if c.Endpoint == "" {
			if err := c.Persistence.Remove(store.KeyEndpoint); err != nil {
				return fmt.Errorf("config: %w", err)
			}
		} else if err := c.Persistence.Set(store.KeyEndpoint, c.Endpoint); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}

	svc := state.New(c.Persistence)
	if c.SetEmployee {
		svc.SetEmployee(c.Employee)
	}
	st := svc.State()

	basePath := ""
	if c.Cfg != nil {
		basePath = c.Cfg.BasePath()
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title("Config")

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("path", basePath)
	tbl.AddRow("endpoint", orNone(store.Endpoint(c.Cfg, c.Persistence)))
	tbl.AddRow("employee", orNone(st.EmployeeName))
	tbl.AddRow("month", fmt.Sprintf("%s %d", st.Month, st.Year))

	_, _ = fmt.Fprintln(color.Output, tbl)
	return nil
}

func orNone(v string) string {
	if v == "" {
		return "(none)"
	}
	return v
}
