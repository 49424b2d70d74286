package main

import (
	"os"

	"github.com/pescuma/linestats/lib/reports/table"
)

type ShowCmd struct {
	StatisticsFlags `embed:""`

	Colors      bool `default:"true" negatable:"" help:"Color each day by its status."`
	AuthorWidth int  `default:"30" help:"Maximum width of the author column."`
}

func (c *ShowCmd) Run(ctx *context) error {
	report, err := c.collect(ctx)
	if err != nil {
		return err
	}

	return ctx.ws.PrintReport(os.Stdout, report, table.Options{
		Colors:      c.Colors,
		AuthorWidth: c.AuthorWidth,
	})
}
