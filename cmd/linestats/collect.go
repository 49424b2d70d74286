package main

type CollectCmd struct {
	StatisticsFlags `embed:""`

	ReportPath string `required:"" type:"path" help:"Spreadsheet to write. A path not ending in .xlsx is a directory that receives <project>.xlsx."`
}

func (c *CollectCmd) Run(ctx *context) error {
	report, err := c.collect(ctx)
	if err != nil {
		return err
	}

	path, err := ctx.ws.WriteExcelReport(report, c.ReportPath)
	if err != nil {
		return err
	}

	ctx.ws.Console().Printf("Report written to %v\n", path)
	return nil
}
