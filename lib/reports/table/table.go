package table

import (
	"fmt"
	"io"

	"github.com/aquilax/truncate"
	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/pescuma/linestats/lib/model"
	"github.com/pescuma/linestats/lib/reports"
)

const DefaultAuthorWidth = 30

var statusColors = map[model.Status]text.Colors{
	model.StatusOK:      {text.FgGreen},
	model.StatusWarning: {text.FgYellow},
	model.StatusError:   {text.FgRed},
}

type Options struct {
	// Colors paints each date cell with the color of its status.
	Colors bool
	// AuthorWidth truncates longer author names. 0 means DefaultAuthorWidth.
	AuthorWidth int
}

// Printer renders reports as a text table.
type Printer struct {
	out  io.Writer
	opts Options
}

func NewPrinter(out io.Writer, opts Options) *Printer {
	if opts.AuthorWidth <= 0 {
		opts.AuthorWidth = DefaultAuthorWidth
	}

	return &Printer{
		out:  out,
		opts: opts,
	}
}

func (p *Printer) Render(report *model.ProjectReport) error {
	tbl := table.NewWriter()
	tbl.SetTitle(report.ProjectName)
	tbl.SetStyle(table.StyleLight)

	header := table.Row{}
	for _, h := range reports.Header(report) {
		header = append(header, h)
	}
	tbl.AppendHeader(header)

	rows := reports.Rows(report)
	for _, r := range rows {
		row := table.Row{truncate.Truncate(r.Author, p.opts.AuthorWidth, "...", truncate.PositionEnd)}
		for _, c := range r.Cells {
			row = append(row, p.cell(c))
		}
		row = append(row, humanize.Comma(int64(r.Total)))

		tbl.AppendRow(row)
	}

	footer := table.Row{fmt.Sprintf("%v authors", len(rows))}
	for _, d := range report.Dates() {
		footer = append(footer, humanize.Comma(int64(dayTotal(report, d))))
	}
	footer = append(footer, humanize.Comma(int64(report.Lines.Total())))
	tbl.AppendFooter(footer)

	_, err := fmt.Fprintln(p.out, tbl.Render())
	return err
}

func (p *Printer) cell(c reports.Cell) string {
	value := humanize.Comma(int64(c.Lines))
	if !p.opts.Colors {
		return value
	}

	return statusColors[c.Status].Sprint(value)
}

func dayTotal(report *model.ProjectReport, d model.Date) int {
	result := 0
	for _, author := range report.Lines.Authors() {
		result += report.Lines.Get(author, d)
	}
	return result
}

var _ reports.Renderer = (*Printer)(nil)
