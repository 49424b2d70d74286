package reports

import (
	"github.com/samber/lo"

	"github.com/pescuma/linestats/lib/model"
)

type Renderer interface {
	Render(report *model.ProjectReport) error
}

// Row is the rendered line of one author: a cell for every date of the report range and
// the author total.
type Row struct {
	Author string
	Cells  []Cell
	Total  int
}

type Cell struct {
	Date   model.Date
	Lines  int
	Status model.Status
}

// Rows lays out the report one row per author, sorted by author name. Missing entries
// are rendered as 0.
func Rows(report *model.ProjectReport) []Row {
	dates := report.Dates()

	return lo.Map(report.Lines.Authors(), func(author string, _ int) Row {
		return Row{
			Author: author,
			Cells: lo.Map(dates, func(d model.Date, _ int) Cell {
				return Cell{
					Date:   d,
					Lines:  report.Lines.Get(author, d),
					Status: report.Status(author, d),
				}
			}),
			Total: report.Lines.AuthorTotal(author),
		}
	})
}

// Header returns the column titles: Author, each date and Total.
func Header(report *model.ProjectReport) []string {
	result := []string{"Author"}
	for _, d := range report.Dates() {
		result = append(result, d.String())
	}
	return append(result, "Total")
}
