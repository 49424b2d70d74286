package excel

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/pescuma/linestats/lib/consoles"
	"github.com/pescuma/linestats/lib/model"
	"github.com/pescuma/linestats/lib/reports"
)

const (
	SheetName = "Statistics"
	Extension = ".xlsx"
)

var statusColors = map[model.Status]string{
	model.StatusOK:      "#00B050",
	model.StatusWarning: "#FFFF00",
	model.StatusError:   "#FF0000",
}

// Writer renders reports into a spreadsheet file.
type Writer struct {
	console    consoles.Console
	reportPath string
}

// NewWriter creates a writer for reportPath. A path not ending in .xlsx is a directory
// that receives <project name>.xlsx.
func NewWriter(console consoles.Console, reportPath string) *Writer {
	return &Writer{
		console:    console,
		reportPath: reportPath,
	}
}

// ReportPath returns the file the report will be written to.
func (w *Writer) ReportPath(report *model.ProjectReport) string {
	return FixReportPath(w.reportPath, report.ProjectName)
}

func (w *Writer) Render(report *model.ProjectReport) error {
	path := w.ReportPath(report)

	w.console.Printf("Writing report file %v\n", path)

	f := excelize.NewFile()
	defer f.Close()

	err := writeStatistics(f, report)
	if err != nil {
		return errors.Wrap(err, "error writing statistics sheet")
	}

	err = os.MkdirAll(filepath.Dir(path), 0o755)
	if err != nil {
		return errors.Wrapf(err, "error creating directory for %v", path)
	}

	err = f.SaveAs(path)
	if err != nil {
		return errors.Wrapf(err, "error writing %v", path)
	}

	return nil
}

func FixReportPath(reportPath string, projectName string) string {
	if strings.HasSuffix(reportPath, Extension) {
		return reportPath
	}

	return filepath.Join(reportPath, projectName+Extension)
}

func writeStatistics(f *excelize.File, report *model.ProjectReport) error {
	err := f.SetSheetName(f.GetSheetName(0), SheetName)
	if err != nil {
		return err
	}

	styles, err := createStatusStyles(f)
	if err != nil {
		return err
	}

	header := reports.Header(report)
	err = setRow(f, 1, toAny(header))
	if err != nil {
		return err
	}

	for i, row := range reports.Rows(report) {
		line := i + 2

		values := []any{row.Author}
		for _, c := range row.Cells {
			values = append(values, c.Lines)
		}
		values = append(values, row.Total)

		err = setRow(f, line, values)
		if err != nil {
			return err
		}

		for j, c := range row.Cells {
			cell, err := excelize.CoordinatesToCellName(j+2, line)
			if err != nil {
				return err
			}

			err = f.SetCellStyle(SheetName, cell, cell, styles[c.Status])
			if err != nil {
				return err
			}
		}
	}

	return f.SetColWidth(SheetName, "A", "A", 30)
}

func createStatusStyles(f *excelize.File) (map[model.Status]int, error) {
	result := map[model.Status]int{}

	for status, color := range statusColors {
		id, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
		})
		if err != nil {
			return nil, err
		}

		result[status] = id
	}

	return result, nil
}

func setRow(f *excelize.File, line int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, line)
	if err != nil {
		return err
	}

	return f.SetSheetRow(SheetName, cell, &values)
}

func toAny(values []string) []any {
	result := make([]any, len(values))
	for i, v := range values {
		result[i] = v
	}
	return result
}

var _ reports.Renderer = (*Writer)(nil)
