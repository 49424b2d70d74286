package model

// ProjectReport is the result of one collection run. It is not modified after creation.
type ProjectReport struct {
	ProjectName string
	DateFrom    *Date
	DateTo      *Date
	Lines       AuthorDateTable
}

func NewProjectReport(projectName string, dateFrom *Date, dateTo *Date, lines AuthorDateTable) *ProjectReport {
	if lines == nil {
		lines = NewAuthorDateTable()
	}

	return &ProjectReport{
		ProjectName: projectName,
		DateFrom:    dateFrom,
		DateTo:      dateTo,
		Lines:       lines,
	}
}

// Dates lists every date of the report range, both bounds included.
func (r *ProjectReport) Dates() []Date {
	if r.DateFrom == nil || r.DateTo == nil {
		return nil
	}

	return DatesBetween(*r.DateFrom, *r.DateTo)
}

func (r *ProjectReport) Status(author string, date Date) Status {
	return Classify(r.Lines.Get(author, date))
}
