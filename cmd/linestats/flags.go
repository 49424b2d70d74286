package main

import (
	"time"

	"github.com/pescuma/linestats/lib/collectors"
	"github.com/pescuma/linestats/lib/model"
)

type StatisticsFlags struct {
	Path string `arg:"" help:"Path to the project repository." type:"path"`

	VCS      string     `name:"vcs" default:"git" help:"Version control system of the project."`
	DateFrom model.Date `help:"First date of the report (YYYY-MM-DD). Default is the date of the first commit."`
	DateTo   model.Date `help:"Last date of the report (YYYY-MM-DD). Default is the date of the last commit."`
	UTC      bool       `name:"utc" help:"Compute commit dates in UTC instead of the local time zone."`

	Ref              string        `default:"HEAD" help:"Reference to walk from. Accepts a comma separated list of candidates."`
	Workers          int           `help:"Number of commits evaluated concurrently. Default is the number of CPUs minus one."`
	Exclude          []string      `help:"Glob patterns of paths that are not counted."`
	SkipVendored     bool          `help:"Do not count vendored or generated files."`
	IgnoreCommit     []string      `help:"Hashes of commits that are not counted."`
	IgnoreAuthor     []string      `help:"Glob patterns of author names that are not counted."`
	IgnoreWhitespace bool          `help:"Lines that only differ in whitespace are equal."`
	DiffTimeout      time.Duration `default:"1s" help:"Time limit of each file diff. Past it the diff is less precise."`
}

func (f *StatisticsFlags) toOptions(ctx *context) *collectors.Options {
	return &collectors.Options{
		DateFrom:         toOption(f.DateFrom),
		DateTo:           toOption(f.DateTo),
		StartRef:         f.Ref,
		Location:         f.location(),
		Workers:          f.Workers,
		IgnoreCommits:    f.IgnoreCommit,
		IgnoreAuthors:    f.IgnoreAuthor,
		Exclude:          f.Exclude,
		SkipVendored:     f.SkipVendored,
		IgnoreWhitespace: f.IgnoreWhitespace,
		DiffTimeout:      f.DiffTimeout,
		Incremental:      ctx.ws.Cached(),
		ShowProgress:     ctx.progress,
	}
}

func (f *StatisticsFlags) location() *time.Location {
	if f.UTC {
		return time.UTC
	}
	return time.Local
}

func (f *StatisticsFlags) collect(ctx *context) (*model.ProjectReport, error) {
	return ctx.ws.CollectStatistics(ctx.ctx, f.VCS, f.Path, f.toOptions(ctx))
}

func toOption[T comparable](d T) *T {
	var def T

	if d == def {
		return nil
	} else {
		return &d
	}
}
