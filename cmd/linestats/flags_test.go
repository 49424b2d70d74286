package main

import (
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pescuma/linestats/lib/consoles"
	"github.com/pescuma/linestats/lib/model"
	"github.com/pescuma/linestats/lib/workspace"
)

func TestToOption(t *testing.T) {
	t.Parallel()

	assert.Nil(t, toOption(model.Date{}))
	assert.Nil(t, toOption(""))
	assert.Equal(t, "a", *toOption("a"))
}

func TestParseCollectFlags(t *testing.T) {
	t.Parallel()

	var args struct {
		Collect CollectCmd `cmd:""`
	}

	parser, err := kong.New(&args, kong.Exit(func(int) { t.Fatal("unexpected exit") }))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"collect", "/tmp/project",
		"--report-path=/tmp/out.xlsx",
		"--date-from=2024-01-01",
		"--utc",
		"--exclude=**/*.md", "--exclude=docs/**",
		"--ignore-commit=abc",
		"--ignore-author=*bot*",
		"--workers=3",
	})
	require.NoError(t, err)

	ws, err := workspace.NewWorkspace(consoles.NewNullConsole(), "")
	require.NoError(t, err)

	opts := args.Collect.toOptions(&context{ws: ws, progress: true})

	assert.Equal(t, "/tmp/out.xlsx", args.Collect.ReportPath)
	assert.Equal(t, "git", args.Collect.VCS)
	assert.Equal(t, model.MustParseDate("2024-01-01"), *opts.DateFrom)
	assert.Nil(t, opts.DateTo)
	assert.Equal(t, "HEAD", opts.StartRef)
	assert.Equal(t, time.UTC, opts.Location)
	assert.Equal(t, 3, opts.Workers)
	assert.Equal(t, []string{"**/*.md", "docs/**"}, opts.Exclude)
	assert.Equal(t, []string{"abc"}, opts.IgnoreCommits)
	assert.Equal(t, []string{"*bot*"}, opts.IgnoreAuthors)
	assert.Equal(t, time.Second, opts.DiffTimeout)
	assert.False(t, opts.Incremental)
	assert.True(t, opts.ShowProgress)
}

func TestParseRejectsInvalidDate(t *testing.T) {
	t.Parallel()

	var args struct {
		Show ShowCmd `cmd:""`
	}

	parser, err := kong.New(&args, kong.Exit(func(int) {}))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"show", "/tmp/project", "--date-to=yesterday"})
	assert.Error(t, err)
}
