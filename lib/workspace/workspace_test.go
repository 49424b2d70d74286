package workspace

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-billy/v5/util"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/pescuma/linestats/lib/collectors"
	"github.com/pescuma/linestats/lib/consoles"
	"github.com/pescuma/linestats/lib/model"
	"github.com/pescuma/linestats/lib/reports/excel"
	"github.com/pescuma/linestats/lib/reports/table"
)

func TestUnknownStorage(t *testing.T) {
	t.Parallel()

	_, err := NewWorkspace(consoles.NewNullConsole(), "cache.txt")

	assert.Error(t, err)
}

func TestUnsupportedKind(t *testing.T) {
	t.Parallel()

	ws, err := NewWorkspace(consoles.NewNullConsole(), "")
	require.NoError(t, err)
	defer ws.Close()

	assert.False(t, ws.Cached())
	assert.Equal(t, []collectors.Kind{collectors.KindGit}, ws.Kinds())

	_, err = ws.CollectStatistics(context.Background(), "svn", t.TempDir(), nil)
	assert.True(t, errors.Is(err, collectors.ErrUnsupportedVCSKind))
}

func TestCollectAndRender(t *testing.T) {
	t.Parallel()

	repoDir := newRepository(t)
	cacheFile := filepath.Join(t.TempDir(), "cache", "linestats.sqlite")

	ws, err := NewWorkspace(consoles.NewNullConsole(), cacheFile)
	require.NoError(t, err)
	defer ws.Close()

	assert.True(t, ws.Cached())

	opts := &collectors.Options{Location: time.UTC, Incremental: true}
	report, err := ws.CollectStatistics(context.Background(), "GIT", repoDir, opts)
	require.NoError(t, err)

	day := model.MustParseDate("2024-01-01")
	assert.Equal(t, model.AuthorDateTable{"A": {day: 3}}, report.Lines)

	// Second run reads the cached evaluation.
	report, err = ws.CollectStatistics(context.Background(), "git", repoDir, opts)
	require.NoError(t, err)
	assert.Equal(t, 3, report.Lines.Total())

	reportDir := t.TempDir()
	path, err := ws.WriteExcelReport(report, reportDir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(reportDir, filepath.Base(repoDir)+excel.Extension), path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(excel.SheetName)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Author", "2024-01-01", "Total"}, {"A", "3", "3"}}, rows)

	var out bytes.Buffer
	require.NoError(t, ws.PrintReport(&out, report, table.Options{}))
	assert.Contains(t, out.String(), filepath.Base(repoDir))
}

func newRepository(t *testing.T) string {
	dir := t.TempDir()

	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)

	require.NoError(t, util.WriteFile(wt.Filesystem, "a.txt", []byte("1\n2\n3\n"), 0o644))
	_, err = wt.Add("a.txt")
	require.NoError(t, err)

	sig := &object.Signature{Name: "A", Email: "a@example.com", When: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)}
	_, err = wt.Commit("first", &git.CommitOptions{Author: sig, Committer: sig})
	require.NoError(t, err)

	return dir
}
