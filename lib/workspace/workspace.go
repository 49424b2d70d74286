package workspace

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/pescuma/linestats/lib/collectors"
	"github.com/pescuma/linestats/lib/collectors/git"
	"github.com/pescuma/linestats/lib/consoles"
	"github.com/pescuma/linestats/lib/model"
	"github.com/pescuma/linestats/lib/reports/excel"
	"github.com/pescuma/linestats/lib/reports/table"
	"github.com/pescuma/linestats/lib/storages"
	"github.com/pescuma/linestats/lib/storages/orm"
	"github.com/pescuma/linestats/lib/utils"
)

type Workspace struct {
	console  consoles.Console
	storage  storages.Storage
	registry *collectors.Registry
}

// NewWorkspace creates a workspace caching evaluations in file. An empty file disables
// the cache, :memory: keeps it for the life of the process.
func NewWorkspace(console consoles.Console, file string) (*Workspace, error) {
	var storage storages.Storage
	var err error
	switch {
	case file == "":
		storage = nil

	case file == ":memory:":
		storage, err = orm.NewGormStorage(orm.WithSqliteInMemory(), console)

	case strings.HasSuffix(file, ".sqlite"):
		file, err = utils.PathAbs(file)
		if err != nil {
			return nil, err
		}

		err = createWorkspaceDir(console, file)
		if err != nil {
			return nil, err
		}

		storage, err = orm.NewGormStorage(orm.WithSqlite(file), console)

	default:
		return nil, errors.Errorf("unknown storage type for file %v", file)
	}
	if err != nil {
		return nil, err
	}

	registry := collectors.NewRegistry()
	git.Register(registry, console, storage)

	return &Workspace{
		console:  console,
		storage:  storage,
		registry: registry,
	}, nil
}

func createWorkspaceDir(console consoles.Console, file string) error {
	path := filepath.Dir(file)

	if _, err := os.Stat(path); err != nil {
		console.Printf("Creating workspace at %v\n", path)
		err = os.MkdirAll(path, 0o700)
		if err != nil {
			return err
		}
	}

	return nil
}

func (w *Workspace) Close() error {
	if w.storage == nil {
		return nil
	}

	return w.storage.Close()
}

func (w *Workspace) Console() consoles.Console {
	return w.console
}

// Cached returns true when evaluations are stored between runs.
func (w *Workspace) Cached() bool {
	return w.storage != nil
}

func (w *Workspace) Kinds() []collectors.Kind {
	return w.registry.Kinds()
}

func (w *Workspace) CollectStatistics(ctx context.Context, kind string, path string, opts *collectors.Options) (*model.ProjectReport, error) {
	collector, err := w.registry.Get(collectors.ParseKind(kind))
	if err != nil {
		return nil, err
	}

	return collector.CollectStatistics(ctx, path, opts)
}

// WriteExcelReport writes the report spreadsheet and returns the file path.
func (w *Workspace) WriteExcelReport(report *model.ProjectReport, reportPath string) (string, error) {
	writer := excel.NewWriter(w.console, reportPath)

	err := writer.Render(report)
	if err != nil {
		return "", err
	}

	return writer.ReportPath(report), nil
}

func (w *Workspace) PrintReport(out io.Writer, report *model.ProjectReport, opts table.Options) error {
	return table.NewPrinter(out, opts).Render(report)
}
