package git

import (
	"context"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/gertd/go-pluralize"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/schollz/progressbar/v3"

	"github.com/pescuma/linestats/lib/aggregation"
	"github.com/pescuma/linestats/lib/collectors"
	"github.com/pescuma/linestats/lib/consoles"
	"github.com/pescuma/linestats/lib/model"
	"github.com/pescuma/linestats/lib/storages"
	"github.com/pescuma/linestats/lib/utils"
)

type Collector struct {
	console consoles.Console
	storage storages.Storage
	plural  *pluralize.Client
}

// NewCollector creates a git collector. storage may be nil, which disables the
// incremental mode.
func NewCollector(console consoles.Console, storage storages.Storage) *Collector {
	return &Collector{
		console: console,
		storage: storage,
		plural:  pluralize.NewClient(),
	}
}

// Register adds a git collector to the registry.
func Register(registry *collectors.Registry, console consoles.Console, storage storages.Storage) {
	registry.Register(collectors.KindGit, NewCollector(console, storage))
}

func (c *Collector) CollectStatistics(ctx context.Context, path string, opts *collectors.Options) (*model.ProjectReport, error) {
	rootDir, err := utils.PathAbs(path)
	if err != nil {
		return nil, collectors.NewRepositoryResolutionError(path, err)
	}

	if filepath.Base(rootDir) == git.GitDirName {
		rootDir = filepath.Dir(rootDir)
	}

	return c.Collect(ctx, rootDir, func() (*git.Repository, error) {
		return git.PlainOpenWithOptions(rootDir, &git.PlainOpenOptions{DetectDotGit: true})
	}, opts)
}

// Collect computes the statistics of the repository returned by open. open is called
// once for each concurrent worker and must return independent handles to the same
// repository.
func (c *Collector) Collect(ctx context.Context, rootDir string, open func() (*git.Repository, error), opts *collectors.Options) (*model.ProjectReport, error) {
	if opts == nil {
		opts = &collectors.Options{}
	}

	pool := newRepositoryPool(open)
	defer pool.Close()

	gitRepo, err := pool.get()
	if err != nil {
		return nil, collectors.NewRepositoryResolutionError(rootDir, err)
	}

	name := projectName(rootDir, gitRepo)

	c.console.PushPrefix("%v: ", name)
	defer c.console.PopPrefix()

	commits, err := Walk(rootDir, gitRepo, &WalkOptions{
		StartRef:      opts.StartRef,
		Location:      opts.Location,
		IgnoreCommits: opts.IgnoreCommits,
		IgnoreAuthors: opts.IgnoreAuthors,
	})
	pool.put(gitRepo)
	if err != nil {
		return nil, err
	}

	evaluator, err := NewEvaluator(c.console, &EvaluatorOptions{
		Exclude:          opts.Exclude,
		SkipVendored:     opts.SkipVendored,
		IgnoreWhitespace: opts.IgnoreWhitespace,
		DiffTimeout:      opts.DiffTimeout,
	})
	if err != nil {
		return nil, err
	}

	cached, err := c.loadCache(rootDir, evaluator.Mode(), opts)
	if err != nil {
		return nil, err
	}

	commits = aggregation.SortCommits(commits)
	from, to := aggregation.ResolveRange(commits, opts.DateFrom, opts.DateTo)

	toEvaluate := 0
	if from != nil && to != nil {
		for _, commit := range aggregation.FilterByDate(commits, *from, *to) {
			if _, ok := cached[commit.Hash]; !ok {
				toEvaluate++
			}
		}
	}

	c.console.Printf("Found %v, %v to evaluate\n",
		c.plural.Pluralize("commit", len(commits), true), humanize.Comma(int64(toEvaluate)))

	var bar *progressbar.ProgressBar
	if opts.ShowProgress && toEvaluate > 0 {
		bar = utils.NewProgressBar(toEvaluate)
	}

	evaluate := func(commit *model.Commit) (int, error) {
		if lines, ok := cached[commit.Hash]; ok {
			return lines, nil
		}

		if err := ctx.Err(); err != nil {
			return 0, err
		}

		r, err := pool.get()
		if err != nil {
			return 0, collectors.NewRepositoryResolutionError(rootDir, err)
		}
		defer pool.put(r)

		lines := evaluator.Evaluate(ctx, r, plumbing.NewHash(commit.Hash))

		// A cancelled diff is logged by the evaluator and would count as 0.
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		if bar != nil {
			_ = bar.Add(1)
		}

		return lines, nil
	}

	result, err := aggregation.Aggregate(commits, from, to, evaluate, utils.ParallelOptions{Routines: opts.Workers})
	if bar != nil {
		_ = bar.Finish()
	}
	if err != nil {
		return nil, err
	}

	err = c.writeCache(rootDir, evaluator.Mode(), cached, result.Evaluated, opts)
	if err != nil {
		return nil, err
	}

	if result.From != nil && result.To != nil {
		c.console.Printf("%v to %v: %v by %v\n", result.From, result.To,
			c.plural.Pluralize("inserted line", result.Lines.Total(), true),
			c.plural.Pluralize("author", len(result.Lines), true))
	}

	return model.NewProjectReport(name, result.From, result.To, result.Lines), nil
}

func (c *Collector) loadCache(rootDir string, mode string, opts *collectors.Options) (map[string]int, error) {
	if !opts.Incremental || c.storage == nil {
		return map[string]int{}, nil
	}

	result, err := c.storage.LoadCommitLines(rootDir, mode)
	if err != nil {
		return nil, err
	}

	c.console.Debugf("Reusing %v\n", c.plural.Pluralize("evaluated commit", len(result), true))

	return result, nil
}

func (c *Collector) writeCache(rootDir string, mode string, cached map[string]int, evaluated map[string]int, opts *collectors.Options) error {
	if !opts.Incremental || c.storage == nil {
		return nil
	}

	toWrite := map[string]int{}
	for hash, lines := range evaluated {
		if _, ok := cached[hash]; !ok {
			toWrite[hash] = lines
		}
	}

	return c.storage.WriteCommitLines(rootDir, mode, toWrite)
}

var _ collectors.Collector = (*Collector)(nil)
