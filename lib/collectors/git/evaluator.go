package git

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-enry/go-enry/v2"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/pkg/errors"

	"github.com/pescuma/linestats/lib/consoles"
	"github.com/pescuma/linestats/lib/linediff"
)

type EvaluatorOptions struct {
	// Exclude holds doublestar patterns of paths that are never counted.
	Exclude          []string
	SkipVendored     bool
	IgnoreWhitespace bool
	DiffTimeout      time.Duration
}

// Evaluator counts the lines a commit inserted relative to its first parent.
type Evaluator struct {
	console consoles.Console
	opts    EvaluatorOptions
	diff    linediff.Options
}

func NewEvaluator(console consoles.Console, opts *EvaluatorOptions) (*Evaluator, error) {
	if opts == nil {
		opts = &EvaluatorOptions{}
	}

	for _, pattern := range opts.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.Errorf("invalid exclude pattern: %v", pattern)
		}
	}

	result := &Evaluator{
		console: console,
		opts:    *opts,
		diff:    linediff.Options{Timeout: opts.DiffTimeout},
	}
	if opts.IgnoreWhitespace {
		result.diff.Comparator = linediff.IgnoreWhitespace
	}

	return result, nil
}

// Mode identifies the options that change the evaluation result.
func (e *Evaluator) Mode() string {
	timeout := "none"
	if t := e.diff.EffectiveTimeout(); t > 0 {
		timeout = t.String()
	}

	return fmt.Sprintf("ws=%v;vendored=%v;exclude=%v;timeout=%v",
		e.opts.IgnoreWhitespace, e.opts.SkipVendored, strings.Join(e.opts.Exclude, ","), timeout)
}

// Evaluate returns the inserted lines of the commit. Problems reading the commit are
// logged and count as 0.
func (e *Evaluator) Evaluate(ctx context.Context, gitRepo *git.Repository, hash plumbing.Hash) int {
	gitCommit, err := gitRepo.CommitObject(hash)
	if err != nil {
		e.console.Printf("Cannot read commit %v: %v\n", hash, err)
		return 0
	}

	changes, err := e.changes(ctx, gitCommit)
	if err != nil {
		e.console.Printf("Cannot obtain diffs for commit %v: %v\n", hash, err)
		return 0
	}

	result := 0
	for _, fc := range changes {
		result += e.evaluateFile(gitCommit, fc)
	}

	return result
}

func (e *Evaluator) changes(ctx context.Context, gitCommit *object.Commit) ([]*FileChange, error) {
	gitTree, err := gitCommit.Tree()
	if err != nil {
		return nil, err
	}

	var parentTree *object.Tree
	if gitCommit.NumParents() > 0 {
		gitParent, err := gitCommit.Parent(0)
		if err != nil {
			return nil, err
		}

		parentTree, err = gitParent.Tree()
		if err != nil {
			return nil, err
		}
	}

	return ListChanges(ctx, parentTree, gitTree)
}

func (e *Evaluator) evaluateFile(gitCommit *object.Commit, fc *FileChange) int {
	if e.isExcluded(fc.Path()) {
		return 0
	}

	if fc.Unchanged() {
		return 0
	}

	fc.ReadContents()

	for _, err := range fc.Errs {
		e.console.Debugf("%v: %v\n", gitCommit.Hash, err)
	}

	if fc.Binary {
		e.console.Debugf("%v: binary content in %v read as empty\n", gitCommit.Hash, fc.Path())
	}

	if e.opts.SkipVendored && enry.IsGenerated(fc.Path(), []byte(fc.NewText)) {
		return 0
	}

	return linediff.Inserted(fc.OldText, fc.NewText, e.diff)
}

func (e *Evaluator) isExcluded(path string) bool {
	if e.opts.SkipVendored && enry.IsVendor(path) {
		return true
	}

	for _, pattern := range e.opts.Exclude {
		// Patterns were validated in NewEvaluator
		if ok, _ := doublestar.Match(pattern, path); ok {
			return true
		}
	}

	return false
}
