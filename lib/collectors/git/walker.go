package git

import (
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/gobwas/glob"
	"github.com/hashicorp/go-set/v2"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/pescuma/linestats/lib/collectors"
	"github.com/pescuma/linestats/lib/model"
)

type WalkOptions struct {
	StartRef      string
	Location      *time.Location
	IgnoreCommits []string
	// IgnoreAuthors holds glob patterns matched against the commit author name.
	IgnoreAuthors []string
}

// Walk lists every non merge commit reachable from the start reference.
func Walk(path string, gitRepo *git.Repository, opts *WalkOptions) ([]*model.Commit, error) {
	if opts == nil {
		opts = &WalkOptions{}
	}

	_, start, err := resolveStart(gitRepo, opts.StartRef)
	if err != nil {
		return nil, collectors.NewRepositoryResolutionError(path, err)
	}

	ignored := set.From(opts.IgnoreCommits)

	ignoredAuthors, err := compileAuthorPatterns(opts.IgnoreAuthors)
	if err != nil {
		return nil, err
	}

	commitsIter, err := gitRepo.Log(&git.LogOptions{From: start})
	if err != nil {
		return nil, collectors.NewRepositoryResolutionError(path, err)
	}
	defer commitsIter.Close()

	var result []*model.Commit
	err = commitsIter.ForEach(func(gitCommit *object.Commit) error {
		commit := toCommit(gitCommit, opts.Location)
		if commit.IsMerge() {
			return nil
		}
		if ignored.Contains(commit.Hash) {
			return nil
		}
		if lo.SomeBy(ignoredAuthors, func(g glob.Glob) bool { return g.Match(commit.Name()) }) {
			return nil
		}

		result = append(result, commit)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "%v: error walking commits", path)
	}

	return result, nil
}

func compileAuthorPatterns(patterns []string) ([]glob.Glob, error) {
	result := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid author pattern: %v", p)
		}

		result = append(result, g)
	}
	return result, nil
}

func toCommit(gitCommit *object.Commit, loc *time.Location) *model.Commit {
	parents := lo.Map(gitCommit.ParentHashes, func(h plumbing.Hash, _ int) string { return h.String() })

	return model.NewCommit(gitCommit.Hash.String(),
		gitCommit.Author.Name, gitCommit.Committer.Name,
		gitCommit.Committer.When, loc,
		parents...)
}

func resolveStart(gitRepo *git.Repository, startRef string) (string, plumbing.Hash, error) {
	if startRef == "" || startRef == "HEAD" {
		gitHead, err := gitRepo.Head()
		if err != nil {
			return "", plumbing.ZeroHash, errors.Wrap(err, "error resolving HEAD")
		}

		return "HEAD", gitHead.Hash(), nil
	}

	for _, candidate := range strings.Split(startRef, ",") {
		candidate = strings.TrimSpace(candidate)

		revision, err := gitRepo.ResolveRevision(plumbing.Revision(candidate))
		if err == nil {
			return candidate, *revision, nil
		}
	}

	return "", plumbing.ZeroHash, errors.Errorf("no reference found with name: %v", startRef)
}
