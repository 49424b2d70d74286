package aggregation

import (
	"sort"

	"github.com/pescuma/linestats/lib/model"
	"github.com/pescuma/linestats/lib/utils"
)

// EvaluateFunc returns the inserted lines of one commit. It is called concurrently.
// An error aborts the aggregation.
type EvaluateFunc func(commit *model.Commit) (int, error)

type Result struct {
	From  *model.Date
	To    *model.Date
	Lines model.AuthorDateTable
	// Evaluated holds the count of every commit inside the range, by hash.
	Evaluated map[string]int
}

type evaluation struct {
	hash  string
	lines int
}

// Aggregate sums the inserted lines of the commits inside [from, to] by author and date.
// Missing bounds resolve to the first and last commit dates.
func Aggregate(commits []*model.Commit, from, to *model.Date, evaluate EvaluateFunc, opts ...utils.ParallelOptions) (*Result, error) {
	commits = SortCommits(commits)
	from, to = ResolveRange(commits, from, to)

	result := &Result{
		From:      from,
		To:        to,
		Lines:     model.NewAuthorDateTable(),
		Evaluated: map[string]int{},
	}

	if len(commits) == 0 {
		return result, nil
	}

	retained := FilterByDate(commits, *from, *to)

	// Evaluation runs in parallel, the fold into the table does not.
	group := utils.ParallelFor(retained, func(c *model.Commit) (evaluation, error) {
		lines, err := evaluate(c)
		if err != nil {
			return evaluation{}, err
		}

		return evaluation{hash: c.Hash, lines: max(lines, 0)}, nil
	}, opts...)

	evaluations, err := group.Collect()
	if err != nil {
		return nil, err
	}

	for _, e := range evaluations {
		result.Evaluated[e.hash] = e.lines
	}

	for _, c := range retained {
		result.Lines.Add(c.Name(), c.Date, result.Evaluated[c.Hash])
	}

	return result, nil
}

// ResolveRange fills the missing bounds with the first and last dates of the sorted
// commits. Without commits the bounds are returned as given.
func ResolveRange(sorted []*model.Commit, from, to *model.Date) (*model.Date, *model.Date) {
	if len(sorted) > 0 {
		if from == nil {
			from = &sorted[0].Date
		}
		if to == nil {
			to = &sorted[len(sorted)-1].Date
		}
	}

	return copyDate(from), copyDate(to)
}

// SortCommits returns a copy sorted by commit time, ties broken by hash.
func SortCommits(commits []*model.Commit) []*model.Commit {
	result := make([]*model.Commit, len(commits))
	copy(result, commits)

	sort.SliceStable(result, func(i, j int) bool {
		a := result[i]
		b := result[j]

		if !a.Time.Equal(b.Time) {
			return a.Time.Before(b.Time)
		}
		return a.Hash < b.Hash
	})

	return result
}

func FilterByDate(commits []*model.Commit, from, to model.Date) []*model.Commit {
	var result []*model.Commit
	for _, c := range commits {
		if c.Date.Before(from) || c.Date.After(to) {
			continue
		}

		result = append(result, c)
	}
	return result
}

func copyDate(d *model.Date) *model.Date {
	if d == nil {
		return nil
	}

	r := *d
	return &r
}
