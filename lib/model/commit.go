package model

import (
	"time"
)

// Commit is the read-only view of a repository commit used for line statistics.
type Commit struct {
	Hash      string
	Author    string
	Committer string
	Time      time.Time
	Date      Date
	Parents   []string
}

func NewCommit(hash string, author string, committer string, ts time.Time, loc *time.Location, parents ...string) *Commit {
	return &Commit{
		Hash:      hash,
		Author:    author,
		Committer: committer,
		Time:      ts,
		Date:      DateOf(ts, loc),
		Parents:   parents,
	}
}

// Name returns the author name, or the committer name when no author is set.
func (c *Commit) Name() string {
	if c.Author != "" {
		return c.Author
	}
	return c.Committer
}

func (c *Commit) IsRoot() bool {
	return len(c.Parents) == 0
}

func (c *Commit) IsMerge() bool {
	return len(c.Parents) > 1
}
