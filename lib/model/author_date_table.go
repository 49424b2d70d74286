package model

import (
	"sort"

	"github.com/samber/lo"
)

// AuthorDateTable maps author name -> date -> inserted lines.
type AuthorDateTable map[string]map[Date]int

func NewAuthorDateTable() AuthorDateTable {
	return AuthorDateTable{}
}

func (t AuthorDateTable) Add(author string, date Date, lines int) {
	if lines < 0 {
		lines = 0
	}

	dates, ok := t[author]
	if !ok {
		dates = map[Date]int{}
		t[author] = dates
	}

	dates[date] += lines
}

// Get returns the lines for the cell, 0 when absent.
func (t AuthorDateTable) Get(author string, date Date) int {
	return t[author][date]
}

func (t AuthorDateTable) Contains(author string, date Date) bool {
	_, ok := t[author][date]
	return ok
}

func (t AuthorDateTable) Authors() []string {
	result := lo.Keys(t)
	sort.Strings(result)
	return result
}

func (t AuthorDateTable) AuthorTotal(author string) int {
	return lo.Sum(lo.Values(t[author]))
}

func (t AuthorDateTable) Total() int {
	result := 0
	for author := range t {
		result += t.AuthorTotal(author)
	}
	return result
}
