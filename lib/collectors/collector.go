package collectors

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/pescuma/linestats/lib/model"
)

type Kind string

const KindGit Kind = "git"

func ParseKind(kind string) Kind {
	return Kind(strings.ToLower(strings.TrimSpace(kind)))
}

type Collector interface {
	CollectStatistics(ctx context.Context, path string, opts *Options) (*model.ProjectReport, error)
}

type Options struct {
	// DateFrom and DateTo are inclusive. Nil means the first/last commit date.
	DateFrom *model.Date
	DateTo   *model.Date

	// StartRef is the reference to walk from, HEAD when empty. Accepts a comma separated
	// list of candidates.
	StartRef string
	// Location used to turn commit timestamps into dates. Nil means time.Local.
	Location *time.Location
	Workers  int

	IgnoreCommits    []string
	IgnoreAuthors    []string
	Exclude          []string
	SkipVendored     bool
	IgnoreWhitespace bool
	DiffTimeout      time.Duration

	// Incremental reuses the line counts stored for already evaluated commits.
	Incremental  bool
	ShowProgress bool
}

type Registry struct {
	mutex      sync.RWMutex
	collectors map[Kind]Collector
}

func NewRegistry() *Registry {
	return &Registry{
		collectors: map[Kind]Collector{},
	}
}

func (r *Registry) Register(kind Kind, collector Collector) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.collectors[kind] = collector
}

func (r *Registry) Get(kind Kind) (Collector, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	collector, ok := r.collectors[kind]
	if !ok {
		return nil, errors.Wrapf(ErrUnsupportedVCSKind, "%q (supported: %v)", kind, strings.Join(r.kindNames(), ", "))
	}

	return collector, nil
}

func (r *Registry) Kinds() []Kind {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return lo.Map(r.kindNames(), func(k string, _ int) Kind { return Kind(k) })
}

func (r *Registry) kindNames() []string {
	result := lo.Map(lo.Keys(r.collectors), func(k Kind, _ int) string { return string(k) })
	sort.Strings(result)
	return result
}
