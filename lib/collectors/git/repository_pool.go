package git

import (
	"io"
	"sync"

	"github.com/go-git/go-git/v5"
)

// repositoryPool hands out one repository handle per concurrent user. go-git handles are
// not shared between goroutines.
type repositoryPool struct {
	open func() (*git.Repository, error)

	mutex  sync.Mutex
	free   []*git.Repository
	opened []*git.Repository
}

func newRepositoryPool(open func() (*git.Repository, error)) *repositoryPool {
	return &repositoryPool{open: open}
}

func (p *repositoryPool) get() (*git.Repository, error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if len(p.free) > 0 {
		result := p.free[len(p.free)-1]
		p.free = p.free[:len(p.free)-1]
		return result, nil
	}

	result, err := p.open()
	if err != nil {
		return nil, err
	}

	p.opened = append(p.opened, result)
	return result, nil
}

func (p *repositoryPool) put(gitRepo *git.Repository) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.free = append(p.free, gitRepo)
}

func (p *repositoryPool) Close() error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	var result error
	for _, r := range p.opened {
		err := closeRepository(r)
		if err != nil && result == nil {
			result = err
		}
	}

	p.opened = nil
	p.free = nil
	return result
}

func closeRepository(gitRepo *git.Repository) error {
	if c, ok := gitRepo.Storer.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
