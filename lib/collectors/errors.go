package collectors

import (
	"fmt"

	"github.com/pkg/errors"
)

var ErrUnsupportedVCSKind = errors.New("unsupported version control system")

// RepositoryResolutionError means the path is not an openable repository or its start
// reference could not be resolved. It aborts the collection.
type RepositoryResolutionError struct {
	Path  string
	Cause error
}

func NewRepositoryResolutionError(path string, cause error) *RepositoryResolutionError {
	return &RepositoryResolutionError{Path: path, Cause: cause}
}

func (e *RepositoryResolutionError) Error() string {
	return fmt.Sprintf("%v: cannot resolve repository: %v", e.Path, e.Cause)
}

func (e *RepositoryResolutionError) Unwrap() error {
	return e.Cause
}

// ContentReadError means one blob could not be read. The file is counted as empty.
type ContentReadError struct {
	Path  string
	Hash  string
	Cause error
}

func (e *ContentReadError) Error() string {
	return fmt.Sprintf("%v (%v): cannot read content: %v", e.Path, e.Hash, e.Cause)
}

func (e *ContentReadError) Unwrap() error {
	return e.Cause
}
