package storages

// Storage caches the inserted line count of each evaluated commit. Counts are keyed by
// repository root and evaluation mode, so runs with different evaluation options never
// share results.
type Storage interface {
	LoadCommitLines(rootDir string, mode string) (map[string]int, error)
	WriteCommitLines(rootDir string, mode string, lines map[string]int) error

	Close() error
}

type Factory = func(path string) (Storage, error)
