package utils

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// PathAbs joins the parts, expands a leading ~ and returns the absolute cleaned path.
func PathAbs(parts ...string) (string, error) {
	path := filepath.Join(parts...)

	if path == "~" || strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.Wrap(err, "error finding home dir")
		}

		path = filepath.Join(home, path[1:])
	}

	result, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrapf(err, "error resolving path %v", path)
	}

	return result, nil
}
