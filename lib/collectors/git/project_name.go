package git

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
)

// projectName uses the last segment of the origin URL, falling back to the directory name.
func projectName(rootDir string, gitRepo *git.Repository) string {
	name := ""

	remote, err := gitRepo.Remote(git.DefaultRemoteName)
	if err == nil {
		urls := remote.Config().URLs
		if len(urls) > 0 {
			name = nameFromURL(urls[0])
		}
	}

	if name == "" {
		name = filepath.Base(rootDir)
	}

	return strings.TrimSuffix(name, ".git")
}

func nameFromURL(url string) string {
	url = strings.TrimRight(strings.TrimSpace(url), "/")
	url = strings.ReplaceAll(url, "\\", "/")

	// scp like syntax: git@host:group/project.git
	if i := strings.LastIndex(url, ":"); i >= 0 && !strings.Contains(url, "://") {
		url = url[i+1:]
	}

	name := path.Base(url)
	if name == "." || name == "/" {
		return ""
	}
	return name
}
