package git

import (
	"context"

	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/pkg/errors"

	"github.com/pescuma/linestats/lib/collectors"
)

type FileChangeType int

const (
	FileCreated FileChangeType = iota
	FileModified
	FileRenamed
	FileDeleted
)

// FileChange holds the text on both sides of one changed file. Missing, binary or
// unreadable sides are empty.
type FileChange struct {
	Type    FileChangeType
	OldPath string
	NewPath string
	OldText string
	NewText string
	Binary  bool
	// Errs keeps the non fatal read errors of this change.
	Errs []*collectors.ContentReadError

	oldFile *object.File
	newFile *object.File
}

func (c *FileChange) Path() string {
	if c.NewPath != "" {
		return c.NewPath
	}
	return c.OldPath
}

// Unchanged is true when both sides point to the same blob, as in pure renames.
func (c *FileChange) Unchanged() bool {
	return c.oldFile != nil && c.newFile != nil && c.oldFile.Hash == c.newFile.Hash
}

var emptyTree = &object.Tree{}

// ListChanges lists the changed files from base to target without reading contents.
// A nil base means the empty tree.
func ListChanges(ctx context.Context, base, target *object.Tree) ([]*FileChange, error) {
	if base == nil {
		base = emptyTree
	}

	changes, err := object.DiffTreeWithOptions(ctx, base, target, object.DefaultDiffTreeOptions)
	if err != nil {
		return nil, errors.Wrap(err, "error comparing trees")
	}

	var result []*FileChange
	for _, change := range changes {
		oldFile, newFile, err := change.Files()
		if err != nil {
			return nil, errors.Wrapf(err, "error listing files of change %v", change)
		}

		if oldFile == nil && newFile == nil {
			// Submodule change
			continue
		}

		fc := &FileChange{
			oldFile: oldFile,
			newFile: newFile,
		}

		if oldFile != nil {
			fc.OldPath = change.From.Name
		}
		if newFile != nil {
			fc.NewPath = change.To.Name
		}

		switch {
		case oldFile == nil:
			fc.Type = FileCreated
		case newFile == nil:
			fc.Type = FileDeleted
		case fc.OldPath != fc.NewPath:
			fc.Type = FileRenamed
		default:
			fc.Type = FileModified
		}

		result = append(result, fc)
	}

	return result, nil
}

// ChangedFiles lists the changed files from base to target with their text contents.
func ChangedFiles(ctx context.Context, base, target *object.Tree) ([]*FileChange, error) {
	result, err := ListChanges(ctx, base, target)
	if err != nil {
		return nil, err
	}

	for _, fc := range result {
		fc.ReadContents()
	}

	return result, nil
}

// ReadContents fills OldText and NewText. A binary side is read as empty text and sets
// Binary. Read errors leave the side empty and are kept in Errs.
func (c *FileChange) ReadContents() {
	if c.Unchanged() {
		return
	}

	var oldBinary, newBinary bool
	c.OldText, oldBinary = c.readSide(c.oldFile, c.OldPath)
	c.NewText, newBinary = c.readSide(c.newFile, c.NewPath)

	c.Binary = oldBinary || newBinary
}

func (c *FileChange) readSide(f *object.File, path string) (string, bool) {
	if f == nil {
		return "", false
	}

	isBinary, err := f.IsBinary()
	if err != nil {
		c.Errs = append(c.Errs, &collectors.ContentReadError{Path: path, Hash: f.Hash.String(), Cause: err})
		return "", false
	}

	if isBinary {
		return "", true
	}

	content, err := f.Contents()
	if err != nil {
		c.Errs = append(c.Errs, &collectors.ContentReadError{Path: path, Hash: f.Hash.String(), Cause: err})
		return "", false
	}

	return content, false
}
