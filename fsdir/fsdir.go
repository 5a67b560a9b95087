// Package fsdir lists directory entries for the catalog builder.
package fsdir

import (
	"io/fs"
	"path"

	"github.com/pkg/errors"
)

// Entry is one name inside a directory.
type Entry struct {
	Name   string
	IsDir  bool
	IsFile bool
}

// Lister lists the entries of a directory, relative to some root, in the
// order the underlying storage yields them. That order decides which version
// is "latest".
type Lister interface {
	ListEntries(dir string) ([]Entry, error)
}

// DirLister lists directories of a file system.
type DirLister struct {
	FS fs.FS
}

// NewDirLister creates a lister over fsys.
func NewDirLister(fsys fs.FS) *DirLister {
	return &DirLister{FS: fsys}
}

// ListEntries returns entries of dir; "" and "." both mean the root.
func (l *DirLister) ListEntries(dir string) ([]Entry, error) {
	if dir == "" {
		dir = "."
	}
	dir = path.Clean(dir)
	dirEntries, err := fs.ReadDir(l.FS, dir)
	if err != nil {
		return nil, errors.Wrapf(err, "read directory %s", dir)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, d := range dirEntries {
		entries = append(entries, Entry{
			Name:   d.Name(),
			IsDir:  d.IsDir(),
			IsFile: d.Type().IsRegular(),
		})
	}
	return entries, nil
}

// StaticLister serves a fixed two-level tree and keeps the given order of
// names. Dirs are the root's directories; Files maps a directory to its files.
type StaticLister struct {
	Dirs  []string
	Files map[string][]string
}

// ListEntries implements Lister.
func (l *StaticLister) ListEntries(dir string) ([]Entry, error) {
	if dir == "" || dir == "." {
		entries := make([]Entry, 0, len(l.Dirs))
		for _, d := range l.Dirs {
			entries = append(entries, Entry{Name: d, IsDir: true})
		}
		return entries, nil
	}

	files, ok := l.Files[dir]
	if !ok {
		return nil, errors.Wrapf(fs.ErrNotExist, "read directory %s", dir)
	}
	entries := make([]Entry, 0, len(files))
	for _, f := range files {
		entries = append(entries, Entry{Name: f, IsFile: true})
	}
	return entries, nil
}
