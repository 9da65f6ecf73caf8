package afs

import (
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
)

// Filesystem is the filesystem connections are opened on.
type Filesystem interface {
	billy.Filesystem

	// Absolute returns the absolute form of path, relative paths are resolved against the
	// working directory of the filesystem.
	Absolute(path string) (string, error)
}

type File = billy.File

// Wrap adds the Absolute method to a billy filesystem.
func Wrap(fls billy.Filesystem, absolute func(path string) (string, error)) Filesystem {
	return &wrappedFilesystem{Filesystem: fls, absolute: absolute}
}

type wrappedFilesystem struct {
	billy.Filesystem
	absolute func(path string) (string, error)
}

func (fls *wrappedFilesystem) Absolute(path string) (string, error) {
	return fls.absolute(path)
}

// OS returns the filesystem of the operating system.
func OS() Filesystem {
	return Wrap(osfs.New(""), filepath.Abs)
}

// Memory returns an empty in-memory filesystem rooted at '/'.
func Memory() Filesystem {
	return Wrap(memfs.New(), func(path string) (string, error) {
		if filepath.IsAbs(path) {
			return path, nil
		}
		return filepath.Join("/", path), nil
	})
}
