package filesystem

import (
	"io/fs"
)

// FS is the filesystem interface required by the archiver and its tests
type FS interface {
	// Inspection
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	ReadDir(name string) ([]fs.DirEntry, error)

	// Mutation
	MkdirAll(path string, perm fs.FileMode) error
	Rename(oldpath, newpath string) error

	// File and symlink helpers
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)
}
