package filesystem

import (
	"io/fs"
	"os"

	"github.com/arthur-debert/sublsync/pkg/types"
	"github.com/google/renameio/v2"
)

// SymlinkReplacer is implemented by filesystems that can swap an existing
// entry for a symlink in one step
type SymlinkReplacer interface {
	ReplaceSymlink(oldname, newname string) error
}

// osFS implements types.FS using the OS filesystem
type osFS struct{}

// NewOS creates a new OS filesystem implementation
func NewOS() types.FS {
	return &osFS{}
}

func (o *osFS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (o *osFS) Lstat(name string) (fs.FileInfo, error) {
	return os.Lstat(name)
}

func (o *osFS) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}

func (o *osFS) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (o *osFS) Symlink(oldname, newname string) error {
	return os.Symlink(oldname, newname)
}

// ReplaceSymlink points newname at oldname, replacing whatever symlink or
// file is at newname via a rename of a temporary link
func (o *osFS) ReplaceSymlink(oldname, newname string) error {
	return renameio.Symlink(oldname, newname)
}

func (o *osFS) Readlink(name string) (string, error) {
	return os.Readlink(name)
}

func (o *osFS) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}

func (o *osFS) Remove(name string) error {
	return os.Remove(name)
}

// WriteFileAtomic writes data to name through a pending temp file that is
// renamed over the target once fully written
func WriteFileAtomic(name string, data []byte, perm fs.FileMode) error {
	return renameio.WriteFile(name, data, perm)
}

// IsSymlink reports whether info describes a symbolic link
func IsSymlink(info fs.FileInfo) bool {
	return info.Mode()&os.ModeSymlink != 0
}
