// Package fs provides filesystem utilities for seedsearch.
// This file defines the FS seam used for config and installation lookups.
package fs

import (
	"os"
)

// FS abstracts the filesystem operations seedsearch performs so that
// installation discovery and config loading can be tested without a
// real game install.
type FS interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, perm os.FileMode) error
	Stat(path string) (os.FileInfo, error)
	MkdirAll(path string, perm os.FileMode) error
}

// RealFS implements FS against the operating system.
type RealFS struct{}

// NewRealFS creates a new RealFS.
func NewRealFS() *RealFS {
	return &RealFS{}
}

func (RealFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile writes path atomically; see WriteFileAtomic.
func (RealFS) WriteFile(path string, data []byte, perm os.FileMode) error {
	return WriteFileAtomic(path, data, perm)
}

func (RealFS) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

func (RealFS) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// IsDir reports whether path exists and is a directory.
func IsDir(fsys FS, path string) bool {
	info, err := fsys.Stat(path)
	return err == nil && info.IsDir()
}

// IsFile reports whether path exists and is a regular file.
func IsFile(fsys FS, path string) bool {
	info, err := fsys.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
