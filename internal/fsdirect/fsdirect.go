// Package fsdirect is the direct filesystem collaborator: the ground truth
// the index engine is checked against and the fallback path when the index
// is unavailable.
//
// Symbolic links are not special-cased and are not supported.
package fsdirect

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// FS answers metadata queries straight from the host filesystem.
type FS interface {
	// FileExists reports whether path names an existing regular file.
	FileExists(path string) bool

	// DirExists reports whether path names an existing directory.
	DirExists(path string) bool

	// ListFiles returns the absolute paths of files under dir. With
	// recursive set, all descendant files are returned; otherwise only
	// immediate children. The queried dir itself is never included.
	ListFiles(dir string, recursive bool) ([]string, error)

	// ListDirs is ListFiles for directories.
	ListDirs(dir string, recursive bool) ([]string, error)

	// FileCreationTime returns the creation time of a regular file.
	FileCreationTime(path string) (time.Time, error)

	// DirCreationTime returns the creation time of a directory.
	DirCreationTime(path string) (time.Time, error)
}

// OSFS implements FS on the host OS.
type OSFS struct{}

// NewOSFS returns the host filesystem collaborator.
func NewOSFS() *OSFS {
	return &OSFS{}
}

// FileExists implements FS.
func (o *OSFS) FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// DirExists implements FS.
func (o *OSFS) DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// ListFiles implements FS.
func (o *OSFS) ListFiles(dir string, recursive bool) ([]string, error) {
	return o.list(dir, recursive, false)
}

// ListDirs implements FS.
func (o *OSFS) ListDirs(dir string, recursive bool) ([]string, error) {
	return o.list(dir, recursive, true)
}

func (o *OSFS) list(dir string, recursive, wantDirs bool) ([]string, error) {
	if !recursive {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, err
		}
		var paths []string
		for _, e := range entries {
			if e.IsDir() == wantDirs {
				paths = append(paths, filepath.Join(dir, e.Name()))
			}
		}
		return paths, nil
	}

	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == dir {
			// The anchor itself is never a result.
			return nil
		}
		if d.IsDir() == wantDirs {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

// FileCreationTime implements FS.
func (o *OSFS) FileCreationTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	if info.IsDir() {
		return time.Time{}, fmt.Errorf("%s is a directory: %w", path, os.ErrNotExist)
	}
	return creationTime(info), nil
}

// DirCreationTime implements FS.
func (o *OSFS) DirCreationTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	if !info.IsDir() {
		return time.Time{}, fmt.Errorf("%s is not a directory: %w", path, os.ErrNotExist)
	}
	return creationTime(info), nil
}
