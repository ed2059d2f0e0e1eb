// Package util provides file system helpers shared across the app.
package util

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/mattn/go-zglob"

	"github.com/gruntwork-io/tfdeps/internal/errors"
)

// TfFileExtension is the file extension of Terraform declaration files.
const TfFileExtension = ".tf"

// FileExists returns true if the given file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDir returns true if the path points to a directory.
func IsDir(path string) bool {
	fileInfo, err := os.Stat(path)
	return err == nil && fileInfo.IsDir()
}

// IsFile returns true if the path points to a file.
func IsFile(path string) bool {
	fileInfo, err := os.Stat(path)
	return err == nil && !fileInfo.IsDir()
}

// ReadFileAsString returns the contents of the file at the given path as a string.
func ReadFileAsString(path string) (string, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Errorf("error reading file at path %s: %w", path, err)
	}

	return string(bytes), nil
}

// CanonicalPath returns the canonical version of the given path, relative to the given base path. That is, if the
// given path is a relative path, assume it is relative to the given base path. A canonical path is an absolute path
// with all relative components (e.g. "../") fully resolved, which makes it safe to compare paths as strings.
func CanonicalPath(path string, basePath string) (string, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(basePath, path)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", errors.WithStackTrace(err)
	}

	return filepath.Clean(absPath), nil
}

// ListTfFiles returns the sorted paths of the Terraform declaration files directly inside the given directory,
// without descending into subdirectories. A missing directory contributes no files.
func ListTfFiles(dirPath string) ([]string, error) {
	if !IsDir(dirPath) {
		return nil, nil
	}

	matches, err := zglob.Glob(filepath.Join(dirPath, "*"+TfFileExtension))
	if err != nil {
		return nil, errors.WithStackTrace(err)
	}

	var tfFiles []string

	for _, match := range matches {
		if IsFile(match) {
			tfFiles = append(tfFiles, match)
		}
	}

	sort.Strings(tfFiles)

	return tfFiles, nil
}
