// Package scaffold materializes a collected path set on the filesystem.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joechala/treegen/internal/parser"
)

const directoryPermissions = 0o755

// Failure records one path that could not be created together with the cause.
type Failure struct {
	Path string
	Err  error
}

// Apply creates every path in order: parent directories first, then the leaf
// as an empty directory or an empty file depending on its classification.
// Existing directories are left alone; existing file-like paths are
// truncated. Creation is best effort: a failing path is recorded and the
// loop continues, so a partial structure remains on disk by design.
func Apply(paths []string) []Failure {
	var failures []Failure
	for _, path := range paths {
		if creationError := createPath(path); creationError != nil {
			failures = append(failures, Failure{Path: path, Err: creationError})
		}
	}
	return failures
}

func createPath(path string) error {
	parentDirectory := filepath.Dir(path)
	if mkdirError := os.MkdirAll(parentDirectory, directoryPermissions); mkdirError != nil {
		return fmt.Errorf("create directory %s: %w", parentDirectory, mkdirError)
	}

	if parser.IsDirectoryLike(path) {
		if mkdirError := os.MkdirAll(path, directoryPermissions); mkdirError != nil {
			return fmt.Errorf("create directory %s: %w", path, mkdirError)
		}
		return nil
	}

	fileHandle, createError := os.Create(path)
	if createError != nil {
		return fmt.Errorf("create file %s: %w", path, createError)
	}
	return fileHandle.Close()
}
