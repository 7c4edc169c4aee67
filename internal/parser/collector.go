package parser

import (
	"path/filepath"
	"sort"
	"strings"
)

// PathSet is a deduplicated collection of cleaned paths with a stable
// lexicographic iteration order. Insertion order is irrelevant; only the
// sorted order matters for deterministic preview and creation sequencing.
type PathSet struct {
	members map[string]struct{}
}

// NewPathSet returns an empty path set.
func NewPathSet() *PathSet {
	return &PathSet{members: make(map[string]struct{})}
}

// Insert adds the cleaned form of path to the set.
func (pathSet *PathSet) Insert(path string) {
	pathSet.members[filepath.Clean(path)] = struct{}{}
}

// Contains reports whether the cleaned form of path is present.
func (pathSet *PathSet) Contains(path string) bool {
	_, present := pathSet.members[filepath.Clean(path)]
	return present
}

// Len returns the number of unique paths in the set.
func (pathSet *PathSet) Len() int {
	return len(pathSet.members)
}

// SortedPaths returns the members in lexicographic order.
func (pathSet *PathSet) SortedPaths() []string {
	sortedPaths := make([]string, 0, len(pathSet.members))
	for member := range pathSet.members {
		sortedPaths = append(sortedPaths, member)
	}
	sort.Strings(sortedPaths)
	return sortedPaths
}

// CollectGroups resolves every group of tokens against the base directory and
// returns the ancestor-closed path set. Each group reinitializes the
// directory cursor to the base. The ascend token moves the cursor to its
// parent and is a no-op once the cursor sits at the base, so a group can
// never escape the base directory. Every resolved path is inserted together
// with all of its ancestors up to the base, which keeps the set
// ancestor-closed even for tokens carrying embedded separators such as
// "src/deep/file.txt". Directory-like paths become the new cursor.
func CollectGroups(baseDirectory string, groups [][]string) *PathSet {
	pathSet := NewPathSet()
	cleanBase := filepath.Clean(baseDirectory)
	for _, group := range groups {
		currentDirectory := cleanBase
		for _, token := range group {
			if token == AscendToken {
				if currentDirectory != cleanBase {
					currentDirectory = filepath.Dir(currentDirectory)
				}
				continue
			}
			resolvedPath := filepath.Join(currentDirectory, token)
			insertWithAncestors(pathSet, resolvedPath, cleanBase)
			if IsDirectoryLike(resolvedPath) {
				currentDirectory = resolvedPath
			}
		}
	}
	return pathSet
}

// insertWithAncestors inserts resolvedPath and every ancestor between it and
// the base directory, the base itself included.
func insertWithAncestors(pathSet *PathSet, resolvedPath string, cleanBase string) {
	pathSet.Insert(resolvedPath)
	currentPath := resolvedPath
	for currentPath != cleanBase {
		parentPath := filepath.Dir(currentPath)
		if parentPath == currentPath {
			break
		}
		pathSet.Insert(parentPath)
		currentPath = parentPath
	}
}

// IsDirectoryLike reports whether the final segment of path names a
// directory under the scaffold naming heuristic: a segment without any dot
// is a directory, everything else (extensioned names and dotfiles such as
// ".gitignore") is a file. The heuristic is ambiguous for directories
// intentionally named with a dot ("v1.2") and for extensionless files meant
// to hold content; it is kept for notation terseness and is a known
// limitation rather than something to fix silently.
func IsDirectoryLike(path string) bool {
	finalSegment := filepath.Base(path)
	if finalSegment == "." || finalSegment == string(filepath.Separator) {
		return true
	}
	return !strings.Contains(finalSegment, ".")
}
