// Package output renders collected path sets for preview.
package output

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/joechala/treegen/internal/parser"
	"github.com/joechala/treegen/internal/utils"
)

const (
	treeHeading     = "📦 Project Structure:"
	directoryIcon   = "📁"
	defaultFileIcon = "📄"
	indentUnit      = "  "
)

// extensionIcons maps file extensions to cosmetic preview icons.
var extensionIcons = map[string]string{
	".rs":   "🦀",
	".py":   "🐍",
	".js":   "🧩",
	".ts":   "🧩",
	".toml": "📝",
	".md":   "📘",
	".html": "🌐",
	".css":  "🎨",
}

// Options controls tree rendering.
type Options struct {
	// WithIcons toggles the emoji decoration of entries.
	WithIcons bool
}

// WriteTree writes an indented preview of paths relative to baseDirectory.
// The base directory itself is not rendered; indentation depth equals the
// segment count of the path relative to the base. Paths are expected in the
// sorted order produced by the collector, which places every directory
// before its children.
func WriteTree(writer io.Writer, baseDirectory string, paths []string, options Options) {
	if options.WithIcons {
		fmt.Fprintln(writer, treeHeading)
	}
	for _, path := range paths {
		relativePath := utils.RelativePathOrSelf(path, baseDirectory)
		if relativePath == "." || relativePath == ".." || strings.HasPrefix(relativePath, "../") {
			continue
		}
		segments := strings.Split(relativePath, "/")
		indent := strings.Repeat(indentUnit, len(segments)-1)
		entryName := segments[len(segments)-1]
		if !options.WithIcons {
			fmt.Fprintf(writer, "%s%s\n", indent, entryName)
			continue
		}
		fmt.Fprintf(writer, "%s%s %s\n", indent, entryIcon(path), entryName)
	}
}

// RenderTree returns the preview as a string.
func RenderTree(baseDirectory string, paths []string, options Options) string {
	var builder strings.Builder
	WriteTree(&builder, baseDirectory, paths, options)
	return builder.String()
}

func entryIcon(path string) string {
	if parser.IsDirectoryLike(path) {
		return directoryIcon
	}
	if icon, known := extensionIcons[strings.ToLower(filepath.Ext(path))]; known {
		return icon
	}
	return defaultFileIcon
}
