package output

import (
	"strings"
	"testing"

	"github.com/joechala/treegen/internal/parser"
)

func TestWriteTreeRendersDepthAndIcons(t *testing.T) {
	pathSet := parser.CollectGroups(".", [][]string{
		{"src", "main.rs", ":", "README.md"},
	})

	rendered := RenderTree(".", pathSet.SortedPaths(), Options{WithIcons: true})
	renderedLines := strings.Split(strings.TrimRight(rendered, "\n"), "\n")

	expectedLines := []string{
		treeHeading,
		"📘 README.md",
		"📁 src",
		"  🦀 main.rs",
	}
	if len(renderedLines) != len(expectedLines) {
		t.Fatalf("rendered %d lines, expected %d:\n%s", len(renderedLines), len(expectedLines), rendered)
	}
	for lineIndex, expectedLine := range expectedLines {
		if renderedLines[lineIndex] != expectedLine {
			t.Errorf("line %d = %q, expected %q", lineIndex, renderedLines[lineIndex], expectedLine)
		}
	}
}

func TestWriteTreeSkipsBaseDirectory(t *testing.T) {
	pathSet := parser.CollectGroups("/tmp/project", [][]string{{"src"}})
	rendered := RenderTree("/tmp/project", pathSet.SortedPaths(), Options{WithIcons: true})
	if strings.Contains(rendered, "project") {
		t.Fatalf("base directory leaked into preview:\n%s", rendered)
	}
	if !strings.Contains(rendered, "📁 src") {
		t.Fatalf("expected src entry in preview:\n%s", rendered)
	}
}

func TestWriteTreeWithoutIcons(t *testing.T) {
	pathSet := parser.CollectGroups(".", [][]string{{"src", "main.py"}})
	rendered := RenderTree(".", pathSet.SortedPaths(), Options{})

	if strings.Contains(rendered, directoryIcon) || strings.Contains(rendered, "🐍") {
		t.Fatalf("icons rendered despite being disabled:\n%s", rendered)
	}
	expected := "src\n  main.py\n"
	if rendered != expected {
		t.Fatalf("rendered = %q, expected %q", rendered, expected)
	}
}

func TestEntryIconFallsBackForUnknownExtensions(t *testing.T) {
	if icon := entryIcon("data.bin"); icon != defaultFileIcon {
		t.Fatalf("entryIcon(data.bin) = %q, expected %q", icon, defaultFileIcon)
	}
	if icon := entryIcon("assets"); icon != directoryIcon {
		t.Fatalf("entryIcon(assets) = %q, expected %q", icon, directoryIcon)
	}
}
