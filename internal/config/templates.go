package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joechala/treegen/internal/utils"
)

// TemplatesDirectory returns the per-user template storage directory.
func TemplatesDirectory() (string, error) {
	homeDirectory, homeError := os.UserHomeDir()
	if homeError != nil {
		return "", fmt.Errorf("resolve home directory for templates: %w", homeError)
	}
	return filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName, utils.TemplatesDirectoryName), nil
}

// TemplatePath returns the file path of a named template.
func TemplatePath(name string) (string, error) {
	templatesDirectory, directoryError := TemplatesDirectory()
	if directoryError != nil {
		return "", directoryError
	}
	return filepath.Join(templatesDirectory, name+utils.TemplateFileSuffix), nil
}

// SaveTemplate writes tokens one per line to the named template file,
// creating the template directory as needed. Returns the written path.
func SaveTemplate(name string, tokens []string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("template name must not be empty")
	}
	if len(tokens) == 0 {
		return "", fmt.Errorf("template %q has no tokens to save", name)
	}
	templatesDirectory, directoryError := TemplatesDirectory()
	if directoryError != nil {
		return "", directoryError
	}
	if mkdirError := os.MkdirAll(templatesDirectory, 0o755); mkdirError != nil {
		return "", fmt.Errorf("create templates directory %s: %w", templatesDirectory, mkdirError)
	}
	destinationPath := filepath.Join(templatesDirectory, name+utils.TemplateFileSuffix)
	content := strings.Join(tokens, "\n") + "\n"
	if writeError := os.WriteFile(destinationPath, []byte(content), 0o600); writeError != nil {
		return "", fmt.Errorf("write template to %s: %w", destinationPath, writeError)
	}
	return destinationPath, nil
}

// ListTemplates returns the names of saved templates in sorted order.
// A missing template directory yields an empty list, not an error.
func ListTemplates() ([]string, error) {
	templatesDirectory, directoryError := TemplatesDirectory()
	if directoryError != nil {
		return nil, directoryError
	}
	directoryEntries, readError := os.ReadDir(templatesDirectory)
	if readError != nil {
		if os.IsNotExist(readError) {
			return nil, nil
		}
		return nil, fmt.Errorf("read templates directory %s: %w", templatesDirectory, readError)
	}
	var templateNames []string
	for _, directoryEntry := range directoryEntries {
		if directoryEntry.IsDir() {
			continue
		}
		entryName := directoryEntry.Name()
		if !strings.HasSuffix(entryName, utils.TemplateFileSuffix) {
			continue
		}
		templateNames = append(templateNames, strings.TrimSuffix(entryName, utils.TemplateFileSuffix))
	}
	sort.Strings(templateNames)
	return templateNames, nil
}
