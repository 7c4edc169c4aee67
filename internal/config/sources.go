package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/joechala/treegen/internal/parser"
)

const (
	errorNoInputMessage             = "no input provided: pass path tokens or use --from, --template, or --default"
	errorEmptyStructureFileFormat   = "structure file %s is empty"
	errorUnknownDefaultFormat       = "unknown default template %q"
	errorTemplateNotFoundFormat     = "template not found: %s"
	errorReadStructureFileFormat    = "read structure file %s: %w"
	errorResolveTemplatePathFormat  = "resolve template %q: %w"
	errorScanStructureFileFormat    = "scan structure file %s: %w"
	errorCloseStructureWarnFormat   = "Warning: failed to close %s: %v\n"
	errorStructureFileMissingFormat = "structure file %s does not exist"
)

// languageDefaults maps language identifiers to built-in token lists.
var languageDefaults = map[string][]string{
	"py":     pythonDefaultTokens,
	"python": pythonDefaultTokens,
	"rs":     rustDefaultTokens,
	"rust":   rustDefaultTokens,
	"web":    webDefaultTokens,
	"js":     webDefaultTokens,
	"ts":     webDefaultTokens,
}

var (
	pythonDefaultTokens = []string{
		"src/__init__.py",
		"src/main.py",
		".gitignore",
		"requirements.txt",
		"README.md",
	}
	rustDefaultTokens = []string{
		"src/main.rs",
		"Cargo.toml",
		".gitignore",
		"README.md",
	}
	webDefaultTokens = []string{
		"src/index.js",
		"src/style.css",
		"public/index.html",
		".gitignore",
		"package.json",
		"README.md",
	}
)

// DefaultTokens returns the built-in token list for a language identifier.
// The second return value reports whether the identifier is known.
func DefaultTokens(languageIdentifier string) ([]string, bool) {
	tokens, known := languageDefaults[strings.ToLower(strings.TrimSpace(languageIdentifier))]
	if !known {
		return nil, false
	}
	cloned := make([]string, len(tokens))
	copy(cloned, tokens)
	return cloned, true
}

// ReadStructureFile reads a line-oriented structure or template file. Each
// non-blank trimmed line is one token; there is no comment or nesting syntax.
// A missing or empty file is an error naming the offending path.
func ReadStructureFile(path string) ([]string, error) {
	fileHandle, openError := os.Open(path)
	if openError != nil {
		if os.IsNotExist(openError) {
			return nil, fmt.Errorf(errorStructureFileMissingFormat, path)
		}
		return nil, fmt.Errorf(errorReadStructureFileFormat, path, openError)
	}
	defer func() {
		if closeError := fileHandle.Close(); closeError != nil {
			fmt.Fprintf(os.Stderr, errorCloseStructureWarnFormat, path, closeError)
		}
	}()

	var tokens []string
	scanner := bufio.NewScanner(fileHandle)
	for scanner.Scan() {
		trimmedLine := strings.TrimSpace(scanner.Text())
		if trimmedLine == "" {
			continue
		}
		tokens = append(tokens, trimmedLine)
	}
	if scanError := scanner.Err(); scanError != nil {
		return nil, fmt.Errorf(errorScanStructureFileFormat, path, scanError)
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf(errorEmptyStructureFileFormat, path)
	}
	return tokens, nil
}

// InputSelection carries the mutually prioritized input sources of one run.
type InputSelection struct {
	TemplateName    string
	StructureFile   string
	DefaultLanguage string
	Arguments       []string
}

// ResolveTokenGroups selects exactly one input source by priority
// (template > structure file > language default > literal arguments) and
// returns the token groups feeding the path collector. File-based sources
// form a single implicit group; literal arguments are split on the group
// separator token.
func ResolveTokenGroups(selection InputSelection) ([][]string, error) {
	switch {
	case selection.TemplateName != "":
		templatePath, templatePathError := TemplatePath(selection.TemplateName)
		if templatePathError != nil {
			return nil, fmt.Errorf(errorResolveTemplatePathFormat, selection.TemplateName, templatePathError)
		}
		if _, statError := os.Stat(templatePath); statError != nil {
			if os.IsNotExist(statError) {
				return nil, fmt.Errorf(errorTemplateNotFoundFormat, templatePath)
			}
			return nil, fmt.Errorf(errorResolveTemplatePathFormat, selection.TemplateName, statError)
		}
		tokens, readError := ReadStructureFile(templatePath)
		if readError != nil {
			return nil, readError
		}
		return [][]string{tokens}, nil
	case selection.StructureFile != "":
		tokens, readError := ReadStructureFile(selection.StructureFile)
		if readError != nil {
			return nil, readError
		}
		return [][]string{tokens}, nil
	case selection.DefaultLanguage != "":
		tokens, known := DefaultTokens(selection.DefaultLanguage)
		if !known {
			return nil, fmt.Errorf(errorUnknownDefaultFormat, selection.DefaultLanguage)
		}
		return [][]string{tokens}, nil
	case len(selection.Arguments) > 0:
		return parser.SplitGroups(selection.Arguments), nil
	default:
		return nil, fmt.Errorf(errorNoInputMessage)
	}
}
