package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type stubConfirmer struct {
	answer  bool
	prompts []string
}

func (confirmer *stubConfirmer) Confirm(prompt string) bool {
	confirmer.prompts = append(confirmer.prompts, prompt)
	return confirmer.answer
}

type recordingCopier struct {
	copied    []string
	copyError error
}

func (copier *recordingCopier) Copy(text string) error {
	copier.copied = append(copier.copied, text)
	return copier.copyError
}

type commandResult struct {
	stdout string
	stderr string
	err    error
}

func runCommand(t *testing.T, confirmer Confirmer, copier *recordingCopier, arguments ...string) commandResult {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("USERPROFILE", t.TempDir())

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	rootCommand := createRootCommand(confirmer, copier)
	rootCommand.SetOut(&stdout)
	rootCommand.SetErr(&stderr)
	rootCommand.SetArgs(arguments)
	executionError := rootCommand.Execute()
	return commandResult{stdout: stdout.String(), stderr: stderr.String(), err: executionError}
}

func TestGenerateFromLiteralTokens(t *testing.T) {
	outputDirectory := t.TempDir()
	result := runCommand(t, &stubConfirmer{}, &recordingCopier{},
		"src", "main.rs", ":", "README.md", "--output", outputDirectory)
	if result.err != nil {
		t.Fatalf("Execute error: %v", result.err)
	}

	assertExists(t, filepath.Join(outputDirectory, "src"), true)
	assertExists(t, filepath.Join(outputDirectory, "src", "main.rs"), false)
	assertExists(t, filepath.Join(outputDirectory, "README.md"), false)
	if !strings.Contains(result.stdout, successMessage) {
		t.Fatalf("missing success message in output:\n%s", result.stdout)
	}
}

func TestGenerateDryRunDeclinedCreatesNothing(t *testing.T) {
	outputDirectory := t.TempDir()
	confirmer := &stubConfirmer{answer: false}
	result := runCommand(t, confirmer, &recordingCopier{},
		"src", "main.py", "--output", outputDirectory, "--dry")
	if result.err != nil {
		t.Fatalf("Execute error: %v", result.err)
	}
	if len(confirmer.prompts) != 1 {
		t.Fatalf("expected one confirmation prompt, got %d", len(confirmer.prompts))
	}
	if !strings.Contains(result.stdout, "main.py") {
		t.Fatalf("preview missing from output:\n%s", result.stdout)
	}
	if !strings.Contains(result.stdout, declinedMessage) {
		t.Fatalf("declined message missing from output:\n%s", result.stdout)
	}

	directoryEntries, readError := os.ReadDir(outputDirectory)
	if readError != nil {
		t.Fatalf("read output directory: %v", readError)
	}
	if len(directoryEntries) != 0 {
		t.Fatalf("declined preview still created entries: %v", directoryEntries)
	}
}

func TestGenerateDryRunAcceptedCreatesStructure(t *testing.T) {
	outputDirectory := t.TempDir()
	result := runCommand(t, &stubConfirmer{answer: true}, &recordingCopier{},
		"docs", "guide.md", "--output", outputDirectory, "--dry")
	if result.err != nil {
		t.Fatalf("Execute error: %v", result.err)
	}
	assertExists(t, filepath.Join(outputDirectory, "docs", "guide.md"), false)
	if !strings.Contains(result.stdout, successMessage) {
		t.Fatalf("missing success message in output:\n%s", result.stdout)
	}
}

func TestGenerateUnknownDefaultFails(t *testing.T) {
	outputDirectory := t.TempDir()
	result := runCommand(t, &stubConfirmer{}, &recordingCopier{},
		"--default", "foo", "--output", outputDirectory)
	if result.err == nil {
		t.Fatal("expected error for unknown default identifier")
	}

	directoryEntries, readError := os.ReadDir(outputDirectory)
	if readError != nil {
		t.Fatalf("read output directory: %v", readError)
	}
	if len(directoryEntries) != 0 {
		t.Fatalf("failed run still created entries: %v", directoryEntries)
	}
}

func TestGenerateDefaultPythonLayout(t *testing.T) {
	outputDirectory := t.TempDir()
	result := runCommand(t, &stubConfirmer{}, &recordingCopier{},
		"--default", "python", "--output", outputDirectory)
	if result.err != nil {
		t.Fatalf("Execute error: %v", result.err)
	}

	assertExists(t, filepath.Join(outputDirectory, "src"), true)
	for _, relativeFile := range []string{"src/__init__.py", "src/main.py", ".gitignore", "requirements.txt", "README.md"} {
		assertExists(t, filepath.Join(outputDirectory, relativeFile), false)
	}
}

func TestGenerateNoInputFails(t *testing.T) {
	result := runCommand(t, &stubConfirmer{}, &recordingCopier{})
	if result.err == nil {
		t.Fatal("expected usage error without any input source")
	}
}

func TestGenerateEmptyPathSetFails(t *testing.T) {
	outputDirectory := t.TempDir()
	result := runCommand(t, &stubConfirmer{}, &recordingCopier{},
		"..", "--output", outputDirectory)
	if result.err == nil {
		t.Fatal("expected error for empty resulting path set")
	}
}

func TestGenerateCopiesPreviewToClipboard(t *testing.T) {
	outputDirectory := t.TempDir()
	copier := &recordingCopier{}
	result := runCommand(t, &stubConfirmer{}, copier,
		"src", "lib.rs", "--output", outputDirectory, "--copy")
	if result.err != nil {
		t.Fatalf("Execute error: %v", result.err)
	}
	if len(copier.copied) != 1 {
		t.Fatalf("expected one clipboard copy, got %d", len(copier.copied))
	}
	if !strings.Contains(copier.copied[0], "lib.rs") {
		t.Fatalf("clipboard content missing preview entries: %q", copier.copied[0])
	}
}

func TestGenerateClipboardFailureIsWarningOnly(t *testing.T) {
	outputDirectory := t.TempDir()
	copier := &recordingCopier{copyError: errors.New("no clipboard available")}
	result := runCommand(t, &stubConfirmer{}, copier,
		"src", "--output", outputDirectory, "--copy")
	if result.err != nil {
		t.Fatalf("clipboard failure must not fail the run: %v", result.err)
	}
	if !strings.Contains(result.stderr, "clipboard") {
		t.Fatalf("expected clipboard warning on stderr:\n%s", result.stderr)
	}
	assertExists(t, filepath.Join(outputDirectory, "src"), true)
}

func TestGenerateReportsPerPathFailuresAndSucceeds(t *testing.T) {
	outputDirectory := t.TempDir()
	blockedPath := filepath.Join(outputDirectory, "blocked")
	if writeError := os.WriteFile(blockedPath, []byte("occupied"), 0o600); writeError != nil {
		t.Fatalf("write blocking file: %v", writeError)
	}

	result := runCommand(t, &stubConfirmer{}, &recordingCopier{},
		"blocked/inner.txt", ":", "kept.txt", "--output", outputDirectory)
	if result.err != nil {
		t.Fatalf("per-path failures must not fail the run: %v", result.err)
	}
	if !strings.Contains(result.stderr, "Error:") {
		t.Fatalf("expected per-path error on stderr:\n%s", result.stderr)
	}
	assertExists(t, filepath.Join(outputDirectory, "kept.txt"), false)
}

func TestGenerateFromStructureFile(t *testing.T) {
	outputDirectory := t.TempDir()
	structurePath := filepath.Join(t.TempDir(), "layout.txt")
	if writeError := os.WriteFile(structurePath, []byte("api\nhandlers.go\n..\nREADME.md\n"), 0o600); writeError != nil {
		t.Fatalf("write structure file: %v", writeError)
	}

	result := runCommand(t, &stubConfirmer{}, &recordingCopier{},
		"--from", structurePath, "--output", outputDirectory)
	if result.err != nil {
		t.Fatalf("Execute error: %v", result.err)
	}
	assertExists(t, filepath.Join(outputDirectory, "api", "handlers.go"), false)
	assertExists(t, filepath.Join(outputDirectory, "README.md"), false)
}

func TestTemplateSaveAndListSubcommands(t *testing.T) {
	homeDirectory := t.TempDir()
	t.Setenv("HOME", homeDirectory)
	t.Setenv("USERPROFILE", homeDirectory)

	var saveOutput bytes.Buffer
	saveCommand := createRootCommand(&stubConfirmer{}, &recordingCopier{})
	saveCommand.SetOut(&saveOutput)
	saveCommand.SetErr(&saveOutput)
	saveCommand.SetArgs([]string{"template", "save", "api", "handlers", "handlers/routes.go"})
	if executionError := saveCommand.Execute(); executionError != nil {
		t.Fatalf("template save error: %v", executionError)
	}

	var listOutput bytes.Buffer
	listCommand := createRootCommand(&stubConfirmer{}, &recordingCopier{})
	listCommand.SetOut(&listOutput)
	listCommand.SetErr(&listOutput)
	listCommand.SetArgs([]string{"template", "list"})
	if executionError := listCommand.Execute(); executionError != nil {
		t.Fatalf("template list error: %v", executionError)
	}
	if !strings.Contains(listOutput.String(), "api") {
		t.Fatalf("saved template missing from list:\n%s", listOutput.String())
	}
}

func TestConfigInitSubcommand(t *testing.T) {
	homeDirectory := t.TempDir()
	t.Setenv("HOME", homeDirectory)
	t.Setenv("USERPROFILE", homeDirectory)

	var initOutput bytes.Buffer
	initCommand := createRootCommand(&stubConfirmer{}, &recordingCopier{})
	initCommand.SetOut(&initOutput)
	initCommand.SetErr(&initOutput)
	initCommand.SetArgs([]string{"config", "init", "--global"})
	if executionError := initCommand.Execute(); executionError != nil {
		t.Fatalf("config init error: %v", executionError)
	}
	if !strings.Contains(initOutput.String(), "Configuration written to") {
		t.Fatalf("missing confirmation output:\n%s", initOutput.String())
	}
}

func assertExists(t *testing.T, path string, expectDirectory bool) {
	t.Helper()
	pathInformation, statError := os.Stat(path)
	if statError != nil {
		t.Fatalf("stat %s: %v", path, statError)
	}
	if pathInformation.IsDir() != expectDirectory {
		t.Fatalf("%s directory=%v, expected directory=%v", path, pathInformation.IsDir(), expectDirectory)
	}
}
