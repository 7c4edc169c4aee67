package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/joechala/treegen/internal/utils"
)

func TestInitializeConfigurationLocal(t *testing.T) {
	workingDirectory := t.TempDir()

	writtenPath, initError := InitializeConfiguration(InitOptions{
		Target:           InitTargetLocal,
		WorkingDirectory: workingDirectory,
	})
	if initError != nil {
		t.Fatalf("InitializeConfiguration error: %v", initError)
	}
	expectedPath := filepath.Join(workingDirectory, utils.LocalConfigFileName)
	if writtenPath != expectedPath {
		t.Fatalf("written path = %q, expected %q", writtenPath, expectedPath)
	}
	content, readError := os.ReadFile(writtenPath)
	if readError != nil {
		t.Fatalf("read written configuration: %v", readError)
	}
	if !strings.Contains(string(content), "generate:") {
		t.Fatalf("unexpected configuration content: %s", content)
	}

	if _, secondError := InitializeConfiguration(InitOptions{
		Target:           InitTargetLocal,
		WorkingDirectory: workingDirectory,
	}); secondError == nil {
		t.Fatal("expected error when configuration already exists")
	}

	if _, forcedError := InitializeConfiguration(InitOptions{
		Target:           InitTargetLocal,
		Force:            true,
		WorkingDirectory: workingDirectory,
	}); forcedError != nil {
		t.Fatalf("forced initialization failed: %v", forcedError)
	}
}

func TestInitializeConfigurationGlobal(t *testing.T) {
	homeDirectory := t.TempDir()
	t.Setenv("HOME", homeDirectory)
	t.Setenv("USERPROFILE", homeDirectory)

	writtenPath, initError := InitializeConfiguration(InitOptions{Target: InitTargetGlobal})
	if initError != nil {
		t.Fatalf("InitializeConfiguration error: %v", initError)
	}
	expectedPath := filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName, utils.GlobalConfigFileName)
	if writtenPath != expectedPath {
		t.Fatalf("written path = %q, expected %q", writtenPath, expectedPath)
	}
}

func TestInitializeConfigurationUnknownTarget(t *testing.T) {
	if _, initError := InitializeConfiguration(InitOptions{Target: InitTarget("remote")}); initError == nil {
		t.Fatal("expected error for unsupported init target")
	}
}
