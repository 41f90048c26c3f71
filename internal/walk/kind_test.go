package walk_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/temirov/ftrek/internal/types"
	"github.com/temirov/ftrek/internal/walk"
)

func TestClassifyMode(testingInstance *testing.T) {
	testCases := []struct {
		name         string
		mode         fs.FileMode
		expectedKind types.EntryKind
		unixOnly     bool
	}{
		{name: "regular", mode: 0o644, expectedKind: types.EntryKindRegular},
		{name: "directory", mode: fs.ModeDir | 0o755, expectedKind: types.EntryKindDirectory},
		{name: "symlink", mode: fs.ModeSymlink | 0o777, expectedKind: types.EntryKindSymlink},
		{name: "executable", mode: 0o755, expectedKind: types.EntryKindExecutable, unixOnly: true},
		{name: "group executable", mode: 0o610, expectedKind: types.EntryKindExecutable, unixOnly: true},
		{name: "named pipe", mode: fs.ModeNamedPipe | 0o755, expectedKind: types.EntryKindRegular},
	}

	for _, testCase := range testCases {
		testingInstance.Run(testCase.name, func(testingInstance *testing.T) {
			if testCase.unixOnly && runtime.GOOS == "windows" {
				testingInstance.Skip("no executable bit on windows")
			}
			if actualKind := walk.ClassifyMode(testCase.mode); actualKind != testCase.expectedKind {
				testingInstance.Fatalf("ClassifyMode(%v) = %v, want %v", testCase.mode, actualKind, testCase.expectedKind)
			}
		})
	}
}

func TestClassifyPath(testingInstance *testing.T) {
	if runtime.GOOS == "windows" {
		testingInstance.Skip("symlinks and permission bits differ on windows")
	}
	root := testingInstance.TempDir()
	regularPath := filepath.Join(root, "plain.txt")
	executablePath := filepath.Join(root, "run.sh")
	directoryPath := filepath.Join(root, "sub")
	linkPath := filepath.Join(root, "link")

	if writeError := os.WriteFile(regularPath, []byte("x"), 0o644); writeError != nil {
		testingInstance.Fatalf("write: %v", writeError)
	}
	if writeError := os.WriteFile(executablePath, []byte("#!/bin/sh\n"), 0o755); writeError != nil {
		testingInstance.Fatalf("write: %v", writeError)
	}
	if makeDirError := os.Mkdir(directoryPath, 0o755); makeDirError != nil {
		testingInstance.Fatalf("mkdir: %v", makeDirError)
	}
	if linkError := os.Symlink(directoryPath, linkPath); linkError != nil {
		testingInstance.Fatalf("symlink: %v", linkError)
	}

	testCases := []struct {
		name         string
		path         string
		expectedKind types.EntryKind
	}{
		{name: "regular", path: regularPath, expectedKind: types.EntryKindRegular},
		{name: "executable", path: executablePath, expectedKind: types.EntryKindExecutable},
		{name: "directory", path: directoryPath, expectedKind: types.EntryKindDirectory},
		{name: "symlink to directory", path: linkPath, expectedKind: types.EntryKindSymlink},
	}
	for _, testCase := range testCases {
		testingInstance.Run(testCase.name, func(testingInstance *testing.T) {
			actualKind, classifyError := walk.ClassifyPath(testCase.path)
			if classifyError != nil {
				testingInstance.Fatalf("ClassifyPath: %v", classifyError)
			}
			if actualKind != testCase.expectedKind {
				testingInstance.Fatalf("ClassifyPath(%s) = %v, want %v", testCase.path, actualKind, testCase.expectedKind)
			}
		})
	}

	if _, classifyError := walk.ClassifyPath(filepath.Join(root, "missing")); classifyError == nil {
		testingInstance.Fatalf("expected error for missing path")
	}
}
