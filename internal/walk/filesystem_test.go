package walk_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/temirov/ftrek/internal/types"
	"github.com/temirov/ftrek/internal/walk"
)

func TestFileSystemListReturnsSortedClassifiedChildren(testingInstance *testing.T) {
	root := testingInstance.TempDir()
	for _, fileName := range []string{"b.txt", "a.txt"} {
		if writeError := os.WriteFile(filepath.Join(root, fileName), []byte("x"), 0o644); writeError != nil {
			testingInstance.Fatalf("write: %v", writeError)
		}
	}
	if makeDirError := os.Mkdir(filepath.Join(root, "c"), 0o755); makeDirError != nil {
		testingInstance.Fatalf("mkdir: %v", makeDirError)
	}

	children, listError := walk.NewFileSystem(nil).List(root)
	if listError != nil {
		testingInstance.Fatalf("List: %v", listError)
	}

	expected := []types.Entry{
		{Path: filepath.Join(root, "a.txt"), Name: "a.txt", Kind: types.EntryKindRegular},
		{Path: filepath.Join(root, "b.txt"), Name: "b.txt", Kind: types.EntryKindRegular},
		{Path: filepath.Join(root, "c"), Name: "c", Kind: types.EntryKindDirectory},
	}
	if len(children) != len(expected) {
		testingInstance.Fatalf("expected %d children, got %d: %v", len(expected), len(children), children)
	}
	for index := range expected {
		if children[index] != expected[index] {
			testingInstance.Fatalf("child %d = %+v, want %+v", index, children[index], expected[index])
		}
	}
}

func TestFileSystemListEmptyDirectory(testingInstance *testing.T) {
	children, listError := walk.NewFileSystem(nil).List(testingInstance.TempDir())
	if listError != nil {
		testingInstance.Fatalf("List: %v", listError)
	}
	if len(children) != 0 {
		testingInstance.Fatalf("expected no children, got %v", children)
	}
}

func TestFileSystemListMissingDirectoryFails(testingInstance *testing.T) {
	var reported []string
	fileSystem := walk.NewFileSystem(func(path string, cause error) {
		reported = append(reported, path)
	})
	if _, listError := fileSystem.List(filepath.Join(testingInstance.TempDir(), "missing")); listError == nil {
		testingInstance.Fatalf("expected error for missing directory")
	}
	if len(reported) != 0 {
		testingInstance.Fatalf("root failures are errors, not skips: %v", reported)
	}
}

func TestFileSystemClassifyMatchesClassifyPath(testingInstance *testing.T) {
	root := testingInstance.TempDir()
	kind, classifyError := walk.NewFileSystem(nil).Classify(root)
	if classifyError != nil {
		testingInstance.Fatalf("Classify: %v", classifyError)
	}
	if kind != types.EntryKindDirectory {
		testingInstance.Fatalf("expected directory, got %v", kind)
	}
}
