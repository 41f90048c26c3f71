package output_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/temirov/ftrek/internal/output"
	"github.com/temirov/ftrek/internal/types"
	"github.com/temirov/ftrek/internal/walk"
)

const (
	nestedDirectoryName = "nested"
	deepDirectoryName   = "deep"
	firstFileName       = "a.txt"
	lastFileName        = "z.txt"
	nestedFileName      = "file.txt"
	leafFileName        = "leaf.txt"
)

// buildSampleTree creates
//
//	a.txt
//	nested/deep/leaf.txt
//	nested/file.txt
//	z.txt
func buildSampleTree(testingHandle *testing.T) string {
	testingHandle.Helper()
	root := testingHandle.TempDir()
	deepDirectory := filepath.Join(root, nestedDirectoryName, deepDirectoryName)
	if makeDirError := os.MkdirAll(deepDirectory, 0o755); makeDirError != nil {
		testingHandle.Fatalf("mkdir: %v", makeDirError)
	}
	for _, relativePath := range []string{
		firstFileName,
		filepath.Join(nestedDirectoryName, deepDirectoryName, leafFileName),
		filepath.Join(nestedDirectoryName, nestedFileName),
		lastFileName,
	} {
		if writeError := os.WriteFile(filepath.Join(root, relativePath), []byte("x"), 0o644); writeError != nil {
			testingHandle.Fatalf("write %s: %v", relativePath, writeError)
		}
	}
	return root
}

func renderRecursive(testingHandle *testing.T, root string, lister walk.Lister, colorEnabled bool) string {
	testingHandle.Helper()
	var buffer bytes.Buffer
	renderer := output.NewRenderer(&buffer, output.Options{Color: colorEnabled})
	if renderError := renderer.RenderRecursive(root, lister); renderError != nil {
		testingHandle.Fatalf("RenderRecursive: %v", renderError)
	}
	return buffer.String()
}

func TestRenderRecursiveDrawsNestedTree(testingInstance *testing.T) {
	root := buildSampleTree(testingInstance)
	actual := renderRecursive(testingInstance, root, walk.NewFileSystem(nil), false)

	expected := strings.Join([]string{
		root + "/",
		"├── a.txt",
		"├── nested/",
		"│   ├── deep/",
		"│   │   └── leaf.txt",
		"│   └── file.txt",
		"└── z.txt",
	}, "\n") + "\n"
	if actual != expected {
		testingInstance.Fatalf("unexpected tree:\n%s\nwant:\n%s", actual, expected)
	}
}

func TestRenderRecursiveIsIdempotent(testingInstance *testing.T) {
	root := buildSampleTree(testingInstance)
	first := renderRecursive(testingInstance, root, walk.NewFileSystem(nil), false)
	second := renderRecursive(testingInstance, root, walk.NewFileSystem(nil), false)
	if first != second {
		testingInstance.Fatalf("render is not idempotent:\n%s\n---\n%s", first, second)
	}
}

func TestRenderRecursiveSegmentsMatchDepth(testingInstance *testing.T) {
	root := buildSampleTree(testingInstance)
	lines := strings.Split(strings.TrimSuffix(renderRecursive(testingInstance, root, walk.NewFileSystem(nil), false), "\n"), "\n")

	expectedDepths := map[string]int{
		"a.txt":    1,
		"nested/":  1,
		"deep/":    2,
		"leaf.txt": 3,
		"file.txt": 2,
		"z.txt":    1,
	}
	if len(lines) != len(expectedDepths)+1 {
		testingInstance.Fatalf("expected %d lines, got %d", len(expectedDepths)+1, len(lines))
	}
	for _, line := range lines[1:] {
		runes := []rune(line)
		segmentCount := 0
		for len(runes) >= 4 && strings.ContainsRune("│├└ ", runes[0]) {
			runes = runes[4:]
			segmentCount++
		}
		name := string(runes)
		if expectedDepths[name] != segmentCount {
			testingInstance.Fatalf("%q: expected %d segments, got %d", name, expectedDepths[name], segmentCount)
		}
	}
}

func TestRenderRecursiveColorsDirectories(testingInstance *testing.T) {
	root := buildSampleTree(testingInstance)
	colored := renderRecursive(testingInstance, root, walk.NewFileSystem(nil), true)
	if !strings.Contains(colored, "\x1b[34mnested/") {
		testingInstance.Fatalf("expected blue directory in output:\n%q", colored)
	}
	plain := renderRecursive(testingInstance, root, walk.NewFileSystem(nil), false)
	if strings.Contains(plain, "\x1b[") {
		testingInstance.Fatalf("expected no escape sequences:\n%q", plain)
	}
}

func TestRenderRecursiveMissingRootFails(testingInstance *testing.T) {
	missingRoot := filepath.Join(testingInstance.TempDir(), "missing")
	var buffer bytes.Buffer
	renderer := output.NewRenderer(&buffer, output.Options{})
	if renderError := renderer.RenderRecursive(missingRoot, walk.NewFileSystem(nil)); renderError == nil {
		testingInstance.Fatalf("expected error for missing root")
	}
	if buffer.Len() != 0 {
		testingInstance.Fatalf("expected no output, got %q", buffer.String())
	}
}

func TestRenderRecursiveFileRootShowsName(testingInstance *testing.T) {
	root := buildSampleTree(testingInstance)
	fileRoot := filepath.Join(root, firstFileName)
	actual := renderRecursive(testingInstance, fileRoot, walk.NewFileSystem(nil), false)
	if actual != firstFileName+"\n" {
		testingInstance.Fatalf("unexpected output %q", actual)
	}
}

// stubLister serves a fixed tree and fails listing for selected directories.
type stubLister struct {
	children map[string][]types.Entry
	failing  map[string]bool
}

func (lister stubLister) Classify(path string) (types.EntryKind, error) {
	return types.EntryKindDirectory, nil
}

func (lister stubLister) List(path string) ([]types.Entry, error) {
	if lister.failing[path] {
		return nil, errors.New("permission denied")
	}
	return lister.children[path], nil
}

func TestRenderRecursiveSkipsUnlistableSubtree(testingInstance *testing.T) {
	lister := stubLister{
		children: map[string][]types.Entry{
			"root": {
				{Path: "root/locked", Name: "locked", Kind: types.EntryKindDirectory},
				{Path: "root/open", Name: "open", Kind: types.EntryKindDirectory},
			},
			"root/open": {
				{Path: "root/open/inner", Name: "inner", Kind: types.EntryKindRegular},
			},
		},
		failing: map[string]bool{"root/locked": true},
	}

	var skipped []string
	var buffer bytes.Buffer
	renderer := output.NewRenderer(&buffer, output.Options{OnSkip: func(path string, cause error) {
		skipped = append(skipped, path)
	}})
	if renderError := renderer.RenderRecursive("root", lister); renderError != nil {
		testingInstance.Fatalf("RenderRecursive: %v", renderError)
	}

	expected := "root/\n├── locked/\n└── open/\n    └── inner\n"
	if buffer.String() != expected {
		testingInstance.Fatalf("unexpected tree:\n%s\nwant:\n%s", buffer.String(), expected)
	}
	if len(skipped) != 1 || skipped[0] != "root/locked" {
		testingInstance.Fatalf("expected locked directory to be reported, got %v", skipped)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestRenderRecursivePropagatesWriteErrors(testingInstance *testing.T) {
	root := buildSampleTree(testingInstance)
	renderer := output.NewRenderer(failingWriter{}, output.Options{})
	if renderError := renderer.RenderRecursive(root, walk.NewFileSystem(nil)); renderError == nil {
		testingInstance.Fatalf("expected write error")
	}
}
