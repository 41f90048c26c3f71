package walk

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/temirov/ftrek/internal/types"
)

const errorReadDirectoryFormat = "reading directory %s: %w"

// SkipReporter receives entries that were dropped during traversal.
type SkipReporter func(path string, cause error)

// Lister is the unfiltered traversal source used by the recursive renderer.
type Lister interface {
	// Classify returns the kind of the node at path.
	Classify(path string) (types.EntryKind, error)
	// List returns the classified children of the directory at path.
	List(path string) ([]types.Entry, error)
}

// FileSystem lists the local filesystem. Children whose metadata cannot be
// read are dropped; OnSkip, when set, is told about each of them.
type FileSystem struct {
	OnSkip SkipReporter
}

// NewFileSystem returns a lister that reports dropped children to onSkip.
func NewFileSystem(onSkip SkipReporter) *FileSystem {
	return &FileSystem{OnSkip: onSkip}
}

// Classify implements Lister.
func (fileSystem *FileSystem) Classify(path string) (types.EntryKind, error) {
	return ClassifyPath(path)
}

// List implements Lister. The order is the order of os.ReadDir. The directory
// itself failing to open is an error; unreadable children are skipped.
func (fileSystem *FileSystem) List(path string) ([]types.Entry, error) {
	directoryEntries, readDirectoryError := os.ReadDir(path)
	if readDirectoryError != nil && len(directoryEntries) == 0 {
		return nil, fmt.Errorf(errorReadDirectoryFormat, path, readDirectoryError)
	}
	if readDirectoryError != nil {
		fileSystem.skip(path, readDirectoryError)
	}

	children := make([]types.Entry, 0, len(directoryEntries))
	for _, directoryEntry := range directoryEntries {
		childPath := filepath.Join(path, directoryEntry.Name())
		entryInfo, infoError := directoryEntry.Info()
		if infoError != nil {
			fileSystem.skip(childPath, infoError)
			continue
		}
		children = append(children, types.Entry{
			Path: childPath,
			Name: directoryEntry.Name(),
			Kind: ClassifyMode(entryInfo.Mode()),
		})
	}
	return children, nil
}

func (fileSystem *FileSystem) skip(path string, cause error) {
	if fileSystem.OnSkip != nil {
		fileSystem.OnSkip(path, cause)
	}
}
