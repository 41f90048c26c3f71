// Package walk provides the traversal sources that feed the tree renderer:
// a plain recursive lister and an ignore-aware flattened walker.
package walk

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/temirov/ftrek/internal/types"
)

const errorClassifyPathFormat = "classifying %s: %w"

// ClassifyPath determines the kind of the node at path without following symlinks.
func ClassifyPath(path string) (types.EntryKind, error) {
	info, statError := os.Lstat(path)
	if statError != nil {
		return types.EntryKindRegular, fmt.Errorf(errorClassifyPathFormat, path, statError)
	}
	return ClassifyMode(info.Mode()), nil
}

// ClassifyMode maps file mode bits to an entry kind. Symlink status wins over
// directory status, which wins over the executable bit.
func ClassifyMode(mode fs.FileMode) types.EntryKind {
	switch {
	case mode&fs.ModeSymlink != 0:
		return types.EntryKindSymlink
	case mode.IsDir():
		return types.EntryKindDirectory
	case mode.IsRegular() && hasExecutableBit(mode):
		return types.EntryKindExecutable
	default:
		return types.EntryKindRegular
	}
}
