package walk

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/karrick/godirwalk"

	"github.com/temirov/ftrek/internal/types"
	"github.com/temirov/ftrek/internal/utils"
)

const errorWalkFormat = "walking %s: %w"

// FlatWalker is the filtered traversal source: a pre-order stream of entries
// already pruned of ignored paths.
type FlatWalker interface {
	Walk(root string, visit func(types.FlatEntry) error) error
}

// IgnoreWalkerOptions configures the standard filters of IgnoreWalker.
type IgnoreWalkerOptions struct {
	// IncludeHidden keeps entries whose name starts with a dot.
	IncludeHidden bool
	// OnSkip receives entries dropped because of read errors.
	OnSkip SkipReporter
}

// IgnoreWalker walks a tree in lexicographic pre-order, honoring .gitignore,
// .ignore and .git/info/exclude files. No git repository is required.
type IgnoreWalker struct {
	options IgnoreWalkerOptions
}

// NewIgnoreWalker returns a walker with the given filters.
func NewIgnoreWalker(options IgnoreWalkerOptions) *IgnoreWalker {
	return &IgnoreWalker{options: options}
}

// visitError carries a failure of the visit callback through godirwalk so it
// halts the walk instead of being treated as a skippable node error.
type visitError struct {
	cause error
}

func (failure *visitError) Error() string { return failure.cause.Error() }

func (failure *visitError) Unwrap() error { return failure.cause }

// Walk implements FlatWalker. The root is always visited first and never
// filtered. A symlinked root is followed and its entries are reported under
// the link's path.
func (walker *IgnoreWalker) Walk(root string, visit func(types.FlatEntry) error) error {
	cleanRoot := filepath.Clean(root)
	walkRoot := resolveRoot(cleanRoot)
	rules := newIgnoreRules(walkRoot)

	reportedPath := func(path string) string {
		if walkRoot == cleanRoot {
			return path
		}
		return filepath.Join(cleanRoot, utils.RelativePathOrSelf(path, walkRoot))
	}

	callback := func(osPathname string, directoryEntry *godirwalk.Dirent) error {
		cleanPath := filepath.Clean(osPathname)
		isDirectory := directoryEntry.IsDir()

		if cleanPath == walkRoot {
			if isDirectory {
				if loadError := rules.loadAncestors(cleanRoot); loadError != nil {
					walker.skip(cleanRoot, loadError)
				}
				if loadError := rules.loadRoot(); loadError != nil {
					walker.skip(cleanRoot, loadError)
				}
			}
			return walker.emit(visit, types.FlatEntry{Path: cleanRoot, IsDir: isDirectory})
		}

		if walker.filtered(rules, cleanPath, directoryEntry.Name(), isDirectory) {
			if isDirectory {
				return godirwalk.SkipThis
			}
			return nil
		}

		if isDirectory {
			if loadError := rules.loadDirectory(cleanPath); loadError != nil {
				walker.skip(reportedPath(cleanPath), loadError)
			}
		}
		return walker.emit(visit, types.FlatEntry{Path: reportedPath(cleanPath), IsDir: isDirectory})
	}

	walkError := godirwalk.Walk(walkRoot, &godirwalk.Options{
		Callback:            callback,
		Unsorted:            false,
		FollowSymbolicLinks: false,
		AllowNonDirectory:   true,
		ErrorCallback: func(osPathname string, nodeError error) godirwalk.ErrorAction {
			var failure *visitError
			if errors.As(nodeError, &failure) {
				return godirwalk.Halt
			}
			walker.skip(reportedPath(filepath.Clean(osPathname)), nodeError)
			return godirwalk.SkipNode
		},
	})
	if walkError == nil {
		return nil
	}
	var failure *visitError
	if errors.As(walkError, &failure) {
		return failure.cause
	}
	return fmt.Errorf(errorWalkFormat, root, walkError)
}

// resolveRoot returns the target of a symlinked root, or root itself. A link
// that cannot be resolved is walked as the link.
func resolveRoot(root string) string {
	info, statError := os.Lstat(root)
	if statError != nil || info.Mode()&os.ModeSymlink == 0 {
		return root
	}
	resolved, resolveError := filepath.EvalSymlinks(root)
	if resolveError != nil {
		return root
	}
	return filepath.Clean(resolved)
}

func (walker *IgnoreWalker) filtered(rules *ignoreRules, path string, name string, isDirectory bool) bool {
	if !walker.options.IncludeHidden && utils.IsHiddenName(name) {
		return true
	}
	return rules.ignored(path, isDirectory)
}

func (walker *IgnoreWalker) emit(visit func(types.FlatEntry) error, entry types.FlatEntry) error {
	if visitFailure := visit(entry); visitFailure != nil {
		return &visitError{cause: visitFailure}
	}
	return nil
}

func (walker *IgnoreWalker) skip(path string, cause error) {
	if walker.options.OnSkip != nil {
		walker.options.OnSkip(path, cause)
	}
}
