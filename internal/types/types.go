// Package types defines every cross-package data structure used by the ftrek CLI.
package types

const (
	// ColorModeAuto enables color only when stdout is a terminal and NO_COLOR is unset.
	ColorModeAuto = "auto"
	// ColorModeAlways forces color on.
	ColorModeAlways = "always"
	// ColorModeNever disables color.
	ColorModeNever = "never"

	// TraversalRecursive lists directories directly, without ignore rules.
	TraversalRecursive = "recursive"
	// TraversalFiltered streams entries from the ignore-aware walker.
	TraversalFiltered = "filtered"
)

// EntryKind classifies a filesystem node for styling.
type EntryKind int

const (
	EntryKindRegular EntryKind = iota
	EntryKindDirectory
	EntryKindSymlink
	EntryKindExecutable
)

// String returns the lower-case name of the kind.
func (kind EntryKind) String() string {
	switch kind {
	case EntryKindDirectory:
		return "directory"
	case EntryKindSymlink:
		return "symlink"
	case EntryKindExecutable:
		return "executable"
	default:
		return "regular"
	}
}

// Entry is one filesystem node visited during a traversal. Kind is decided
// once, from the metadata read when the entry was listed.
type Entry struct {
	Path string
	Name string
	Kind EntryKind
}

// FlatEntry is one result of the ignore-aware walker. Only the path and whether
// the node is a directory are known; the hierarchy is implied by the path.
type FlatEntry struct {
	Path  string
	IsDir bool
}
