package utils

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether the file is attached to an interactive terminal.
func IsTerminal(file *os.File) bool {
	if file == nil {
		return false
	}
	fileDescriptor := file.Fd()
	return isatty.IsTerminal(fileDescriptor) || isatty.IsCygwinTerminal(fileDescriptor)
}

// NoColorRequested reports whether the NO_COLOR environment variable is present.
// Any value, including the empty string, counts.
func NoColorRequested() bool {
	_, present := os.LookupEnv(NoColorEnvironmentVariable)
	return present
}
