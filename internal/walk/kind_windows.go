//go:build windows

package walk

import "io/fs"

// Windows has no executable permission bit.
func hasExecutableBit(fs.FileMode) bool {
	return false
}
