//go:build !windows

package walk

import "io/fs"

const executablePermissionBits fs.FileMode = 0o111

func hasExecutableBit(mode fs.FileMode) bool {
	return mode.Perm()&executablePermissionBits != 0
}
