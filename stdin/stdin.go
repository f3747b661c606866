//go:build !windows

package stdin

import "os"

// IsReadable returns whether STDIN is connected to a pipe or a file, rather
// than an interactive terminal.
func IsReadable() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}
