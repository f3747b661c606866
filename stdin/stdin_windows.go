//go:build windows

package stdin

import "os"

// IsReadable returns whether STDIN has been connected to something.
func IsReadable() bool {
	// If there is no pipe, then os.Stdin.Stat() returns an error on
	// Windows.
	_, err := os.Stdin.Stat()
	return err == nil
}
