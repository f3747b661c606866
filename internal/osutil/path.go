package osutil

import (
	"os"
	"path/filepath"
	"strings"
)

// NormalizeFilePath normalizes a path and returns a clean absolute version.
// It correctly expands environment variables inside paths, converts "~/"
// into the user's home directory, and replaces "./" with the current working
// directory.
func NormalizeFilePath(path string) (string, error) {
	expandedPath := os.ExpandEnv(path)

	if strings.HasPrefix(expandedPath, "~/") {
		homeDir, err := UserHomeDir()
		if err != nil {
			return "", err
		}
		expandedPath = filepath.Join(homeDir, expandedPath[2:])
	}

	return filepath.Abs(expandedPath)
}

// UserHomeDir is similar to os.UserHomeDir, but prefers $HOME when available
// over other options (such as USERPROFILE on Windows).
func UserHomeDir() (string, error) {
	if h := os.Getenv("HOME"); h != "" {
		return h, nil
	}
	return os.UserHomeDir()
}
