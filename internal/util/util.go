package util

import (
	"os"
	"path/filepath"
)

// FileExists reports whether path can be stat'ed and is not a directory.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// ParentDirExists reports whether the directory that would hold path exists.
func ParentDirExists(path string) bool {
	info, err := os.Stat(filepath.Dir(path))
	if err != nil {
		return false
	}
	return info.IsDir()
}
