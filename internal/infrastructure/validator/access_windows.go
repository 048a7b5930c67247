//go:build windows

package validator

import "os"

// accessExecutable approximates an execute check on Windows, where LookPath
// already honors PATHEXT suffixes.
func accessExecutable(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
