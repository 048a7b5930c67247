//go:build !windows

package validator

import "golang.org/x/sys/unix"

// accessExecutable checks execute permission for the current user.
func accessExecutable(path string) bool {
	return unix.Access(path, unix.X_OK) == nil
}
