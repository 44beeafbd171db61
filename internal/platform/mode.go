package platform

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
)

// DefaultScriptMode applies to scripts that did not exist before.
const DefaultScriptMode os.FileMode = 0644

// ModeOf returns the permission bits of the regular file at path, or
// DefaultScriptMode when nothing exists there yet.
func ModeOf(path string) (os.FileMode, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultScriptMode, nil
	}
	if err != nil {
		return 0, err
	}
	if info.IsDir() {
		return 0, fmt.Errorf("%s is a directory", path)
	}
	return info.Mode().Perm(), nil
}

// Chmod sets file permissions. Windows has no Unix-style permission bits, so
// there it does nothing.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}
