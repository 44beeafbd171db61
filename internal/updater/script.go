package updater

import (
	"fmt"
	"os"

	"github.com/scriptsync/scriptsync/internal/platform"
)

// WriteScript replaces the file at path with content in full. An existing
// file keeps its permissions; the previous contents are not kept.
func WriteScript(path string, content []byte) error {
	perm, err := platform.ModeOf(path)
	if err != nil {
		return fmt.Errorf("inspecting script: %w", err)
	}

	if err := os.WriteFile(path, content, perm); err != nil {
		return fmt.Errorf("writing script: %w", err)
	}

	// WriteFile only applies perm (minus umask) when it creates the file.
	if err := platform.Chmod(path, perm); err != nil {
		return fmt.Errorf("restoring script permissions: %w", err)
	}
	return nil
}
