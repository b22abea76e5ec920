package files

import (
	"fmt"
	"os"
	"path/filepath"
)

func archivePath(name string) string {
	return filepath.Join(StorybeatDir, ArchiveDir, name+".yaml")
}

// ArchiveScript moves a script out of the active set without losing it.
func ArchiveScript(name string) error {
	src := scriptPath(name)
	if _, err := os.Stat(src); os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	dst := archivePath(name)
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("failed to create archive directory: %w", err)
	}
	if _, err := os.Stat(dst); err == nil {
		return fmt.Errorf("archived script %s already exists", name)
	}

	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("failed to archive script %s: %w", name, err)
	}
	return nil
}

// RestoreScript moves an archived script back into the active set.
func RestoreScript(name string) error {
	src := archivePath(name)
	if _, err := os.Stat(src); os.IsNotExist(err) {
		return fmt.Errorf("%w: %s (archived)", ErrNotFound, name)
	}

	dst := scriptPath(name)
	if _, err := os.Stat(dst); err == nil {
		return fmt.Errorf("active script %s already exists", name)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("failed to create scripts directory: %w", err)
	}

	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("failed to restore script %s: %w", name, err)
	}
	return nil
}

// ListArchivedScripts returns the names of all archived scripts.
func ListArchivedScripts() ([]string, error) {
	return listYAML(filepath.Join(StorybeatDir, ArchiveDir))
}
