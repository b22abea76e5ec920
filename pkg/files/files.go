package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/storybeat/storybeat-cli/pkg/models"
	"github.com/storybeat/storybeat-cli/pkg/script"
)

const (
	StorybeatDir = ".storybeat"
	ScriptsDir   = "scripts"
	ArchiveDir   = "archive"
	SettingsFile = "settings.yaml"
)

// ErrNotFound reports that no script with the requested name exists.
var ErrNotFound = errors.New("script not found")

func InitProjectStructure() error {
	dirs := []string{
		StorybeatDir,
		filepath.Join(StorybeatDir, ScriptsDir),
		filepath.Join(StorybeatDir, ArchiveDir),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// ProjectExists reports whether the current directory holds a project.
func ProjectExists() bool {
	_, err := os.Stat(StorybeatDir)
	return err == nil
}

func scriptPath(name string) string {
	return filepath.Join(StorybeatDir, ScriptsDir, name+".yaml")
}

// ReadScript loads a script by name, normalizes legacy span values and
// rejects files whose span bookkeeping is inconsistent.
func ReadScript(name string) (*models.Script, error) {
	content, err := os.ReadFile(scriptPath(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, fmt.Errorf("failed to read script %s: %w", name, err)
	}

	var s models.Script
	if err := yaml.Unmarshal(content, &s); err != nil {
		return nil, fmt.Errorf("failed to parse script YAML %s: %w", name, err)
	}

	s = script.Normalize(s)
	if err := script.Validate(s); err != nil {
		return nil, fmt.Errorf("script %s is corrupt: %w", name, err)
	}

	s.Name = name
	return &s, nil
}

// WriteScript stores a script under its name, fire-and-forget from the
// editor's point of view: callers do not retry here.
func WriteScript(name string, s models.Script) error {
	if name == "" {
		return fmt.Errorf("script name is empty")
	}

	absPath := scriptPath(name)
	if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
		return fmt.Errorf("failed to create scripts directory: %w", err)
	}

	content, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal script to YAML: %w", err)
	}

	if err := os.WriteFile(absPath, content, 0644); err != nil {
		return fmt.Errorf("failed to write script %s: %w", name, err)
	}

	return nil
}

// ListScripts returns the names of all active scripts.
func ListScripts() ([]string, error) {
	return listYAML(filepath.Join(StorybeatDir, ScriptsDir))
}

func listYAML(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".yaml") {
			names = append(names, strings.TrimSuffix(entry.Name(), ".yaml"))
		}
	}

	return names, nil
}

// DeleteScript removes a script permanently. Prefer ArchiveScript.
func DeleteScript(name string) error {
	if err := os.Remove(scriptPath(name)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return fmt.Errorf("failed to delete script %s: %w", name, err)
	}
	return nil
}
