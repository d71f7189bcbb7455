package files

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultDirName defines the folder under the user's home directory.
	DefaultDirName = ".remind"

	// HomeEnv overrides the storage root when set to a non-empty value.
	HomeEnv = "REMIND_HOME"
)

// ResolveBasePath determines where remind keeps its reminders file and config,
// defaulting to ~/.remind. The location can be overridden by exporting REMIND_HOME.
func ResolveBasePath() (string, error) {
	if override, ok := os.LookupEnv(HomeEnv); ok {
		override = strings.TrimSpace(override)
		if override != "" {
			return ExpandHome(override)
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultDirName), nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(input string) (string, error) {
	if strings.HasPrefix(input, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		input = filepath.Join(home, strings.TrimPrefix(input, "~"))
	}
	return input, nil
}
