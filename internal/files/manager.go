package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644

	// RemindersFileName is the default reminders file inside the base path.
	RemindersFileName = "reminders.rem"

	// ConfigFileName is the optional TOML config inside the base path.
	ConfigFileName = "config.toml"
)

// Manager centralizes where the reminders file and config live on disk.
type Manager struct {
	basePath      string
	remindersPath string
	explicit      bool
}

// ErrRemindersNotFound is returned when an explicitly chosen reminders file is missing.
var ErrRemindersNotFound = errors.New("reminders file not found")

// NewManager constructs a Manager rooted at the provided directory. If basePath
// is empty, it falls back to ~/.remind (or another location determined by
// ResolveBasePath).
func NewManager(basePath string) (*Manager, error) {
	var err error
	if basePath == "" {
		basePath, err = ResolveBasePath()
		if err != nil {
			return nil, err
		}
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, err
	}

	return &Manager{
		basePath:      abs,
		remindersPath: filepath.Join(abs, RemindersFileName),
	}, nil
}

// BasePath returns the root directory.
func (m *Manager) BasePath() string {
	return m.basePath
}

// ConfigPath returns where the optional config file is looked up.
func (m *Manager) ConfigPath() string {
	return filepath.Join(m.basePath, ConfigFileName)
}

// RemindersPath resolves the reminders file. The file may not exist yet.
func (m *Manager) RemindersPath() string {
	return m.remindersPath
}

// SetRemindersPath points the manager at a different reminders file given on
// the command line. Relative paths are resolved against the working directory.
// The file must already exist when it is opened.
func (m *Manager) SetRemindersPath(path string) error {
	return m.setRemindersPath(path, "")
}

// UseConfiguredPath is SetRemindersPath for a path read from the config file;
// relative paths are resolved against the base path.
func (m *Manager) UseConfiguredPath(path string) error {
	return m.setRemindersPath(path, m.basePath)
}

func (m *Manager) setRemindersPath(path, relativeTo string) error {
	if path == "" {
		return nil
	}
	expanded, err := ExpandHome(path)
	if err != nil {
		return err
	}
	if relativeTo != "" && !filepath.IsAbs(expanded) {
		expanded = filepath.Join(relativeTo, expanded)
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return err
	}
	m.remindersPath = abs
	m.explicit = true
	return nil
}

// OpenReminders opens the reminders file for reading. The default file is
// created on first use; an explicitly chosen file must exist.
func (m *Manager) OpenReminders() (*os.File, error) {
	if m == nil {
		return nil, errors.New("files.Manager is nil")
	}
	if !m.explicit {
		if _, err := m.EnsureRemindersFile(); err != nil {
			return nil, err
		}
	}

	file, err := os.Open(m.remindersPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrRemindersNotFound, m.remindersPath)
		}
		return nil, fmt.Errorf("open reminders file: %w", err)
	}
	return file, nil
}

// EnsureRemindersFile guarantees the directory tree and the reminders file
// exist. Existing contents are left untouched. It returns the absolute path.
func (m *Manager) EnsureRemindersFile() (string, error) {
	if m == nil {
		return "", errors.New("files.Manager is nil")
	}

	path := m.RemindersPath()
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return "", fmt.Errorf("create directories: %w", err)
	}

	file, err := os.OpenFile(path, os.O_RDONLY|os.O_CREATE, filePermissions)
	if err != nil {
		return "", fmt.Errorf("open reminders file: %w", err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("close reminders file: %w", err)
	}

	return path, nil
}
