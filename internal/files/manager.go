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

	friendsFileName  = "friends.md"
	eventsFileName   = "events.md"
	databaseFileName = "amigos.db"
)

// Manager centralizes where amigos data lives on disk and how files are named.
type Manager struct {
	basePath string
}

// NewManager constructs a Manager rooted at the provided directory. If basePath
// is empty, it falls back to ~/.amigos (or another location determined by
// ResolveBasePath).
func NewManager(basePath string) (*Manager, error) {
	var err error
	if basePath == "" {
		basePath, err = ResolveBasePath()
		if err != nil {
			return nil, err
		}
	}
	basePath, err = ExpandHome(basePath)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, err
	}

	return &Manager{basePath: abs}, nil
}

// BasePath returns the root directory storing all data files.
func (m *Manager) BasePath() string {
	return m.basePath
}

// FriendsPath is the Markdown file holding friends and their logs.
func (m *Manager) FriendsPath() string {
	return filepath.Join(m.basePath, friendsFileName)
}

// EventsPath is the Markdown file holding events.
func (m *Manager) EventsPath() string {
	return filepath.Join(m.basePath, eventsFileName)
}

// DatabasePath is the SQLite database used by the sqlite storage backend.
func (m *Manager) DatabasePath() string {
	return filepath.Join(m.basePath, databaseFileName)
}

// EnsureDir creates the base directory if needed.
func (m *Manager) EnsureDir() error {
	if m == nil {
		return errors.New("files.Manager is nil")
	}
	if err := os.MkdirAll(m.basePath, dirPermissions); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}
	return nil
}

// EnsureFile guarantees the directory tree exists and the file at path is
// present, writing header into it when it is empty. It returns path.
func (m *Manager) EnsureFile(path, header string) (string, error) {
	if err := m.EnsureDir(); err != nil {
		return "", err
	}

	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, filePermissions)
	if err != nil {
		return "", fmt.Errorf("open data file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return "", fmt.Errorf("stat data file: %w", err)
	}

	if info.Size() == 0 && header != "" {
		if _, err := file.WriteString(header); err != nil {
			return "", fmt.Errorf("write header: %w", err)
		}
	}

	return path, nil
}

// WriteFileAtomic replaces path with data by writing a sibling temp file and
// renaming it into place.
func (m *Manager) WriteFileAtomic(path string, data []byte) error {
	if err := m.EnsureDir(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Chmod(filePermissions); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replace data file: %w", err)
	}
	return nil
}
