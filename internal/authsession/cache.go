package authsession

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// FileCache stores the token in a file under the user config dir.
type FileCache struct{ path string }

// NewFileCache creates the cache at path, or at the default location
// when path is empty.
func NewFileCache(path string) (*FileCache, error) {
	if path == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(base, "astrolearn", "token")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return &FileCache{path: path}, nil
}

func (c *FileCache) Load() (string, error) {
	buf, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(buf)), nil
}

func (c *FileCache) Save(token string) error {
	return os.WriteFile(c.path, []byte(token+"\n"), 0o600)
}

func (c *FileCache) Clear() error {
	err := os.Remove(c.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
