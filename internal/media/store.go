package media

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store keeps uploaded images on local disk under generated keys and hands
// back publicly resolvable URLs. The directory is served by the HTTP layer
// under /media.
type Store struct {
	dir     string
	urlHost string
}

func NewStore(dir, urlHost string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}
	return &Store{dir: dir, urlHost: strings.TrimRight(urlHost, "/")}, nil
}

// Save writes the upload under a fresh uuid key, preserving the extension,
// and returns the public URL.
func (s *Store) Save(filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	key := uuid.NewString() + ext

	f, err := os.Create(filepath.Join(s.dir, key))
	if err != nil {
		return "", fmt.Errorf("create media file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("write media file: %w", err)
	}
	return s.urlHost + "/media/" + key, nil
}

// Dir exposes the storage directory for static serving.
func (s *Store) Dir() string { return s.dir }
