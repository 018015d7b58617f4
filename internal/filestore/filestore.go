// Package filestore persists uploaded submission and solution files.
package filestore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gradeassist/backend/internal/id"
)

// FileStore saves raw uploads and reads them back by path.
type FileStore interface {
	Save(name string, data []byte) (path string, err error)
	Read(path string) ([]byte, error)
}

// Local keeps uploads under one directory on disk.
type Local struct {
	dir string
}

var _ FileStore = (*Local)(nil)

// NewLocal creates the upload directory if needed.
func NewLocal(dir string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("filestore: create upload dir: %w", err)
	}
	return &Local{dir: dir}, nil
}

// Save writes data under a generated name that keeps the upload's
// extension, and returns the stored path.
func (l *Local) Save(name string, data []byte) (string, error) {
	ext := filepath.Ext(name)
	// Uploaded names are untrusted; only the extension survives.
	if strings.ContainsAny(ext, "/\\") {
		ext = ""
	}
	path := filepath.Join(l.dir, id.GenerateID()+ext)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("filestore: write %s: %w", path, err)
	}
	return path, nil
}

// Read returns the stored bytes, refusing paths outside the upload dir.
func (l *Local) Read(path string) ([]byte, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	dir, err := filepath.Abs(l.dir)
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(abs, dir+string(filepath.Separator)) {
		return nil, fmt.Errorf("filestore: path %s escapes upload dir", path)
	}
	return os.ReadFile(abs)
}
