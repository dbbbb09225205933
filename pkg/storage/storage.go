package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rifkydyatama/si-eligible/config"
)

// Storage persists uploaded evidence files and returns retrievable
// reference paths. The rest of the system only stores the reference.
type Storage interface {
	Save(category, filename string, r io.Reader) (string, error)
	Remove(ref string) error
}

type localStorage struct {
	uploadDir string
	publicURL string
}

// NewLocal creates a disk-backed storage rooted at cfg.UploadDir.
func NewLocal(cfg *config.StorageConfig) (Storage, error) {
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &localStorage{
		uploadDir: cfg.UploadDir,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
	}, nil
}

// Save writes the blob under category/ with a unique name and returns
// the public reference path.
func (s *localStorage) Save(category, filename string, r io.Reader) (string, error) {
	dir := filepath.Join(s.uploadDir, category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create category dir: %w", err)
	}

	name := fmt.Sprintf("%d_%s_%s", time.Now().Unix(), uuid.New().String()[:8], sanitize(filename))
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write file: %w", err)
	}

	return s.publicURL + "/" + category + "/" + name, nil
}

// Remove deletes a previously saved file by its reference.
func (s *localStorage) Remove(ref string) error {
	rel := strings.TrimPrefix(ref, s.publicURL+"/")
	if rel == ref || strings.Contains(rel, "..") {
		return fmt.Errorf("invalid storage reference %q", ref)
	}
	return os.Remove(filepath.Join(s.uploadDir, filepath.FromSlash(rel)))
}

func sanitize(name string) string {
	name = filepath.Base(name)
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}
