package storage

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caesarkutaa/AgreeLink/internal/core/ports"
)

const pngDataURIPrefix = "data:image/png;base64,"

// DiskImageStore writes signature images to the local filesystem. The
// database keeps only the resulting path.
type DiskImageStore struct {
	dir string
}

func NewDiskImageStore(dir string) *DiskImageStore {
	return &DiskImageStore{dir: dir}
}

// Save decodes a PNG data-URI and writes it as
// signature_<userID>_<unix_ms>.png under the store directory.
func (s *DiskImageStore) Save(userID string, dataURI string) (string, error) {
	if !strings.HasPrefix(dataURI, pngDataURIPrefix) {
		return "", fmt.Errorf("signature payload is not a PNG data URI")
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURI, pngDataURIPrefix))
	if err != nil {
		return "", fmt.Errorf("decode signature image: %w", err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload directory: %w", err)
	}

	name := fmt.Sprintf("signature_%s_%d.png", userID, time.Now().UnixMilli())
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", fmt.Errorf("write signature image: %w", err)
	}
	return path, nil
}

// Remove deletes the image at path. A path that is already gone is treated
// as removed.
func (s *DiskImageStore) Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove signature image: %w", err)
	}
	return nil
}

var _ ports.ImageStore = (*DiskImageStore)(nil)
