// Package media stores uploaded images posted by clients as base64 data URLs
// and serves them back over HTTP. It stands in for the external media host
// the dashboard used to upload to directly.
package media

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/obazhan/sportclub/internal/domain"
)

const maxUploadSize = 10 * 1024 * 1024 // 10MB decoded

// extensions maps accepted media types to file extensions.
var extensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// DiskStore implements domain.MediaStore on the local filesystem. Files are
// written under dir with random names and served under baseURL.
type DiskStore struct {
	dir     string
	baseURL string
}

// NewDiskStore creates the storage directory if needed and returns a store
// serving files under baseURL (e.g. "/media").
func NewDiskStore(dir, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}
	return &DiskStore{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

// Dir returns the directory files are stored in, for mounting a file server.
func (s *DiskStore) Dir() string {
	return s.dir
}

// Upload decodes a base64 data URL, validates type and size, writes the bytes
// under a random key, and returns the URL the file is served from.
func (s *DiskStore) Upload(ctx context.Context, dataURL string) (string, error) {
	mediaType, data, err := decodeDataURL(dataURL)
	if err != nil {
		return "", err
	}

	ext, ok := extensions[mediaType]
	if !ok {
		return "", fmt.Errorf("%w: unsupported media type %q", domain.ErrInvalidInput, mediaType)
	}
	if len(data) > maxUploadSize {
		return "", fmt.Errorf("%w: image exceeds 10MB limit", domain.ErrInvalidInput)
	}

	name := uuid.NewString() + ext
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write media file: %w", err)
	}

	return s.baseURL + "/" + name, nil
}

// decodeDataURL parses a "data:<type>;base64,<payload>" URL into its media
// type and decoded bytes.
func decodeDataURL(dataURL string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(dataURL, "data:")
	if !ok {
		return "", nil, fmt.Errorf("%w: not a data URL", domain.ErrInvalidInput)
	}

	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, fmt.Errorf("%w: malformed data URL", domain.ErrInvalidInput)
	}

	mediaType, encoding, _ := strings.Cut(meta, ";")
	if encoding != "base64" {
		return "", nil, fmt.Errorf("%w: data URL must be base64-encoded", domain.ErrInvalidInput)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: invalid base64 payload", domain.ErrInvalidInput)
	}

	return mediaType, data, nil
}
