package storage

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/devharu/snaptag/backend/internal/models"
)

// MediaUploader accepts a binary blob and returns a publicly retrievable URL.
// Each call generates a fresh object key, so retried uploads never collide;
// a blob orphaned by a later failure is not cleaned up here.
type MediaUploader interface {
	Upload(ctx context.Context, data []byte, filename, contentType string) (string, error)
}

var allowedExtensions = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"webp": true,
}

// fileExtension returns the lower-cased extension of filename without the dot.
func fileExtension(filename string) string {
	ext := strings.TrimPrefix(path.Ext(filename), ".")
	return strings.ToLower(ext)
}

// checkExtension validates the filename extension against the image whitelist.
func checkExtension(filename string) (string, error) {
	ext := fileExtension(filename)
	if !allowedExtensions[ext] {
		return "", models.ErrExtensionNotAllowed
	}
	return ext, nil
}

// newObjectKey builds a collision-resistant object key independent of the
// input filename.
func newObjectKey(ext string) string {
	return fmt.Sprintf("%d-%s.%s", time.Now().UnixMilli(), uuid.NewString(), ext)
}
