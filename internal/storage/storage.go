// Package storage uploads return photos to blob storage. The production
// implementation writes to the Firebase-managed Cloud Storage bucket; an
// in-memory implementation backs tests and credential-less development.
package storage

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// Uploader stores a return photo and returns its publicly fetchable URL.
// The object key is namespaced under the return ID.
type Uploader interface {
	UploadPhoto(ctx context.Context, returnID string, data []byte) (string, error)
}

// ObjectPath is the storage key for a return's photo.
func ObjectPath(returnID string) string {
	return fmt.Sprintf("returns/%s/photo.jpg", returnID)
}

// DecodeDataURL extracts the raw bytes from a data-URL-encoded image
// ("data:image/jpeg;base64,..."). A bare base64 payload without the
// data: prefix is accepted too.
func DecodeDataURL(dataURL string) ([]byte, error) {
	payload := dataURL
	if strings.HasPrefix(dataURL, "data:") {
		idx := strings.IndexByte(dataURL, ',')
		if idx < 0 {
			return nil, errors.New("malformed data url: no comma separator")
		}
		payload = dataURL[idx+1:]
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("decode photo: %w", err)
	}
	return data, nil
}
