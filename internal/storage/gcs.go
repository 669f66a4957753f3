package storage

import (
	"context"
	"fmt"
	"net/url"

	gcs "cloud.google.com/go/storage"
)

// GCSUploader writes photos to the Firebase-managed Cloud Storage bucket.
type GCSUploader struct {
	bucket     *gcs.BucketHandle
	bucketName string
}

// NewGCS wraps a bucket handle. bucketName is the bucket's full name
// (e.g. "my-project.appspot.com"), used to build download URLs.
func NewGCS(bucket *gcs.BucketHandle, bucketName string) *GCSUploader {
	return &GCSUploader{bucket: bucket, bucketName: bucketName}
}

// UploadPhoto writes the photo under returns/{id}/photo.jpg and returns
// the Firebase Storage download URL.
func (u *GCSUploader) UploadPhoto(ctx context.Context, returnID string, data []byte) (string, error) {
	path := ObjectPath(returnID)

	w := u.bucket.Object(path).NewWriter(ctx)
	w.ContentType = "image/jpeg"
	if _, err := w.Write(data); err != nil {
		w.Close()
		return "", fmt.Errorf("write photo object: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("finalize photo object: %w", err)
	}

	return fmt.Sprintf("https://firebasestorage.googleapis.com/v0/b/%s/o/%s?alt=media",
		u.bucketName, url.QueryEscape(path)), nil
}
