package storage

import (
	"bytes"
	"context"
	"encoding/base64"
	"testing"
)

func TestDecodeDataURL(t *testing.T) {
	raw := []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10}
	encoded := base64.StdEncoding.EncodeToString(raw)

	tests := []struct {
		name    string
		input   string
		want    []byte
		wantErr bool
	}{
		{"jpeg data url", "data:image/jpeg;base64," + encoded, raw, false},
		{"bare base64", encoded, raw, false},
		{"no comma", "data:image/jpeg;base64", nil, true},
		{"bad base64", "data:image/jpeg;base64,!!!!", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeDataURL(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("decoded %v, want %v", got, tt.want)
			}
		})
	}
}

func TestObjectPath(t *testing.T) {
	if got := ObjectPath("abc123"); got != "returns/abc123/photo.jpg" {
		t.Errorf("unexpected object path %q", got)
	}
}

func TestMemoryUploader(t *testing.T) {
	u := NewMemory()
	data := []byte("jpeg bytes")

	url, err := u.UploadPhoto(context.Background(), "r1", data)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if url != "memory://returns/r1/photo.jpg" {
		t.Errorf("unexpected url %q", url)
	}

	stored, ok := u.Object("returns/r1/photo.jpg")
	if !ok || !bytes.Equal(stored, data) {
		t.Error("photo bytes not stored")
	}

	u.FailNext = true
	if _, err := u.UploadPhoto(context.Background(), "r2", data); err == nil {
		t.Error("expected injected failure")
	}
	// Failure is one-shot.
	if _, err := u.UploadPhoto(context.Background(), "r2", data); err != nil {
		t.Errorf("upload after injected failure should succeed: %v", err)
	}
}
