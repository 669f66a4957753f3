// Package store persists return requests. The production implementation
// writes to Firestore; an in-memory implementation backs tests and
// credential-less development.
package store

import (
	"context"
	"errors"

	"github.com/myokyal/loopify/internal/returns"
)

// ErrNotFound is returned when no return record exists for an ID.
var ErrNotFound = errors.New("return not found")

// Store persists return requests. Create assigns the record its unique
// identifier and pending status; SetPhotoURL attaches the uploaded photo
// location after the fact.
type Store interface {
	Create(ctx context.Context, req *returns.Request) (string, error)
	SetPhotoURL(ctx context.Context, id, url string) error
	Get(ctx context.Context, id string) (*returns.Request, error)
	List(ctx context.Context) ([]*returns.Request, error)
}
