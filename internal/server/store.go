package server

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// ProgressStore persists the player's progress as one opaque blob. The
// local host serves a single profile, so there is exactly one record.
type ProgressStore interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}
