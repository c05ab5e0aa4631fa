package storage

import (
	"context"
	"io"
)

// Store persists request attachments outside the database. The lifecycle
// engine only ever holds the opaque ref returned by Save.
type Store interface {
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
	Remove(ctx context.Context, ref string) error
}
