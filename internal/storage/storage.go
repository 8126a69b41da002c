package storage

import (
	"context"
	"io"
	"time"
)

// Service stores uploaded receipt documents in remote object storage.
// PutObject returns the stored object's location; GetObjectURL turns that
// location back into a time-limited download URL.
type Service interface {
	PutObject(ctx context.Context, key, contentType string, body io.Reader) (string, error)
	GetObjectURL(ctx context.Context, location string, expires time.Duration) (string, error)
}
