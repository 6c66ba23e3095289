// Package session provides the persistence boundary of the session store:
// a small key/value repository over a local sqlite database. State written
// here survives a client restart; logout wipes it.
package session

import (
	"context"
)

// Repository is the key/value contract the session store persists through.
// Get returns nil (no error) for a missing key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
