// Package localstore persists opaque string entries under fixed key names.
// It is the client's stand-in for a browser key-value store: the credential
// store keeps its encrypted records here.
package localstore

import "context"

type Repository interface {
	// Get returns the stored value for key, or (nil, nil) when absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
