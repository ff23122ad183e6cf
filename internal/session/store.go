// Package session keeps per-browser state keyed by a random cookie ID.
package session

import "context"

type Store[T any] interface {
	Get(ctx context.Context, id string) (T, bool, error)
	Put(ctx context.Context, id string, v T) error
	Delete(ctx context.Context, id string) error
	// GetOrCreate returns the value for id, calling create at most once per
	// missing id even under concurrent requests.
	GetOrCreate(ctx context.Context, id string, create func(ctx context.Context) (T, error)) (T, error)
	NewID() string
}
