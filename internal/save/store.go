// Package save persists player progress as integer key/value pairs per
// profile.
package save

import "context"

// Store loads and saves a profile's values. Load reports false when the
// profile has never been saved.
type Store interface {
	Load(ctx context.Context, profile string) (map[string]int, bool, error)
	Save(ctx context.Context, profile string, kv map[string]int) error
}

func cloneValues(kv map[string]int) map[string]int {
	out := make(map[string]int, len(kv))
	for k, v := range kv {
		out[k] = v
	}
	return out
}
