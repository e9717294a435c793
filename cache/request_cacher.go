package cache

import "context"

// RequestCacher keeps a capped, newest-first list of raw entries per
// key. Used for the per-client recent-activity history.
type RequestCacher interface {
	Write(ctx context.Context, key string, value []byte) error
	Read(ctx context.Context, key string) ([]string, error)
}
