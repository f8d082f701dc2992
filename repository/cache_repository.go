package repository

import "context"

// CacheRepository is a string cache for rendered analyses.
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string) error
}
