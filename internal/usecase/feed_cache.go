package usecase

import (
	"context"
	"time"
)

// JobsFeedCacheKey holds the decoded active-job feed between ingests.
const JobsFeedCacheKey = "jobs:feed:active"

// FeedCache is the cache surface the match and ingest usecases need. The
// Redis implementation degrades to a no-op when the server is unreachable.
type FeedCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
