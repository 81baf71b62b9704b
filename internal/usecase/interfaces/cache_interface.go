package interfaces

import (
	"context"
	"time"
)

// ICache is the minimal cache contract the catalog use case needs for its
// SKU aggregates. Get returns ErrCacheMiss from the implementing package
// when the key is absent; callers treat any Get error as a miss.
type ICache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
}
