package out

import "context"

// RateLimiter limits requests per key. Keys are "global" or "ip:<address>".
type RateLimiter interface {
	Allow(ctx context.Context, key string) bool
	AllowN(ctx context.Context, key string, n int) bool
}
