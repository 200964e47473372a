package interfaces

import "context"

// IQueryCache stores query results between mutations.
//
// Get reports a miss with false and decodes a hit into dest.
// Invalidate drops every key starting with one of the prefixes.
type IQueryCache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Invalidate(ctx context.Context, prefixes ...string) error
}
