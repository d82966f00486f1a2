package domain

import "context"

type BusinessReader interface {
	ListBusinesses(ctx context.Context, kind Kind) ([]Business, error)
	GetBusiness(ctx context.Context, kind Kind, id string) (Business, error)
}

type BusinessWriter interface {
	UpsertBusiness(ctx context.Context, b Business) error
}

type BusinessRepository interface {
	BusinessReader
	BusinessWriter
}

// FeedClient pulls raw listing payloads from a remote catalog export.
type FeedClient interface {
	GetListings(ctx context.Context, kind Kind) ([]map[string]any, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
	DelPattern(ctx context.Context, pattern string) error
}
